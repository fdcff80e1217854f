package auth

import (
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

// ExtractRole membaca role dari header "Role" atau body JSON "role".
// Tidak ada session: role dikirim ulang di tiap request.
func ExtractRole(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Get("Role")); v != "" {
		return v
	}
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	if strings.HasPrefix(ct, fiber.MIMEApplicationJSON) && len(c.Body()) > 0 {
		var body map[string]any
		_ = sonic.Unmarshal(c.Body(), &body)
		if s, ok := body["role"].(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// ExtractDepartment membaca department dari header "Department" atau body JSON.
func ExtractDepartment(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Get("Department")); v != "" {
		return v
	}
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	if strings.HasPrefix(ct, fiber.MIMEApplicationJSON) && len(c.Body()) > 0 {
		var body map[string]any
		_ = sonic.Unmarshal(c.Body(), &body)
		if s, ok := body["department"].(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// CheckRole menolak request yang tidak membawa role (400) atau membawa role
// di luar daftar yang diizinkan (403). Dua kasus ini sengaja dibedakan.
func CheckRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := ExtractRole(c)

		if role == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Role is required",
			})
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Locals("role", role)
				c.Locals("department", ExtractDepartment(c))
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Access denied",
		})
	}
}
