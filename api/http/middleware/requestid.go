package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/ai-service/pkg/requestid"
)

const maxRequestIDLength = 128

// RequestID reuses a sane incoming X-Request-ID or generates a UUID, echoes
// it back and stores it in the user context.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(requestid.Header)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		c.Set(requestid.Header, id)
		c.Locals("requestId", id)
		c.SetUserContext(requestid.NewContext(c.UserContext(), id))
		return c.Next()
	}
}
