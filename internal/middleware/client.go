package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ClientIDKey is the locals key the client id is stored under.
const ClientIDKey = "clientID"

// EnsureClientID tags the request with a client id taken from the X-Client-ID
// header or the clientId query parameter, minting one when the client sent none.
func EnsureClientID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals(ClientIDKey) != nil {
			return c.Next()
		}

		clientID := c.Get("X-Client-ID")
		if clientID == "" {
			clientID = c.Query("clientId")
		}
		if clientID == "" {
			clientID = uuid.New().String()
		}

		c.Set("X-Client-ID", clientID)
		c.Locals(ClientIDKey, clientID)
		return c.Next()
	}
}
