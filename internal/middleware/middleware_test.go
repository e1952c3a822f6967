package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/whoami", EnsureClientID(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(ClientIDKey).(string))
	})
	app.Get("/ws/:gameId", WebSocketUpgrade(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusSwitchingProtocols)
	})
	return app
}

func TestEnsureClientID(t *testing.T) {
	app := newTestApp()
	tests := []struct {
		name   string
		target string
		header string
		want   string
	}{
		{"header", "/whoami", "tab-1", "tab-1"},
		{"query", "/whoami?clientId=tab-2", "", "tab-2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("X-Client-ID", tt.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			body, _ := io.ReadAll(resp.Body)
			if string(body) != tt.want {
				t.Errorf("client id = %q, want %q", body, tt.want)
			}
		})
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if len(body) == 0 || resp.Header.Get("X-Client-ID") != string(body) {
		t.Errorf("minted client id %q, header %q", body, resp.Header.Get("X-Client-ID"))
	}
}

func TestWebSocketUpgradeRejectsPlainRequests(t *testing.T) {
	resp, err := newTestApp().Test(httptest.NewRequest(http.MethodGet, "/ws/some-game", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUpgradeRequired {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusUpgradeRequired)
	}
}
