package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func TestRequestIDMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(RequestIDMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(GetRequestID(c))
	})

	call := func(t *testing.T, header string) (body, echoed string) {
		t.Helper()
		req := httptest.NewRequest("GET", "/", nil)
		if header != "" {
			req.Header.Set("X-Request-ID", header)
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		return string(b), resp.Header.Get("X-Request-ID")
	}

	t.Run("generates an id when the header is missing", func(t *testing.T) {
		body, echoed := call(t, "")
		if _, err := uuid.Parse(body); err != nil {
			t.Errorf("generated id %q is not a uuid: %v", body, err)
		}
		if echoed != body {
			t.Errorf("response header %q does not match locals value %q", echoed, body)
		}
	})

	t.Run("keeps a well-formed incoming id", func(t *testing.T) {
		incoming := uuid.New().String()
		body, echoed := call(t, incoming)
		if body != incoming || echoed != incoming {
			t.Errorf("incoming id %q not propagated, got locals %q header %q", incoming, body, echoed)
		}
	})

	t.Run("replaces a malformed incoming id", func(t *testing.T) {
		body, echoed := call(t, "not-a-uuid")
		if _, err := uuid.Parse(body); err != nil {
			t.Errorf("replacement id %q is not a uuid: %v", body, err)
		}
		if echoed == "not-a-uuid" {
			t.Error("malformed header value must not be echoed back")
		}
	})
}
