package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

func newTestApp() (*fiber.App, Middleware) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	mw := New(logger)

	app := fiber.New()
	app.Use(mw.NewRequestIDMiddleware())
	app.Use(mw.NewLoggingMiddleware())
	app.Get("/id", func(c *fiber.Ctx) error {
		return c.SendString(mw.GetRequestID(c))
	})

	return app, mw
}

func TestRequestIDGenerated(t *testing.T) {
	app, _ := newTestApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/id", nil), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if _, err := ulid.Parse(string(body)); err != nil {
		t.Fatalf("expected generated ULID, got %q", body)
	}
	if resp.Header.Get(RequestIDKey) != string(body) {
		t.Fatalf("expected response header to echo request id, got %q", resp.Header.Get(RequestIDKey))
	}
}

func TestRequestIDFromHeader(t *testing.T) {
	app, _ := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(RequestIDKey, "caller-supplied")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if string(body) != "caller-supplied" {
		t.Fatalf("expected caller-supplied, got %q", body)
	}
}

func TestGetRequestIDWithoutMiddleware(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	mw := New(logger)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(mw.GetRequestID(c))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if string(body) != "unknown" {
		t.Fatalf("expected unknown, got %q", body)
	}
}

func TestSanitizeRequestBody(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		want        string
	}{
		{
			name:        "multipart is never logged",
			contentType: "multipart/form-data; boundary=xyz",
			body:        "--xyz\r\n...binary...",
			want:        "[multipart body]",
		},
		{
			name:        "non json",
			contentType: "text/plain",
			body:        "hello",
			want:        "[non-JSON body]",
		},
		{
			name:        "json kept",
			contentType: fiber.MIMEApplicationJSON,
			body:        `{"source_bucket":"faces","source_key":"a.jpg"}`,
			want:        `{"source_bucket":"faces","source_key":"a.jpg"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeRequestBody(tt.contentType, []byte(tt.body)); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSanitizeRequestBodyMasksSecrets(t *testing.T) {
	got := sanitizeRequestBody(fiber.MIMEApplicationJSON, []byte(`{"secret_key":"abc","source_key":"a.jpg"}`))
	if strings.Contains(got, "abc") || !strings.Contains(got, "[SECRET]") {
		t.Fatalf("expected secret to be masked, got %q", got)
	}
	if !strings.Contains(got, "a.jpg") {
		t.Fatalf("expected object key to be kept, got %q", got)
	}
}
