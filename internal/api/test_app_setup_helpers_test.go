package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/dailydiet/internal/db"
	"gorm.io/gorm"
)

const testSecretKey = "test-secret-key-0123456789abcdef"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	return newTestAppWithOptions(t, Options{ExposeUserDirectory: true})
}

func newTestAppWithOptions(t *testing.T, options Options) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "dailydiet-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if options.SecretKey == "" {
		options.SecretKey = testSecretKey
	}
	if options.Location == nil {
		options.Location = time.UTC
	}
	options.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	handler, err := NewHandler(database, options)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app, database
}

func doJSONRequest(t *testing.T, app *fiber.App, method string, path string, payload any, cookie string) *http.Response {
	t.Helper()

	var body io.Reader
	switch value := payload.(type) {
	case nil:
	case string:
		body = bytes.NewBufferString(value)
	default:
		encoded, err := json.Marshal(value)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func assertStatus(t *testing.T, response *http.Response, expected int) {
	t.Helper()
	if response.StatusCode != expected {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status %d, got %d: %s", expected, response.StatusCode, string(body))
	}
}

func decodeJSONResponse(t *testing.T, response *http.Response, target any) {
	t.Helper()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode response body %q: %v", string(raw), err)
	}
}

func sessionCookieHeader(t *testing.T, response *http.Response) string {
	t.Helper()

	cookie := responseCookie(response.Cookies(), sessionCookieName)
	if cookie == nil || cookie.Value == "" {
		t.Fatal("session cookie is missing in response")
	}
	return cookie.Name + "=" + cookie.Value
}

type testUserPayload struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Weight    *float64 `json:"weight"`
	Goal      *string  `json:"goal"`
}

func registerTestUser(t *testing.T, app *fiber.App, email string, password string) (testUserPayload, string) {
	t.Helper()

	response := doJSONRequest(t, app, http.MethodPost, "/v1/users", fiber.Map{
		"email":     email,
		"password":  password,
		"firstName": "Ana",
		"lastName":  "Silva",
	}, "")
	assertStatus(t, response, http.StatusOK)

	cookie := sessionCookieHeader(t, response)
	payload := struct {
		User testUserPayload `json:"user"`
	}{}
	decodeJSONResponse(t, response, &payload)
	return payload.User, cookie
}
