package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/dailydiet/internal/models"
)

func TestLoginSetsSessionCookie(t *testing.T) {
	app, database := newTestApp(t)
	registered, _ := registerTestUser(t, app, "login@example.com", "secret123")

	response := doJSONRequest(t, app, http.MethodPost, "/v1/users/login", fiber.Map{
		"email":    "LOGIN@example.com",
		"password": "secret123",
	}, "")
	assertStatus(t, response, http.StatusOK)
	cookie := sessionCookieHeader(t, response)

	payload := struct {
		User testUserPayload `json:"user"`
	}{}
	decodeJSONResponse(t, response, &payload)
	if payload.User.ID != registered.ID {
		t.Fatalf("expected user %s, got %s", registered.ID, payload.User.ID)
	}

	stored := models.User{}
	if err := database.First(&stored, "id = ?", registered.ID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if stored.SessionToken == nil {
		t.Fatal("expected session token to be persisted on login")
	}

	profile := doJSONRequest(t, app, http.MethodGet, "/v1/users", nil, cookie)
	assertStatus(t, profile, http.StatusOK)
}

func TestLoginFailuresShareOneResponse(t *testing.T) {
	app, _ := newTestApp(t)
	registerTestUser(t, app, "known@example.com", "secret123")

	unknown := doJSONRequest(t, app, http.MethodPost, "/v1/users/login", fiber.Map{
		"email":    "unknown@example.com",
		"password": "secret123",
	}, "")
	assertStatus(t, unknown, http.StatusUnauthorized)
	unknownMessage := readAPIError(t, unknown.Body)

	wrongPassword := doJSONRequest(t, app, http.MethodPost, "/v1/users/login", fiber.Map{
		"email":    "known@example.com",
		"password": "wrong-password",
	}, "")
	assertStatus(t, wrongPassword, http.StatusUnauthorized)
	wrongMessage := readAPIError(t, wrongPassword.Body)

	if unknownMessage != "invalid credentials" || wrongMessage != unknownMessage {
		t.Fatalf("expected identical invalid credentials errors, got %q and %q", unknownMessage, wrongMessage)
	}
	if responseCookie(wrongPassword.Cookies(), sessionCookieName) != nil {
		t.Fatal("expected no session cookie on failed login")
	}
}

func TestLoginRejectsMalformedCredentials(t *testing.T) {
	app, _ := newTestApp(t)

	response := doJSONRequest(t, app, http.MethodPost, "/v1/users/login", fiber.Map{
		"email":    "not-an-email",
		"password": "123",
	}, "")
	assertStatus(t, response, http.StatusBadRequest)

	body := validationErrorBody{}
	decodeJSONResponse(t, response, &body)
	if !body.hasField("email") || !body.hasField("password") {
		t.Fatalf("expected email and password errors, got %+v", body.Fields)
	}
}

func TestLoginInvalidatesPreviousSession(t *testing.T) {
	app, _ := newTestApp(t)
	_, registrationCookie := registerTestUser(t, app, "single@example.com", "secret123")

	response := doJSONRequest(t, app, http.MethodPost, "/v1/users/login", fiber.Map{
		"email":    "single@example.com",
		"password": "secret123",
	}, "")
	assertStatus(t, response, http.StatusOK)
	loginCookie := sessionCookieHeader(t, response)

	stale := doJSONRequest(t, app, http.MethodGet, "/v1/users", nil, registrationCookie)
	assertStatus(t, stale, http.StatusUnauthorized)
	if message := readAPIError(t, stale.Body); message != "user not found" {
		t.Fatalf("expected user not found, got %q", message)
	}

	fresh := doJSONRequest(t, app, http.MethodGet, "/v1/users", nil, loginCookie)
	assertStatus(t, fresh, http.StatusOK)
}

func TestLogoutRevokesSession(t *testing.T) {
	app, database := newTestApp(t)
	registered, cookie := registerTestUser(t, app, "logout@example.com", "secret123")

	response := doJSONRequest(t, app, http.MethodPost, "/v1/users/logout", nil, cookie)
	assertStatus(t, response, http.StatusOK)

	payload := map[string]string{}
	decodeJSONResponse(t, response, &payload)
	if payload["message"] == "" {
		t.Fatalf("expected logout message, got %#v", payload)
	}

	cleared := responseCookie(response.Cookies(), sessionCookieName)
	if cleared == nil || cleared.Value != "" {
		t.Fatalf("expected session cookie to be cleared, got %#v", cleared)
	}

	stored := models.User{}
	if err := database.First(&stored, "id = ?", registered.ID).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if stored.SessionToken != nil {
		t.Fatalf("expected session token to be cleared, got %q", *stored.SessionToken)
	}

	afterLogout := doJSONRequest(t, app, http.MethodGet, "/v1/users", nil, cookie)
	assertStatus(t, afterLogout, http.StatusUnauthorized)
}

func TestLogoutWithoutSessionSucceeds(t *testing.T) {
	app, _ := newTestApp(t)

	response := doJSONRequest(t, app, http.MethodPost, "/v1/users/logout", nil, "")
	assertStatus(t, response, http.StatusOK)
	if cookie := responseCookie(response.Cookies(), sessionCookieName); cookie != nil {
		t.Fatal("expected no cookie change without a session")
	}
}
