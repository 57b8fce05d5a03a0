package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclesense/internal/db"
	"github.com/terraincognita07/cyclesense/internal/services"
	"gorm.io/gorm"
)

const (
	testSecretKey = "test-secret-key-with-enough-length-123"
	testPassword  = "StrongPass1"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	return newTestAppWithCookieSecure(t, false)
}

func newTestAppWithCookieSecure(t *testing.T, cookieSecure bool) (*fiber.App, *gorm.DB) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "cyclesense-api-test.db"))
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

	rulebook, err := services.DefaultRuleBook()
	if err != nil {
		t.Fatalf("load rule book: %v", err)
	}

	handler, err := NewHandler(database, rulebook, testSecretKey, time.UTC, cookieSecure)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	app.Use(MetricsMiddleware())
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app, database
}

func sendJSON(t *testing.T, app *fiber.App, method string, path string, payload any, token string) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	request.Header.Set("Accept", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSON(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()

	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func expectStatus(t *testing.T, response *http.Response, want int) {
	t.Helper()
	if response.StatusCode != want {
		raw, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status %d, got %d: %s", want, response.StatusCode, string(raw))
	}
}

func registerTestUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	response := sendJSON(t, app, http.MethodPost, "/api/auth/register", fiber.Map{
		"email":    email,
		"password": testPassword,
	}, "")
	expectStatus(t, response, fiber.StatusCreated)

	session := sessionResponse{}
	decodeJSON(t, response, &session)
	if session.Token == "" {
		t.Fatal("expected session token in register response")
	}
	return session.Token
}
