package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	html "github.com/gofiber/template/html/v2"

	"ubermelon/internal/http/handlers"
	"ubermelon/internal/repos"
)

// Login form posts must carry the csrf token when the middleware is mounted,
// matching the production wiring in cmd/ubermelon.
func TestLoginWithCSRF(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	deps := handlers.NewDeps(db)
	engine := html.New("../../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))
	app.Get("/login", deps.AuthHandler.LoginForm)
	app.Post("/login", deps.AuthHandler.Login)

	respForm, err := app.Test(httptest.NewRequest("GET", "/login", nil))
	if err != nil {
		t.Fatal(err)
	}
	tok := extractCookie(respForm, "csrf_")
	if tok == "" {
		t.Fatal("csrf token missing")
	}

	// without token -> rejected
	reqNoTok := httptest.NewRequest("POST", "/login", strings.NewReader("email=sadie@ubermelon.com&password=Passw0rd!"))
	reqNoTok.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	respNoTok, err := app.Test(reqNoTok)
	if err != nil {
		t.Fatal(err)
	}
	if respNoTok.StatusCode != http.StatusForbidden {
		t.Fatalf("want 403 without csrf token, got %d", respNoTok.StatusCode)
	}

	// with token -> redirect to /melons
	req := httptest.NewRequest("POST", "/login", strings.NewReader("csrf="+tok+"&email=sadie@ubermelon.com&password=Passw0rd!"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: tok})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/melons" {
		t.Fatalf("want 302 to /melons, got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}
}
