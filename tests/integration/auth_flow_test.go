package integration

import (
	"net/http"
	"testing"
)

func TestSignupLoginMeFlow(t *testing.T) {
	app := setupApp(t)

	// Signup returns a usable token immediately.
	token, userID := app.signupUser(t, "alice@example.com", "password123")

	rec := app.request("GET", "/auth/me", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("me with signup token failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	if user["id"].(float64) != userID {
		t.Errorf("expected user ID %v, got %v", userID, user["id"])
	}
	if user["email"] != "alice@example.com" {
		t.Errorf("expected email alice@example.com, got %v", user["email"])
	}

	// A fresh login token works too.
	loginToken := app.loginUser(t, "alice@example.com", "password123")
	rec = app.request("GET", "/auth/me", "", loginToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("me with login token failed: %d %s", rec.Code, rec.Body.String())
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	app := setupApp(t)

	app.signupUser(t, "dup@example.com", "password123")

	rec := app.request("POST", "/auth/signup",
		`{"email":"dup@example.com","password":"different456"}`, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	errObj := result["error"].(map[string]interface{})
	if errObj["code"] != "DUPLICATE_EMAIL" {
		t.Errorf("expected DUPLICATE_EMAIL, got %v", errObj["code"])
	}
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupApp(t)

	app.signupUser(t, "bob@example.com", "password123")

	rec := app.request("POST", "/auth/login",
		`{"email":"bob@example.com","password":"wrong-password"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}

	// An unknown email gets the same error code as a wrong password.
	recUnknown := app.request("POST", "/auth/login",
		`{"email":"nobody@example.com","password":"password123"}`, "")
	if recUnknown.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", recUnknown.Code)
	}
	if rec.Body.String() != recUnknown.Body.String() {
		t.Errorf("expected identical error bodies, got %q and %q",
			rec.Body.String(), recUnknown.Body.String())
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := setupApp(t)

	paths := []struct {
		method string
		path   string
	}{
		{"GET", "/auth/me"},
		{"GET", "/transactions"},
		{"POST", "/transactions"},
		{"GET", "/categories"},
		{"GET", "/dashboard/stats"},
		{"GET", "/dashboard/monthly"},
	}

	for _, p := range paths {
		rec := app.request(p.method, p.path, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401 without token, got %d", p.method, p.path, rec.Code)
		}
	}
}
