package handler

import (
	"net/http"
	"testing"

	"github.com/HmzT270/Inventory-Stock-Project/pkg/jwtutil"
)

func TestRegisterAndLogin(t *testing.T) {
	setupDB(t)

	c, rec := newContext(t, http.MethodPost, "/api/auth/register",
		`{"email":"alice@example.com","password":"s3cret"}`)
	if err := Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	c, rec = newContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"s3cret"}`)
	if err := Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Token string `json:"token"`
		User  struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	decodeBody(t, rec, &body)
	if body.Token == "" {
		t.Fatalf("expected token in login response")
	}

	claims, err := jwtutil.ValidateToken(body.Token)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if claims.Email != "alice@example.com" || claims.UserID != body.User.ID {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	setupDB(t)

	c, rec := newContext(t, http.MethodPost, "/api/auth/register",
		`{"email":"alice@example.com","password":"s3cret"}`)
	if err := Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	c, rec = newContext(t, http.MethodPost, "/api/auth/register",
		`{"email":"alice@example.com","password":"other"}`)
	if err := Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestRegisterRequiresEmailAndPassword(t *testing.T) {
	setupDB(t)

	for _, body := range []string{
		`{"email":"","password":"s3cret"}`,
		`{"email":"alice@example.com","password":""}`,
	} {
		c, rec := newContext(t, http.MethodPost, "/api/auth/register", body)
		if err := Register(c); err != nil {
			t.Fatalf("Register returned error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	setupDB(t)

	c, rec := newContext(t, http.MethodPost, "/api/auth/register",
		`{"email":"alice@example.com","password":"s3cret"}`)
	if err := Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	c, rec = newContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`)
	if err := Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", rec.Code)
	}

	c, rec = newContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"nobody@example.com","password":"s3cret"}`)
	if err := Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown user, got %d", rec.Code)
	}
}

func TestMeReturnsContextIdentity(t *testing.T) {
	setupDB(t)

	c, rec := newContext(t, http.MethodGet, "/api/auth/me", "")
	c.Set("user_id", uint(7))
	c.Set("email", "alice@example.com")
	if err := Me(c); err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]interface{}
	decodeBody(t, rec, &body)
	if body["email"] != "alice@example.com" || body["id"] != float64(7) {
		t.Fatalf("unexpected identity: %v", body)
	}
}
