package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"RiskFolio/internal/domain/models"
	"RiskFolio/pkg/config"
	xhttp "RiskFolio/pkg/http"
)

func newAuthService(users *fakeUsers) *AuthService {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.TokenTTL = time.Hour
	cfg.Auth.Issuer = "riskfolio-test"
	return NewAuthService(users, cfg)
}

func TestRegisterLoginRoundtrip(t *testing.T) {
	users := newFakeUsers()
	svc := newAuthService(users)

	u, err := svc.Register(context.Background(), &models.RegisterRequest{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "correct horse battery",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.ID == 0 {
		t.Fatalf("expected assigned user id")
	}
	if u.PasswordHash == "correct horse battery" {
		t.Fatalf("password stored in plain text")
	}

	token, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token.AccessToken == "" || token.TokenType != "bearer" {
		t.Fatalf("unexpected token response: %+v", token)
	}

	userID, err := svc.ParseToken(token.AccessToken)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if userID != u.ID {
		t.Fatalf("token user id = %d, want %d", userID, u.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newFakeUsers()
	svc := newAuthService(users)

	req := &models.RegisterRequest{Email: "bob@example.com", Username: "bob", Password: "secret-password"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(context.Background(), req)
	var appErr *xhttp.AppError
	if !errors.As(err, &appErr) || appErr.Status != 409 {
		t.Fatalf("expected 409 conflict, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	users := newFakeUsers()
	svc := newAuthService(users)

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Email: "carol@example.com", Username: "carol", Password: "right-password",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Email: "carol@example.com", Password: "wrong-password",
	})
	var appErr *xhttp.AppError
	if !errors.As(err, &appErr) || appErr.Status != 401 {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthService(newFakeUsers())

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email: "nobody@example.com", Password: "whatever",
	})
	var appErr *xhttp.AppError
	if !errors.As(err, &appErr) || appErr.Status != 401 {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestParseTokenGarbage(t *testing.T) {
	svc := newAuthService(newFakeUsers())
	if _, err := svc.ParseToken("not.a.token"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	users := newFakeUsers()
	issuing := newAuthService(users)

	_, err := issuing.Register(context.Background(), &models.RegisterRequest{
		Email: "dave@example.com", Username: "dave", Password: "secret-password",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	token, err := issuing.Login(context.Background(), &models.LoginRequest{
		Email: "dave@example.com", Password: "secret-password",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	other := &config.Config{}
	other.Auth.JWTSecret = "different-secret"
	other.Auth.TokenTTL = time.Hour
	verifying := NewAuthService(users, other)

	if _, err := verifying.ParseToken(token.AccessToken); err == nil {
		t.Fatalf("expected signature validation failure")
	}
}
