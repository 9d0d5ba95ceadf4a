package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ivanosipov/wordvault/internal/common"
	"github.com/ivanosipov/wordvault/internal/server/config"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	cfg := &config.Config{
		SecretKey:                   "k",
		AccessTokenValidityDuration: time.Hour,
		BcryptCost:                  4, // MinCost keeps the tests fast
	}
	s, err := NewService(NewInMemoryRepository(), cfg)
	if err != nil {
		t.Fatalf("NewService error: %v", err)
	}
	return s
}

func TestRegisterAndLogin_Success(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	user, err := s.Register(ctx, "alice", []byte("pw1"))
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected non-empty user ID")
	}
	if user.PasswordHash == "pw1" {
		t.Fatalf("password stored in plaintext")
	}

	token, err := s.Login(ctx, "alice", []byte("pw1"))
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	resolved, err := s.ResolveToken(ctx, token)
	if err != nil {
		t.Fatalf("ResolveToken error: %v", err)
	}
	if resolved.ID != user.ID {
		t.Fatalf("resolved identity mismatch: got %q want %q", resolved.ID, user.ID)
	}
}

func TestRegister_Duplicate(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	first, err := s.Register(ctx, "alice", []byte("pw1"))
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, err = s.Register(ctx, "alice", []byte("pw2"))
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("expected common.ErrorAlreadyExists, got %v", err)
	}

	// the first account still works with its original password
	if _, err := s.Login(ctx, "alice", []byte("pw1")); err != nil {
		t.Fatalf("first identity changed after duplicate registration: %v", err)
	}
	resolved, err := s.repo.GetUserByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetUserByID error: %v", err)
	}
	if resolved.UserName != "alice" {
		t.Fatalf("unexpected username %q", resolved.UserName)
	}
}

func TestRegister_Validation(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	if _, err := s.Register(ctx, "", []byte("pw")); !errors.Is(err, common.ErrorEmptyUsername) {
		t.Fatalf("expected common.ErrorEmptyUsername, got %v", err)
	}
	if _, err := s.Register(ctx, "bob", nil); !errors.Is(err, common.ErrorEmptyPassword) {
		t.Fatalf("expected common.ErrorEmptyPassword, got %v", err)
	}
}

func TestLogin_WrongPasswordAndUnknownUser_SameError(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	if _, err := s.Register(ctx, "alice", []byte("pw1")); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, errWrongPassword := s.Login(ctx, "alice", []byte("nope"))
	_, errUnknownUser := s.Login(ctx, "mallory", []byte("nope"))

	if !errors.Is(errWrongPassword, common.ErrorUnauthorized) {
		t.Fatalf("wrong password: expected common.ErrorUnauthorized, got %v", errWrongPassword)
	}
	if !errors.Is(errUnknownUser, common.ErrorUnauthorized) {
		t.Fatalf("unknown user: expected common.ErrorUnauthorized, got %v", errUnknownUser)
	}
	// identical externally-observable outcome for both sub-conditions
	if errWrongPassword.Error() != errUnknownUser.Error() {
		t.Fatalf("error outcomes differ: %q vs %q", errWrongPassword, errUnknownUser)
	}
}

func TestLogin_CaseSensitiveUsername(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	if _, err := s.Register(ctx, "Alice", []byte("pw1")); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	if _, err := s.Login(ctx, "alice", []byte("pw1")); !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected common.ErrorUnauthorized for case mismatch, got %v", err)
	}
}

func TestResolveToken_Expired(t *testing.T) {
	cfg := &config.Config{
		SecretKey:                   "k",
		AccessTokenValidityDuration: -time.Second,
		BcryptCost:                  4,
	}
	s, err := NewService(NewInMemoryRepository(), cfg)
	if err != nil {
		t.Fatalf("NewService error: %v", err)
	}
	ctx := context.Background()

	if _, err := s.Register(ctx, "alice", []byte("pw1")); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	token, err := s.Login(ctx, "alice", []byte("pw1"))
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	_, err = s.ResolveToken(ctx, token)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestResolveToken_UnknownSubject(t *testing.T) {
	s := newTestService(t)
	other := newTestService(t) // same secret, different user store
	ctx := context.Background()

	if _, err := s.Register(ctx, "alice", []byte("pw1")); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	token, err := s.Login(ctx, "alice", []byte("pw1"))
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	_, err = other.ResolveToken(ctx, token)
	if !errors.Is(err, common.ErrUnknownSubject) {
		t.Fatalf("expected common.ErrUnknownSubject, got %v", err)
	}
}

func TestResolveToken_Garbage(t *testing.T) {
	s := newTestService(t)

	_, err := s.ResolveToken(context.Background(), "not-a-token")
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}
