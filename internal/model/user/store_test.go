package user_test

import (
	"errors"
	"testing"

	"chatfront/internal/model/user"
)

func TestAuthenticateKnownUser(t *testing.T) {
	store := user.NewMemoryStore(user.Seed())

	identity, ok := store.Authenticate("admin", "secret")
	if !ok {
		t.Fatal("expected authentication to succeed")
	}
	if identity != "admin" {
		t.Fatalf("unexpected identity: got %q want %q", identity, "admin")
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	store := user.NewMemoryStore(user.Seed())

	if _, ok := store.Authenticate("admin", "wrong"); ok {
		t.Fatal("expected authentication to fail for wrong password")
	}
}

func TestAuthenticateUnknownUser(t *testing.T) {
	store := user.NewMemoryStore(user.Seed())

	if _, ok := store.Authenticate("nobody", "password"); ok {
		t.Fatal("expected authentication to fail for unknown username")
	}
}

func TestAuthenticateExactMatchOnly(t *testing.T) {
	store := user.NewMemoryStore(map[string]string{"Admin": "secret"})

	if _, ok := store.Authenticate("admin", "secret"); ok {
		t.Fatal("expected username comparison without normalization")
	}
	if _, ok := store.Authenticate("Admin", "Secret"); ok {
		t.Fatal("expected password comparison without normalization")
	}
}

func TestCreateThenAuthenticate(t *testing.T) {
	store := user.NewMemoryStore(nil)

	if err := store.Create("alice", "hunter2"); err != nil {
		t.Fatalf("Create err: %v", err)
	}

	identity, ok := store.Authenticate("alice", "hunter2")
	if !ok || identity != "alice" {
		t.Fatalf("expected new account to authenticate, got %q %v", identity, ok)
	}
}

func TestCreateDuplicateRejected(t *testing.T) {
	store := user.NewMemoryStore(user.Seed())

	err := store.Create("admin", "other")
	if !errors.Is(err, user.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	// The original credential must be untouched.
	if _, ok := store.Authenticate("admin", "secret"); !ok {
		t.Fatal("existing credential changed by rejected create")
	}
}
