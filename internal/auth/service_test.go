package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type failingAdminRepository struct{}

func (r *failingAdminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, errors.New("connection refused")
}

func (r *failingAdminRepository) Ensure(ctx context.Context, email string) error {
	return errors.New("connection refused")
}

type countingSessionRepository struct {
	*InMemorySessionRepository
	deletes int
}

func (r *countingSessionRepository) Delete(ctx context.Context, id string) error {
	r.deletes++
	return r.InMemorySessionRepository.Delete(ctx, id)
}

func seedUser(t *testing.T, users UserRepository, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := users.Save(context.Background(), &User{Email: email, Password: string(hash)}); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
}

func TestSignIn_AdminSuccess(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")
	ctx := context.Background()

	users := NewInMemoryUserRepository()
	admins := NewInMemoryAdminRepository()
	sessions := NewInMemorySessionRepository()
	service := NewService(users, admins, sessions)

	seedUser(t, users, "admin@example.com", "Password@123")
	admins.Ensure(ctx, "admin@example.com")

	session, token, err := service.SignIn(ctx, "admin@example.com", "Password@123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if session.Email != "admin@example.com" {
		t.Errorf("expected session email, got %q", session.Email)
	}

	stored, err := sessions.Find(ctx, session.ID)
	if err != nil {
		t.Fatalf("session row was not created: %v", err)
	}
	if stored.UserID == "" {
		t.Error("expected user id on session")
	}
}

func TestSignIn_WrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")
	ctx := context.Background()

	users := NewInMemoryUserRepository()
	admins := NewInMemoryAdminRepository()
	sessions := NewInMemorySessionRepository()
	service := NewService(users, admins, sessions)

	seedUser(t, users, "admin@example.com", "Password@123")
	admins.Ensure(ctx, "admin@example.com")

	_, _, err := service.SignIn(ctx, "admin@example.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSignIn_NonAdminDenied(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")
	ctx := context.Background()

	users := NewInMemoryUserRepository()
	admins := NewInMemoryAdminRepository()
	sessions := NewInMemorySessionRepository()
	service := NewService(users, admins, sessions)

	seedUser(t, users, "user@example.com", "Password@123")

	_, _, err := service.SignIn(ctx, "user@example.com", "Password@123")
	if !errors.Is(err, ErrNotAdmin) {
		t.Fatalf("expected ErrNotAdmin, got %v", err)
	}

	// nothing must be left signed in
	if len(sessions.sessions) != 0 {
		t.Errorf("expected no sessions, got %d", len(sessions.sessions))
	}
}

func TestIsAdmin_FailClosed(t *testing.T) {
	service := NewService(
		NewInMemoryUserRepository(),
		&failingAdminRepository{},
		NewInMemorySessionRepository(),
	)

	if service.IsAdmin(context.Background(), "admin@example.com") {
		t.Fatal("expected IsAdmin to return false when the lookup errors")
	}
}

func TestCurrentUser_Valid(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")
	ctx := context.Background()

	users := NewInMemoryUserRepository()
	admins := NewInMemoryAdminRepository()
	sessions := NewInMemorySessionRepository()
	service := NewService(users, admins, sessions)

	seedUser(t, users, "admin@example.com", "Password@123")
	admins.Ensure(ctx, "admin@example.com")

	_, token, err := service.SignIn(ctx, "admin@example.com", "Password@123")
	if err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}

	user, err := service.CurrentUser(ctx, token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user == nil || user.Email != "admin@example.com" {
		t.Fatalf("expected current user, got %+v", user)
	}
}

func TestCurrentUser_MissingSessionSelfHeals(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")
	ctx := context.Background()

	users := NewInMemoryUserRepository()
	admins := NewInMemoryAdminRepository()
	sessions := NewInMemorySessionRepository()
	service := NewService(users, admins, sessions)

	seedUser(t, users, "admin@example.com", "Password@123")
	admins.Ensure(ctx, "admin@example.com")

	session, token, err := service.SignIn(ctx, "admin@example.com", "Password@123")
	if err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}

	// session revoked behind the token's back
	sessions.Delete(ctx, session.ID)

	user, err := service.CurrentUser(ctx, token)
	if err != nil {
		t.Fatalf("expected the stale-session error to be swallowed, got %v", err)
	}
	if user != nil {
		t.Fatalf("expected empty user, got %+v", user)
	}
}

func TestCurrentUser_ExpiredSessionSignsOutOnce(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")
	ctx := context.Background()

	users := NewInMemoryUserRepository()
	admins := NewInMemoryAdminRepository()
	sessions := &countingSessionRepository{
		InMemorySessionRepository: NewInMemorySessionRepository(),
	}
	service := NewService(users, admins, sessions)

	seedUser(t, users, "admin@example.com", "Password@123")
	admins.Ensure(ctx, "admin@example.com")

	session, token, err := service.SignIn(ctx, "admin@example.com", "Password@123")
	if err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}

	// force the row past its expiry
	session.ExpiresAt = time.Now().Add(-time.Minute)
	sessions.Create(ctx, session)

	user, err := service.CurrentUser(ctx, token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user != nil {
		t.Fatalf("expected empty user, got %+v", user)
	}
	if sessions.deletes != 1 {
		t.Errorf("expected exactly one sign-out, got %d", sessions.deletes)
	}
}

func TestSignOut_Idempotent(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")
	ctx := context.Background()

	users := NewInMemoryUserRepository()
	admins := NewInMemoryAdminRepository()
	sessions := NewInMemorySessionRepository()
	service := NewService(users, admins, sessions)

	seedUser(t, users, "admin@example.com", "Password@123")
	admins.Ensure(ctx, "admin@example.com")

	_, token, err := service.SignIn(ctx, "admin@example.com", "Password@123")
	if err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := service.SignOut(ctx, token); err != nil {
			t.Fatalf("sign-out %d failed: %v", i, err)
		}
	}

	if err := service.SignOut(ctx, "garbage-token"); err != nil {
		t.Fatalf("sign-out with malformed token should be a no-op, got %v", err)
	}
}
