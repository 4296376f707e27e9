package auth

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAdmin           = errors.New("email is not on the admin allow-list")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
)

const sessionTTL = 24 * time.Hour

type Service struct {
	users    UserRepository
	admins   AdminRepository
	sessions SessionRepository
}

func NewService(users UserRepository, admins AdminRepository, sessions SessionRepository) *Service {
	return &Service{
		users:    users,
		admins:   admins,
		sessions: sessions,
	}
}

// SignIn authenticates an admin. Admission requires both a valid password
// and a row on the admin allow-list; failing either leaves nothing signed in.
func (s *Service) SignIn(ctx context.Context, email, password string) (*Session, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(user.Password),
		[]byte(password),
	)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !s.IsAdmin(ctx, user.Email) {
		return nil, "", ErrNotAdmin
	}

	session := &Session{
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, "", err
	}

	token, err := GenerateToken(session.ID, user.ID, user.Email)
	if err != nil {
		_ = s.sessions.Delete(ctx, session.ID)
		return nil, "", err
	}

	return session, token, nil
}

// IsAdmin reports whether the email is on the allow-list.
// Lookup errors count as "no" (fail-closed).
func (s *Service) IsAdmin(ctx context.Context, email string) bool {
	exists, err := s.admins.ExistsByEmail(ctx, email)
	if err != nil {
		logrus.WithError(err).Warn("admin lookup failed, denying access")
		return false
	}
	return exists
}

// CurrentUser resolves the bearer token to its user. A token whose session
// row is missing or past its expiry is cleaned up (sign-out, once) and an
// empty result is returned instead of the underlying error.
func (s *Service) CurrentUser(ctx context.Context, token string) (*User, error) {
	sessionID, userID, email, err := ValidateToken(token)
	if err != nil {
		return nil, nil
	}

	session, err := s.sessions.Find(ctx, sessionID)
	if errors.Is(err, ErrSessionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if time.Now().After(session.ExpiresAt) {
		if err := s.sessions.Delete(ctx, session.ID); err != nil {
			logrus.WithError(err).Warn("failed to clear expired session")
		}
		return nil, nil
	}

	return &User{ID: userID, Email: email}, nil
}

// ResolveSession validates the token against the live session row.
// Used by the request gate; a missing or expired row is ErrSessionExpired.
func (s *Service) ResolveSession(ctx context.Context, token string) (*Session, error) {
	sessionID, _, _, err := ValidateToken(token)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.Find(ctx, sessionID)
	if errors.Is(err, ErrSessionNotFound) {
		return nil, ErrSessionExpired
	}
	if err != nil {
		return nil, err
	}

	if time.Now().After(session.ExpiresAt) {
		_ = s.sessions.Delete(ctx, session.ID)
		return nil, ErrSessionExpired
	}

	return session, nil
}

// SignOut clears the session named by the token. Idempotent: unknown or
// malformed tokens are a no-op.
func (s *Service) SignOut(ctx context.Context, token string) error {
	sessionID, _, _, err := ValidateToken(token)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}
