package auth

import (
	"context"

	"github.com/google/uuid"
)

type InMemoryUserRepository struct {
	users map[string]*User
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: make(map[string]*User),
	}
}

func (r *InMemoryUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (r *InMemoryUserRepository) Save(ctx context.Context, user *User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.users[user.Email] = user
	return nil
}

type InMemoryAdminRepository struct {
	emails map[string]bool
}

func NewInMemoryAdminRepository() *InMemoryAdminRepository {
	return &InMemoryAdminRepository{
		emails: make(map[string]bool),
	}
}

func (r *InMemoryAdminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.emails[email], nil
}

func (r *InMemoryAdminRepository) Ensure(ctx context.Context, email string) error {
	r.emails[email] = true
	return nil
}

type InMemorySessionRepository struct {
	sessions map[string]*Session
}

func NewInMemorySessionRepository() *InMemorySessionRepository {
	return &InMemorySessionRepository{
		sessions: make(map[string]*Session),
	}
}

func (r *InMemorySessionRepository) Create(ctx context.Context, session *Session) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	r.sessions[session.ID] = session
	return nil
}

func (r *InMemorySessionRepository) Find(ctx context.Context, id string) (*Session, error) {
	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (r *InMemorySessionRepository) Delete(ctx context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}
