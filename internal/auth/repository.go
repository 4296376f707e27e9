package auth

import "context"

// Repository defines the data-access contract.
// Service depends ONLY on these interfaces.

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	Save(ctx context.Context, user *User) error
}

type AdminRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Ensure(ctx context.Context, email string) error
}

type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	Find(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
