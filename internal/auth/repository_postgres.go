package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, email, password
		FROM users WHERE email=$1
	`
	row := r.db.QueryRow(ctx, query, email)

	user := &User{}
	if err := row.Scan(&user.ID, &user.Email, &user.Password); err != nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (r *PostgresUserRepository) Save(ctx context.Context, user *User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	query := `
		INSERT INTO users (id, email, password)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET password = EXCLUDED.password
	`
	_, err := r.db.Exec(ctx, query, user.ID, user.Email, user.Password)
	return err
}

// --------------------------------------------------
// Admin allow-list
// --------------------------------------------------

type PostgresAdminRepository struct {
	db *pgxpool.Pool
}

func NewPostgresAdminRepository(db *pgxpool.Pool) *PostgresAdminRepository {
	return &PostgresAdminRepository{db: db}
}

func (r *PostgresAdminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM admins WHERE email = $1
		)
	`, email).Scan(&exists)

	return exists, err
}

func (r *PostgresAdminRepository) Ensure(ctx context.Context, email string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO admins (email)
		VALUES ($1)
		ON CONFLICT (email) DO NOTHING
	`, email)
	return err
}

// --------------------------------------------------
// Sessions
// --------------------------------------------------

type PostgresSessionRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSessionRepository(db *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{db: db}
}

func (r *PostgresSessionRepository) Create(ctx context.Context, session *Session) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO sessions (id, user_id, email, expires_at)
		VALUES ($1, $2, $3, $4)
	`, session.ID, session.UserID, session.Email, session.ExpiresAt)
	return err
}

func (r *PostgresSessionRepository) Find(ctx context.Context, id string) (*Session, error) {
	session := &Session{}
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, email, expires_at
		FROM sessions WHERE id = $1
	`, id).Scan(&session.ID, &session.UserID, &session.Email, &session.ExpiresAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (r *PostgresSessionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}
