package repository

import (
	"context"
	"errors"
	"fmt"

	"callpoint/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDirectoryUnavailable wraps any fault of the underlying user store so
// callers can distinguish infrastructure failures from absent records.
var ErrDirectoryUnavailable = errors.New("user directory unavailable")

// DB is the subset of pgxpool.Pool used by repositories. Declared as an
// interface so tests can substitute pgxmock.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByPhone(ctx context.Context, phone string) (*model.User, error)
	UpdatePassword(ctx context.Context, key, newHash string) error
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, phone, first_name, middle_name, last_name, sex, password_hash, disabled, created_at`

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (email, phone, first_name, middle_name, last_name, sex, password_hash, disabled, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err := r.db.QueryRow(ctx, sql,
		user.Email, user.Phone, user.FirstName, user.MiddleName, user.LastName,
		user.Sex, user.PasswordHash, user.Disabled, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		// Unique constraint violations pass through wrapped; duplicate
		// handling is the caller's concern.
		return fmt.Errorf("%w: failed to create user: %v", ErrDirectoryUnavailable, err)
	}
	return nil
}

// FindByEmail retrieves a user by email. A miss is (nil, nil), not an error.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findByKey(ctx, "email", email)
}

// FindByPhone retrieves a user by phone number. A miss is (nil, nil).
func (r *userRepository) FindByPhone(ctx context.Context, phone string) (*model.User, error) {
	return r.findByKey(ctx, "phone", phone)
}

func (r *userRepository) findByKey(ctx context.Context, column, value string) (*model.User, error) {
	user := &model.User{}
	sql := fmt.Sprintf(`SELECT %s FROM users WHERE %s = $1`, userColumns, column)
	err := r.db.QueryRow(ctx, sql, value).Scan(
		&user.ID, &user.Email, &user.Phone, &user.FirstName, &user.MiddleName,
		&user.LastName, &user.Sex, &user.PasswordHash, &user.Disabled, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // User not found is not an error for this method's contract, service layer handles it
		}
		return nil, fmt.Errorf("%w: failed to find user by %s: %v", ErrDirectoryUnavailable, column, err)
	}
	return user, nil
}

// UpdatePassword replaces the password hash for the user whose email or
// phone equals key.
func (r *userRepository) UpdatePassword(ctx context.Context, key, newHash string) error {
	sql := `UPDATE users SET password_hash = $1 WHERE email = $2 OR phone = $2`
	cmdTag, err := r.db.Exec(ctx, sql, newHash, key)
	if err != nil {
		return fmt.Errorf("%w: failed to update password: %v", ErrDirectoryUnavailable, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
