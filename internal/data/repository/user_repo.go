package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Colin-Stark/travelwise-server/internal/data/entity"
	"github.com/Colin-Stark/travelwise-server/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	SetResetCode(ctx context.Context, email, codeHash string, expiresAt time.Time) error
	ResetPassword(ctx context.Context, email, passwordHash string) error
	DeleteByEmail(ctx context.Context, email string) (*entity.User, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, first_name, last_name,
		                   phone, preferences, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.Phone,
		user.Preferences,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, email, password_hash, first_name, last_name, phone,
		       preferences, reset_code_hash, reset_code_expires_at,
		       created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.Phone,
		&user.Preferences,
		&user.ResetCodeHash,
		&user.ResetCodeExpiresAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return &user, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, email, password_hash, first_name, last_name, phone,
		       preferences, reset_code_hash, reset_code_expires_at,
		       created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user entity.User
	// QueryRow returns at most one row
	err := ur.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.Phone,
		&user.Preferences,
		&user.ResetCodeHash,
		&user.ResetCodeExpiresAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return &user, nil
}

// SetResetCode stores the code hash and its expiry in one statement, so the
// pair always corresponds to a single generation event. A new request simply
// overwrites any previous pair.
func (ur *userRepository) SetResetCode(ctx context.Context, email, codeHash string, expiresAt time.Time) error {
	query := `
		UPDATE users
		SET reset_code_hash = $2,
		    reset_code_expires_at = $3,
		    updated_at = NOW()
		WHERE email = $1
	`

	result, err := ur.db.Exec(ctx, query, email, codeHash, expiresAt)
	if err != nil {
		ur.log.Error("Failed to set reset code",
			zap.Error(err),
			zap.String("email", email),
		)
		return fmt.Errorf("set reset code for %s: %w", email, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("set reset code for %s: user not found", email)
	}

	return nil
}

// ResetPassword replaces the credential hash and clears the reset pair in the
// same statement. The code is consumed exactly once.
func (ur *userRepository) ResetPassword(ctx context.Context, email, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $2,
		    reset_code_hash = NULL,
		    reset_code_expires_at = NULL,
		    updated_at = NOW()
		WHERE email = $1
	`

	result, err := ur.db.Exec(ctx, query, email, passwordHash)
	if err != nil {
		ur.log.Error("Failed to reset password",
			zap.Error(err),
			zap.String("email", email),
		)
		return fmt.Errorf("reset password for %s: %w", email, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reset password for %s: user not found", email)
	}

	return nil
}

func (ur *userRepository) DeleteByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		DELETE FROM users
		WHERE email = $1
		RETURNING id, email, created_at, updated_at
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to delete user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("delete user by email %s: %w", email, err)
	}

	return &user, nil
}
