// Package users declares the server-side repository contract for the
// user account store.
package users

import (
	"context"
	"time"

	"github.com/Sumit-1325/auth-backend/internal/server/models"
)

// Repository defines the persistence operations the auth and profile
// services need. Each call is atomic; cross-call atomicity (e.g. the
// password-reset consume) is the caller's job via dbx.WithTx.
type Repository interface {
	// Create inserts a new user and returns it with generated fields set.
	// A username or email collision yields common.ErrDuplicateUser.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByLogin finds a user whose username or email equals identifier.
	// Returns common.ErrorNotFound when absent.
	GetByLogin(ctx context.Context, identifier string) (*models.User, error)

	// GetByEmail finds a user strictly by the email column. The reset flow
	// depends on this: an email must never match another account's
	// username. Returns common.ErrorNotFound when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// ExistsByUsernameOrEmail reports whether any row already holds the
	// username or the email.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	// GetByID finds a user by primary key. Returns common.ErrorNotFound
	// when absent.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByResetTokenHash finds the user holding the given reset-token
	// hash. Returns common.ErrorNotFound when no row matches.
	GetByResetTokenHash(ctx context.Context, hash string) (*models.User, error)

	// UpdateRefreshTokenHash overwrites the stored refresh-token hash.
	// A nil hash clears the field; clearing an already-null field is not
	// an error.
	UpdateRefreshTokenHash(ctx context.Context, userID string, hash *string) error

	// SetResetToken stores the reset-token hash and its expiry,
	// overwriting any outstanding token for the user.
	SetResetToken(ctx context.Context, userID, hash string, expires time.Time) error

	// UpdatePassword replaces the password hash and clears the
	// reset-token hash and expiry in the same statement.
	UpdatePassword(ctx context.Context, userID, passwordHash string) error

	// UpdateProfile updates the optional profile fields that are non-nil
	// and returns the fresh record.
	UpdateProfile(ctx context.Context, userID string, fullName, avatarURL *string) (*models.User, error)
}
