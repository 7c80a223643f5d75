package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Sumit-1325/auth-backend/internal/common"
	"github.com/Sumit-1325/auth-backend/internal/dbx"
	"github.com/Sumit-1325/auth-backend/internal/server/auth"
	"github.com/Sumit-1325/auth-backend/internal/server/config"
	"github.com/Sumit-1325/auth-backend/internal/server/models"
	"github.com/Sumit-1325/auth-backend/internal/server/repositories/repomanager"
)

// resetTokenBytes is the entropy of a reset token before hex encoding.
const resetTokenBytes = 32

// ResetTokenManager issues and consumes single-use, time-limited
// password-reset tokens. Only the SHA-256 digest of a token is persisted,
// on the user row itself; the plaintext exists once, in the reset email.
type ResetTokenManager struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	validity    time.Duration
}

func NewResetTokenManager(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *ResetTokenManager {
	return &ResetTokenManager{
		db:          db,
		repomanager: m,
		validity:    cfg.ResetTokenValidityDuration,
	}
}

// Issue generates a fresh reset token for user, stores its digest and expiry
// (overwriting any outstanding token), and returns the plaintext for
// out-of-band delivery.
func (m *ResetTokenManager) Issue(ctx context.Context, user *models.User) (string, error) {
	plaintext, err := common.MakeRandHexString(resetTokenBytes)
	if err != nil {
		return "", common.ErrorInternal
	}

	repo := m.repomanager.Users(m.db)
	expires := time.Now().Add(m.validity)
	if err := repo.SetResetToken(ctx, user.ID, common.DigestHex(plaintext), expires); err != nil {
		return "", storeErr(err)
	}

	return plaintext, nil
}

// Consume validates plaintext against the stored digest, checks the expiry,
// and installs newPassword. The new hash and the cleared token fields land
// in one transaction, so a consumed token can never match again.
//
// Lookup is digest-based only; a miss and an expired match return distinct
// errors but follow the same code path up to the expiry check.
func (m *ResetTokenManager) Consume(ctx context.Context, plaintext, newPassword string) error {
	if plaintext == "" {
		return common.ErrTokenInvalid
	}

	repo := m.repomanager.Users(m.db)
	user, err := repo.GetByResetTokenHash(ctx, common.DigestHex(plaintext))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrTokenInvalid
		}
		return storeErr(err)
	}

	if !user.ResetTokenExpiry.Valid || user.ResetTokenExpiry.Time.Before(time.Now()) {
		return common.ErrTokenExpired
	}

	newHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return m.repomanager.Users(tx).UpdatePassword(ctx, user.ID, newHash)
	}); err != nil {
		return storeErr(err)
	}

	return nil
}
