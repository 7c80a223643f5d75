// Package services contains server-side business logic. This file implements
// AuthService, which handles registration, login/logout, refresh-token
// rotation, and the password-reset flow.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Sumit-1325/auth-backend/internal/common"
	"github.com/Sumit-1325/auth-backend/internal/logging"
	"github.com/Sumit-1325/auth-backend/internal/server/auth"
	"github.com/Sumit-1325/auth-backend/internal/server/config"
	"github.com/Sumit-1325/auth-backend/internal/server/mail"
	"github.com/Sumit-1325/auth-backend/internal/server/models"
	"github.com/Sumit-1325/auth-backend/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// DefaultRole is the role assigned to every freshly registered user.
const DefaultRole = "user"

// AuthService provides authentication-related operations:
//   - Register: create users
//   - Login / Logout: verify credentials, mint tokens, revoke refresh access
//   - Refresh: rotate refresh tokens and mint new access tokens
//   - ForgotPassword / ResetPassword: emailed single-use reset tokens
type AuthService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	reset                        *ResetTokenManager
	mailer                       mail.Mailer
	logger                       logging.Logger
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	frontendBaseURL              string
}

// NewAuthService constructs an AuthService using repositories, collaborators,
// and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, mailer mail.Mailer, logger logging.Logger, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                           db,
		repomanager:                  m,
		reset:                        NewResetTokenManager(db, m, cfg),
		mailer:                       mailer,
		logger:                       logger,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		frontendBaseURL:              cfg.FrontendBaseURL,
	}
}

// storeErr keeps domain sentinels intact and folds everything else into
// ErrorStoreUnavailable for the HTTP layer to map to a 5xx.
func storeErr(err error) error {
	if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrDuplicateUser) {
		return err
	}
	return fmt.Errorf("%w: %v", common.ErrorStoreUnavailable, err)
}

// Register creates a new user with a hashed password and returns the public
// view. A username or email collision yields ErrDuplicateUser.
func (s *AuthService) Register(ctx context.Context, userName, email, password, fullName string) (*models.PublicView, error) {
	repo := s.repomanager.Users(s.db)

	// Collisions are reported up front; the unique constraint still backs
	// this up when two registrations race.
	exists, err := repo.ExistsByUsernameOrEmail(ctx, userName, email)
	if err != nil {
		return nil, storeErr(err)
	}
	if exists {
		return nil, common.ErrDuplicateUser
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		UserName:     userName,
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		Role:         DefaultRole,
	}

	created, err := repo.Create(ctx, user)
	if err != nil {
		return nil, storeErr(err)
	}

	return created.Public(), nil
}

// Login verifies identifier (username or email) and password. Lookup miss
// and password mismatch return the identical ErrInvalidCredentials so the
// caller cannot tell whether the account exists. On success a fresh token pair
// is issued and the refresh token's digest replaces any previous one.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*models.PublicView, *TokenPair, error) {
	if identifier == "" || password == "" {
		return nil, nil, common.ErrInvalidCredentials
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByLogin(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrInvalidCredentials
		}
		return nil, nil, storeErr(err)
	}

	ok, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		// a stored hash that no longer parses is our data-integrity
		// problem, not a client error
		return nil, nil, fmt.Errorf("%w: stored credential unreadable: %v", common.ErrorInternal, err)
	}
	if !ok {
		return nil, nil, common.ErrInvalidCredentials
	}

	pair, err := s.issueTokenPair(ctx, user.ID, user.Role)
	if err != nil {
		return nil, nil, err
	}

	return user.Public(), pair, nil
}

// Refresh validates a refresh token cryptographically and against the stored
// digest, then rotates it. A token whose digest no longer matches (already
// rotated, or revoked by logout) yields ErrTokenInvalid.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := auth.ParseToken(refreshToken, s.jwtSecret, auth.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrTokenInvalid
		}
		return nil, storeErr(err)
	}

	if !user.RefreshTokenHash.Valid || user.RefreshTokenHash.String != common.DigestHex(refreshToken) {
		return nil, common.ErrTokenInvalid
	}

	return s.issueTokenPair(ctx, user.ID, user.Role)
}

// Logout clears the persisted refresh-token digest. Clearing an already-null
// field is not an error.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	repo := s.repomanager.Users(s.db)
	if err := repo.UpdateRefreshTokenHash(ctx, userID, nil); err != nil {
		return storeErr(err)
	}
	return nil
}

// ForgotPassword issues a reset token for the account behind email and mails
// a reset link. Unknown addresses return success all the same, so the
// endpoint cannot be used to enumerate accounts.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Info(ctx, "password reset requested for unknown email")
			return nil
		}
		return storeErr(err)
	}

	plaintext, err := s.reset.Issue(ctx, user)
	if err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", s.frontendBaseURL, plaintext)
	if err := s.mailer.Send(ctx, mail.ResetPasswordMessage(user.Email, resetURL)); err != nil {
		return fmt.Errorf("%w: %v", common.ErrMailDelivery, err)
	}

	return nil
}

// ResetPassword consumes a reset token and installs the new password.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	return s.reset.Consume(ctx, token, newPassword)
}

func (s *AuthService) issueTokenPair(ctx context.Context, userID, role string) (*TokenPair, error) {
	access, err := auth.GenerateAccessToken(userID, role, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := auth.GenerateRefreshToken(userID, s.jwtSecret, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	digest := common.DigestHex(refresh)
	repo := s.repomanager.Users(s.db)
	if err := repo.UpdateRefreshTokenHash(ctx, userID, &digest); err != nil {
		return nil, storeErr(err)
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
