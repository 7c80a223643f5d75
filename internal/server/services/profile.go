package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/Sumit-1325/auth-backend/internal/common"
	"github.com/Sumit-1325/auth-backend/internal/logging"
	"github.com/Sumit-1325/auth-backend/internal/server/media"
	"github.com/Sumit-1325/auth-backend/internal/server/models"
	"github.com/Sumit-1325/auth-backend/internal/server/repositories/repomanager"
)

// AvatarUpload carries an incoming avatar file.
type AvatarUpload struct {
	ContentType string
	Body        io.Reader
}

// ProfileService serves profile reads and updates, delegating avatar bytes
// to the media store.
type ProfileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	media       media.Store
	logger      logging.Logger
}

func NewProfileService(db *sql.DB, m repomanager.RepositoryManager, store media.Store, logger logging.Logger) *ProfileService {
	return &ProfileService{db: db, repomanager: m, media: store, logger: logger}
}

// Get returns the public view of the user, or ErrUserNotFound.
func (s *ProfileService) Get(ctx context.Context, userID string) (*models.PublicView, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, storeErr(err)
	}
	return user.Public(), nil
}

// Update changes the optional profile fields. A new avatar is uploaded
// before the row is touched; the previous avatar is deleted best-effort
// afterwards (failure is logged and ignored).
func (s *ProfileService) Update(ctx context.Context, userID string, fullName *string, avatar *AvatarUpload) (*models.PublicView, error) {
	repo := s.repomanager.Users(s.db)

	current, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, storeErr(err)
	}

	var avatarURL *string
	if avatar != nil {
		url, err := s.media.Upload(ctx, media.AvatarKey(), avatar.ContentType, avatar.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrMediaUpload, err)
		}
		avatarURL = &url
	}

	updated, err := repo.UpdateProfile(ctx, userID, fullName, avatarURL)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, storeErr(err)
	}

	if avatarURL != nil && current.AvatarURL.Valid && current.AvatarURL.String != *avatarURL {
		if err := s.media.Delete(ctx, current.AvatarURL.String); err != nil {
			s.logger.Warn(ctx, "failed to delete previous avatar", "url", current.AvatarURL.String, "error", err.Error())
		}
	}

	return updated.Public(), nil
}
