package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Sumit-1325/auth-backend/internal/common"
	"github.com/Sumit-1325/auth-backend/internal/dbx"
	"github.com/Sumit-1325/auth-backend/internal/logging"
	"github.com/Sumit-1325/auth-backend/internal/server/config"
	"github.com/Sumit-1325/auth-backend/internal/server/mail"
	"github.com/Sumit-1325/auth-backend/internal/server/models"
	usersrepo "github.com/Sumit-1325/auth-backend/internal/server/repositories/users"
)

// --- shared helpers for the service tests ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func testServiceConfig() *config.Config {
	return &config.Config{
		SecretKey:                    "k",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
		ResetTokenValidityDuration:   15 * time.Minute,
		FrontendBaseURL:              "https://app.example",
	}
}

// memUsersRepo is an in-memory users.Repository. When failWith is set,
// every call errors with it, standing in for an unreachable store.
type memUsersRepo struct {
	byID        map[string]*models.User
	nextID      int
	createCalls int
	failWith    error
}

func newMemUsersRepo() *memUsersRepo {
	return &memUsersRepo{byID: map[string]*models.User{}}
}

func cloneUser(u *models.User) *models.User {
	c := *u
	return &c
}

func (f *memUsersRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	f.createCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, u := range f.byID {
		if u.UserName == user.UserName || u.Email == user.Email {
			return nil, common.ErrDuplicateUser
		}
	}
	f.nextID++
	user.ID = fmt.Sprintf("u-%d", f.nextID)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.byID[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (f *memUsersRepo) GetByLogin(ctx context.Context, identifier string) (*models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, u := range f.byID {
		if u.UserName == identifier || u.Email == identifier {
			return cloneUser(u), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *memUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, u := range f.byID {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *memUsersRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	for _, u := range f.byID {
		if u.UserName == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *memUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return cloneUser(u), nil
}

func (f *memUsersRepo) GetByResetTokenHash(ctx context.Context, hash string) (*models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, u := range f.byID {
		if u.ResetTokenHash.Valid && u.ResetTokenHash.String == hash {
			return cloneUser(u), nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *memUsersRepo) UpdateRefreshTokenHash(ctx context.Context, userID string, hash *string) error {
	if f.failWith != nil {
		return f.failWith
	}
	u, ok := f.byID[userID]
	if !ok {
		return nil
	}
	if hash == nil {
		u.RefreshTokenHash = sql.NullString{}
	} else {
		u.RefreshTokenHash = sql.NullString{String: *hash, Valid: true}
	}
	return nil
}

func (f *memUsersRepo) SetResetToken(ctx context.Context, userID, hash string, expires time.Time) error {
	if f.failWith != nil {
		return f.failWith
	}
	u, ok := f.byID[userID]
	if !ok {
		return nil
	}
	u.ResetTokenHash = sql.NullString{String: hash, Valid: true}
	u.ResetTokenExpiry = sql.NullTime{Time: expires, Valid: true}
	return nil
}

func (f *memUsersRepo) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	if f.failWith != nil {
		return f.failWith
	}
	u, ok := f.byID[userID]
	if !ok {
		return nil
	}
	u.PasswordHash = passwordHash
	u.ResetTokenHash = sql.NullString{}
	u.ResetTokenExpiry = sql.NullTime{}
	return nil
}

func (f *memUsersRepo) UpdateProfile(ctx context.Context, userID string, fullName, avatarURL *string) (*models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	u, ok := f.byID[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if fullName != nil {
		u.FullName = *fullName
	}
	if avatarURL != nil {
		u.AvatarURL = sql.NullString{String: *avatarURL, Valid: true}
	}
	u.UpdatedAt = time.Now()
	return cloneUser(u), nil
}

// fakeRepoManager hands out the same memUsersRepo regardless of handle, so
// transactional and plain calls hit one store.
type fakeRepoManager struct {
	users *memUsersRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.users }

// fakeMailer records sent messages.
type fakeMailer struct {
	sent    []mail.Message
	sendErr error
}

func (f *fakeMailer) Send(ctx context.Context, msg mail.Message) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	return nil
}

// fakeMediaStore records uploads and deletes.
type fakeMediaStore struct {
	uploaded  []string
	deleted   []string
	uploadErr error
	deleteErr error
}

func (f *fakeMediaStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	url := "https://cdn.example/" + key
	f.uploaded = append(f.uploaded, url)
	return url, nil
}

func (f *fakeMediaStore) Delete(ctx context.Context, fileURL string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, fileURL)
	return nil
}

// nopLogger discards everything.
type nopLogger struct{}

func (nopLogger) Info(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, msg string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, msg string, args ...any) {}
func (nopLogger) With(args ...any) logging.Logger                    { return nopLogger{} }
