// Package media implements avatar storage on an S3-compatible backend.
package media

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Store is the media collaborator the profile service talks to. Upload
// returns a public URL for the stored object; Delete removes the object a
// previously returned URL points at.
type Store interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, fileURL string) error
}

// AvatarKey returns a fresh object key for an avatar upload.
func AvatarKey() string {
	return fmt.Sprintf("avatars/%v", uuid.New())
}
