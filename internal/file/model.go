package file

import (
	"net/http"
	"time"

	"github.com/talentbook/talentbook-backend/internal/pkg/apperror"
)

var (
	ErrNotFound    = apperror.New(http.StatusNotFound, "file not found")
	ErrNotAnImage  = apperror.New(http.StatusBadRequest, "file must be an image")
	ErrTooLarge    = apperror.New(http.StatusBadRequest, "file exceeds the maximum allowed size")
	ErrNoThumbnail = apperror.New(http.StatusNotFound, "thumbnail not available for this file")
)

// File is a stored upload (currently talent avatars).
type File struct {
	ID            string
	UserID        string
	Filename      string
	StoragePath   string
	ThumbnailPath *string
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

// URL returns the public path for serving a file by id.
func URL(id string) string {
	return "/v1/files/" + id
}

// ThumbnailURL returns the public path for a file's thumbnail.
func ThumbnailURL(id string) string {
	return "/v1/files/" + id + "/thumbnail"
}
