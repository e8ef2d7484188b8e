package services

import (
	"context"
	"io"
	"mime/multipart"
)

// MaxImageSize is the upload cap enforced before any network call. It matches
// the admin form's client-side limit.
const MaxImageSize = 5 * 1024 * 1024 // 5MB

// UploadResult identifies a stored image: the URL to render and the public ID
// needed to delete it later.
type UploadResult struct {
	SecureURL string
	PublicID  string
}

// MediaStore is the remote image host the content endpoints write to.
// Handlers depend on this interface so tests can substitute a fake.
type MediaStore interface {
	Upload(ctx context.Context, file io.Reader, header *multipart.FileHeader) (*UploadResult, error)
	Destroy(ctx context.Context, publicID string) error
}
