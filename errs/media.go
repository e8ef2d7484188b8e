package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Media store errors
var (
	ErrMediaConfigMissing   = errors.New("media store configuration missing")
	ErrMediaUploadFailed    = errors.New("media upload failed")
	ErrMediaDeleteFailed    = errors.New("media delete failed")
	ErrFileTooLarge         = errors.New("file too large")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
)

// NewMediaConfigError reports absent media-store credentials. It is raised
// before any network call is attempted.
func NewMediaConfigError(missingVar string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrMediaConfigMissing,
		Details:    fmt.Sprintf("Environment variable %s is not set", missingVar),
		Field:      missingVar,
	}
}

func NewMediaUploadError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrMediaUploadFailed,
		Cause:      cause,
	}
}

func NewMediaDeleteError(publicID string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrMediaDeleteFailed,
		Details:    fmt.Sprintf("Failed to delete stored image %s", publicID),
		Cause:      cause,
	}
}

func NewFileTooLargeError(maxSize int64) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusRequestEntityTooLarge,
		err:        ErrFileTooLarge,
		Details:    fmt.Sprintf("Uploaded file exceeds maximum allowed size of %d bytes", maxSize),
		Field:      "projectImg",
	}
}

func NewUnsupportedMediaTypeError(contentType string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnsupportedMediaType,
		err:        ErrUnsupportedMediaType,
		Details:    fmt.Sprintf("Unsupported media type: %s. Only image uploads are allowed", contentType),
		Field:      "projectImg",
	}
}

func IsMediaConfigError(err error) bool {
	return errors.Is(err, ErrMediaConfigMissing)
}

func IsMediaUploadError(err error) bool {
	return errors.Is(err, ErrMediaUploadFailed)
}

func IsMediaDeleteError(err error) bool {
	return errors.Is(err, ErrMediaDeleteFailed)
}

func IsFileTooLargeError(err error) bool {
	return errors.Is(err, ErrFileTooLarge)
}

func IsUnsupportedMediaTypeError(err error) bool {
	return errors.Is(err, ErrUnsupportedMediaType)
}
