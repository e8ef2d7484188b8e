package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApiErrUnwrapsToSentinel(t *testing.T) {
	err := NewMissingRequiredFieldError("projectName")

	assert.True(t, errors.Is(err, ErrMissingRequiredField))
	assert.True(t, IsMissingRequiredFieldError(err))
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "projectName", err.Field)
	assert.Contains(t, err.Error(), "projectName")
}

func TestGetFullErrorIncludesCauseChain(t *testing.T) {
	inner := errors.New("disk full")
	err := NewDatabaseError("create", "content", inner)

	full := err.GetFullError()
	assert.Contains(t, full, "Failed to create content")
	assert.Contains(t, full, "disk full")
}

func TestNewDatabaseErrorClassifiesCause(t *testing.T) {
	cases := []struct {
		name       string
		cause      error
		wantStatus int
	}{
		{"postgres duplicate", errors.New(`duplicate key value violates unique constraint "content_pkey"`), http.StatusConflict},
		{"sqlite duplicate", errors.New("UNIQUE constraint failed: social_links.id"), http.StatusConflict},
		{"not found", errors.New("record not found"), http.StatusNotFound},
		{"connection refused", errors.New("dial tcp: connection refused"), http.StatusServiceUnavailable},
		{"anything else", errors.New("syntax error"), http.StatusInternalServerError},
		{"nil cause", nil, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := NewDatabaseError("find", "content", tc.cause)
			require.NotNil(t, err)
			assert.Equal(t, tc.wantStatus, err.StatusCode)
		})
	}
}

func TestMediaErrorStatuses(t *testing.T) {
	assert.Equal(t, http.StatusRequestEntityTooLarge, NewFileTooLargeError(5<<20).StatusCode)
	assert.Equal(t, http.StatusUnsupportedMediaType, NewUnsupportedMediaTypeError("application/pdf").StatusCode)
	assert.Equal(t, http.StatusInternalServerError, NewMediaConfigError("CLOUDINARY_API_KEY").StatusCode)
	assert.True(t, IsFileTooLargeError(NewFileTooLargeError(1)))
	assert.True(t, IsUnsupportedMediaTypeError(NewUnsupportedMediaTypeError("text/plain")))
}
