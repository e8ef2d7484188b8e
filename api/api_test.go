package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hritik2004-cse/portfolio-backend/database"
	"github.com/hritik2004-cse/portfolio-backend/models"
	"github.com/hritik2004-cse/portfolio-backend/services"
)

// fakeMediaStore stands in for Cloudinary. It records every call and can be
// told to fail.
type fakeMediaStore struct {
	uploads    int
	destroyed  []string
	uploadErr  error
	destroyErr error
}

func (f *fakeMediaStore) Upload(ctx context.Context, file io.Reader, header *multipart.FileHeader) (*services.UploadResult, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.uploads++
	publicID := fmt.Sprintf("project-images/upload-%d", f.uploads)
	return &services.UploadResult{
		SecureURL: "https://res.cloudinary.com/test/image/upload/" + publicID,
		PublicID:  publicID,
	}, nil
}

func (f *fakeMediaStore) Destroy(ctx context.Context, publicID string) error {
	if f.destroyErr != nil {
		return f.destroyErr
	}
	f.destroyed = append(f.destroyed, publicID)
	return nil
}

// newTestServer wires the full route tree over an in-memory database and a
// fake media store.
func newTestServer(t *testing.T) (*chi.Mux, *gorm.DB, database.Database, *fakeMediaStore) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Content{},
		&models.SocialLink{},
		&models.ContactInfo{},
		&models.QuickLink{},
		&models.Technology{},
	))

	currentDB := database.New(db)
	store := &fakeMediaStore{}

	router := chi.NewRouter()
	setupRoutes(router, initializeHandlers(currentDB, store, time.Now()))

	return router, db, currentDB, store
}

// responseEnvelope mirrors the wire shape of every response.
type responseEnvelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func doRequest(t *testing.T, router *chi.Mux, req *http.Request) (*httptest.ResponseRecorder, responseEnvelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	encoded, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// multipartRequest builds a form request from text fields plus an optional
// image part.
func multipartRequest(t *testing.T, method, path string, fields map[string]string, imageName string, image []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	if imageName != "" {
		part, err := writer.CreatePart(textproto.MIMEHeader{
			"Content-Disposition": {fmt.Sprintf(`form-data; name="projectImg"; filename=%q`, imageName)},
			"Content-Type":        {"image/png"},
		})
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func contentFields() map[string]string {
	return map[string]string{
		"projectName": "Portfolio",
		"description": "A personal portfolio site",
		"tags":        "React, Node.js , MongoDB",
		"liveLink":    "https://example.com",
		"githubLink":  "https://github.com/example/portfolio",
	}
}
