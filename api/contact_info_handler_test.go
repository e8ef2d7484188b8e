package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hritik2004-cse/portfolio-backend/models"
)

func TestGetActiveContactInfo(t *testing.T) {
	router, _, db, _ := newTestServer(t)

	t.Run("404 when nothing is configured", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/footer/contact-info", nil)
		rec, _ := doRequest(t, router, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	require.NoError(t, db.Seed())

	req := httptest.NewRequest(http.MethodGet, "/api/footer/contact-info", nil)
	rec, env := doRequest(t, router, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var info models.ContactInfo
	require.NoError(t, json.Unmarshal(env.Data, &info))
	assert.Equal(t, "Hritik Sharma", info.Name)
	assert.Equal(t, "Full Stack Developer", info.Title)
}

func TestCreateContactInfo(t *testing.T) {
	router, _, db, _ := newTestServer(t)

	payload := map[string]any{
		"name":     "Jordan Lee",
		"title":    "Backend Developer",
		"location": "Remote",
		"email":    "jordan@example.com",
		"bio":      "Builds APIs.",
		"isActive": true,
	}
	req := jsonRequest(t, http.MethodPost, "/api/footer/contact-info", payload)
	rec, env := doRequest(t, router, req)
	require.Equal(t, http.StatusCreated, rec.Code, env.Error)

	var created models.ContactInfo
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEmpty(t, created.ID)

	infos, err := db.ContactInfoRepo().FindAll()
	require.NoError(t, err)
	assert.Len(t, infos, 1)

	t.Run("invalid email rejected", func(t *testing.T) {
		payload["email"] = "nope"
		req := jsonRequest(t, http.MethodPost, "/api/footer/contact-info", payload)
		rec, _ := doRequest(t, router, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateContactInfo(t *testing.T) {
	router, _, db, _ := newTestServer(t)
	require.NoError(t, db.Seed())

	current, err := db.ContactInfoRepo().FindActive()
	require.NoError(t, err)
	require.NotNil(t, current)

	patch := map[string]any{"location": "Bengaluru, Karnataka"}
	req := jsonRequest(t, http.MethodPut, "/api/footer/contact-info/"+current.ID.String(), patch)
	rec, env := doRequest(t, router, req)
	require.Equal(t, http.StatusOK, rec.Code, env.Error)

	updated, err := db.ContactInfoRepo().FindByID(current.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bengaluru, Karnataka", updated.Location)
	assert.Equal(t, current.Email, updated.Email)

	t.Run("malformed id", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPut, "/api/footer/contact-info/not-a-uuid", patch)
		rec, _ := doRequest(t, router, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
