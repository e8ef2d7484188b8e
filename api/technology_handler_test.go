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

func TestTechnologyLifecycle(t *testing.T) {
	router, _, db, _ := newTestServer(t)

	payload := map[string]any{
		"name":     "Docker",
		"color":    "#2496ED",
		"priority": 7,
		"isActive": true,
	}
	req := jsonRequest(t, http.MethodPost, "/api/footer/technologies", payload)
	rec, env := doRequest(t, router, req)
	require.Equal(t, http.StatusCreated, rec.Code, env.Error)

	var created models.Technology
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "other", created.Category)

	t.Run("update category", func(t *testing.T) {
		patch := map[string]any{"category": "deployment"}
		req := jsonRequest(t, http.MethodPut, "/api/footer/technologies/"+created.ID.String(), patch)
		rec, _ := doRequest(t, router, req)
		require.Equal(t, http.StatusOK, rec.Code)

		stored, err := db.TechnologyRepo().FindByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, "deployment", stored.Category)
		assert.Equal(t, "Docker", stored.Name)
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/api/footer/technologies", payload)
		rec, _ := doRequest(t, router, req)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/footer/technologies/"+created.ID.String(), nil)
		rec, _ := doRequest(t, router, req)
		require.Equal(t, http.StatusOK, rec.Code)

		stored, err := db.TechnologyRepo().FindByID(created.ID)
		require.NoError(t, err)
		assert.Nil(t, stored)
	})
}

func TestQuickLinkLifecycle(t *testing.T) {
	router, _, db, _ := newTestServer(t)

	payload := map[string]any{
		"id":         "blog",
		"name":       "Blog",
		"url":        "https://blog.example.com",
		"priority":   5,
		"isActive":   true,
		"isExternal": true,
	}
	req := jsonRequest(t, http.MethodPost, "/api/footer/quick-links", payload)
	rec, env := doRequest(t, router, req)
	require.Equal(t, http.StatusCreated, rec.Code, env.Error)

	t.Run("partial update keeps url", func(t *testing.T) {
		patch := map[string]any{"name": "Writing"}
		req := jsonRequest(t, http.MethodPut, "/api/footer/quick-links/blog", patch)
		rec, _ := doRequest(t, router, req)
		require.Equal(t, http.StatusOK, rec.Code)

		stored, err := db.QuickLinkRepo().FindByID("blog")
		require.NoError(t, err)
		assert.Equal(t, "Writing", stored.Name)
		assert.Equal(t, "https://blog.example.com", stored.URL)
		assert.True(t, stored.IsExternal)
	})

	t.Run("delete", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/footer/quick-links/blog", nil)
		rec, _ := doRequest(t, router, req)
		require.Equal(t, http.StatusOK, rec.Code)

		stored, err := db.QuickLinkRepo().FindByID("blog")
		require.NoError(t, err)
		assert.Nil(t, stored)
	})
}
