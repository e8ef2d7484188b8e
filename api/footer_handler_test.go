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

func TestHealthCheck(t *testing.T) {
	router, _, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec, env := doRequest(t, router, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Server is running!", env.Message)

	var status map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.Contains(t, status, "uptime")
}

func TestSeedFooterData(t *testing.T) {
	router, _, db, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/footer/seed", nil)
	rec, _ := doRequest(t, router, req)
	require.Equal(t, http.StatusOK, rec.Code)

	count, err := db.SocialLinkRepo().Count()
	require.NoError(t, err)
	assert.Equal(t, int64(8), count)

	t.Run("second seed is a no-op", func(t *testing.T) {
		rec, _ := doRequest(t, router, httptest.NewRequest(http.MethodPost, "/api/footer/seed", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		count, err := db.SocialLinkRepo().Count()
		require.NoError(t, err)
		assert.Equal(t, int64(8), count)
	})
}

func TestGetAllFooterData(t *testing.T) {
	router, _, db, _ := newTestServer(t)
	require.NoError(t, db.Seed())

	req := httptest.NewRequest(http.MethodGet, "/api/footer/all", nil)
	rec, env := doRequest(t, router, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var bundle FooterBundle
	require.NoError(t, json.Unmarshal(env.Data, &bundle))

	// the aggregate matches what the individual endpoints return
	activeLinks, err := db.SocialLinkRepo().FindActive()
	require.NoError(t, err)
	assert.Len(t, bundle.SocialLinks, len(activeLinks))

	require.NotNil(t, bundle.ContactInfo)
	assert.Equal(t, "Hritik Sharma", bundle.ContactInfo.Name)

	assert.Len(t, bundle.QuickLinks, 4)
	assert.Len(t, bundle.Technologies, 6)

	for _, link := range bundle.SocialLinks {
		assert.True(t, link.IsActive)
	}
}

func TestGetAllFooterDataEmptyDatabase(t *testing.T) {
	router, _, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/footer/all", nil)
	rec, env := doRequest(t, router, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var bundle FooterBundle
	require.NoError(t, json.Unmarshal(env.Data, &bundle))
	assert.Empty(t, bundle.SocialLinks)
	assert.Nil(t, bundle.ContactInfo)
}

func TestGetIcons(t *testing.T) {
	router, _, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/footer/icons", nil)
	rec, env := doRequest(t, router, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var icons []string
	require.NoError(t, json.Unmarshal(env.Data, &icons))
	assert.Equal(t, models.IconNames, icons)
}

func TestJSONBodyLimit(t *testing.T) {
	router, _, db, _ := newTestServer(t)
	require.NoError(t, db.Seed())

	oversized := map[string]string{"description": string(make([]byte, maxJSONBodySize+1))}
	req := jsonRequest(t, http.MethodPost, "/api/footer/social-links", oversized)
	rec, _ := doRequest(t, router, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
