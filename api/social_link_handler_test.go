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

func leetcodeLink() *models.SocialLink {
	return &models.SocialLink{
		ID:       "leetcode",
		Name:     "LeetCode",
		URL:      "https://leetcode.com/hritik2004",
		IconName: "SiLeetcode",
		Color:    "#FFA116",
		Category: "coding",
		Priority: 9,
		IsActive: true,
	}
}

func TestSocialLinkLifecycle(t *testing.T) {
	router, _, db, _ := newTestServer(t)

	req := jsonRequest(t, http.MethodPost, "/api/footer/social-links", leetcodeLink())
	rec, _ := doRequest(t, router, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("active listing includes it", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/footer/social-links", nil)
		rec, env := doRequest(t, router, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var links []*models.SocialLink
		require.NoError(t, json.Unmarshal(env.Data, &links))
		require.Len(t, links, 1)
		assert.Equal(t, "leetcode", links[0].ID)
	})

	t.Run("partial update leaves absent fields alone", func(t *testing.T) {
		patch := map[string]any{"priority": 3, "isActive": false}
		req := jsonRequest(t, http.MethodPut, "/api/footer/social-links/leetcode", patch)
		rec, env := doRequest(t, router, req)
		require.Equal(t, http.StatusOK, rec.Code, env.Error)

		stored, err := db.SocialLinkRepo().FindByID("leetcode")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, 3, stored.Priority)
		assert.False(t, stored.IsActive)
		assert.Equal(t, "LeetCode", stored.Name)
		assert.Equal(t, "https://leetcode.com/hritik2004", stored.URL)
	})

	t.Run("inactive link hidden from public listing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/footer/social-links", nil)
		_, env := doRequest(t, router, req)

		var links []*models.SocialLink
		require.NoError(t, json.Unmarshal(env.Data, &links))
		assert.Empty(t, links)

		req = httptest.NewRequest(http.MethodGet, "/api/footer/social-links/admin", nil)
		_, env = doRequest(t, router, req)
		require.NoError(t, json.Unmarshal(env.Data, &links))
		assert.Len(t, links, 1)
	})

	t.Run("delete", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/footer/social-links/leetcode", nil)
		rec, _ := doRequest(t, router, req)
		require.Equal(t, http.StatusOK, rec.Code)

		stored, err := db.SocialLinkRepo().FindByID("leetcode")
		require.NoError(t, err)
		assert.Nil(t, stored)
	})
}

func TestCreateSocialLinkInactive(t *testing.T) {
	router, _, db, _ := newTestServer(t)

	link := leetcodeLink()
	link.IsActive = false
	req := jsonRequest(t, http.MethodPost, "/api/footer/social-links", link)
	rec, env := doRequest(t, router, req)
	require.Equal(t, http.StatusCreated, rec.Code, env.Error)

	var created models.SocialLink
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.False(t, created.IsActive)

	stored, err := db.SocialLinkRepo().FindByID("leetcode")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, stored.IsActive)
}

func TestCreateSocialLinkDefaultsToActive(t *testing.T) {
	router, _, db, _ := newTestServer(t)

	// no isActive key at all
	payload := map[string]any{
		"id": "devto", "name": "Dev.to", "url": "https://dev.to/hritik",
		"iconName": "SiDevdotto", "color": "#0A0A0A", "category": "content",
		"priority": 8,
	}
	req := jsonRequest(t, http.MethodPost, "/api/footer/social-links", payload)
	rec, env := doRequest(t, router, req)
	require.Equal(t, http.StatusCreated, rec.Code, env.Error)

	stored, err := db.SocialLinkRepo().FindByID("devto")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.IsActive)
}

func TestCreateSocialLinkValidation(t *testing.T) {
	router, _, _, _ := newTestServer(t)

	link := leetcodeLink()
	link.IconName = "FaNope"
	req := jsonRequest(t, http.MethodPost, "/api/footer/social-links", link)
	rec, env := doRequest(t, router, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Error, "iconName")
}

func TestCreateSocialLinkDuplicateID(t *testing.T) {
	router, _, _, _ := newTestServer(t)

	req := jsonRequest(t, http.MethodPost, "/api/footer/social-links", leetcodeLink())
	rec, _ := doRequest(t, router, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	req = jsonRequest(t, http.MethodPost, "/api/footer/social-links", leetcodeLink())
	rec, _ = doRequest(t, router, req)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpdateSocialLinkUnknownID(t *testing.T) {
	router, _, _, _ := newTestServer(t)

	req := jsonRequest(t, http.MethodPut, "/api/footer/social-links/ghost", map[string]any{"priority": 1})
	rec, _ := doRequest(t, router, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateSocialLinkCannotInvalidateRecord(t *testing.T) {
	router, _, db, _ := newTestServer(t)

	req := jsonRequest(t, http.MethodPost, "/api/footer/social-links", leetcodeLink())
	rec, _ := doRequest(t, router, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	patch := map[string]any{"url": "not-a-url"}
	req = jsonRequest(t, http.MethodPut, "/api/footer/social-links/leetcode", patch)
	rec, _ = doRequest(t, router, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	stored, err := db.SocialLinkRepo().FindByID("leetcode")
	require.NoError(t, err)
	assert.Equal(t, "https://leetcode.com/hritik2004", stored.URL)
}

func TestMalformedJSONRejected(t *testing.T) {
	router, _, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/footer/social-links", nil)
	req.Header.Set("Content-Type", "application/json")
	rec, _ := doRequest(t, router, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
