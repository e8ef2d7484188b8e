package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func allowOrigin(t *testing.T, cfg map[string]string, origin string) bool {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return corsOptions(cfg).AllowOriginFunc(req, origin)
}

func TestCORSDefaultAllowList(t *testing.T) {
	assert.True(t, allowOrigin(t, nil, "http://localhost:5173"))
	assert.True(t, allowOrigin(t, nil, "http://127.0.0.1:5174"))
	assert.False(t, allowOrigin(t, nil, "https://evil.example.com"))
}

func TestCORSConfiguredOrigins(t *testing.T) {
	cfg := map[string]string{
		"ACCEPTED_ORIGINS": "https://hritiksharma.dev, https://www.hritiksharma.dev",
	}

	assert.True(t, allowOrigin(t, cfg, "https://hritiksharma.dev"))
	assert.True(t, allowOrigin(t, cfg, "https://www.hritiksharma.dev"))
	// the default list is replaced, not extended
	assert.False(t, allowOrigin(t, cfg, "http://localhost:5173"))
}

func TestCORSPreviewPattern(t *testing.T) {
	cfg := map[string]string{
		"ACCEPTED_ORIGINS":       "https://hritiksharma.dev",
		"PREVIEW_ORIGIN_PATTERN": `^https://portfolio-[a-z0-9-]+\.vercel\.app$`,
	}

	assert.True(t, allowOrigin(t, cfg, "https://portfolio-git-main-abc123.vercel.app"))
	assert.False(t, allowOrigin(t, cfg, "https://other-site.vercel.app"))
}

func TestCORSInvalidPreviewPatternIgnored(t *testing.T) {
	cfg := map[string]string{
		"ACCEPTED_ORIGINS":       "https://hritiksharma.dev",
		"PREVIEW_ORIGIN_PATTERN": `([unclosed`,
	}

	assert.True(t, allowOrigin(t, cfg, "https://hritiksharma.dev"))
	assert.False(t, allowOrigin(t, cfg, "https://anything.else"))
}
