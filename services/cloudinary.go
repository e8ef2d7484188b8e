package services

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hritik2004-cse/portfolio-backend/config"
	"github.com/hritik2004-cse/portfolio-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	uploadFolder = "project-images"

	// Incoming transformation applied on upload: bound to 1200x800 and let
	// Cloudinary pick format and quality.
	uploadTransformation = "c_limit,h_800,w_1200/q_auto/f_auto"
)

// Cloudinary talks to the Cloudinary image API. Credentials are read lazily:
// nothing is validated until the first upload or destroy, and a missing
// credential fails before any network call is attempted.
// Requires environment variables:
//   - CLOUDINARY_CLOUD_NAME
//   - CLOUDINARY_API_KEY
//   - CLOUDINARY_API_SECRET
type Cloudinary struct {
	cfg        map[string]string
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewCloudinary builds the adapter over the given config map. Pass
// config.New() in production; tests pass their own map and override the API
// endpoint with WithBaseURL.
func NewCloudinary(cfg map[string]string) *Cloudinary {
	return &Cloudinary{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     log.With().Str("service", "cloudinary").Logger(),
	}
}

// WithBaseURL overrides the Cloudinary API endpoint. Used by tests.
func (c *Cloudinary) WithBaseURL(baseURL string) *Cloudinary {
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c
}

// credentials is the lazy configuration check. It runs on every call path
// that needs the external client, before any request is built.
func (c *Cloudinary) credentials() (cloudName, apiKey, apiSecret string, err error) {
	for _, key := range []string{"CLOUDINARY_CLOUD_NAME", "CLOUDINARY_API_KEY", "CLOUDINARY_API_SECRET"} {
		if config.GetString(c.cfg, key, "") == "" {
			return "", "", "", errs.NewMediaConfigError(key)
		}
	}
	return config.GetString(c.cfg, "CLOUDINARY_CLOUD_NAME", ""),
		config.GetString(c.cfg, "CLOUDINARY_API_KEY", ""),
		config.GetString(c.cfg, "CLOUDINARY_API_SECRET", ""),
		nil
}

func (c *Cloudinary) apiURL(cloudName, action string) string {
	if c.baseURL != "" {
		return fmt.Sprintf("%s/%s/image/%s", c.baseURL, cloudName, action)
	}
	return fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/%s", cloudName, action)
}

type cloudinaryUploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload validates the file, then posts it as a signed multipart request into
// the project-images folder.
func (c *Cloudinary) Upload(ctx context.Context, file io.Reader, header *multipart.FileHeader) (*UploadResult, error) {
	if header.Size > MaxImageSize {
		return nil, errs.NewFileTooLargeError(MaxImageSize)
	}

	contentType := header.Header.Get("Content-Type")
	mimeBase := strings.TrimSpace(strings.Split(contentType, ";")[0])
	if !strings.HasPrefix(mimeBase, "image/") {
		return nil, errs.NewUnsupportedMediaTypeError(mimeBase)
	}

	cloudName, apiKey, apiSecret, err := c.credentials()
	if err != nil {
		return nil, err
	}

	params := map[string]string{
		"folder":         uploadFolder,
		"public_id":      uuid.New().String(),
		"timestamp":      strconv.FormatInt(time.Now().Unix(), 10),
		"transformation": uploadTransformation,
	}
	signature := signParams(params, apiSecret)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range params {
		if err := writer.WriteField(key, value); err != nil {
			return nil, errs.NewMediaUploadError(err)
		}
	}
	if err := writer.WriteField("api_key", apiKey); err != nil {
		return nil, errs.NewMediaUploadError(err)
	}
	if err := writer.WriteField("signature", signature); err != nil {
		return nil, errs.NewMediaUploadError(err)
	}
	part, err := writer.CreateFormFile("file", header.Filename)
	if err != nil {
		return nil, errs.NewMediaUploadError(err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, errs.NewMediaUploadError(err)
	}
	if err := writer.Close(); err != nil {
		return nil, errs.NewMediaUploadError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL(cloudName, "upload"), &body)
	if err != nil {
		return nil, errs.NewMediaUploadError(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewMediaUploadError(err)
	}
	defer resp.Body.Close()

	var uploadResp cloudinaryUploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploadResp); err != nil {
		return nil, errs.NewMediaUploadError(err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("message", uploadResp.Error.Message).
			Msg("Cloudinary upload failed")
		return nil, errs.NewMediaUploadError(fmt.Errorf("cloudinary returned status %d: %s", resp.StatusCode, uploadResp.Error.Message))
	}

	c.logger.Info().Str("publicId", uploadResp.PublicID).Msg("Image uploaded")
	return &UploadResult{
		SecureURL: uploadResp.SecureURL,
		PublicID:  uploadResp.PublicID,
	}, nil
}

type cloudinaryDestroyResponse struct {
	Result string `json:"result"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Destroy removes a stored image by its public ID. A "not found" result is
// treated as success: the image is already gone.
func (c *Cloudinary) Destroy(ctx context.Context, publicID string) error {
	cloudName, apiKey, apiSecret, err := c.credentials()
	if err != nil {
		return err
	}

	params := map[string]string{
		"public_id": publicID,
		"timestamp": strconv.FormatInt(time.Now().Unix(), 10),
	}
	signature := signParams(params, apiSecret)

	form := url.Values{}
	for key, value := range params {
		form.Set(key, value)
	}
	form.Set("api_key", apiKey)
	form.Set("signature", signature)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL(cloudName, "destroy"), strings.NewReader(form.Encode()))
	if err != nil {
		return errs.NewMediaDeleteError(publicID, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewMediaDeleteError(publicID, err)
	}
	defer resp.Body.Close()

	var destroyResp cloudinaryDestroyResponse
	if err := json.NewDecoder(resp.Body).Decode(&destroyResp); err != nil {
		return errs.NewMediaDeleteError(publicID, err)
	}
	if resp.StatusCode != http.StatusOK {
		return errs.NewMediaDeleteError(publicID, fmt.Errorf("cloudinary returned status %d: %s", resp.StatusCode, destroyResp.Error.Message))
	}
	if destroyResp.Result != "ok" && destroyResp.Result != "not found" {
		return errs.NewMediaDeleteError(publicID, fmt.Errorf("cloudinary destroy result: %s", destroyResp.Result))
	}

	c.logger.Info().Str("publicId", publicID).Str("result", destroyResp.Result).Msg("Image destroyed")
	return nil
}

// signParams computes the request signature Cloudinary requires: parameters
// sorted by name, joined as key=value pairs with &, the API secret appended,
// all hashed with SHA-1.
func signParams(params map[string]string, apiSecret string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params[key])
	}

	toSign := strings.Join(pairs, "&") + apiSecret
	digest := sha1.Sum([]byte(toSign))
	return hex.EncodeToString(digest[:])
}
