package client

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/hritik2004-cse/portfolio-backend/models"
)

// ContentInput carries the mutable project fields. On updates, nil pointers
// mean "leave unchanged"; the server rejects explicit blanks on required
// fields.
type ContentInput struct {
	ProjectName *string
	Description *string
	Tags        *string
	LiveLink    *string
	GithubLink  *string
}

func (c *Client) ListContent(ctx context.Context) ([]*models.Content, error) {
	var content []*models.Content
	if err := c.doJSON(ctx, http.MethodGet, "/api/content", nil, &content); err != nil {
		return nil, err
	}
	return content, nil
}

func (c *Client) GetContent(ctx context.Context, id int64) (*models.Content, error) {
	var content models.Content
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/content/%d", id), nil, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

// CreateContent uploads a new project. image supplies the required project
// image; imageName sets the multipart filename.
func (c *Client) CreateContent(ctx context.Context, input ContentInput, imageName string, image io.Reader) (*models.Content, error) {
	return c.sendContentForm(ctx, http.MethodPost, "/api/content", input, imageName, image)
}

// UpdateContent patches an existing project. Pass a nil image to keep the
// current one.
func (c *Client) UpdateContent(ctx context.Context, id int64, input ContentInput, imageName string, image io.Reader) (*models.Content, error) {
	return c.sendContentForm(ctx, http.MethodPut, fmt.Sprintf("/api/content/%d", id), input, imageName, image)
}

func (c *Client) DeleteContent(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/content/%d", id), nil, nil)
}

func (c *Client) sendContentForm(ctx context.Context, method, path string, input ContentInput, imageName string, image io.Reader) (*models.Content, error) {
	var buf strings.Builder
	writer := multipart.NewWriter(&buf)

	fields := map[string]*string{
		"projectName": input.ProjectName,
		"description": input.Description,
		"tags":        input.Tags,
		"liveLink":    input.LiveLink,
		"githubLink":  input.GithubLink,
	}
	for name, value := range fields {
		if value == nil {
			continue
		}
		if err := writer.WriteField(name, *value); err != nil {
			return nil, fmt.Errorf("building form: %w", err)
		}
	}

	if image != nil {
		part, err := writer.CreateFormFile("projectImg", imageName)
		if err != nil {
			return nil, fmt.Errorf("building form: %w", err)
		}
		if _, err := io.Copy(part, image); err != nil {
			return nil, fmt.Errorf("building form: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("building form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, strings.NewReader(buf.String()))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var content models.Content
	if err := c.do(req, &content); err != nil {
		return nil, err
	}
	return &content, nil
}
