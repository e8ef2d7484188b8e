package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/hritik2004-cse/portfolio-backend/models"
	"github.com/rs/zerolog/log"
)

// FooterData is the /api/footer/all aggregate.
type FooterData struct {
	SocialLinks  []*models.SocialLink `json:"socialLinks"`
	ContactInfo  *models.ContactInfo  `json:"contactInfo"`
	QuickLinks   []*models.QuickLink  `json:"quickLinks"`
	Technologies []*models.Technology `json:"technologies"`
}

func (c *Client) FooterData(ctx context.Context) (*FooterData, error) {
	var data FooterData
	if err := c.doJSON(ctx, http.MethodGet, "/api/footer/all", nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// FooterDataOrFallback falls back to the bundled static data set when the
// server cannot be reached or errors, so the footer always renders.
func (c *Client) FooterDataOrFallback(ctx context.Context) *FooterData {
	data, err := c.FooterData(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("footer data unavailable, using bundled fallback")
		return FallbackFooterData()
	}
	return data
}

func (c *Client) SeedFooter(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/api/footer/seed", nil, nil)
}

func (c *Client) Icons(ctx context.Context) ([]string, error) {
	var icons []string
	if err := c.doJSON(ctx, http.MethodGet, "/api/footer/icons", nil, &icons); err != nil {
		return nil, err
	}
	return icons, nil
}

func (c *Client) SocialLinks(ctx context.Context, includeInactive bool) ([]*models.SocialLink, error) {
	path := "/api/footer/social-links"
	if includeInactive {
		path += "/admin"
	}
	var links []*models.SocialLink
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &links); err != nil {
		return nil, err
	}
	return links, nil
}

func (c *Client) CreateSocialLink(ctx context.Context, link *models.SocialLink) (*models.SocialLink, error) {
	var created models.SocialLink
	if err := c.doJSON(ctx, http.MethodPost, "/api/footer/social-links", link, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateSocialLink(ctx context.Context, id string, link *models.SocialLink) (*models.SocialLink, error) {
	var updated models.SocialLink
	if err := c.doJSON(ctx, http.MethodPut, "/api/footer/social-links/"+id, link, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteSocialLink(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/footer/social-links/"+id, nil, nil)
}

func (c *Client) ContactInfo(ctx context.Context) (*models.ContactInfo, error) {
	var info models.ContactInfo
	if err := c.doJSON(ctx, http.MethodGet, "/api/footer/contact-info", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) AllContactInfo(ctx context.Context) ([]*models.ContactInfo, error) {
	var infos []*models.ContactInfo
	if err := c.doJSON(ctx, http.MethodGet, "/api/footer/contact-info/admin", nil, &infos); err != nil {
		return nil, err
	}
	return infos, nil
}

func (c *Client) CreateContactInfo(ctx context.Context, info *models.ContactInfo) (*models.ContactInfo, error) {
	var created models.ContactInfo
	if err := c.doJSON(ctx, http.MethodPost, "/api/footer/contact-info", info, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateContactInfo(ctx context.Context, id uuid.UUID, info *models.ContactInfo) (*models.ContactInfo, error) {
	var updated models.ContactInfo
	if err := c.doJSON(ctx, http.MethodPut, "/api/footer/contact-info/"+id.String(), info, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) QuickLinks(ctx context.Context, includeInactive bool) ([]*models.QuickLink, error) {
	path := "/api/footer/quick-links"
	if includeInactive {
		path += "/admin"
	}
	var links []*models.QuickLink
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &links); err != nil {
		return nil, err
	}
	return links, nil
}

func (c *Client) CreateQuickLink(ctx context.Context, link *models.QuickLink) (*models.QuickLink, error) {
	var created models.QuickLink
	if err := c.doJSON(ctx, http.MethodPost, "/api/footer/quick-links", link, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateQuickLink(ctx context.Context, id string, link *models.QuickLink) (*models.QuickLink, error) {
	var updated models.QuickLink
	if err := c.doJSON(ctx, http.MethodPut, "/api/footer/quick-links/"+id, link, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteQuickLink(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/footer/quick-links/"+id, nil, nil)
}

func (c *Client) Technologies(ctx context.Context, includeInactive bool) ([]*models.Technology, error) {
	path := "/api/footer/technologies"
	if includeInactive {
		path += "/admin"
	}
	var techs []*models.Technology
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &techs); err != nil {
		return nil, err
	}
	return techs, nil
}

func (c *Client) CreateTechnology(ctx context.Context, tech *models.Technology) (*models.Technology, error) {
	var created models.Technology
	if err := c.doJSON(ctx, http.MethodPost, "/api/footer/technologies", tech, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateTechnology(ctx context.Context, id uuid.UUID, tech *models.Technology) (*models.Technology, error) {
	var updated models.Technology
	if err := c.doJSON(ctx, http.MethodPut, "/api/footer/technologies/"+id.String(), tech, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteTechnology(ctx context.Context, id uuid.UUID) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/footer/technologies/"+id.String(), nil, nil)
}
