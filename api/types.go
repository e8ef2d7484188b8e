package api

import (
	"github.com/hritik2004-cse/portfolio-backend/models"
)

const (
	// 16kb cap on JSON bodies; nothing the admin panel submits comes close.
	maxJSONBodySize = 16 * 1024

	// Multipart content bodies carry one image plus a handful of text fields.
	maxMultipartBodySize = 6 * 1024 * 1024
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	contentHandler     contentHandler
	socialLinkHandler  socialLinkHandler
	contactInfoHandler contactInfoHandler
	quickLinkHandler   quickLinkHandler
	technologyHandler  technologyHandler
	footerHandler      footerHandler
}

// FooterBundle is the /api/footer/all aggregate: the four footer collections
// as one object, matching what four separate calls would return.
type FooterBundle struct {
	SocialLinks  []*models.SocialLink `json:"socialLinks"`
	ContactInfo  *models.ContactInfo  `json:"contactInfo"`
	QuickLinks   []*models.QuickLink  `json:"quickLinks"`
	Technologies []*models.Technology `json:"technologies"`
}
