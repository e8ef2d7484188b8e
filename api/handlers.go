package api

import (
	"time"

	"github.com/hritik2004-cse/portfolio-backend/database"
	"github.com/hritik2004-cse/portfolio-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, mediaStore services.MediaStore, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		contentHandler:     newContentHandler(database.ContentRepo(), mediaStore),
		socialLinkHandler:  newSocialLinkHandler(database.SocialLinkRepo()),
		contactInfoHandler: newContactInfoHandler(database.ContactInfoRepo()),
		quickLinkHandler:   newQuickLinkHandler(database.QuickLinkRepo()),
		technologyHandler:  newTechnologyHandler(database.TechnologyRepo()),
		footerHandler:      newFooterHandler(database, startupTime),
	}
}
