package api

import (
	"net/http"
	"time"

	"github.com/hritik2004-cse/portfolio-backend/database"
	"github.com/hritik2004-cse/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type footerHandler struct {
	responder   Responder
	logger      zerolog.Logger
	database    database.Database
	startupTime time.Time
}

func newFooterHandler(database database.Database, startupTime time.Time) footerHandler {
	logger := log.With().Str("handlerName", "footerHandler").Logger()

	return footerHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		database:    database,
		startupTime: startupTime,
	}
}

func (h footerHandler) healthCheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteData(w, http.StatusOK, "Server is running!", map[string]string{
			"uptime": time.Since(h.startupTime).Round(time.Second).String(),
		})
	}
}

// getAllFooterData fetches the four active collections concurrently and
// returns them as a single aggregate.
func (h footerHandler) getAllFooterData() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var bundle FooterBundle

		group, _ := errgroup.WithContext(r.Context())
		group.Go(func() error {
			links, err := h.database.SocialLinkRepo().FindActive()
			bundle.SocialLinks = links
			return err
		})
		group.Go(func() error {
			info, err := h.database.ContactInfoRepo().FindActive()
			bundle.ContactInfo = info
			return err
		})
		group.Go(func() error {
			links, err := h.database.QuickLinkRepo().FindActive()
			bundle.QuickLinks = links
			return err
		})
		group.Go(func() error {
			techs, err := h.database.TechnologyRepo().FindActive()
			bundle.Technologies = techs
			return err
		})

		if err := group.Wait(); err != nil {
			h.responder.WriteError(w, "Error retrieving footer data", wrapDatabaseError("find", "footer data", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, "All footer data retrieved successfully", bundle)
	}
}

// seedFooterData populates the footer collections with the initial data set.
// Running it again once social links exist is a no-op.
func (h footerHandler) seedFooterData() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.database.Seed(); err != nil {
			h.responder.WriteError(w, "Error seeding footer data", wrapDatabaseError("seed", "footer data", err))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Footer data seeded successfully")
	}
}

// getIcons lists the icon names the front end knows how to render
func (h footerHandler) getIcons() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteData(w, http.StatusOK, "Available icons retrieved successfully", models.IconNames)
	}
}
