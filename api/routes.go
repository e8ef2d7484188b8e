package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// setupRoutes wires every endpoint. Content routes take multipart bodies and
// manage their own size cap; footer routes are JSON and share the 16kb cap.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/", handlers.footerHandler.healthCheck())

		r.Route("/api", func(r chi.Router) {
			r.Route("/content", func(r chi.Router) {
				r.Get("/", handlers.contentHandler.getAllContent())
				r.Post("/", handlers.contentHandler.createContent())
				r.Get("/{id}", handlers.contentHandler.getContentByID())
				r.Put("/{id}", handlers.contentHandler.updateContent())
				r.Delete("/{id}", handlers.contentHandler.deleteContent())
			})

			r.Route("/footer", func(r chi.Router) {
				r.Use(JSONBodyLimit(maxJSONBodySize))

				r.Get("/all", handlers.footerHandler.getAllFooterData())
				r.Post("/seed", handlers.footerHandler.seedFooterData())
				r.Get("/icons", handlers.footerHandler.getIcons())

				r.Route("/social-links", func(r chi.Router) {
					r.Get("/", handlers.socialLinkHandler.getActiveSocialLinks())
					r.Get("/admin", handlers.socialLinkHandler.getAllSocialLinks())
					r.Post("/", handlers.socialLinkHandler.createSocialLink())
					r.Put("/{id}", handlers.socialLinkHandler.updateSocialLink())
					r.Delete("/{id}", handlers.socialLinkHandler.deleteSocialLink())
				})

				r.Route("/contact-info", func(r chi.Router) {
					r.Get("/", handlers.contactInfoHandler.getActiveContactInfo())
					r.Get("/admin", handlers.contactInfoHandler.getAllContactInfo())
					r.Post("/", handlers.contactInfoHandler.createContactInfo())
					r.Put("/{id}", handlers.contactInfoHandler.updateContactInfo())
				})

				r.Route("/quick-links", func(r chi.Router) {
					r.Get("/", handlers.quickLinkHandler.getActiveQuickLinks())
					r.Get("/admin", handlers.quickLinkHandler.getAllQuickLinks())
					r.Post("/", handlers.quickLinkHandler.createQuickLink())
					r.Put("/{id}", handlers.quickLinkHandler.updateQuickLink())
					r.Delete("/{id}", handlers.quickLinkHandler.deleteQuickLink())
				})

				r.Route("/technologies", func(r chi.Router) {
					r.Get("/", handlers.technologyHandler.getActiveTechnologies())
					r.Get("/admin", handlers.technologyHandler.getAllTechnologies())
					r.Post("/", handlers.technologyHandler.createTechnology())
					r.Put("/{id}", handlers.technologyHandler.updateTechnology())
					r.Delete("/{id}", handlers.technologyHandler.deleteTechnology())
				})
			})
		})
	})
}

// JSONBodyLimit caps request bodies for the JSON endpoints.
func JSONBodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}
