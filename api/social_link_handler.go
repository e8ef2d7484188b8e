package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hritik2004-cse/portfolio-backend/database"
	"github.com/hritik2004-cse/portfolio-backend/errs"
	"github.com/hritik2004-cse/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type socialLinkHandler struct {
	responder      Responder
	logger         zerolog.Logger
	socialLinkRepo *database.SocialLinkRepo
}

func newSocialLinkHandler(socialLinkRepo *database.SocialLinkRepo) socialLinkHandler {
	logger := log.With().Str("handlerName", "socialLinkHandler").Logger()

	return socialLinkHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		socialLinkRepo: socialLinkRepo,
	}
}

// getActiveSocialLinks returns the links shown publicly, sorted by priority
func (h socialLinkHandler) getActiveSocialLinks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		links, err := h.socialLinkRepo.FindActive()
		if err != nil {
			h.responder.WriteError(w, "Error retrieving social links", wrapDatabaseError("find", "social links", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, "Social links retrieved successfully", links)
	}
}

// getAllSocialLinks is the admin view: every link regardless of isActive
func (h socialLinkHandler) getAllSocialLinks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		links, err := h.socialLinkRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, "Error retrieving social links", wrapDatabaseError("find", "social links", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, "All social links retrieved successfully", links)
	}
}

func (h socialLinkHandler) createSocialLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// absent isActive means active, matching the admin form
		link := models.SocialLink{IsActive: true}
		if err := decodeJSON(r, &link); err != nil {
			h.responder.WriteError(w, "Error creating social link", err)
			return
		}

		if err := link.Validate(); err != nil {
			h.responder.WriteError(w, "Error creating social link", err)
			return
		}

		if err := h.socialLinkRepo.Add(&link); err != nil {
			h.responder.WriteError(w, "Error creating social link", wrapDatabaseError("create", "social link", err))
			return
		}

		h.responder.WriteData(w, http.StatusCreated, "Social link created successfully", link)
	}
}

// updateSocialLink patches a link by its slug id. Fields absent from the
// request body stay as they are.
func (h socialLinkHandler) updateSocialLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		link, err := h.socialLinkRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, "Error updating social link", wrapDatabaseError("find", "social link", err))
			return
		}
		if link == nil {
			h.responder.WriteError(w, "Social link not found", errs.NewNotFoundError("social link not found"))
			return
		}

		// Unmarshal over the stored record: only fields present in the body
		// are touched.
		if err := decodeJSON(r, link); err != nil {
			h.responder.WriteError(w, "Error updating social link", err)
			return
		}
		link.ID = id

		if err := link.Validate(); err != nil {
			h.responder.WriteError(w, "Error updating social link", err)
			return
		}

		if err := h.socialLinkRepo.Update(link); err != nil {
			h.responder.WriteError(w, "Error updating social link", wrapDatabaseError("update", "social link", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, "Social link updated successfully", link)
	}
}

func (h socialLinkHandler) deleteSocialLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		link, err := h.socialLinkRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, "Error deleting social link", wrapDatabaseError("find", "social link", err))
			return
		}
		if link == nil {
			h.responder.WriteError(w, "Social link not found", errs.NewNotFoundError("social link not found"))
			return
		}

		if err := h.socialLinkRepo.Delete(id); err != nil {
			h.responder.WriteError(w, "Error deleting social link", wrapDatabaseError("delete", "social link", err))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Social link deleted successfully")
	}
}
