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

type quickLinkHandler struct {
	responder     Responder
	logger        zerolog.Logger
	quickLinkRepo *database.QuickLinkRepo
}

func newQuickLinkHandler(quickLinkRepo *database.QuickLinkRepo) quickLinkHandler {
	logger := log.With().Str("handlerName", "quickLinkHandler").Logger()

	return quickLinkHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		quickLinkRepo: quickLinkRepo,
	}
}

func (h quickLinkHandler) getActiveQuickLinks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		links, err := h.quickLinkRepo.FindActive()
		if err != nil {
			h.responder.WriteError(w, "Error retrieving quick links", wrapDatabaseError("find", "quick links", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, "Quick links retrieved successfully", links)
	}
}

func (h quickLinkHandler) getAllQuickLinks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		links, err := h.quickLinkRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, "Error retrieving quick links", wrapDatabaseError("find", "quick links", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, "All quick links retrieved successfully", links)
	}
}

func (h quickLinkHandler) createQuickLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// absent isActive means active, matching the admin form
		link := models.QuickLink{IsActive: true}
		if err := decodeJSON(r, &link); err != nil {
			h.responder.WriteError(w, "Error creating quick link", err)
			return
		}

		if err := link.Validate(); err != nil {
			h.responder.WriteError(w, "Error creating quick link", err)
			return
		}

		if err := h.quickLinkRepo.Add(&link); err != nil {
			h.responder.WriteError(w, "Error creating quick link", wrapDatabaseError("create", "quick link", err))
			return
		}

		h.responder.WriteData(w, http.StatusCreated, "Quick link created successfully", link)
	}
}

func (h quickLinkHandler) updateQuickLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		link, err := h.quickLinkRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, "Error updating quick link", wrapDatabaseError("find", "quick link", err))
			return
		}
		if link == nil {
			h.responder.WriteError(w, "Quick link not found", errs.NewNotFoundError("quick link not found"))
			return
		}

		if err := decodeJSON(r, link); err != nil {
			h.responder.WriteError(w, "Error updating quick link", err)
			return
		}
		link.ID = id

		if err := link.Validate(); err != nil {
			h.responder.WriteError(w, "Error updating quick link", err)
			return
		}

		if err := h.quickLinkRepo.Update(link); err != nil {
			h.responder.WriteError(w, "Error updating quick link", wrapDatabaseError("update", "quick link", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, "Quick link updated successfully", link)
	}
}

func (h quickLinkHandler) deleteQuickLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		link, err := h.quickLinkRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, "Error deleting quick link", wrapDatabaseError("find", "quick link", err))
			return
		}
		if link == nil {
			h.responder.WriteError(w, "Quick link not found", errs.NewNotFoundError("quick link not found"))
			return
		}

		if err := h.quickLinkRepo.Delete(id); err != nil {
			h.responder.WriteError(w, "Error deleting quick link", wrapDatabaseError("delete", "quick link", err))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Quick link deleted successfully")
	}
}
