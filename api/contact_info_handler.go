package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hritik2004-cse/portfolio-backend/database"
	"github.com/hritik2004-cse/portfolio-backend/errs"
	"github.com/hritik2004-cse/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contactInfoHandler struct {
	responder       Responder
	logger          zerolog.Logger
	contactInfoRepo *database.ContactInfoRepo
}

func newContactInfoHandler(contactInfoRepo *database.ContactInfoRepo) contactInfoHandler {
	logger := log.With().Str("handlerName", "contactInfoHandler").Logger()

	return contactInfoHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		contactInfoRepo: contactInfoRepo,
	}
}

// getActiveContactInfo returns the contact card the footer shows
func (h contactInfoHandler) getActiveContactInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := h.contactInfoRepo.FindActive()
		if err != nil {
			h.responder.WriteError(w, "Error retrieving contact info", wrapDatabaseError("find", "contact info", err))
			return
		}
		if info == nil {
			h.responder.WriteError(w, "Contact info not found", errs.NewNotFoundError("contact info not found"))
			return
		}

		h.responder.WriteData(w, http.StatusOK, "Contact info retrieved successfully", info)
	}
}

func (h contactInfoHandler) getAllContactInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		infos, err := h.contactInfoRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, "Error retrieving contact info", wrapDatabaseError("find", "contact info", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, "All contact info retrieved successfully", infos)
	}
}

func (h contactInfoHandler) createContactInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// absent isActive means active, matching the admin form
		info := models.ContactInfo{IsActive: true}
		if err := decodeJSON(r, &info); err != nil {
			h.responder.WriteError(w, "Error creating contact info", err)
			return
		}

		if err := info.Validate(); err != nil {
			h.responder.WriteError(w, "Error creating contact info", err)
			return
		}

		if err := h.contactInfoRepo.Add(&info); err != nil {
			h.responder.WriteError(w, "Error creating contact info", wrapDatabaseError("create", "contact info", err))
			return
		}

		h.responder.WriteData(w, http.StatusCreated, "Contact info created successfully", info)
	}
}

// updateContactInfo patches a contact card by its database id
func (h contactInfoHandler) updateContactInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			h.responder.WriteError(w, "Error updating contact info", errs.NewBadRequestError("invalid contact info id"))
			return
		}

		info, err := h.contactInfoRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, "Error updating contact info", wrapDatabaseError("find", "contact info", err))
			return
		}
		if info == nil {
			h.responder.WriteError(w, "Contact info not found", errs.NewNotFoundError("contact info not found"))
			return
		}

		if err := decodeJSON(r, info); err != nil {
			h.responder.WriteError(w, "Error updating contact info", err)
			return
		}
		info.ID = id

		if err := info.Validate(); err != nil {
			h.responder.WriteError(w, "Error updating contact info", err)
			return
		}

		if err := h.contactInfoRepo.Update(info); err != nil {
			h.responder.WriteError(w, "Error updating contact info", wrapDatabaseError("update", "contact info", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, "Contact info updated successfully", info)
	}
}
