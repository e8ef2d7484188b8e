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

type technologyHandler struct {
	responder      Responder
	logger         zerolog.Logger
	technologyRepo *database.TechnologyRepo
}

func newTechnologyHandler(technologyRepo *database.TechnologyRepo) technologyHandler {
	logger := log.With().Str("handlerName", "technologyHandler").Logger()

	return technologyHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		technologyRepo: technologyRepo,
	}
}

func (h technologyHandler) getActiveTechnologies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		techs, err := h.technologyRepo.FindActive()
		if err != nil {
			h.responder.WriteError(w, "Error retrieving technologies", wrapDatabaseError("find", "technologies", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, "Technologies retrieved successfully", techs)
	}
}

func (h technologyHandler) getAllTechnologies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		techs, err := h.technologyRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, "Error retrieving technologies", wrapDatabaseError("find", "technologies", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, "All technologies retrieved successfully", techs)
	}
}

func (h technologyHandler) createTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// absent isActive means active, matching the admin form
		tech := models.Technology{IsActive: true}
		if err := decodeJSON(r, &tech); err != nil {
			h.responder.WriteError(w, "Error creating technology", err)
			return
		}

		if err := tech.Validate(); err != nil {
			h.responder.WriteError(w, "Error creating technology", err)
			return
		}

		if err := h.technologyRepo.Add(&tech); err != nil {
			h.responder.WriteError(w, "Error creating technology", wrapDatabaseError("create", "technology", err))
			return
		}

		h.responder.WriteData(w, http.StatusCreated, "Technology created successfully", tech)
	}
}

// updateTechnology patches a technology by its database id
func (h technologyHandler) updateTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			h.responder.WriteError(w, "Error updating technology", errs.NewBadRequestError("invalid technology id"))
			return
		}

		tech, err := h.technologyRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, "Error updating technology", wrapDatabaseError("find", "technology", err))
			return
		}
		if tech == nil {
			h.responder.WriteError(w, "Technology not found", errs.NewNotFoundError("technology not found"))
			return
		}

		if err := decodeJSON(r, tech); err != nil {
			h.responder.WriteError(w, "Error updating technology", err)
			return
		}
		tech.ID = id

		if err := tech.Validate(); err != nil {
			h.responder.WriteError(w, "Error updating technology", err)
			return
		}

		if err := h.technologyRepo.Update(tech); err != nil {
			h.responder.WriteError(w, "Error updating technology", wrapDatabaseError("update", "technology", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, "Technology updated successfully", tech)
	}
}

func (h technologyHandler) deleteTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			h.responder.WriteError(w, "Error deleting technology", errs.NewBadRequestError("invalid technology id"))
			return
		}

		tech, err := h.technologyRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, "Error deleting technology", wrapDatabaseError("find", "technology", err))
			return
		}
		if tech == nil {
			h.responder.WriteError(w, "Technology not found", errs.NewNotFoundError("technology not found"))
			return
		}

		if err := h.technologyRepo.Delete(id); err != nil {
			h.responder.WriteError(w, "Error deleting technology", wrapDatabaseError("delete", "technology", err))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Technology deleted successfully")
	}
}
