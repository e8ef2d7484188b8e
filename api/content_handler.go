package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/hritik2004-cse/portfolio-backend/database"
	"github.com/hritik2004-cse/portfolio-backend/errs"
	"github.com/hritik2004-cse/portfolio-backend/models"
	"github.com/hritik2004-cse/portfolio-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contentHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contentRepo *database.ContentRepo
	mediaStore  services.MediaStore
}

func newContentHandler(contentRepo *database.ContentRepo, mediaStore services.MediaStore) contentHandler {
	logger := log.With().Str("handlerName", "contentHandler").Logger()

	return contentHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contentRepo: contentRepo,
		mediaStore:  mediaStore,
	}
}

// getAllContent retrieves all projects, newest first
func (h contentHandler) getAllContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		content, err := h.contentRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, "Error retrieving content", wrapDatabaseError("find", "content", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, "Content retrieved successfully", content)
	}
}

// getContentByID retrieves a single project by its numeric id
func (h contentHandler) getContentByID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseContentID(r)
		if err != nil {
			h.responder.WriteError(w, "Error retrieving content", err)
			return
		}

		content, err := h.contentRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, "Error retrieving content", wrapDatabaseError("find", "content", err))
			return
		}
		if content == nil {
			h.responder.WriteError(w, "Content not found", errs.NewNotFoundError("content not found"))
			return
		}

		h.responder.WriteData(w, http.StatusOK, "Content retrieved successfully", content)
	}
}

// createContent creates a new project from a multipart form. Required text
// fields are validated before the image is sent to the media store, so an
// invalid request never triggers an upload.
func (h contentHandler) createContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxMultipartBodySize)
		if err := r.ParseMultipartForm(maxMultipartBodySize); err != nil {
			h.responder.WriteError(w, "Error creating content", multipartParseError(err))
			return
		}

		content := models.Content{
			ProjectName: strings.TrimSpace(r.FormValue("projectName")),
			Description: strings.TrimSpace(r.FormValue("description")),
			Tags:        models.NormalizeTags(r.MultipartForm.Value["tags"]),
			LiveLink:    strings.TrimSpace(r.FormValue("liveLink")),
			GithubLink:  strings.TrimSpace(r.FormValue("githubLink")),
		}
		if err := content.Validate(); err != nil {
			h.responder.WriteError(w, "Error creating content", err)
			return
		}

		file, header, err := r.FormFile("projectImg")
		if err != nil {
			h.responder.WriteError(w, "Error creating content", errs.NewMissingRequiredFieldError("projectImg"))
			return
		}
		defer file.Close()

		upload, err := h.mediaStore.Upload(r.Context(), file, header)
		if err != nil {
			h.responder.WriteError(w, "Error creating content", err)
			return
		}

		nextID, err := h.contentRepo.NextID()
		if err != nil {
			h.destroyUpload(r, upload.PublicID)
			h.responder.WriteError(w, "Error creating content", wrapDatabaseError("assign id for", "content", err))
			return
		}

		content.ID = nextID
		content.ProjectImg = upload.SecureURL
		content.CloudinaryPublicID = upload.PublicID

		if err := h.contentRepo.Add(&content); err != nil {
			// The record never existed, so the fresh upload would be orphaned.
			h.destroyUpload(r, upload.PublicID)
			h.responder.WriteError(w, "Error creating content", wrapDatabaseError("create", "content", err))
			return
		}

		h.responder.WriteData(w, http.StatusCreated, "Content created successfully", content)
	}
}

// updateContent applies a partial update. A field absent from the form is
// left unchanged; a field present but blank is rejected rather than silently
// ignored. A new image replaces the old one only after its upload succeeds.
func (h contentHandler) updateContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseContentID(r)
		if err != nil {
			h.responder.WriteError(w, "Error updating content", err)
			return
		}

		content, err := h.contentRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, "Error updating content", wrapDatabaseError("find", "content", err))
			return
		}
		if content == nil {
			h.responder.WriteError(w, "Content not found", errs.NewNotFoundError("content not found"))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxMultipartBodySize)
		if err := r.ParseMultipartForm(maxMultipartBodySize); err != nil {
			h.responder.WriteError(w, "Error updating content", multipartParseError(err))
			return
		}

		if err := applyContentPatch(content, r); err != nil {
			h.responder.WriteError(w, "Error updating content", err)
			return
		}

		file, header, err := r.FormFile("projectImg")
		if err != nil && !errors.Is(err, http.ErrMissingFile) {
			h.responder.WriteError(w, "Error updating content", errs.NewInvalidFieldError("projectImg", "could not read uploaded file"))
			return
		}
		if err == nil {
			defer file.Close()

			upload, uploadErr := h.mediaStore.Upload(r.Context(), file, header)
			if uploadErr != nil {
				h.responder.WriteError(w, "Error updating content", uploadErr)
				return
			}

			// Old image goes away only after the new upload succeeded. A
			// failed destroy leaves an orphan in the media store but never a
			// record pointing at a missing image.
			oldPublicID := content.CloudinaryPublicID
			if destroyErr := h.mediaStore.Destroy(r.Context(), oldPublicID); destroyErr != nil {
				h.logger.Error().Err(destroyErr).Str("publicId", oldPublicID).Msg("Failed to delete replaced image")
			}

			content.ProjectImg = upload.SecureURL
			content.CloudinaryPublicID = upload.PublicID
		}

		if err := h.contentRepo.Update(content); err != nil {
			h.responder.WriteError(w, "Error updating content", wrapDatabaseError("update", "content", err))
			return
		}

		h.responder.WriteData(w, http.StatusOK, "Content updated successfully", content)
	}
}

// deleteContent removes a project and its stored image. The image goes first;
// if the media store refuses, the record stays so it never references a
// missing image.
func (h contentHandler) deleteContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseContentID(r)
		if err != nil {
			h.responder.WriteError(w, "Error deleting content", err)
			return
		}

		content, err := h.contentRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, "Error deleting content", wrapDatabaseError("find", "content", err))
			return
		}
		if content == nil {
			h.responder.WriteError(w, "Content not found", errs.NewNotFoundError("content not found"))
			return
		}

		if err := h.mediaStore.Destroy(r.Context(), content.CloudinaryPublicID); err != nil {
			h.responder.WriteError(w, "Error deleting content", err)
			return
		}

		if err := h.contentRepo.Delete(id); err != nil {
			h.responder.WriteError(w, "Error deleting content", wrapDatabaseError("delete", "content", err))
			return
		}

		h.responder.WriteMessage(w, http.StatusOK, "Content deleted successfully")
	}
}

// destroyUpload is the best-effort cleanup for an upload whose record was
// never saved. Failures are logged, not returned.
func (h contentHandler) destroyUpload(r *http.Request, publicID string) {
	if err := h.mediaStore.Destroy(r.Context(), publicID); err != nil {
		h.logger.Error().Err(err).Str("publicId", publicID).Msg("Failed to clean up orphaned upload")
	}
}

// applyContentPatch copies the form fields that are present onto the record.
// Presence, not truthiness, decides whether a field updates: a key the form
// does not carry is a non-update, a blank required field is an error.
func applyContentPatch(content *models.Content, r *http.Request) error {
	form := r.MultipartForm

	if values, ok := form.Value["projectName"]; ok {
		v := strings.TrimSpace(firstValue(values))
		if v == "" {
			return errs.NewInvalidFieldError("projectName", "cannot be blank")
		}
		content.ProjectName = v
	}
	if values, ok := form.Value["description"]; ok {
		v := strings.TrimSpace(firstValue(values))
		if v == "" {
			return errs.NewInvalidFieldError("description", "cannot be blank")
		}
		if len(v) > models.MaxDescriptionLength {
			return errs.NewInvalidFieldError("description", "must be at most 500 characters")
		}
		content.Description = v
	}
	if values, ok := form.Value["tags"]; ok {
		content.Tags = models.NormalizeTags(values)
	}
	if values, ok := form.Value["liveLink"]; ok {
		v := strings.TrimSpace(firstValue(values))
		if v == "" {
			return errs.NewInvalidFieldError("liveLink", "cannot be blank")
		}
		content.LiveLink = v
	}
	if values, ok := form.Value["githubLink"]; ok {
		v := strings.TrimSpace(firstValue(values))
		if v == "" {
			return errs.NewInvalidFieldError("githubLink", "cannot be blank")
		}
		content.GithubLink = v
	}

	return nil
}

func firstValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func parseContentID(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		return 0, errs.NewBadRequestError("missing content id")
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid content id")
	}
	return id, nil
}

func multipartParseError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return errs.NewMaxBodySizeExceededError(maxBytesErr.Limit)
	}
	return errs.NewBadRequestError("malformed multipart form")
}
