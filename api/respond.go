package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hritik2004-cse/portfolio-backend/errs"
	"github.com/rs/zerolog"
)

// dataEnvelope is the uniform success payload: {message, data}.
type dataEnvelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// errorEnvelope is the uniform failure payload: {message, error}.
type errorEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(payload)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteData writes a success envelope with the given message and payload.
func (r Responder) WriteData(w http.ResponseWriter, statusCode int, message string, data any) {
	r.writeJSON(w, statusCode, dataEnvelope{Message: message, Data: data})
}

// WriteMessage writes a success envelope with no data payload.
func (r Responder) WriteMessage(w http.ResponseWriter, statusCode int, message string) {
	r.writeJSON(w, statusCode, dataEnvelope{Message: message})
}

// WriteError maps the error to its status code and writes the failure
// envelope. message gives the operation context ("Error creating content");
// the error field carries what went wrong.
func (r Responder) WriteError(w http.ResponseWriter, message string, err error) {
	var apiErr *errs.ApiErr

	// For unexpected errors, log and return a generic internal error
	if !errors.As(err, &apiErr) {
		r.logger.Error().Err(err).Msg(message)
		r.writeJSON(w, http.StatusInternalServerError, errorEnvelope{
			Message: message,
			Error:   "An unexpected error occurred",
		})
		return
	}

	if apiErr.StatusCode >= http.StatusInternalServerError {
		r.logger.Error().Str("cause", apiErr.GetFullError()).Msg(message)
	}

	r.writeJSON(w, apiErr.StatusCode, errorEnvelope{
		Message: message,
		Error:   apiErr.Error(),
	})
}

// decodeJSON reads a JSON request body into dst, translating body-size and
// syntax failures into the API error taxonomy.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return errs.NewMaxBodySizeExceededError(maxBytesErr.Limit)
		}
		return errs.NewInvalidJSONError(err)
	}
	return nil
}

// wrapDatabaseError wraps a database error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
