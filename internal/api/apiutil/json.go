// internal/api/apiutil/json.go
package apiutil

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("error encoding response")
	}
}

// WriteError maps FieldError and HandlerError to their statuses and
// hides everything else behind a generic 500. Handlers translate
// domain sentinels to HandlerError before calling this.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErr FieldError
	if errors.As(err, &fieldErr) {
		WriteJSON(w, http.StatusBadRequest, errorResponse{
			Error: fieldErr.Reason,
			Field: fieldErr.Field,
		})
		return
	}

	var handlerErr *HandlerError
	if errors.As(err, &handlerErr) {
		if handlerErr.Status >= http.StatusInternalServerError {
			log.Ctx(r.Context()).Error().Err(err).Msg("handler error")
		}
		WriteJSON(w, handlerErr.Status, errorResponse{Error: handlerErr.Message})
		return
	}

	log.Ctx(r.Context()).Error().Err(err).Msg("unhandled error")
	WriteJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

// DecodeJSON parses a request body, rejecting unknown fields.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return NewHandlerError(http.StatusBadRequest, "invalid JSON body", err)
	}
	return nil
}
