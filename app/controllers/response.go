package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"codenix/app/logging"
	"codenix/app/repositories"
	"codenix/app/services"
)

// Envelope is the uniform JSON wrapper used by every response.
type Envelope struct {
	Success     bool           `json:"success"`
	Message     string         `json:"message,omitempty"`
	Data        any            `json:"data,omitempty"`
	Pagination  *services.Page `json:"pagination,omitempty"`
	SearchQuery string         `json:"searchQuery,omitempty"`
	Error       string         `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// respondData writes a success envelope.
func respondData(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, Envelope{Success: true, Message: message, Data: data})
}

// respondPage writes a success envelope with a pagination block.
func respondPage(w http.ResponseWriter, data any, page *services.Page, searchQuery string) {
	writeJSON(w, http.StatusOK, Envelope{
		Success:     true,
		Data:        data,
		Pagination:  page,
		SearchQuery: searchQuery,
	})
}

// respondError converts any error into the envelope, mapping the error
// taxonomy onto HTTP status codes. The underlying failure is echoed in the
// error field.
func respondError(w http.ResponseWriter, r *http.Request, message string, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logging.FromContext(r.Context()).Error("request failed",
			"path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, Envelope{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repositories.ErrInvalidID),
		errors.Is(err, repositories.ErrSlugTaken),
		errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrSearchQueryRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
