// Package controllers holds the HTTP handlers. Each controller decodes
// the request, delegates to a service, and translates the outcome to the
// JSON surface.
package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"blogapi/app/repositories"
	"blogapi/app/services"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// errorResponse maps service and storage errors onto the HTTP taxonomy.
// Unrecognized errors become a generic 500 so internal detail never
// reaches the client.
func errorResponse(err error) (int, string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, services.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid or expired token"
	case errors.Is(err, repositories.ErrNotFound):
		return http.StatusNotFound, "post not found"
	case errors.Is(err, repositories.ErrDuplicateID):
		return http.StatusConflict, "a post with this id already exists"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
