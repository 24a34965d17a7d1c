// Package controllers implements the JSON API consumed by frontends. Every
// handler calls into the ledger and renders either the requested resource
// or the returned error value verbatim.
package controllers

import (
	"errors"
	"net/http"

	"github.com/pocketledger/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no account matching your query"`
}

// status returns the appropriate HTTP status for a domain error.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrAlreadyExists), errors.Is(err, models.ErrInUse):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
