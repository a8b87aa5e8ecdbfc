// Package api holds the bits every handler package needs: mapping the
// engine's typed failures onto HTTP statuses and the common envelope.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/woolfich/Z-reliase2/internal/domain"
)

type ErrResponse struct {
	Error string `json:"error"`
}

type OKResponse struct {
	Status string `json:"status"`
}

func OK() OKResponse {
	return OKResponse{Status: "success"}
}

// Fail logs the failure and answers with the status the error class
// dictates: 400 for validation, 409 for article collisions, 404 for
// unknown ids, 500 for everything else.
func Fail(log *slog.Logger, w http.ResponseWriter, r *http.Request, op string, err error) {
	log.Error("команда не выполнена", slog.String("op", op), slog.String("error", err.Error()))

	var (
		valErr *domain.ValidationError
		dupErr *domain.DuplicateError
		nfErr  *domain.NotFoundError
	)
	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &valErr):
		status = http.StatusBadRequest
	case errors.As(err, &dupErr):
		status = http.StatusConflict
	case errors.As(err, &nfErr):
		status = http.StatusNotFound
	}

	render.Status(r, status)
	render.JSON(w, r, ErrResponse{Error: err.Error()})
}
