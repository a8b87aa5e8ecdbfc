package use

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/woolfich/Z-reliase2/http-server/api"
	"github.com/woolfich/Z-reliase2/internal/domain"
)

type OvertimeUser interface {
	UseOvertime(welderID, date string, hours float64) (domain.Welder, error)
}

type Request struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

// UseOvertime списывает часы из банка переработки в корректировку дня.
func UseOvertime(log *slog.Logger, user OvertimeUser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.overtime.use.UseOvertime"

		welderID := chi.URLParam(r, "id")

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Неверный JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		welder, err := user.UseOvertime(welderID, req.Date, req.Hours)
		if err != nil {
			api.Fail(log, w, r, op, err)
			return
		}

		render.JSON(w, r, welder)
	}
}
