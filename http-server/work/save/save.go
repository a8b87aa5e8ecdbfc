package save

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/woolfich/Z-reliase2/http-server/api"
	"github.com/woolfich/Z-reliase2/internal/domain"
)

type WorkAdder interface {
	AddWorkRecord(welderID, article string, quantity float64) (domain.Welder, error)
}

type Request struct {
	Article  string  `json:"article"`
	Quantity float64 `json:"quantity"`
}

// SaveWorkRecord проводит выработку за сегодня: слияние повторов по
// артикулу, переработка, дельта в план — всё одной командой движка.
func SaveWorkRecord(log *slog.Logger, adder WorkAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.work.save.SaveWorkRecord"

		welderID := chi.URLParam(r, "id")

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Неверный JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		welder, err := adder.AddWorkRecord(welderID, req.Article, req.Quantity)
		if err != nil {
			api.Fail(log, w, r, op, err)
			return
		}

		render.JSON(w, r, welder)
	}
}
