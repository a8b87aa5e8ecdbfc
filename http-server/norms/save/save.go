package save

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/woolfich/Z-reliase2/http-server/api"
	"github.com/woolfich/Z-reliase2/internal/domain"
)

type NormAdder interface {
	AddNorm(article string, timePerUnit float64) (domain.Norm, error)
}

type Request struct {
	Article     string  `json:"article"`
	TimePerUnit float64 `json:"timePerUnit"`
}

func SaveNorm(log *slog.Logger, adder NormAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.norms.save.SaveNorm"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Неверный JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		norm, err := adder.AddNorm(req.Article, req.TimePerUnit)
		if err != nil {
			api.Fail(log, w, r, op, err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, norm)
	}
}
