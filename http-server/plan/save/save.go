package save

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/woolfich/Z-reliase2/http-server/api"
	"github.com/woolfich/Z-reliase2/internal/domain"
)

type PlanAdder interface {
	AddPlanItem(article string, planned float64) (domain.PlanItem, error)
}

type Request struct {
	Article string  `json:"article"`
	Planned float64 `json:"planned"`
}

// SavePlanItem добавляет позицию плана; повторный артикул суммируется
// с существующей позицией, а не заменяет её.
func SavePlanItem(log *slog.Logger, adder PlanAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.plan.save.SavePlanItem"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Неверный JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		item, err := adder.AddPlanItem(req.Article, req.Planned)
		if err != nil {
			api.Fail(log, w, r, op, err)
			return
		}

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, item)
	}
}
