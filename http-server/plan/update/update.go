package update

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/woolfich/Z-reliase2/http-server/api"
	"github.com/woolfich/Z-reliase2/internal/domain"
)

type PlanUpdater interface {
	UpdatePlanItem(id string, planned float64) (domain.PlanItem, error)
}

type Request struct {
	Planned float64 `json:"planned"`
}

// UpdatePlanItem перезаписывает плановое количество. Блокировку позиции
// интерфейс проверяет сам по флагу isLocked, движок её пересчитает.
func UpdatePlanItem(log *slog.Logger, updater PlanUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.plan.update.UpdatePlanItem"

		id := chi.URLParam(r, "id")

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Неверный JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		item, err := updater.UpdatePlanItem(id, req.Planned)
		if err != nil {
			api.Fail(log, w, r, op, err)
			return
		}

		render.JSON(w, r, item)
	}
}
