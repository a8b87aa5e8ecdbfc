package delete

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/woolfich/Z-reliase2/http-server/api"
)

type PlanDeleter interface {
	DeletePlanItem(id string)
}

func DeletePlanItem(log *slog.Logger, deleter PlanDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.plan.delete.DeletePlanItem"

		id := chi.URLParam(r, "id")
		deleter.DeletePlanItem(id)

		log.Info("позиция плана удалена", slog.String("op", op), slog.String("id", id))
		render.JSON(w, r, api.OK())
	}
}
