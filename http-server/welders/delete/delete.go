package delete

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/woolfich/Z-reliase2/http-server/api"
)

type WelderDeleter interface {
	DeleteWelder(id string)
}

// DeleteWelder каскадно убирает сварщика вместе с его записями.
// Идемпотентно: повторное удаление — тот же успех.
func DeleteWelder(log *slog.Logger, deleter WelderDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.welders.delete.DeleteWelder"

		id := chi.URLParam(r, "id")
		deleter.DeleteWelder(id)

		log.Info("сварщик удалён", slog.String("op", op), slog.String("id", id))
		render.JSON(w, r, api.OK())
	}
}
