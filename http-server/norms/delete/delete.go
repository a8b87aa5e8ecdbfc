package delete

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/woolfich/Z-reliase2/http-server/api"
)

type NormDeleter interface {
	DeleteNorm(id string)
}

// DeleteNorm не трогает ни план, ни историю выработки: артикул остаётся
// строкой в записях, просто перестаёт считаться во времени.
func DeleteNorm(log *slog.Logger, deleter NormDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.norms.delete.DeleteNorm"

		id := chi.URLParam(r, "id")
		deleter.DeleteNorm(id)

		log.Info("норма удалена", slog.String("op", op), slog.String("id", id))
		render.JSON(w, r, api.OK())
	}
}
