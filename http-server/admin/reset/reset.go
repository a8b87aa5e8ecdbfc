package reset

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/woolfich/Z-reliase2/http-server/api"
)

type Resetter interface {
	Reset()
}

// ResetData сносит всё состояние. Доступно только из админки.
func ResetData(log *slog.Logger, resetter Resetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.reset.ResetData"

		resetter.Reset()

		log.Warn("состояние сброшено", slog.String("op", op))
		render.JSON(w, r, api.OK())
	}
}
