package get

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/woolfich/Z-reliase2/internal/domain"
)

type StateReader interface {
	Snapshot() domain.AppState
}

// GetState отдаёт весь агрегат одним куском — SPA поднимает из него
// своё состояние при загрузке.
func GetState(log *slog.Logger, reader StateReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, reader.Snapshot())
	}
}
