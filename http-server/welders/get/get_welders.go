package get

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/woolfich/Z-reliase2/internal/domain"
)

type WelderList interface {
	WelderSummaries() []domain.WelderSummary
}

// GetWelders отдаёт список сварщиков для главного экрана: свежие сверху,
// с короткой сводкой за сегодня.
func GetWelders(log *slog.Logger, list WelderList) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, list.WelderSummaries())
	}
}
