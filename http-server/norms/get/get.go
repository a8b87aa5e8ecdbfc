package get

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/woolfich/Z-reliase2/internal/domain"
)

type NormSuggester interface {
	SuggestNorms(query string) []domain.Norm
}

// SuggestNorms — автоподсказка артикулов из норм для экрана плана.
// Подстрока без учёта регистра, не больше пяти штук.
func SuggestNorms(log *slog.Logger, suggester NormSuggester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		norms := suggester.SuggestNorms(q)
		if norms == nil {
			norms = []domain.Norm{}
		}
		render.JSON(w, r, norms)
	}
}
