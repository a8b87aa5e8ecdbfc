package get

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/woolfich/Z-reliase2/http-server/api"
	"github.com/woolfich/Z-reliase2/internal/domain"
)

type PlanQuery interface {
	SuggestPlan(query string) []domain.PlanItem
	ArticleStats(article string) (domain.ArticleStats, error)
}

// SuggestPlan — автоподсказка для карточки сварщика: только открытые
// позиции плана, не больше пяти. Пустой запрос — всё, что ещё не закрыто.
func SuggestPlan(log *slog.Logger, query PlanQuery) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		items := query.SuggestPlan(q)
		if items == nil {
			items = []domain.PlanItem{}
		}
		render.JSON(w, r, items)
	}
}

// GetArticleStats — сводка по артикулу: план, факт, разбивка по сварщикам.
func GetArticleStats(log *slog.Logger, query PlanQuery) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.plan.get.GetArticleStats"

		article := chi.URLParam(r, "article")

		stats, err := query.ArticleStats(article)
		if err != nil {
			api.Fail(log, w, r, op, err)
			return
		}

		render.JSON(w, r, stats)
	}
}
