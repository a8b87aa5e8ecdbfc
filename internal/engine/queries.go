package engine

import (
	"fmt"
	"sort"

	"github.com/woolfich/Z-reliase2/internal/domain"
)

// ArticleStats: сводка по артикулу — план, факт и кто сколько наварил.
func (e *Engine) ArticleStats(article string) (domain.ArticleStats, error) {
	article = domain.FormatArticle(article)

	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.planByArticle(article)
	if p == nil {
		return domain.ArticleStats{}, domain.NotFound("plan item", article)
	}

	stats := domain.ArticleStats{
		Article:        article,
		TotalPlanned:   p.Planned,
		TotalCompleted: p.Completed,
		WelderStats:    []domain.WelderStat{},
	}
	for _, w := range e.state.Welders {
		total := 0.0
		for _, r := range w.WorkRecords {
			if r.Article == article {
				total += r.Quantity
			}
		}
		if total > 0 {
			stats.WelderStats = append(stats.WelderStats, domain.WelderStat{
				WelderID:   w.ID,
				WelderName: w.Name,
				Quantity:   total,
			})
		}
	}
	return stats, nil
}

// WelderSummaries is the main-screen list: welders freshest first, each
// with up to three of today's article/quantity lines.
func (e *Engine) WelderSummaries() []domain.WelderSummary {
	today := e.today()

	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]domain.WelderSummary, 0, len(e.state.Welders))
	for _, w := range e.state.Welders {
		qtyByArticle := map[string]float64{}
		var order []string
		for _, r := range w.WorkRecords {
			if r.Date != today {
				continue
			}
			if _, seen := qtyByArticle[r.Article]; !seen {
				order = append(order, r.Article)
			}
			qtyByArticle[r.Article] += r.Quantity
		}

		s := domain.WelderSummary{Welder: w.Clone(), TodayArticles: []string{}}
		for i, art := range order {
			if i == 3 {
				break
			}
			s.TodayArticles = append(s.TodayArticles, fmt.Sprintf("%s - %.2f шт", art, qtyByArticle[art]))
		}
		if extra := len(order) - 3; extra > 0 {
			s.MoreCount = extra
		}
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt > out[j].UpdatedAt
	})
	return out
}
