package engine

import (
	"strings"

	"github.com/woolfich/Z-reliase2/internal/domain"
)

// AddNorm registers a time norm for an article. Самый свежий — первым в списке.
func (e *Engine) AddNorm(article string, timePerUnit float64) (domain.Norm, error) {
	article = domain.FormatArticle(article)
	if !domain.IsValidArticle(article) {
		return domain.Norm{}, domain.Invalid("article", "только буквы и цифры")
	}
	if timePerUnit <= 0 {
		return domain.Norm{}, domain.Invalid("timePerUnit", "норма времени должна быть больше нуля")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, n := range e.state.Norms {
		if n.Article == article {
			return domain.Norm{}, &domain.DuplicateError{Article: article}
		}
	}

	now := e.nowMillis()
	norm := domain.Norm{
		ID:          e.newID(),
		Article:     article,
		TimePerUnit: timePerUnit,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	e.state.Norms = append([]domain.Norm{norm}, e.state.Norms...)
	e.changed()
	return norm, nil
}

func (e *Engine) UpdateNorm(id, article string, timePerUnit float64) (domain.Norm, error) {
	article = domain.FormatArticle(article)
	if !domain.IsValidArticle(article) {
		return domain.Norm{}, domain.Invalid("article", "только буквы и цифры")
	}
	if timePerUnit <= 0 {
		return domain.Norm{}, domain.Invalid("timePerUnit", "норма времени должна быть больше нуля")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	idx := -1
	for i, n := range e.state.Norms {
		if n.ID == id {
			idx = i
		}
	}
	if idx < 0 {
		return domain.Norm{}, domain.NotFound("norm", id)
	}
	for i, n := range e.state.Norms {
		if i != idx && n.Article == article {
			return domain.Norm{}, &domain.DuplicateError{Article: article}
		}
	}

	n := &e.state.Norms[idx]
	n.Article = article
	n.TimePerUnit = timePerUnit
	n.UpdatedAt = e.nowMillis()
	e.changed()
	return *n, nil
}

// DeleteNorm is idempotent. Historical work records keep their article
// string; once the norm is gone their computed time resolves to zero.
func (e *Engine) DeleteNorm(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, n := range e.state.Norms {
		if n.ID == id {
			e.state.Norms = append(e.state.Norms[:i], e.state.Norms[i+1:]...)
			e.changed()
			return
		}
	}
}

// ResolveTime is the single source of truth for hours: norm time per unit
// times quantity, or 0 when no norm matches the article.
func (e *Engine) ResolveTime(article string, quantity float64) float64 {
	article = domain.FormatArticle(article)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.resolveTime(article, quantity)
}

// resolveTime expects a normalized article and a held lock.
func (e *Engine) resolveTime(article string, quantity float64) float64 {
	for _, n := range e.state.Norms {
		if n.Article == article {
			return n.TimePerUnit * quantity
		}
	}
	return 0
}

// SuggestNorms is the plan-screen autosuggest: case-insensitive substring
// match over norm articles, at most five results.
func (e *Engine) SuggestNorms(query string) []domain.Norm {
	search := domain.FormatArticle(query)
	if search == "" {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	var out []domain.Norm
	for _, n := range e.state.Norms {
		if strings.Contains(n.Article, search) {
			out = append(out, n)
			if len(out) == 5 {
				break
			}
		}
	}
	return out
}
