package engine

import (
	"strings"

	"github.com/woolfich/Z-reliase2/internal/domain"
)

// AddPlanItem creates a plan position or, if the article is already
// planned, adds the quantity to the existing position.
func (e *Engine) AddPlanItem(article string, planned float64) (domain.PlanItem, error) {
	article = domain.FormatArticle(article)
	if !domain.IsValidArticle(article) {
		return domain.PlanItem{}, domain.Invalid("article", "только буквы и цифры")
	}
	if planned <= 0 {
		return domain.PlanItem{}, domain.Invalid("planned", "план должен быть больше нуля")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.state.Plan {
		p := &e.state.Plan[i]
		if p.Article != article {
			continue
		}
		p.Planned += planned
		p.IsLocked = recalcLock(*p)
		p.UpdatedAt = e.nowMillis()
		e.changed()
		return *p, nil
	}

	now := e.nowMillis()
	item := domain.PlanItem{
		ID:        e.newID(),
		Article:   article,
		Planned:   planned,
		CreatedAt: now,
		UpdatedAt: now,
	}
	e.state.Plan = append([]domain.PlanItem{item}, e.state.Plan...)
	e.changed()
	return item, nil
}

// UpdatePlanItem overwrites the planned quantity (no merge) and
// recomputes the lock.
func (e *Engine) UpdatePlanItem(id string, planned float64) (domain.PlanItem, error) {
	if planned <= 0 {
		return domain.PlanItem{}, domain.Invalid("planned", "план должен быть больше нуля")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.state.Plan {
		p := &e.state.Plan[i]
		if p.ID != id {
			continue
		}
		p.Planned = planned
		p.IsLocked = recalcLock(*p)
		p.UpdatedAt = e.nowMillis()
		e.changed()
		return *p, nil
	}
	return domain.PlanItem{}, domain.NotFound("plan item", id)
}

// DeletePlanItem is idempotent; work records are untouched.
func (e *Engine) DeletePlanItem(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, p := range e.state.Plan {
		if p.ID == id {
			e.state.Plan = append(e.state.Plan[:i], e.state.Plan[i+1:]...)
			e.changed()
			return
		}
	}
}

// applyCompletionDelta propagates a work-record quantity change into the
// matching plan position. Completed is clamped at zero, the lock is
// re-derived. No plan position for the article — nothing to track.
// Caller holds the lock.
func (e *Engine) applyCompletionDelta(article string, delta float64) {
	for i := range e.state.Plan {
		p := &e.state.Plan[i]
		if p.Article != article {
			continue
		}
		p.Completed += delta
		if p.Completed < 0 {
			p.Completed = 0
		}
		p.IsLocked = recalcLock(*p)
		p.UpdatedAt = e.nowMillis()
	}
}

// recalcLock is the only place deriving isLocked: a position is locked
// exactly while completion has reached a non-empty plan.
func recalcLock(p domain.PlanItem) bool {
	return p.Planned > 0 && p.Completed >= p.Planned
}

// SuggestPlan is the welder-card autosuggest: unlocked plan positions
// whose article contains the query, at most five. An empty query offers
// whatever is still open.
func (e *Engine) SuggestPlan(query string) []domain.PlanItem {
	search := domain.FormatArticle(query)

	e.mu.Lock()
	defer e.mu.Unlock()

	var out []domain.PlanItem
	for _, p := range e.state.Plan {
		if p.IsLocked {
			continue
		}
		if search != "" && !strings.Contains(p.Article, search) {
			continue
		}
		out = append(out, p)
		if len(out) == 5 {
			break
		}
	}
	return out
}
