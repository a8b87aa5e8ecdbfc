package engine

import (
	"strings"
	"time"

	"github.com/woolfich/Z-reliase2/internal/domain"
)

func (e *Engine) AddWelder(name string) (domain.Welder, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Welder{}, domain.Invalid("name", "фамилия не может быть пустой")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.nowMillis()
	w := domain.Welder{
		ID:              e.newID(),
		Name:            name,
		WorkRecords:     []domain.WorkRecord{},
		TimeAdjustments: map[string]float64{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	e.state.Welders = append([]domain.Welder{w}, e.state.Welders...)
	e.changed()
	return w.Clone(), nil
}

// DeleteWelder discards the welder together with his work records. The
// plan keeps its completion totals: produced pieces stay produced.
func (e *Engine) DeleteWelder(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, w := range e.state.Welders {
		if w.ID == id {
			e.state.Welders = append(e.state.Welders[:i], e.state.Welders[i+1:]...)
			e.changed()
			return
		}
	}
}

// AddWorkRecord books produced pieces for today. One transition does all
// of it: overtime accrual against the 8-hour day, merge into today's
// same-article record, plan completion delta.
//
// Overtime is re-derived from the full daily total on every call, not
// from a running excess. Repeated adds past the threshold therefore each
// contribute the whole current excess. Historical behavior, kept as is.
func (e *Engine) AddWorkRecord(welderID, article string, quantity float64) (domain.Welder, error) {
	article = domain.FormatArticle(article)
	if !domain.IsValidArticle(article) {
		return domain.Welder{}, domain.Invalid("article", "только буквы и цифры")
	}
	if quantity <= 0 {
		return domain.Welder{}, domain.Invalid("quantity", "количество должно быть больше нуля")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	w := e.welderByID(welderID)
	if w == nil {
		return domain.Welder{}, domain.NotFound("welder", welderID)
	}

	today := e.today()

	todayWorkTime := 0.0
	for _, r := range w.WorkRecords {
		if r.Date == today {
			todayWorkTime += e.resolveTime(r.Article, r.Quantity)
		}
	}
	todayTime := todayWorkTime + w.TimeAdjustments[today]

	newTime := e.resolveTime(article, quantity)
	totalTime := todayTime + newTime
	if totalTime > WorkdayHours {
		w.Overtime += totalTime - WorkdayHours
	}

	now := e.nowMillis()
	merged := false
	for i := range w.WorkRecords {
		r := &w.WorkRecords[i]
		if r.Article == article && r.Date == today {
			r.Quantity += quantity
			r.UpdatedAt = now
			merged = true
			break
		}
	}
	if !merged {
		rec := domain.WorkRecord{
			ID:        e.newID(),
			Article:   article,
			Quantity:  quantity,
			WelderID:  w.ID,
			Date:      today,
			CreatedAt: now,
			UpdatedAt: now,
		}
		w.WorkRecords = append([]domain.WorkRecord{rec}, w.WorkRecords...)
	}
	w.UpdatedAt = now

	e.applyCompletionDelta(article, quantity)
	e.changed()
	return w.Clone(), nil
}

// DeleteWorkRecord removes one record and reverses its plan delta.
// Unknown welder or record is a silent no-op: deletions race with the
// UI re-render. Overtime already banked is not taken back.
func (e *Engine) DeleteWorkRecord(welderID, recordID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	w := e.welderByID(welderID)
	if w == nil {
		return
	}

	for i, r := range w.WorkRecords {
		if r.ID != recordID {
			continue
		}
		w.WorkRecords = append(w.WorkRecords[:i], w.WorkRecords[i+1:]...)
		w.UpdatedAt = e.nowMillis()
		e.applyCompletionDelta(r.Article, -r.Quantity)
		e.changed()
		return
	}
}

// UseOvertime spends banked hours as a time adjustment on the given day.
// Adjustments accumulate per date, they are never overwritten.
func (e *Engine) UseOvertime(welderID, date string, hours float64) (domain.Welder, error) {
	if hours <= 0 {
		return domain.Welder{}, domain.Invalid("hours", "часы должны быть больше нуля")
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return domain.Welder{}, domain.Invalid("date", "ожидается дата в формате ГГГГ-ММ-ДД")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	w := e.welderByID(welderID)
	if w == nil {
		return domain.Welder{}, domain.NotFound("welder", welderID)
	}
	if w.Overtime < hours {
		return domain.Welder{}, domain.Invalid("hours", "недостаточно накопленной переработки")
	}

	if w.TimeAdjustments == nil {
		w.TimeAdjustments = map[string]float64{}
	}
	w.TimeAdjustments[date] += hours
	w.Overtime -= hours
	if w.Overtime < 0 {
		w.Overtime = 0
	}
	w.UpdatedAt = e.nowMillis()
	e.changed()
	return w.Clone(), nil
}

// UpdateOvertime is the administrative overwrite of the overtime bank.
// Adjustments already applied to days stay as they are.
func (e *Engine) UpdateOvertime(welderID string, hours float64) (domain.Welder, error) {
	if hours < 0 {
		return domain.Welder{}, domain.Invalid("overtime", "переработка не может быть отрицательной")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	w := e.welderByID(welderID)
	if w == nil {
		return domain.Welder{}, domain.NotFound("welder", welderID)
	}
	w.Overtime = hours
	w.UpdatedAt = e.nowMillis()
	e.changed()
	return w.Clone(), nil
}

// AvailableOvertime answers how many banked hours could still be applied
// to the given day without pushing it past the nominal 8: the gate for
// the "apply overtime" action.
func (e *Engine) AvailableOvertime(welderID, date string) (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	w := e.welderByID(welderID)
	if w == nil {
		return 0, domain.NotFound("welder", welderID)
	}
	if w.Overtime <= 0 {
		return 0, nil
	}

	dayTime := w.TimeAdjustments[date]
	for _, r := range w.WorkRecords {
		if r.Date == date {
			dayTime += e.resolveTime(r.Article, r.Quantity)
		}
	}

	remaining := WorkdayHours - dayTime
	if remaining < 0 {
		remaining = 0
	}
	if w.Overtime < remaining {
		return w.Overtime, nil
	}
	return remaining, nil
}

// welderByID returns a pointer into the state slice; caller holds the lock.
func (e *Engine) welderByID(id string) *domain.Welder {
	for i := range e.state.Welders {
		if e.state.Welders[i].ID == id {
			return &e.state.Welders[i]
		}
	}
	return nil
}
