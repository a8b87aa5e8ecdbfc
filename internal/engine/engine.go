// Package engine implements the work-accounting state machine: welders,
// norms and the production plan live in one aggregate, and every command
// is a single atomic transition that keeps the derived fields (daily
// hours, overtime, plan completion and locking) consistent.
package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/woolfich/Z-reliase2/internal/domain"
)

// WorkdayHours is the nominal shift length; everything above it on a
// given day goes into the welder's overtime bank.
const WorkdayHours = 8.0

const dateLayout = "2006-01-02"

type Engine struct {
	mu    sync.Mutex
	state domain.AppState

	now   func() time.Time
	newID func() string

	observers []func(domain.AppState)
}

func New() *Engine {
	return &Engine{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// OnChange registers an observer called with a snapshot after every
// successful mutating command. Observers are invoked while the engine is
// locked and must not call back into it; hand heavy work to a goroutine.
func (e *Engine) OnChange(fn func(domain.AppState)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.observers = append(e.observers, fn)
}

// Snapshot returns a deep copy of the whole aggregate.
func (e *Engine) Snapshot() domain.AppState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// Replace swaps the whole in-memory aggregate for an externally loaded
// snapshot. Last writer wins at aggregate granularity; observers are not
// notified, the snapshot is already persisted truth.
func (e *Engine) Replace(state domain.AppState) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range state.Welders {
		if state.Welders[i].TimeAdjustments == nil {
			state.Welders[i].TimeAdjustments = map[string]float64{}
		}
	}
	e.state = state
}

// Reset drops everything.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = domain.AppState{}
	e.changed()
}

func (e *Engine) changed() {
	if len(e.observers) == 0 {
		return
	}
	snap := e.state.Clone()
	for _, fn := range e.observers {
		fn(snap)
	}
}

func (e *Engine) nowMillis() int64 {
	return e.now().UnixMilli()
}

func (e *Engine) today() string {
	return e.now().Format(dateLayout)
}
