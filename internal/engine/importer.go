package engine

import (
	"strings"

	"github.com/woolfich/Z-reliase2/internal/domain"
)

// ImportSummary tells the caller how much of the document actually landed.
type ImportSummary struct {
	Welders int `json:"welders"`
	Norms   int `json:"norms"`
	Plan    int `json:"plan"`
}

// Import merges an external document into the aggregate. Purely additive:
// welders match by name (case-insensitive), norms by article, plan
// positions by article with planned/completed summed in place. Imported
// entities always get fresh identity, ids are never trusted.
func (e *Engine) Import(doc domain.ExportDocument) ImportSummary {
	e.mu.Lock()
	defer e.mu.Unlock()

	var sum ImportSummary

	for _, in := range doc.Welders {
		if e.welderByName(in.Name) != nil {
			continue
		}
		w := in.Clone()
		w.ID = e.newID()
		for i := range w.WorkRecords {
			w.WorkRecords[i].ID = e.newID()
			w.WorkRecords[i].WelderID = w.ID
		}
		e.state.Welders = append(e.state.Welders, w)
		sum.Welders++
	}

	for _, in := range doc.Norms {
		if e.normByArticle(in.Article) != nil {
			continue
		}
		n := in
		n.ID = e.newID()
		e.state.Norms = append(e.state.Norms, n)
		sum.Norms++
	}

	for _, in := range doc.Plan {
		if p := e.planByArticle(in.Article); p != nil {
			p.Planned += in.Planned
			p.Completed += in.Completed
			p.IsLocked = recalcLock(*p)
			p.UpdatedAt = e.nowMillis()
			sum.Plan++
			continue
		}
		p := in
		p.ID = e.newID()
		p.IsLocked = recalcLock(p)
		e.state.Plan = append(e.state.Plan, p)
		sum.Plan++
	}

	if sum.Welders+sum.Norms+sum.Plan > 0 {
		e.changed()
	}
	return sum
}

func (e *Engine) welderByName(name string) *domain.Welder {
	for i := range e.state.Welders {
		if strings.EqualFold(e.state.Welders[i].Name, name) {
			return &e.state.Welders[i]
		}
	}
	return nil
}

func (e *Engine) normByArticle(article string) *domain.Norm {
	for i := range e.state.Norms {
		if e.state.Norms[i].Article == article {
			return &e.state.Norms[i]
		}
	}
	return nil
}

func (e *Engine) planByArticle(article string) *domain.PlanItem {
	for i := range e.state.Plan {
		if e.state.Plan[i].Article == article {
			return &e.state.Plan[i]
		}
	}
	return nil
}
