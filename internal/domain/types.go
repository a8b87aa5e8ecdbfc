package domain

// Типы данных для учёта работы сварщиков.

type Norm struct {
	ID          string  `json:"id"`
	Article     string  `json:"article"`
	TimePerUnit float64 `json:"timePerUnit"`
	CreatedAt   int64   `json:"createdAt"`
	UpdatedAt   int64   `json:"updatedAt"`
}

type PlanItem struct {
	ID        string  `json:"id"`
	Article   string  `json:"article"`
	Planned   float64 `json:"planned"`
	Completed float64 `json:"completed"`
	IsLocked  bool    `json:"isLocked"`
	CreatedAt int64   `json:"createdAt"`
	UpdatedAt int64   `json:"updatedAt"`
}

type WorkRecord struct {
	ID        string  `json:"id"`
	Article   string  `json:"article"`
	Quantity  float64 `json:"quantity"`
	WelderID  string  `json:"welderId"`
	Date      string  `json:"date"`
	CreatedAt int64   `json:"createdAt"`
	UpdatedAt int64   `json:"updatedAt"`
}

type Welder struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	WorkRecords []WorkRecord `json:"workRecords"`
	Overtime    float64      `json:"overtime"`
	// Корректировки времени по датам (дата -> часы из переработки).
	TimeAdjustments map[string]float64 `json:"timeAdjustments"`
	CreatedAt       int64              `json:"createdAt"`
	UpdatedAt       int64              `json:"updatedAt"`
}

// AppState is the root aggregate: three independent collections,
// cross-referenced only by the article string.
type AppState struct {
	Welders []Welder   `json:"welders"`
	Norms   []Norm     `json:"norms"`
	Plan    []PlanItem `json:"plan"`
}

// ExportDocument is the portable shape written by export and accepted
// (field by field, every array optional) by import.
type ExportDocument struct {
	Welders    []Welder   `json:"welders,omitempty"`
	Norms      []Norm     `json:"norms,omitempty"`
	Plan       []PlanItem `json:"plan,omitempty"`
	ExportedAt string     `json:"exportedAt,omitempty"`
}

// ArticleStats is the per-article breakdown shown next to the work input.
type ArticleStats struct {
	Article        string       `json:"article"`
	TotalPlanned   float64      `json:"totalPlanned"`
	TotalCompleted float64      `json:"totalCompleted"`
	WelderStats    []WelderStat `json:"welderStats"`
}

type WelderStat struct {
	WelderID   string  `json:"welderId"`
	WelderName string  `json:"welderName"`
	Quantity   float64 `json:"quantity"`
}

// WelderSummary is the main-screen list entry: the welder plus a short
// digest of today's output.
type WelderSummary struct {
	Welder
	TodayArticles []string `json:"todayArticles"`
	MoreCount     int      `json:"moreCount"`
}

func (s AppState) Clone() AppState {
	out := AppState{
		Welders: make([]Welder, len(s.Welders)),
		Norms:   make([]Norm, len(s.Norms)),
		Plan:    make([]PlanItem, len(s.Plan)),
	}
	copy(out.Norms, s.Norms)
	copy(out.Plan, s.Plan)
	for i, w := range s.Welders {
		out.Welders[i] = w.Clone()
	}
	return out
}

func (w Welder) Clone() Welder {
	out := w
	out.WorkRecords = make([]WorkRecord, len(w.WorkRecords))
	copy(out.WorkRecords, w.WorkRecords)
	out.TimeAdjustments = make(map[string]float64, len(w.TimeAdjustments))
	for d, h := range w.TimeAdjustments {
		out.TimeAdjustments[d] = h
	}
	return out
}
