package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/woolfich/Z-reliase2/internal/domain"
)

func exportOf(e *Engine) domain.ExportDocument {
	snap := e.Snapshot()
	return domain.ExportDocument{
		Welders:    snap.Welders,
		Norms:      snap.Norms,
		Plan:       snap.Plan,
		ExportedAt: time.Now().Format(time.RFC3339),
	}
}

// Круговой тест: экспорт в пустой движок воспроизводит сварщиков по
// фамилиям, нормы по артикулам и суммы плана — идентификаторы новые.
func TestImport_RoundTrip(t *testing.T) {
	src := newTestEngine()
	_, err := src.AddNorm("XT44", 0.5)
	assert.NoError(t, err)
	_, err = src.AddPlanItem("XT44", 50)
	assert.NoError(t, err)
	w := mustAddWelder(t, src, "Иванов")
	_, err = src.AddWorkRecord(w.ID, "XT44", 20)
	assert.NoError(t, err)
	_, err = src.UseOvertime(w.ID, "2024-01-10", 1.0)
	assert.NoError(t, err)

	dst := newTestEngine()
	sum := dst.Import(exportOf(src))

	assert.Equal(t, ImportSummary{Welders: 1, Norms: 1, Plan: 1}, sum)

	snap := dst.Snapshot()
	assert.Equal(t, "Иванов", snap.Welders[0].Name)
	assert.NotEqual(t, w.ID, snap.Welders[0].ID)
	assert.Equal(t, snap.Welders[0].ID, snap.Welders[0].WorkRecords[0].WelderID)
	assert.Equal(t, 1.0, snap.Welders[0].TimeAdjustments["2024-01-10"])
	assert.Equal(t, "XT44", snap.Norms[0].Article)
	assert.Equal(t, 50.0, snap.Plan[0].Planned)
	assert.Equal(t, 20.0, snap.Plan[0].Completed)
}

func TestImport_SkipsDuplicateWeldersByName(t *testing.T) {
	e := newTestEngine()
	mustAddWelder(t, e, "Иванов")

	sum := e.Import(domain.ExportDocument{
		Welders: []domain.Welder{
			{ID: "x", Name: "иванов"},
			{ID: "y", Name: "Петров"},
		},
	})

	assert.Equal(t, 1, sum.Welders)
	assert.Len(t, e.Snapshot().Welders, 2)
}

func TestImport_NeverOverwritesNorms(t *testing.T) {
	e := newTestEngine()
	_, err := e.AddNorm("XT44", 0.5)
	assert.NoError(t, err)

	sum := e.Import(domain.ExportDocument{
		Norms: []domain.Norm{{ID: "x", Article: "XT44", TimePerUnit: 9}},
	})

	assert.Equal(t, 0, sum.Norms)
	assert.Equal(t, 0.5, e.Snapshot().Norms[0].TimePerUnit)
}

func TestImport_SumsPlanInPlace(t *testing.T) {
	e := newTestEngine()
	_, err := e.AddPlanItem("XT44", 30)
	assert.NoError(t, err)

	e.Import(domain.ExportDocument{
		Plan: []domain.PlanItem{{ID: "x", Article: "XT44", Planned: 20, Completed: 50}},
	})

	p := e.Snapshot().Plan[0]
	assert.Equal(t, 50.0, p.Planned)
	assert.Equal(t, 50.0, p.Completed)
	assert.True(t, p.IsLocked)
}

func TestImport_PartialDocument(t *testing.T) {
	e := newTestEngine()

	sum := e.Import(domain.ExportDocument{
		Norms: []domain.Norm{{ID: "x", Article: "XT44", TimePerUnit: 0.5}},
	})

	assert.Equal(t, ImportSummary{Norms: 1}, sum)
	snap := e.Snapshot()
	assert.Empty(t, snap.Welders)
	assert.Empty(t, snap.Plan)
}

func TestReset(t *testing.T) {
	e := newTestEngine()
	mustAddWelder(t, e, "Иванов")
	_, err := e.AddNorm("XT44", 0.5)
	assert.NoError(t, err)

	e.Reset()

	snap := e.Snapshot()
	assert.Empty(t, snap.Welders)
	assert.Empty(t, snap.Norms)
	assert.Empty(t, snap.Plan)
}

func TestReplace_NormalizesAdjustments(t *testing.T) {
	e := newTestEngine()

	e.Replace(domain.AppState{
		Welders: []domain.Welder{{ID: "w1", Name: "Иванов"}},
	})

	got := e.Snapshot().Welders[0]
	assert.NotNil(t, got.TimeAdjustments)
}
