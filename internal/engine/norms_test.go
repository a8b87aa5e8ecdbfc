package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/woolfich/Z-reliase2/internal/domain"
)

func TestAddNorm_NormalizesArticle(t *testing.T) {
	e := newTestEngine()

	norm, err := e.AddNorm("  xt 44 ", 0.5)
	assert.NoError(t, err)

	assert.Equal(t, "XT44", norm.Article)
	assert.Equal(t, 0.5, norm.TimePerUnit)
}

func TestAddNorm_CyrillicArticle(t *testing.T) {
	e := newTestEngine()

	norm, err := e.AddNorm("изд7", 1.2)
	assert.NoError(t, err)

	assert.Equal(t, "ИЗД7", norm.Article)
}

func TestAddNorm_Validation(t *testing.T) {
	e := newTestEngine()

	var valErr *domain.ValidationError

	_, err := e.AddNorm("", 0.5)
	assert.ErrorAs(t, err, &valErr)

	_, err = e.AddNorm("XT-44", 0.5)
	assert.ErrorAs(t, err, &valErr)

	_, err = e.AddNorm("XT44", 0)
	assert.ErrorAs(t, err, &valErr)

	assert.Empty(t, e.Snapshot().Norms)
}

func TestAddNorm_Duplicate(t *testing.T) {
	e := newTestEngine()
	_, err := e.AddNorm("XT44", 0.5)
	assert.NoError(t, err)

	_, err = e.AddNorm("xt44", 0.7)

	var dupErr *domain.DuplicateError
	assert.ErrorAs(t, err, &dupErr)
	assert.Len(t, e.Snapshot().Norms, 1)
}

func TestUpdateNorm(t *testing.T) {
	e := newTestEngine()
	norm, err := e.AddNorm("XT44", 0.5)
	assert.NoError(t, err)

	updated, err := e.UpdateNorm(norm.ID, "XT45", 0.7)
	assert.NoError(t, err)

	assert.Equal(t, "XT45", updated.Article)
	assert.Equal(t, 0.7, updated.TimePerUnit)
}

func TestUpdateNorm_NotFound(t *testing.T) {
	e := newTestEngine()

	_, err := e.UpdateNorm("nope", "XT44", 0.5)

	var nfErr *domain.NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestUpdateNorm_DuplicateWithOtherNorm(t *testing.T) {
	e := newTestEngine()
	a, err := e.AddNorm("A1", 0.5)
	assert.NoError(t, err)
	_, err = e.AddNorm("B1", 0.5)
	assert.NoError(t, err)

	// Свой же артикул — не дубль.
	_, err = e.UpdateNorm(a.ID, "A1", 0.9)
	assert.NoError(t, err)

	_, err = e.UpdateNorm(a.ID, "B1", 0.9)
	var dupErr *domain.DuplicateError
	assert.ErrorAs(t, err, &dupErr)
}

func TestResolveTime(t *testing.T) {
	e := newTestEngine()
	_, err := e.AddNorm("XT44", 0.5)
	assert.NoError(t, err)

	assert.Equal(t, 10.0, e.ResolveTime("xt 44", 20))
	assert.Equal(t, 0.0, e.ResolveTime("UNKNOWN", 20))
}

// Удаление нормы не трогает ни историю, ни план: осиротевший артикул
// просто перестаёт давать время.
func TestDeleteNorm_OrphansResolveToZero(t *testing.T) {
	e := newTestEngine()
	norm, err := e.AddNorm("XT44", 0.5)
	assert.NoError(t, err)
	_, err = e.AddPlanItem("XT44", 50)
	assert.NoError(t, err)
	w := mustAddWelder(t, e, "Иванов")
	_, err = e.AddWorkRecord(w.ID, "XT44", 4)
	assert.NoError(t, err)

	e.DeleteNorm(norm.ID)
	e.DeleteNorm(norm.ID) // идемпотентно

	snap := e.Snapshot()
	assert.Empty(t, snap.Norms)
	assert.Len(t, snap.Welders[0].WorkRecords, 1)
	assert.Equal(t, 4.0, snap.Plan[0].Completed)
	assert.Equal(t, 0.0, e.ResolveTime("XT44", 100))
}

func TestSuggestNorms(t *testing.T) {
	e := newTestEngine()
	for _, art := range []string{"XT44", "XT45", "XT46", "XT47", "XT48", "XT49", "AB1"} {
		_, err := e.AddNorm(art, 1)
		assert.NoError(t, err)
	}

	assert.Empty(t, e.SuggestNorms(""))
	assert.Len(t, e.SuggestNorms("xt"), 5)

	got := e.SuggestNorms("ab")
	assert.Len(t, got, 1)
	assert.Equal(t, "AB1", got[0].Article)
}

func TestNorms_MostRecentFirst(t *testing.T) {
	e := newTestEngine()
	_, err := e.AddNorm("A1", 1)
	assert.NoError(t, err)
	_, err = e.AddNorm("B1", 1)
	assert.NoError(t, err)

	norms := e.Snapshot().Norms
	assert.Equal(t, "B1", norms[0].Article)
	assert.Equal(t, "A1", norms[1].Article)
}
