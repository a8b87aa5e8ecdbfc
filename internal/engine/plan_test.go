package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/woolfich/Z-reliase2/internal/domain"
)

func TestAddPlanItem_MergesByArticle(t *testing.T) {
	e := newTestEngine()

	first, err := e.AddPlanItem("xt 44", 30)
	assert.NoError(t, err)
	second, err := e.AddPlanItem("XT44", 20)
	assert.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 50.0, second.Planned)
	assert.Len(t, e.Snapshot().Plan, 1)
}

func TestPlanCompletion_TracksExistingRecords(t *testing.T) {
	e := newTestEngine()
	_, err := e.AddPlanItem("XT44", 100)
	assert.NoError(t, err)
	ivanov := mustAddWelder(t, e, "Иванов")
	petrov := mustAddWelder(t, e, "Петров")

	_, err = e.AddWorkRecord(ivanov.ID, "XT44", 10)
	assert.NoError(t, err)
	_, err = e.AddWorkRecord(petrov.ID, "XT44", 15)
	assert.NoError(t, err)

	assert.Equal(t, 25.0, e.Snapshot().Plan[0].Completed)

	rec := e.Snapshot().Welders[0].WorkRecords[0]
	e.DeleteWorkRecord(e.Snapshot().Welders[0].ID, rec.ID)

	// completed всегда равен сумме живых записей по артикулу.
	assert.Equal(t, 25.0-rec.Quantity, e.Snapshot().Plan[0].Completed)
}

func TestPlan_NoImplicitItemForUnplannedArticle(t *testing.T) {
	e := newTestEngine()
	w := mustAddWelder(t, e, "Иванов")

	_, err := e.AddWorkRecord(w.ID, "XT44", 10)
	assert.NoError(t, err)

	assert.Empty(t, e.Snapshot().Plan)
}

// Сценарий: план 50, выполнили 50 — заблокировано; удалили запись на 20 —
// снова открыто.
func TestLock_SetAndRevert(t *testing.T) {
	e := newTestEngine()
	_, err := e.AddPlanItem("XT44", 50)
	assert.NoError(t, err)
	w := mustAddWelder(t, e, "Иванов")

	_, err = e.AddWorkRecord(w.ID, "XT44", 30)
	assert.NoError(t, err)
	assert.False(t, e.Snapshot().Plan[0].IsLocked)

	// 30+20 = 50 — позиция закрывается ровно в момент достижения плана.
	got, err := e.AddWorkRecord(w.ID, "XT44", 20)
	assert.NoError(t, err)
	assert.True(t, e.Snapshot().Plan[0].IsLocked)
	assert.Equal(t, 50.0, e.Snapshot().Plan[0].Completed)

	e.DeleteWorkRecord(w.ID, got.WorkRecords[0].ID)

	p := e.Snapshot().Plan[0]
	assert.Equal(t, 0.0, p.Completed)
	assert.False(t, p.IsLocked)
}

func TestLock_ReleasedWhenPlanRaised(t *testing.T) {
	e := newTestEngine()
	_, err := e.AddPlanItem("XT44", 10)
	assert.NoError(t, err)
	w := mustAddWelder(t, e, "Иванов")
	_, err = e.AddWorkRecord(w.ID, "XT44", 10)
	assert.NoError(t, err)
	assert.True(t, e.Snapshot().Plan[0].IsLocked)

	item, err := e.UpdatePlanItem(e.Snapshot().Plan[0].ID, 40)
	assert.NoError(t, err)

	assert.False(t, item.IsLocked)
	assert.Equal(t, 40.0, item.Planned)
}

func TestDeleteAllRecords_ResetsCompletionAndLock(t *testing.T) {
	e := newTestEngine()
	_, err := e.AddPlanItem("XT44", 5)
	assert.NoError(t, err)
	w := mustAddWelder(t, e, "Иванов")
	got, err := e.AddWorkRecord(w.ID, "XT44", 5)
	assert.NoError(t, err)
	assert.True(t, e.Snapshot().Plan[0].IsLocked)

	e.DeleteWorkRecord(w.ID, got.WorkRecords[0].ID)

	p := e.Snapshot().Plan[0]
	assert.Equal(t, 0.0, p.Completed)
	assert.False(t, p.IsLocked)
}

func TestUpdatePlanItem_NotFound(t *testing.T) {
	e := newTestEngine()

	_, err := e.UpdatePlanItem("nope", 10)

	var nfErr *domain.NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestDeletePlanItem_Idempotent(t *testing.T) {
	e := newTestEngine()
	item, err := e.AddPlanItem("XT44", 10)
	assert.NoError(t, err)

	e.DeletePlanItem(item.ID)
	e.DeletePlanItem(item.ID)

	assert.Empty(t, e.Snapshot().Plan)
}

func TestSuggestPlan_OnlyUnlockedCappedAtFive(t *testing.T) {
	e := newTestEngine()
	for _, art := range []string{"B1", "B2", "B3", "B4", "B5", "B6", "B7"} {
		_, err := e.AddPlanItem(art, 10)
		assert.NoError(t, err)
	}
	_, err := e.AddPlanItem("C1", 1)
	assert.NoError(t, err)
	w := mustAddWelder(t, e, "Иванов")
	_, err = e.AddWorkRecord(w.ID, "C1", 1)
	assert.NoError(t, err)

	all := e.SuggestPlan("")
	assert.Len(t, all, 5)

	b := e.SuggestPlan("b")
	assert.Len(t, b, 5)
	for _, p := range b {
		assert.NotEqual(t, "C1", p.Article)
		assert.False(t, p.IsLocked)
	}

	assert.Empty(t, e.SuggestPlan("C1")) // закрытая позиция не предлагается
}
