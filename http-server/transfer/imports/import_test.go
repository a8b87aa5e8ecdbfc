package imports

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/woolfich/Z-reliase2/internal/domain"
	"github.com/woolfich/Z-reliase2/internal/engine"
)

type MockImporter struct {
	mock.Mock
}

func (m *MockImporter) Import(doc domain.ExportDocument) engine.ImportSummary {
	args := m.Called(doc)
	return args.Get(0).(engine.ImportSummary)
}

func TestImportData_Success(t *testing.T) {
	mockImporter := new(MockImporter)
	mockImporter.On("Import", mock.Anything).
		Return(engine.ImportSummary{Welders: 1, Norms: 2})

	handler := ImportData(slog.Default(), mockImporter)

	body := `{"norms":[{"id":"x","article":"XT44","timePerUnit":0.5}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/import", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 1, resp.Added.Welders)

	mockImporter.AssertExpectations(t)
}

// Кривой документ не должен даже дойти до движка.
func TestImportData_MalformedJSON(t *testing.T) {
	mockImporter := new(MockImporter)

	handler := ImportData(slog.Default(), mockImporter)

	req := httptest.NewRequest(http.MethodPost, "/api/import", strings.NewReader(`{"norms":[`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockImporter.AssertNotCalled(t, "Import", mock.Anything)
}
