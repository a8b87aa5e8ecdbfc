package save

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/woolfich/Z-reliase2/internal/domain"
)

type MockWorkAdder struct {
	mock.Mock
}

func (m *MockWorkAdder) AddWorkRecord(welderID, article string, quantity float64) (domain.Welder, error) {
	args := m.Called(welderID, article, quantity)
	return args.Get(0).(domain.Welder), args.Error(1)
}

func requestWithID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestSaveWorkRecord_Success(t *testing.T) {
	mockAdder := new(MockWorkAdder)
	mockAdder.On("AddWorkRecord", "w-1", "XT44", 20.0).Return(domain.Welder{
		ID:       "w-1",
		Name:     "Иванов",
		Overtime: 2.0,
		WorkRecords: []domain.WorkRecord{
			{ID: "r-1", Article: "XT44", Quantity: 20, WelderID: "w-1", Date: "2024-01-15"},
		},
	}, nil)

	handler := SaveWorkRecord(slog.Default(), mockAdder)

	req := httptest.NewRequest(http.MethodPost, "/api/welders/w-1/records",
		strings.NewReader(`{"article":"XT44","quantity":20}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, requestWithID(req, "w-1"))

	assert.Equal(t, http.StatusOK, rr.Code)

	var welder domain.Welder
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &welder)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, welder.Overtime)

	mockAdder.AssertExpectations(t)
}

func TestSaveWorkRecord_WelderNotFound(t *testing.T) {
	mockAdder := new(MockWorkAdder)
	mockAdder.On("AddWorkRecord", "nope", mock.Anything, mock.Anything).
		Return(domain.Welder{}, domain.NotFound("welder", "nope"))

	handler := SaveWorkRecord(slog.Default(), mockAdder)

	req := httptest.NewRequest(http.MethodPost, "/api/welders/nope/records",
		strings.NewReader(`{"article":"XT44","quantity":20}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, requestWithID(req, "nope"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
