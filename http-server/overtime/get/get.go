package get

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/woolfich/Z-reliase2/http-server/api"
)

type OvertimeQuery interface {
	AvailableOvertime(welderID, date string) (float64, error)
}

type Response struct {
	Date      string  `json:"date"`
	Available float64 `json:"available"`
}

// GetAvailableOvertime: сколько часов из банка ещё влезает в день без
// превышения восьмичасовой нормы. Без параметра date считаем за сегодня.
func GetAvailableOvertime(log *slog.Logger, query OvertimeQuery) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.overtime.get.GetAvailableOvertime"

		welderID := chi.URLParam(r, "id")
		date := r.URL.Query().Get("date")
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		available, err := query.AvailableOvertime(welderID, date)
		if err != nil {
			api.Fail(log, w, r, op, err)
			return
		}

		render.JSON(w, r, Response{Date: date, Available: available})
	}
}
