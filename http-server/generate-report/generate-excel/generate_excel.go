package generate_excel

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/woolfich/Z-reliase2/http-server/api"
)

type ReportService interface {
	DayReport(ctx context.Context, date string) ([]byte, error)
}

// GenerateReportExcel отдаёт суточный отчёт по выработке в xlsx.
// Без параметра date — отчёт за сегодня.
func GenerateReportExcel(log *slog.Logger, service ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.generate-report.GenerateReportExcel"

		date := r.URL.Query().Get("date")
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		data, err := service.DayReport(ctx, date)
		if err != nil {
			api.Fail(log, w, r, op, err)
			return
		}

		filename := fmt.Sprintf("vyrabotka-%s.xlsx", date)
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		if _, err := w.Write(data); err != nil {
			log.Error("не удалось отдать отчёт", slog.String("op", op), slog.String("error", err.Error()))
		}
	}
}
