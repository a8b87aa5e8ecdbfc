package export

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/woolfich/Z-reliase2/internal/domain"
)

type Exporter interface {
	Snapshot() domain.AppState
}

// ExportData выгружает агрегат как файл welders-data-<дата>.json с
// отметкой времени экспорта.
func ExportData(log *slog.Logger, exporter Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.transfer.export.ExportData"

		state := exporter.Snapshot()
		now := time.Now()

		doc := domain.ExportDocument{
			Welders:    state.Welders,
			Norms:      state.Norms,
			Plan:       state.Plan,
			ExportedAt: now.Format(time.RFC3339),
		}

		filename := fmt.Sprintf("welders-data-%s.json", now.Format("2006-01-02"))
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		log.Info("экспорт данных", slog.String("op", op), slog.String("file", filename))
		render.JSON(w, r, doc)
	}
}
