package imports

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/woolfich/Z-reliase2/internal/domain"
	"github.com/woolfich/Z-reliase2/internal/engine"
)

type Importer interface {
	Import(doc domain.ExportDocument) engine.ImportSummary
}

type Response struct {
	Status string               `json:"status"`
	Added  engine.ImportSummary `json:"added"`
}

// ImportData вливает внешний документ в текущее состояние. Слияние
// только добавляет: дубликаты по фамилии и артикулу отбрасываются,
// план суммируется. Битый JSON не трогает состояние вообще.
func ImportData(log *slog.Logger, importer Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.transfer.imports.ImportData"

		var doc domain.ExportDocument
		if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
			log.Error("Неверный JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		added := importer.Import(doc)

		log.Info("импорт данных", slog.String("op", op),
			slog.Int("welders", added.Welders),
			slog.Int("norms", added.Norms),
			slog.Int("plan", added.Plan),
		)

		render.JSON(w, r, Response{Status: "success", Added: added})
	}
}
