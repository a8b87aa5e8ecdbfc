package delete

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/woolfich/Z-reliase2/http-server/api"
)

type WorkDeleter interface {
	DeleteWorkRecord(welderID, recordID string)
}

// DeleteWorkRecord молча игнорирует несуществующие записи: удаление
// гоняется с перерисовкой интерфейса, повтор не должен падать.
func DeleteWorkRecord(log *slog.Logger, deleter WorkDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.work.delete.DeleteWorkRecord"

		welderID := chi.URLParam(r, "id")
		recordID := chi.URLParam(r, "recordId")

		deleter.DeleteWorkRecord(welderID, recordID)

		log.Info("запись выработки удалена", slog.String("op", op),
			slog.String("welder_id", welderID), slog.String("record_id", recordID))
		render.JSON(w, r, api.OK())
	}
}
