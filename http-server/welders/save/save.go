package save

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/woolfich/Z-reliase2/http-server/api"
	"github.com/woolfich/Z-reliase2/internal/domain"
)

type WelderAdder interface {
	AddWelder(name string) (domain.Welder, error)
}

type Request struct {
	Name string `json:"name"`
}

func SaveWelder(log *slog.Logger, adder WelderAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.welders.save.SaveWelder"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Неверный JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Bad request: invalid JSON", http.StatusBadRequest)
			return
		}

		welder, err := adder.AddWelder(req.Name)
		if err != nil {
			api.Fail(log, w, r, op, err)
			return
		}

		log.Info("сварщик добавлен", slog.String("op", op), slog.String("name", welder.Name))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, welder)
	}
}
