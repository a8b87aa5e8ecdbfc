package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	resetdata "github.com/woolfich/Z-reliase2/http-server/admin/reset"
	generate_excel "github.com/woolfich/Z-reliase2/http-server/generate-report/generate-excel"
	delnorm "github.com/woolfich/Z-reliase2/http-server/norms/delete"
	getnorm "github.com/woolfich/Z-reliase2/http-server/norms/get"
	savenorm "github.com/woolfich/Z-reliase2/http-server/norms/save"
	upnorm "github.com/woolfich/Z-reliase2/http-server/norms/update"
	getovertime "github.com/woolfich/Z-reliase2/http-server/overtime/get"
	upovertime "github.com/woolfich/Z-reliase2/http-server/overtime/update"
	useovertime "github.com/woolfich/Z-reliase2/http-server/overtime/use"
	delplan "github.com/woolfich/Z-reliase2/http-server/plan/delete"
	getplan "github.com/woolfich/Z-reliase2/http-server/plan/get"
	saveplan "github.com/woolfich/Z-reliase2/http-server/plan/save"
	upplan "github.com/woolfich/Z-reliase2/http-server/plan/update"
	getstate "github.com/woolfich/Z-reliase2/http-server/state/get"
	exportdata "github.com/woolfich/Z-reliase2/http-server/transfer/export"
	importdata "github.com/woolfich/Z-reliase2/http-server/transfer/imports"
	delwelder "github.com/woolfich/Z-reliase2/http-server/welders/delete"
	getwelders "github.com/woolfich/Z-reliase2/http-server/welders/get"
	savewelder "github.com/woolfich/Z-reliase2/http-server/welders/save"
	delwork "github.com/woolfich/Z-reliase2/http-server/work/delete"
	savework "github.com/woolfich/Z-reliase2/http-server/work/save"
	"github.com/woolfich/Z-reliase2/internal/config"
	"github.com/woolfich/Z-reliase2/internal/engine"
	"github.com/woolfich/Z-reliase2/internal/middleware/auth"
	"github.com/woolfich/Z-reliase2/internal/service/report"
)

func routes(cfg config.Config, log *slog.Logger, eng *engine.Engine, reportService *report.Service) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Весь агрегат одним снапшотом для загрузки SPA
	router.Get("/api/state", getstate.GetState(log, eng))

	// Сварщики
	router.Get("/api/welders", getwelders.GetWelders(log, eng))
	router.Post("/api/welders", savewelder.SaveWelder(log, eng))
	router.Delete("/api/welders/{id}", delwelder.DeleteWelder(log, eng))

	// Выработка
	router.Post("/api/welders/{id}/records", savework.SaveWorkRecord(log, eng))
	router.Delete("/api/welders/{id}/records/{recordId}", delwork.DeleteWorkRecord(log, eng))

	// Переработка
	router.Post("/api/welders/{id}/overtime/use", useovertime.UseOvertime(log, eng))
	router.Put("/api/welders/{id}/overtime", upovertime.UpdateOvertime(log, eng))
	router.Get("/api/welders/{id}/overtime/available", getovertime.GetAvailableOvertime(log, eng))

	// Нормы
	router.Post("/api/norms", savenorm.SaveNorm(log, eng))
	router.Put("/api/norms/{id}", upnorm.UpdateNorm(log, eng))
	router.Delete("/api/norms/{id}", delnorm.DeleteNorm(log, eng))
	router.Get("/api/norms/suggest", getnorm.SuggestNorms(log, eng))

	// План
	router.Post("/api/plan", saveplan.SavePlanItem(log, eng))
	router.Put("/api/plan/{id}", upplan.UpdatePlanItem(log, eng))
	router.Delete("/api/plan/{id}", delplan.DeletePlanItem(log, eng))
	router.Get("/api/plan/suggest", getplan.SuggestPlan(log, eng))
	router.Get("/api/articles/{article}/stats", getplan.GetArticleStats(log, eng))

	// Импорт/экспорт
	router.Get("/api/export", exportdata.ExportData(log, eng))
	router.Post("/api/import", importdata.ImportData(log, eng))

	// Отчёт за день
	router.Get("/api/report/excel", generate_excel.GenerateReportExcel(log, reportService))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))
	adminRouter.Post("/reset", resetdata.ResetData(log, eng))
	router.Mount("/api/admin", adminRouter)

	// Статика SPA
	frontendDir := "./frontend-dist"
	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Warn("папка фронтенда не найдена, отдаём только API", "path", frontendDir)
		return router
	}

	fileServer := http.StripPrefix("/", http.FileServer(http.Dir(frontendDir)))
	router.Handle("/assets/*", fileServer)
	router.Handle("/js/*", fileServer)
	router.Handle("/css/*", fileServer)
	router.Handle("/img/*", fileServer)

	// SPA fallback: любой другой путь → index.html
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, r.URL.Path)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})

	return router
}
