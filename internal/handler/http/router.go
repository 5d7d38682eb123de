package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/mesai-app/mesai-backend-go/internal/config"
)

func NewRouter(cfg *config.Config, attendanceHandler AttendanceHandler, reportHandler ReportHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "mesai-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/attendances", func(r chi.Router) {
			r.Get("/", attendanceHandler.List)
			r.Post("/", attendanceHandler.Create)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", attendanceHandler.Get)
				r.Put("/", attendanceHandler.Update)
				r.Patch("/leave", attendanceHandler.SetLeave)
				r.Delete("/", attendanceHandler.Delete)
			})
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/worked-hours", reportHandler.WorkedHours)
		})
	})

	return r
}
