package main

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/breakeven-sim/simulator/internal/presets"
	"github.com/breakeven-sim/simulator/internal/scenario"
	"github.com/breakeven-sim/simulator/internal/seed"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

type presetSource interface {
	List() ([]presets.Preset, error)
	Get(key string) (presets.Preset, bool, error)
}

type dbPresets struct {
	db *sql.DB
}

func (p dbPresets) List() ([]presets.Preset, error) {
	return seed.List(p.db)
}

func (p dbPresets) Get(key string) (presets.Preset, bool, error) {
	return seed.Get(p.db, key)
}

type server struct {
	scenarios scenario.Repository
	presets   presetSource
	log       *zap.Logger
}

func newServer(scenarios scenario.Repository, presetSrc presetSource, log *zap.Logger) *server {
	if log == nil {
		log = zap.NewNop()
	}
	return &server{scenarios: scenarios, presets: presetSrc, log: log}
}

func (s *server) routes(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}).Handler)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/calculate", s.handleCalculate)
		r.Post("/sensitivity", s.handleSensitivity)

		r.Get("/presets", s.handleListPresets)
		r.Get("/presets/{key}", s.handleGetPreset)

		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", s.handleListScenarios)
			r.Post("/", s.handleCreateScenario)
			r.Delete("/", s.handleClearScenarios)
			r.Post("/import", s.handleImportScenario)
			r.Get("/{id}", s.handleGetScenario)
			r.Delete("/{id}", s.handleDeleteScenario)
			r.Get("/{id}/csv", s.handleScenarioCSV)
			r.Get("/{id}/text", s.handleScenarioText)
			r.Get("/{id}/export", s.handleExportScenario)
		})
	})

	return r
}

func (s *server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info("request",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
