package handlers

import (
	"encoding/json"
	"net/http"

	"server/internal/compose"
	"server/internal/infra"
	imgprov "server/internal/providers/image"
)

// App carries the wired collaborators shared by all handlers.
type App struct {
	Pipeline   *compose.Pipeline
	Generators map[string]imgprov.Generator
	Config     *infra.Config
	Logger     infra.Logger
}

// NewApp builds the handler container.
func NewApp(pipeline *compose.Pipeline, generators map[string]imgprov.Generator, cfg *infra.Config, logger infra.Logger) *App {
	return &App{Pipeline: pipeline, Generators: generators, Config: cfg, Logger: logger}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, msg string) {
	a.json(w, status, map[string]string{"error": code, "message": msg})
}
