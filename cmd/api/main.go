package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"server/internal/compose"
	"server/internal/fontpack"
	"server/internal/http/handlers"
	"server/internal/http/httpapi"
	"server/internal/infra"
	imgprov "server/internal/providers/image"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	// Font resolution failures must prevent the service from starting rather
	// than fail per request.
	fonts, err := fontpack.New(logger,
		fontpack.Family{Name: fontpack.DisplayFamily, Paths: cfg.DisplayFontPaths},
		fontpack.Family{Name: fontpack.TextFamily, Paths: cfg.TextFontPaths},
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to resolve fonts")
	}

	pipeline := compose.NewPipeline(fonts, layoutFromConfig(cfg), defaultsFromConfig(cfg), logger)

	generators := map[string]imgprov.Generator{
		"synthetic": imgprov.NewSyntheticGenerator(logger),
	}

	app := handlers.NewApp(pipeline, generators, cfg, logger)
	router := httpapi.NewRouter(app)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

func layoutFromConfig(cfg *infra.Config) compose.Layout {
	l := compose.DefaultLayout()
	l.TopFraction = cfg.ZoneTopFraction
	l.MiddleFraction = cfg.ZoneMiddleFraction
	l.BottomFraction = cfg.ZoneBottomFraction
	l.Padding = cfg.ZonePadding
	l.LineSpacing = cfg.LineSpacing
	l.SizeStep = cfg.FontSizeStep
	return l
}

func defaultsFromConfig(cfg *infra.Config) compose.Defaults {
	return compose.Defaults{
		FontFamily: fontpack.DisplayFamily,
		Sizes: map[compose.Role]int{
			compose.RoleHook: cfg.HookSize,
			compose.RoleBody: cfg.BodySize,
			compose.RoleCTA:  cfg.CTASize,
		},
		MinSizes: map[compose.Role]int{
			compose.RoleHook: cfg.HookMinSize,
			compose.RoleBody: cfg.BodyMinSize,
			compose.RoleCTA:  cfg.CTAMinSize,
		},
		Color:        "#ffffff",
		OutlineColor: "#000000",
		OutlineWidth: 3,
		ButtonColor:  "#ff5722",
	}
}
