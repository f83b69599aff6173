package infra

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv string
	Port   string

	HTTPReadTimeout       time.Duration
	HTTPReadHeaderTimeout time.Duration
	HTTPWriteTimeout      time.Duration
	HTTPIdleTimeout       time.Duration

	// Ordered chains of TTF paths tried in order; when none loads, the
	// embedded fallback font is used instead.
	DisplayFontPaths []string
	TextFontPaths    []string

	// Safe-zone geometry. Fractions apply to canvas height, top to bottom.
	ZoneTopFraction    float64
	ZoneMiddleFraction float64
	ZoneBottomFraction float64
	ZonePadding        int
	LineSpacing        int
	FontSizeStep       int

	// Per-role font size defaults, overridable per request.
	HookSize    int
	BodySize    int
	CTASize     int
	HookMinSize int
	BodyMinSize int
	CTAMinSize  int

	DefaultPreset string
	JPEGQuality   int
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:                getEnv("APP_ENV", "development"),
		Port:                  getEnv("PORT", "8080"),
		HTTPReadTimeout:       time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPReadHeaderTimeout: time.Second * time.Duration(getEnvInt("HTTP_READ_HEADER_TIMEOUT_SECONDS", 5)),
		HTTPWriteTimeout:      time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 30)),
		HTTPIdleTimeout:       time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		DisplayFontPaths:      getEnvList("DISPLAY_FONT_PATHS"),
		TextFontPaths:         getEnvList("TEXT_FONT_PATHS"),
		ZoneTopFraction:       getEnvFloat("ZONE_TOP_FRACTION", 0.30),
		ZoneMiddleFraction:    getEnvFloat("ZONE_MIDDLE_FRACTION", 0.40),
		ZoneBottomFraction:    getEnvFloat("ZONE_BOTTOM_FRACTION", 0.30),
		ZonePadding:           getEnvInt("ZONE_PADDING", 40),
		LineSpacing:           getEnvInt("LINE_SPACING", 8),
		FontSizeStep:          getEnvInt("FONT_SIZE_STEP", 2),
		HookSize:              getEnvInt("HOOK_FONT_SIZE", 72),
		BodySize:              getEnvInt("BODY_FONT_SIZE", 42),
		CTASize:               getEnvInt("CTA_FONT_SIZE", 48),
		HookMinSize:           getEnvInt("HOOK_MIN_FONT_SIZE", 24),
		BodyMinSize:           getEnvInt("BODY_MIN_FONT_SIZE", 20),
		CTAMinSize:            getEnvInt("CTA_MIN_FONT_SIZE", 20),
		DefaultPreset:         getEnv("DEFAULT_SIZE_PRESET", "instagram_square"),
		JPEGQuality:           getEnvInt("JPEG_QUALITY", 95),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvList(key string) []string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, string(os.PathListSeparator))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
