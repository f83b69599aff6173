// Package image defines the generation-backend contract consumed by the
// composition façade. Providers turn a text prompt into background imagery;
// they are strategy implementations behind a single interface.
package image

import "context"

// GenerateRequest describes a normalized request passed to any image provider.
type GenerateRequest struct {
	Prompt    string
	Width     int
	Height    int
	Quantity  int
	RequestID string
	Locale    string
}

// Asset represents one generated background image.
type Asset struct {
	Data   []byte
	Format string
	Width  int
	Height int
}

// Generator is the contract implemented by all image providers.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) ([]Asset, error)
}
