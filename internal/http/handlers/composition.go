package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"image"
	"net/http"
	"strings"

	"github.com/disintegration/imaging"

	"server/internal/compose"
	"server/internal/middleware"
	imgprov "server/internal/providers/image"
)

type blockSpec struct {
	Content       string `json:"content"`
	RequestedSize int    `json:"requested_size"`
	MinSize       int    `json:"min_size"`
	Color         string `json:"color"`
	OutlineColor  string `json:"outline_color"`
	OutlineWidth  int    `json:"outline_width"`
	Style         string `json:"style"`
	ButtonColor   string `json:"button_color"`
}

type generateSpec struct {
	Provider string `json:"provider"`
	Prompt   string `json:"prompt"`
}

type composeRequest struct {
	Size          string               `json:"size"`
	Format        string               `json:"format"`
	Locale        string               `json:"locale"`
	FontFamily    string               `json:"font_family"`
	Padding       int                  `json:"padding"`
	BackgroundB64 string               `json:"background_b64"`
	Generate      *generateSpec        `json:"generate"`
	Blocks        map[string]blockSpec `json:"blocks"`
}

type composeResponse struct {
	ImageB64     string              `json:"image_b64"`
	Format       string              `json:"format"`
	Width        int                 `json:"width"`
	Height       int                 `json:"height"`
	ChosenSizes  map[string]int      `json:"chosen_sizes"`
	WrappedLines map[string][]string `json:"wrapped_lines"`
	Overflow     map[string]bool     `json:"overflow"`
	RequestID    string              `json:"request_id"`
}

// Compose decodes a composition request, resolves the background (uploaded
// bytes or a generated one), runs the pipeline and returns the encoded image
// together with the layout diagnostics.
func (a *App) Compose(w http.ResponseWriter, r *http.Request) {
	var req composeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	size := req.Size
	if size == "" {
		size = a.Config.DefaultPreset
	}
	width, height, err := compose.ResolveSize(size)
	if err != nil {
		a.error(w, http.StatusBadRequest, "unknown_preset", err.Error())
		return
	}

	background, err := a.resolveBackground(r, req, width, height)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_background", err.Error())
		return
	}

	blocks, err := decodeBlocks(req.Blocks)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	result, err := a.Pipeline.Compose(compose.Request{
		Background: background,
		Preset:     size,
		Blocks:     blocks,
		FontFamily: req.FontFamily,
		Locale:     req.Locale,
		Padding:    req.Padding,
	})
	if err != nil {
		var layoutErr *compose.LayoutError
		if errors.As(err, &layoutErr) {
			a.error(w, http.StatusBadRequest, "layout_invalid", err.Error())
			return
		}
		a.Logger.Error().Err(err).Msg("handlers: composition failed")
		a.error(w, http.StatusInternalServerError, "internal", "composition failed")
		return
	}

	format := strings.ToLower(strings.TrimSpace(req.Format))
	if format == "" {
		format = "png"
	}
	var buf bytes.Buffer
	switch format {
	case "png":
		err = imaging.Encode(&buf, result.Image, imaging.PNG)
	case "jpeg", "jpg":
		format = "jpeg"
		err = imaging.Encode(&buf, result.Image, imaging.JPEG, imaging.JPEGQuality(a.Config.JPEGQuality))
	default:
		a.error(w, http.StatusBadRequest, "bad_request", "unsupported output format")
		return
	}
	if err != nil {
		a.Logger.Error().Err(err).Msg("handlers: image encoding failed")
		a.error(w, http.StatusInternalServerError, "internal", "image encoding failed")
		return
	}

	resp := composeResponse{
		ImageB64:     base64.StdEncoding.EncodeToString(buf.Bytes()),
		Format:       format,
		Width:        width,
		Height:       height,
		ChosenSizes:  make(map[string]int, len(result.ChosenSizes)),
		WrappedLines: make(map[string][]string, len(result.WrappedLines)),
		Overflow:     make(map[string]bool, len(result.Overflowed)),
		RequestID:    middleware.RequestIDFromContext(r.Context()),
	}
	for role, s := range result.ChosenSizes {
		resp.ChosenSizes[string(role)] = s
	}
	for role, lines := range result.WrappedLines {
		resp.WrappedLines[string(role)] = lines
	}
	for role, overflowed := range result.Overflowed {
		resp.Overflow[string(role)] = overflowed
	}
	a.json(w, http.StatusOK, resp)
}

// Presets lists the known output size presets.
func (a *App) Presets(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"presets": compose.PresetNames()})
}

func (a *App) resolveBackground(r *http.Request, req composeRequest, width, height int) (image.Image, error) {
	if req.BackgroundB64 != "" {
		data, err := base64.StdEncoding.DecodeString(req.BackgroundB64)
		if err != nil {
			return nil, errors.New("background_b64 is not valid base64")
		}
		img, err := imaging.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, errors.New("background_b64 does not decode as an image")
		}
		return img, nil
	}

	if req.Generate != nil {
		name := req.Generate.Provider
		if name == "" {
			name = "synthetic"
		}
		gen, ok := a.Generators[name]
		if !ok {
			return nil, errors.New("unsupported provider")
		}
		assets, err := gen.Generate(r.Context(), imgprov.GenerateRequest{
			Prompt:    req.Generate.Prompt,
			Width:     width,
			Height:    height,
			Quantity:  1,
			RequestID: middleware.RequestIDFromContext(r.Context()),
			Locale:    req.Locale,
		})
		if err != nil || len(assets) == 0 {
			return nil, errors.New("background generation failed")
		}
		img, err := imaging.Decode(bytes.NewReader(assets[0].Data))
		if err != nil {
			return nil, errors.New("generated background does not decode")
		}
		return img, nil
	}

	return nil, errors.New("background_b64 or generate is required")
}

func decodeBlocks(specs map[string]blockSpec) ([]compose.TextBlock, error) {
	blocks := make([]compose.TextBlock, 0, len(specs))
	for _, role := range []compose.Role{compose.RoleHook, compose.RoleBody, compose.RoleCTA} {
		spec, ok := specs[string(role)]
		if !ok {
			continue
		}
		style := compose.BlockStyle(strings.ToLower(strings.TrimSpace(spec.Style)))
		switch style {
		case "", compose.StylePlain, compose.StyleButton:
		default:
			return nil, errors.New("unsupported block style")
		}
		blocks = append(blocks, compose.TextBlock{
			Role:          role,
			Content:       spec.Content,
			RequestedSize: spec.RequestedSize,
			MinSize:       spec.MinSize,
			Color:         spec.Color,
			OutlineColor:  spec.OutlineColor,
			OutlineWidth:  spec.OutlineWidth,
			Style:         style,
			ButtonColor:   spec.ButtonColor,
		})
	}
	for role := range specs {
		switch compose.Role(role) {
		case compose.RoleHook, compose.RoleBody, compose.RoleCTA:
		default:
			return nil, errors.New("unknown block role " + role)
		}
	}
	return blocks, nil
}
