// Command composectl composes an ad image from local inputs without running
// the HTTP service. Useful for previewing layouts and debugging zone
// configuration.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	"github.com/joho/godotenv"

	"server/internal/compose"
	"server/internal/fontpack"
	"server/internal/infra"
	imgprov "server/internal/providers/image"
)

func main() {
	var (
		inPath  = flag.String("in", "", "background image file (omit to synthesize from -prompt)")
		outPath = flag.String("out", "ad.png", "output file")
		size    = flag.String("size", "instagram_square", "size preset or WxH")
		hook    = flag.String("hook", "", "hook text")
		body    = flag.String("body", "", "body text")
		cta     = flag.String("cta", "", "call-to-action text")
		prompt  = flag.String("prompt", "", "prompt for the synthetic background")
		locale  = flag.String("locale", "en", "locale for case mapping")
	)
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := infra.LoadConfig()
	if err != nil {
		fatal(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	fonts, err := fontpack.New(logger,
		fontpack.Family{Name: fontpack.DisplayFamily, Paths: cfg.DisplayFontPaths},
		fontpack.Family{Name: fontpack.TextFamily, Paths: cfg.TextFontPaths},
	)
	if err != nil {
		fatal(err)
	}

	width, height, err := compose.ResolveSize(*size)
	if err != nil {
		fatal(err)
	}

	var background image.Image
	if *inPath != "" {
		background, err = imaging.Open(*inPath)
		if err != nil {
			fatal(fmt.Errorf("open background: %w", err))
		}
	} else {
		gen := imgprov.NewSyntheticGenerator(logger)
		assets, err := gen.Generate(context.Background(), imgprov.GenerateRequest{
			Prompt: *prompt,
			Width:  width,
			Height: height,
		})
		if err != nil {
			fatal(err)
		}
		background, err = imaging.Decode(bytes.NewReader(assets[0].Data))
		if err != nil {
			fatal(err)
		}
	}

	pipeline := compose.NewPipeline(fonts, compose.Layout{
		TopFraction:    cfg.ZoneTopFraction,
		MiddleFraction: cfg.ZoneMiddleFraction,
		BottomFraction: cfg.ZoneBottomFraction,
		Padding:        cfg.ZonePadding,
		LineSpacing:    cfg.LineSpacing,
		SizeStep:       cfg.FontSizeStep,
		BodySplit:      compose.DefaultLayout().BodySplit,
	}, compose.Defaults{
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
	}, logger)

	result, err := pipeline.Compose(compose.Request{
		Background: background,
		Preset:     *size,
		Locale:     *locale,
		Blocks: []compose.TextBlock{
			{Role: compose.RoleHook, Content: *hook},
			{Role: compose.RoleBody, Content: *body},
			{Role: compose.RoleCTA, Content: *cta, Style: compose.StyleButton},
		},
	})
	if err != nil {
		fatal(err)
	}

	if err := imaging.Save(result.Image, *outPath); err != nil {
		fatal(fmt.Errorf("save output: %w", err))
	}

	for role, chosen := range result.ChosenSizes {
		note := ""
		if result.Overflowed[role] {
			note = " (overflowed)"
		}
		fmt.Printf("%s: %dpt, %d line(s)%s\n", role, chosen, len(result.WrappedLines[role]), note)
	}
	fmt.Printf("wrote %s\n", *outPath)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "composectl:", err)
	os.Exit(1)
}
