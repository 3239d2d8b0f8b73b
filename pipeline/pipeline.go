// Package pipeline wires the stages end to end: caption acquisition, frame
// composition, video mux and upload. Each stage is also runnable on its own
// from the CLI.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"bhaktibot/caption"
	"bhaktibot/compose"
	"bhaktibot/config"
	"bhaktibot/history"
	"bhaktibot/layout"
	"bhaktibot/provider"
	"bhaktibot/upload"
	"bhaktibot/video"
)

// Pipeline carries the configuration shared by all stages.
type Pipeline struct {
	cfg *config.Config
}

// New creates a pipeline over the given config.
func New(cfg *config.Config) *Pipeline {
	return &Pipeline{cfg: cfg}
}

// Caption runs the acquisition protocol and returns one novel caption.
func (p *Pipeline) Caption(ctx context.Context) (string, error) {
	prov, err := p.buildProvider(ctx)
	if err != nil {
		return "", err
	}

	store := history.NewStore(p.cfg.HistoryPath, p.cfg.HistoryCap, caption.Normalize)

	validator := caption.NewValidator(caption.ValidatorConfig{
		MinWords:       p.cfg.MinWords,
		MaxWords:       p.cfg.MaxWords,
		ScriptRatioMin: p.cfg.ScriptRatioMin,
		Keywords:       p.cfg.RequiredKeywords,
		Glyphs:         p.cfg.DecorativeGlyphs,
	})

	gen := caption.NewGenerator(caption.GeneratorConfig{
		Provider:        prov,
		Store:           store,
		Validator:       validator,
		Guard:           caption.NewGuard(p.cfg.SimilarityThreshold),
		Policy:          caption.RetryPolicy{MaxAttempts: p.cfg.MaxAttempts},
		Prompt:          caption.BuildPrompt(p.cfg.DecorativeGlyphs),
		ProviderTimeout: p.cfg.ProviderTimeout,
		Fallbacks:       p.cfg.FallbackLines,
	})

	return gen.Generate(ctx)
}

func (p *Pipeline) buildProvider(ctx context.Context) (caption.Provider, error) {
	switch p.cfg.Provider {
	case "cohere":
		return provider.NewCohere(p.cfg.APIKey, p.cfg.Model), nil
	default:
		return provider.NewGemini(ctx, p.cfg.APIKey, p.cfg.Model)
	}
}

// Frame composes the caption onto a random artwork and writes the PNG.
func (p *Pipeline) Frame(line, outPath string) error {
	fontBytes, fontPath, err := compose.LoadFont(p.cfg.FontPath)
	if err != nil {
		return err
	}
	log.Printf("Using font: %s", fontPath)

	measurer, err := layout.NewFaceMeasurer(fontBytes)
	if err != nil {
		return err
	}
	composer, err := compose.NewComposer(fontBytes)
	if err != nil {
		return err
	}

	artwork, artworkPath, err := compose.PickArtwork(p.cfg.ImagesDir)
	if err != nil {
		return err
	}
	log.Printf("Using artwork: %s", artworkPath)

	canvas := compose.Canvas(artwork, config.CanvasWidth, config.CanvasHeight)

	engine := layout.NewEngine(measurer, layout.EngineConfig{
		StartFontSize: p.cfg.StartFontSize,
		MinFontSize:   p.cfg.MinFontSize,
		FontStep:      p.cfg.FontStep,
		MaxLineCount:  p.cfg.MaxLineCount,
		LineSpacing:   p.cfg.LineSpacing,
	})

	usable := int(config.CanvasWidth * config.DrawableWidthFraction)
	region := layout.Region{
		X0: (config.CanvasWidth - usable) / 2,
		Y0: 0,
		X1: (config.CanvasWidth + usable) / 2,
		Y1: config.CanvasHeight,
	}

	font, block := engine.FitToRegion(line, region)
	anchor := layout.Placement(region, canvas)
	log.Printf("Layout: %d line(s) at %.0fpt, anchor %.0f%%", len(block.Lines), font.Size, anchor*100)

	spec := engine.Position(font, block, region, layout.PositionConfig{
		CanvasWidth:  config.CanvasWidth,
		Anchor:       anchor,
		PaddingX:     40,
		PaddingY:     20,
		BackingAlpha: 180,
	})

	if err := composer.Render(canvas, spec); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return compose.SavePNG(canvas, outPath)
}

// Video muxes the frame with the configured BGM.
func (p *Pipeline) Video(framePath, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return video.Create(framePath, p.cfg.BGMPath, outPath, video.Options{})
}

// Upload publishes the reel and returns the YouTube video ID.
func (p *Pipeline) Upload(ctx context.Context, videoPath string) (string, error) {
	uploader, err := upload.NewUploader(ctx, upload.Credentials{
		ClientID:     p.cfg.YTClientID,
		ClientSecret: p.cfg.YTClientSecret,
		RefreshToken: p.cfg.YTRefreshToken,
	})
	if err != nil {
		return "", err
	}
	return uploader.UploadVideo(videoPath, upload.BuildMetadata(time.Now()))
}

// Run executes the full cycle: caption, frame, video and (when credentials
// are configured) upload.
func (p *Pipeline) Run(ctx context.Context, doUpload bool) error {
	runID := uuid.New().String()[:8]
	log.Printf("=== Bhaktibot run %s ===", runID)

	line, err := p.Caption(ctx)
	if err != nil {
		return fmt.Errorf("caption: %w", err)
	}
	log.Printf("Caption: %s", line)

	framePath := filepath.Join(p.cfg.OutputDir, fmt.Sprintf("krishna_frame_%s.png", runID))
	if err := p.Frame(line, framePath); err != nil {
		return fmt.Errorf("frame: %w", err)
	}
	log.Printf("Frame ready: %s", framePath)

	videoPath := filepath.Join(p.cfg.OutputDir, fmt.Sprintf("krishna_reel_%s.mp4", runID))
	if err := p.Video(framePath, videoPath); err != nil {
		return fmt.Errorf("video: %w", err)
	}
	log.Printf("Reel ready: %s", videoPath)

	if !doUpload {
		log.Printf("Skipping upload")
		return nil
	}

	videoID, err := p.Upload(ctx, videoPath)
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	log.Printf("Run %s complete, video ID %s", runID, videoID)
	return nil
}
