// Package video muxes the rendered frame with background music into the
// final reel using ffmpeg.
package video

import (
	"fmt"
	"os"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"bhaktibot/config"
)

// Options tunes the mux; zero values take the configured defaults.
type Options struct {
	Duration float64
	FPS      int
}

// Create loops the still frame for the configured duration, loops or trims
// the BGM to match, and encodes a 9:16 mp4.
func Create(framePath, bgmPath, outputPath string, opts Options) error {
	if _, err := os.Stat(framePath); err != nil {
		return fmt.Errorf("frame not found at %s: %w", framePath, err)
	}
	if _, err := os.Stat(bgmPath); err != nil {
		return fmt.Errorf("bgm not found at %s: %w", bgmPath, err)
	}

	duration := opts.Duration
	if duration <= 0 {
		duration = config.VideoDuration
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = config.VideoFPS
	}

	frame := ffmpeg.Input(framePath, ffmpeg.KwArgs{
		"loop":      1,
		"framerate": fps,
	})
	// stream_loop repeats short tracks; -t below trims long ones
	audio := ffmpeg.Input(bgmPath, ffmpeg.KwArgs{"stream_loop": -1})

	err := ffmpeg.Output([]*ffmpeg.Stream{frame, audio}, outputPath, ffmpeg.KwArgs{
		"t":        fmt.Sprintf("%.2f", duration),
		"c:v":      config.VideoCodec,
		"c:a":      config.AudioCodec,
		"b:a":      config.AudioBitrate,
		"preset":   config.VideoPreset,
		"pix_fmt":  "yuv420p",
		"r":        fps,
		"shortest": "",
	}).OverWriteOutput().Run()

	if err != nil {
		return fmt.Errorf("ffmpeg failed: %w", err)
	}
	return nil
}
