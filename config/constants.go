package config

import "time"

// Canvas constants
const (
	// CanvasWidth is the output frame width (9:16 vertical reel)
	CanvasWidth = 1080

	// CanvasHeight is the output frame height
	CanvasHeight = 1920

	// DrawableWidthFraction is the share of the canvas width available to text
	DrawableWidthFraction = 0.8
)

// Video constants
const (
	// VideoDuration is the length of the rendered reel in seconds
	VideoDuration = 10.0

	// VideoFPS is the output frame rate
	VideoFPS = 30

	// VideoCodec is the video encoding codec
	VideoCodec = "libx264"

	// AudioCodec is the audio encoding codec
	AudioCodec = "aac"

	// AudioBitrate is the audio quality bitrate
	AudioBitrate = "192k"

	// VideoPreset is the ffmpeg encoding speed preset
	VideoPreset = "fast"
)

// Directory constants
const (
	// ImagesDir holds the source artwork pool
	ImagesDir = "images"

	// OutputDir receives rendered frames and reels
	OutputDir = "output"

	// StateDir holds the persisted caption history
	StateDir = "state"

	// BGMPath is the default background music track
	BGMPath = "bgm/flute.mp3"
)

// Generation constants
const (
	// DefaultMaxAttempts bounds the generate/validate/dedupe retry loop
	DefaultMaxAttempts = 8

	// DefaultProviderTimeout bounds a single provider call
	DefaultProviderTimeout = 30 * time.Second

	// DefaultSimilarityThreshold is the dedupe cutoff for the lexical score
	DefaultSimilarityThreshold = 0.78

	// DefaultHistoryCap is the maximum number of retained captions
	DefaultHistoryCap = 500

	// DefaultMinWords and DefaultMaxWords bound the caption word count
	DefaultMinWords = 8
	DefaultMaxWords = 18

	// DefaultScriptRatioMin is the minimum Devanagari rune fraction
	DefaultScriptRatioMin = 0.4
)

// Layout constants
const (
	// DefaultStartFontSize is the initial font size for the shrink loop
	DefaultStartFontSize = 64.0

	// DefaultMinFontSize is the shrink floor
	DefaultMinFontSize = 32.0

	// DefaultFontStep is the shrink decrement per iteration
	DefaultFontStep = 4.0

	// DefaultMaxLineCount caps the wrapped line count
	DefaultMaxLineCount = 3

	// DefaultLineSpacing is the fixed inter-line gap in pixels
	DefaultLineSpacing = 10
)

// YouTube constants
const (
	// YouTubeCategoryID for People & Blogs
	YouTubeCategoryID = "22"

	// YouTubePrivacyStatus sets video visibility
	YouTubePrivacyStatus = "public"
)
