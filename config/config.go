package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config collects every tunable the pipeline recognizes. Values come from
// defaults, then an optional YAML file, then environment variables.
type Config struct {
	Provider        string        `yaml:"provider"`       // "gemini" or "cohere"
	APIKey          string        `yaml:"api_key"`        // provider API key
	Model           string        `yaml:"model"`          // provider model name
	ProviderTimeout time.Duration `yaml:"provider_timeout"`

	MaxAttempts         int      `yaml:"max_attempts"`
	MinWords            int      `yaml:"min_words"`
	MaxWords            int      `yaml:"max_words"`
	ScriptRatioMin      float64  `yaml:"script_ratio_min"`
	RequiredKeywords    []string `yaml:"required_keywords"`
	DecorativeGlyphs    []string `yaml:"decorative_glyphs"`
	SimilarityThreshold float64  `yaml:"similarity_threshold"`
	HistoryCap          int      `yaml:"history_cap"`
	HistoryPath         string   `yaml:"history_path"`
	FallbackLines       []string `yaml:"fallback_lines"`

	StartFontSize float64 `yaml:"start_font_size"`
	MinFontSize   float64 `yaml:"min_font_size"`
	FontStep      float64 `yaml:"font_step"`
	MaxLineCount  int     `yaml:"max_line_count"`
	LineSpacing   int     `yaml:"line_spacing"`
	FontPath      string  `yaml:"font_path"`

	ImagesDir string `yaml:"images_dir"`
	OutputDir string `yaml:"output_dir"`
	BGMPath   string `yaml:"bgm_path"`

	YTClientID     string `yaml:"yt_client_id"`
	YTClientSecret string `yaml:"yt_client_secret"`
	YTRefreshToken string `yaml:"yt_refresh_token"`
}

// Load builds a Config from defaults, an optional YAML file and the
// environment. A missing config file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Provider:        "gemini",
		Model:           "gemini-2.5-flash",
		ProviderTimeout: DefaultProviderTimeout,

		MaxAttempts:         DefaultMaxAttempts,
		MinWords:            DefaultMinWords,
		MaxWords:            DefaultMaxWords,
		ScriptRatioMin:      DefaultScriptRatioMin,
		SimilarityThreshold: DefaultSimilarityThreshold,
		HistoryCap:          DefaultHistoryCap,
		HistoryPath:         filepath.Join(StateDir, "used_lines.json"),

		StartFontSize: DefaultStartFontSize,
		MinFontSize:   DefaultMinFontSize,
		FontStep:      DefaultFontStep,
		MaxLineCount:  DefaultMaxLineCount,
		LineSpacing:   DefaultLineSpacing,

		ImagesDir: ImagesDir,
		OutputDir: OutputDir,
		BGMPath:   BGMPath,
	}
}

func (c *Config) applyEnv() {
	setString(&c.Provider, "BHAKTIBOT_PROVIDER")
	setString(&c.Model, "BHAKTIBOT_MODEL")
	setString(&c.HistoryPath, "BHAKTIBOT_HISTORY_PATH")
	setString(&c.ImagesDir, "BHAKTIBOT_IMAGES_DIR")
	setString(&c.OutputDir, "BHAKTIBOT_OUTPUT_DIR")
	setString(&c.BGMPath, "BHAKTIBOT_BGM_PATH")
	setString(&c.FontPath, "BHAKTIBOT_FONT_PATH")

	if v := os.Getenv("BHAKTIBOT_MAX_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.MaxAttempts = n
		}
	}

	// Provider keys keep their conventional names
	switch c.Provider {
	case "cohere":
		setString(&c.APIKey, "COHERE_API_KEY")
	default:
		setString(&c.APIKey, "GEMINI_API_KEY")
	}

	setString(&c.YTClientID, "YT_CLIENT_ID")
	setString(&c.YTClientSecret, "YT_CLIENT_SECRET")
	setString(&c.YTRefreshToken, "YT_REFRESH_TOKEN")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// ValidateForGeneration checks the credentials the caption step needs.
// A failure here aborts before any provider attempt.
func (c *Config) ValidateForGeneration() error {
	if c.APIKey == "" {
		switch c.Provider {
		case "cohere":
			return fmt.Errorf("COHERE_API_KEY not set in environment")
		default:
			return fmt.Errorf("GEMINI_API_KEY not set in environment")
		}
	}
	if c.Provider != "gemini" && c.Provider != "cohere" {
		return fmt.Errorf("unknown provider %q (want gemini or cohere)", c.Provider)
	}
	if c.MinWords <= 0 || c.MaxWords < c.MinWords {
		return fmt.Errorf("invalid word count bounds %d-%d", c.MinWords, c.MaxWords)
	}
	if c.SimilarityThreshold < 0 || c.SimilarityThreshold > 1 {
		return fmt.Errorf("similarity threshold %.2f outside [0,1]", c.SimilarityThreshold)
	}
	return nil
}

// ValidateForUpload checks the YouTube credential triple.
func (c *Config) ValidateForUpload() error {
	if c.YTClientID == "" || c.YTClientSecret == "" || c.YTRefreshToken == "" {
		return fmt.Errorf("missing YT_CLIENT_ID / YT_CLIENT_SECRET / YT_REFRESH_TOKEN env vars")
	}
	return nil
}
