package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "bhaktibot",
	Short: "Daily Krishna bhakti reel generator",
	Long: `Bhaktibot generates one short devotional Hindi caption per run,
verified novel against past output, composes it onto a Krishna artwork
frame, muxes the frame with background music into a reel and uploads it
to YouTube Shorts.`,
}

func init() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()
	log.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "bhaktibot.yaml", "path to YAML config (optional)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
