package upload

import (
	"fmt"
	"time"

	"bhaktibot/config"
)

// Metadata is the YouTube listing for one reel.
type Metadata struct {
	Title       string
	Description string
	Tags        []string
	CategoryID  string
}

// BuildMetadata returns the dated daily-reel listing.
func BuildMetadata(now time.Time) Metadata {
	today := now.UTC().Format("02 Jan 2006")

	return Metadata{
		Title: fmt.Sprintf("Jai Shree Krishna ✨ | कृष्ण भक्ति शॉर्ट्स | %s", today),
		Description: "जय श्री कृष्णा 🌸🦚\n\n" +
			"Daily Krishna motivation & bhakti reels.\n" +
			"#krishna #jaishreekrishna #shorts",
		Tags: []string{
			"krishna",
			"jai shree krishna",
			"bhakti",
			"krishna motivation",
			"hindi shorts",
		},
		CategoryID: config.YouTubeCategoryID,
	}
}
