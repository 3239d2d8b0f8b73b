package compose

import (
	"fmt"
	"log"
	"os"
)

// fontCandidates are the Devanagari-capable fonts probed on a typical
// Linux runner, in preference order.
var fontCandidates = []string{
	"/usr/share/fonts/truetype/noto/NotoSansDevanagari-Regular.ttf",
	"/usr/share/fonts/truetype/noto/NotoSans-Regular.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
}

// LoadFont returns the raw bytes of the first loadable font. An explicit
// override path is tried before the built-in candidates.
func LoadFont(override string) ([]byte, string, error) {
	paths := fontCandidates
	if override != "" {
		paths = append([]string{override}, paths...)
	}
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		return data, p, nil
	}
	log.Printf("Warning: no Devanagari-capable font found (tried %d paths)", len(paths))
	return nil, "", fmt.Errorf("no usable font found")
}
