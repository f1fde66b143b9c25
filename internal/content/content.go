// Package content holds the static bilingual marketing copy served to the
// storefront. It is parsed once at startup and injected where needed; the
// checkout core never reads it.
package content

import (
	"encoding/json"
	"fmt"
	"os"
)

// LocalizedText carries the Spanish and English variants of one string.
type LocalizedText struct {
	ES string `json:"es"`
	EN string `json:"en"`
}

type Section struct {
	Title LocalizedText `json:"title"`
	Body  LocalizedText `json:"body"`
}

type Content struct {
	SiteName LocalizedText      `json:"site_name"`
	Tagline  LocalizedText      `json:"tagline"`
	Sections map[string]Section `json:"sections"`
}

// Load reads and parses the content blob. Called once from main.
func Load(path string) (*Content, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}

	var c Content
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse content file: %w", err)
	}
	return &c, nil
}
