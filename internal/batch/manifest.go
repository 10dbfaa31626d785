package batch

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"posefig/internal/catalog"
)

// Manifest describes one batch run.
type Manifest struct {
	RunID   string          `json:"run_id"`
	Format  string          `json:"format"`
	Width   int             `json:"width"`
	Height  int             `json:"height"`
	Entries []ManifestEntry `json:"entries"`
}

// ManifestEntry represents one pose in the output manifest.
type ManifestEntry struct {
	ID          int    `json:"id"`
	NameZH      string `json:"name_zh"`
	NameEN      string `json:"name_en"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Illustrated bool   `json:"illustrated"`
}

// NewManifest builds the manifest for successful results. poses and
// results must be index-aligned, as returned by Run.
func NewManifest(cfg Config, poses []catalog.Pose, results []Result) Manifest {
	cfg.defaults()
	m := Manifest{
		RunID:   uuid.NewString(),
		Format:  string(cfg.Format),
		Width:   cfg.Width,
		Height:  cfg.Height,
		Entries: []ManifestEntry{},
	}
	for i, res := range results {
		if !res.Success {
			continue
		}
		p := poses[i]
		m.Entries = append(m.Entries, ManifestEntry{
			ID:          p.ID,
			NameZH:      p.NameZH,
			NameEN:      p.NameEN,
			Category:    p.CategoryLabel(),
			Image:       res.Image,
			Illustrated: res.Illustrated,
		})
	}
	return m
}

// WriteManifest writes m as indented JSON.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("batch: write %s: %w", path, err)
	}
	return nil
}
