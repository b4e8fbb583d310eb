package batch

import (
	"encoding/json"
	"errors"
	"fmt"

	"camera-path-export/internal/fsutil"
	"camera-path-export/internal/script"
)

// ManifestEntry describes one exported entity.
type ManifestEntry struct {
	Entity     string `json:"entity"`
	Script     string `json:"script"`
	Preview    string `json:"preview,omitempty"`
	Segments   int    `json:"segments"`
	FrameStart int    `json:"frame_start"`
	FrameEnd   int    `json:"frame_end"`
}

// ErrManifestCollision is returned when an entity's output already uses
// the manifest path.
var ErrManifestCollision = errors.New("batch: manifest path collides with an entity output")

// WriteManifest writes <base>_manifest.json listing the successful results
// and returns its path. It refuses to overwrite an entity's script or
// preview of the same name.
func WriteManifest(w fsutil.Writer, base string, frameStart, frameEnd int, results []Result) (string, error) {
	path := script.PathFor(base, "manifest", script.Ext)
	for _, r := range results {
		if r.Path == path || r.Preview == path {
			return path, fmt.Errorf("%w: %s (entity %q)", ErrManifestCollision, path, r.Name)
		}
	}

	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Entity:     r.Name,
			Script:     r.Path,
			Preview:    r.Preview,
			Segments:   r.Segments,
			FrameStart: frameStart,
			FrameEnd:   frameEnd,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return path, fmt.Errorf("batch: encode manifest: %w", err)
	}
	if err := w.WriteFile(path, data, 0644); err != nil {
		return path, fmt.Errorf("batch: write manifest: %w", err)
	}
	return path, nil
}
