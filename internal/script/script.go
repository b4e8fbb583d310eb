// Package script renders movement segments as the playback engine's
// movement script and writes one document per entity.
package script

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"camera-path-export/internal/fsutil"
	"camera-path-export/internal/segment"
)

// Ext is the script file extension.
const Ext = ".json"

// New assembles a script from one entity's segments. Movements is never
// nil, so an entity without segments still gets "Movements": [].
func New(segs []segment.Segment) Script {
	s := Script{
		ActiveInPauseMenu: true,
		Movements:         make([]Movement, 0, len(segs)),
	}
	for _, seg := range segs {
		s.Movements = append(s.Movements, Movement{
			Delay:                seg.Delay,
			Duration:             seg.Duration,
			EaseTransition:       seg.EaseTransition,
			EndPos:               pos(seg.EndPos),
			EndRot:               rot(seg.EndRot),
			StartPos:             pos(seg.StartPos),
			StartRot:             rot(seg.StartRot),
			TurnToHead:           seg.TurnToHead,
			TurnToHeadHorizontal: seg.TurnToHeadHorizontal,
			FrameIndex:           seg.Index,
		})
	}
	return s
}

func pos(p segment.Position) Pos { return Pos{FOV: p.FOV, X: p.X, Y: p.Y, Z: p.Z} }

func rot(r segment.Rotation) Rot { return Rot{X: r.X, Y: r.Y, Z: r.Z} }

// Marshal encodes s with sorted keys and four-space indentation. Identical
// scripts always produce identical bytes.
func Marshal(s Script) ([]byte, error) {
	if s.Movements == nil {
		s.Movements = []Movement{}
	}
	return json.MarshalIndent(s, "", "    ")
}

// PathFor derives <base without extension>_<entity><ext>.
func PathFor(base, entity, ext string) string {
	return strings.TrimSuffix(base, filepath.Ext(base)) + "_" + entity + ext
}

// Write encodes s and writes it to PathFor(base, entity, Ext).
func Write(w fsutil.Writer, base, entity string, s Script) (string, error) {
	path := PathFor(base, entity, Ext)
	data, err := Marshal(s)
	if err != nil {
		return path, fmt.Errorf("script: encode %s: %w", entity, err)
	}
	if err := w.WriteFile(path, data, 0644); err != nil {
		return path, fmt.Errorf("script: write %s: %w", path, err)
	}
	return path, nil
}
