package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoRecords is returned by Load for a catalog file without records.
var ErrNoRecords = errors.New("catalog: no records")

// document is the catalog file layout. Either a top-level "poses" list or
// a bare list is accepted; JSON parses as YAML.
type document struct {
	Poses []Pose `yaml:"poses"`
}

// Load reads a YAML or JSON catalog file.
func Load(path string) ([]Pose, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	poses, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	if len(poses) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoRecords, path)
	}
	return poses, nil
}

// Parse decodes catalog data. Records without an id get their 1-based
// position; ids must be unique and cue types must be known.
func Parse(raw []byte) ([]Pose, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	var poses []Pose
	if body := root.Content[0]; body.Kind == yaml.SequenceNode {
		if err := body.Decode(&poses); err != nil {
			return nil, err
		}
	} else {
		var doc document
		if err := body.Decode(&doc); err != nil {
			return nil, err
		}
		poses = doc.Poses
	}

	seen := make(map[int]int, len(poses))
	for i := range poses {
		p := &poses[i]
		if p.ID == 0 {
			p.ID = i + 1
		}
		if prev, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("record %d: duplicate id %d (also record %d)", i+1, p.ID, prev+1)
		}
		seen[p.ID] = i
		for j, c := range p.Cues {
			if !c.Type.Valid() {
				return nil, fmt.Errorf("record %d (%s): cue %d: unknown type %q", i+1, p.NameZH, j+1, c.Type)
			}
		}
	}
	return poses, nil
}
