package catalog

import "sort"

// UncategorizedLabel is shown for records without a category.
const UncategorizedLabel = "未分類"

// CueType classifies a teaching cue.
type CueType string

const (
	CueEntry  CueType = "entry"
	CueAction CueType = "action"
	CueSafety CueType = "safety"
)

// Valid reports whether t is one of the known cue types.
func (t CueType) Valid() bool {
	switch t {
	case CueEntry, CueAction, CueSafety:
		return true
	}
	return false
}

// Cue is one instructor cue attached to a pose.
type Cue struct {
	Content  string  `yaml:"content" json:"content"`
	Type     CueType `yaml:"type" json:"type"`
	Sequence int     `yaml:"sequence" json:"sequence"`
}

// Pose is one catalog record. NameZH is the display name the renderer
// looks up.
type Pose struct {
	ID       int    `yaml:"id" json:"id"`
	NameZH   string `yaml:"name_zh" json:"name_zh"`
	NameEN   string `yaml:"name_en" json:"name_en"`
	ImageURL string `yaml:"image_url,omitempty" json:"image_url,omitempty"`
	Category string `yaml:"category" json:"category"`
	Cues     []Cue  `yaml:"cues,omitempty" json:"cues,omitempty"`
}

// CategoryLabel returns the category, or UncategorizedLabel when empty.
func (p Pose) CategoryLabel() string {
	if p.Category == "" {
		return UncategorizedLabel
	}
	return p.Category
}

// SortedCues returns the cues ordered by Sequence. Equal sequences keep
// their file order.
func (p Pose) SortedCues() []Cue {
	cues := make([]Cue, len(p.Cues))
	copy(cues, p.Cues)
	sort.SliceStable(cues, func(i, j int) bool {
		return cues[i].Sequence < cues[j].Sequence
	})
	return cues
}
