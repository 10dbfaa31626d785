package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadYAML(t *testing.T) {
	poses, err := Load("testdata/poses.yaml")
	require.NoError(t, err)
	require.Len(t, poses, 3)

	dog := poses[0]
	assert.Equal(t, "下犬式", dog.NameZH)
	assert.Equal(t, "Downward-Facing Dog", dog.NameEN)
	assert.Equal(t, "倒轉", dog.CategoryLabel())

	cues := dog.SortedCues()
	require.Len(t, cues, 3)
	assert.Equal(t, CueEntry, cues[0].Type)
	assert.Equal(t, CueAction, cues[1].Type)
	assert.Equal(t, CueSafety, cues[2].Type)
	assert.Equal(t, 2, dog.Cues[0].Sequence, "SortedCues must not reorder the record")

	assert.Equal(t, UncategorizedLabel, poses[2].CategoryLabel())
}

func TestLoadJSONList(t *testing.T) {
	poses, err := Load("testdata/poses.json")
	require.NoError(t, err)
	require.Len(t, poses, 2)
	assert.Equal(t, 7, poses[0].ID)
	assert.Equal(t, 2, poses[1].ID, "missing id defaults to position")
	assert.Equal(t, "Front knee over ankle", poses[0].Cues[0].Content)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/nope.yaml")
	assert.ErrorContains(t, err, "catalog: read")
}

func TestParseRejectsDuplicateIDs(t *testing.T) {
	_, err := Parse([]byte("- {id: 1, name_zh: a}\n- {id: 1, name_zh: b}\n"))
	assert.ErrorContains(t, err, "duplicate id 1")
}

func TestParseRejectsUnknownCueType(t *testing.T) {
	_, err := Parse([]byte("poses:\n  - name_zh: a\n    cues:\n      - {content: x, type: breath, sequence: 1}\n"))
	assert.ErrorContains(t, err, `unknown type "breath"`)
}

func TestParseEmpty(t *testing.T) {
	poses, err := Parse([]byte("  \n"))
	require.NoError(t, err)
	assert.Empty(t, poses)
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("poses: []\n"), 0644))
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrNoRecords)
}

func TestSortedCuesIsStable(t *testing.T) {
	p := Pose{Cues: []Cue{
		{Content: "b", Type: CueAction, Sequence: 2},
		{Content: "a1", Type: CueEntry, Sequence: 1},
		{Content: "a2", Type: CueEntry, Sequence: 1},
	}}
	got := p.SortedCues()
	assert.Equal(t, []string{"a1", "a2", "b"}, []string{got[0].Content, got[1].Content, got[2].Content})
}
