package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posefig/internal/batch"
	"posefig/internal/catalog"
	"posefig/internal/skeleton"
)

const testCatalog = "../catalog/testdata/poses.yaml"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTraceDownwardDog(t *testing.T) {
	out, err := execute(t, "trace", "下犬式")
	require.NoError(t, err)

	want := strings.Join([]string{
		"clear 0 0 120 110",
		"clear 0 0 300 300",
		"fill-circle 45 70 r=8 #2d3436",
		"stroke #2d3436 w=3.5 cap=round join=round 50,40 25,95",
		"stroke #2d3436 w=3.5 cap=round join=round 50,40 80,95",
		"stroke #2d3436 w=3.5 cap=round join=round 25,95 50,40",
	}, "\n") + "\n"
	assert.Equal(t, want, out)
}

func TestTraceUnknownPose(t *testing.T) {
	out, err := execute(t, "trace", "不存在的體式")
	require.NoError(t, err)
	assert.Contains(t, out, `text "No Image" 60 55`)
	assert.NotContains(t, out, "stroke")
}

func TestTraceUsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posefig.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"width": 200}`), 0644))

	out, err := execute(t, "--config", path, "trace", "樹式")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "clear 0 0 200 110\n"), out)

	out, err = execute(t, "--config", path, "trace", "樹式", "--width", "90")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "clear 0 0 90 110\n"), out)
}

func TestInvalidScaleIsCommandError(t *testing.T) {
	_, err := execute(t, "trace", "樹式", "--scale", "stretch")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestMissingConfigIsCommandError(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "none.json"), "list")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestListRegistered(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.ElementsMatch(t, skeleton.Default().Names(), lines)

	sorted := append([]string(nil), lines...)
	SortNames(sorted)
	assert.Equal(t, sorted, lines)
}

func TestListCatalog(t *testing.T) {
	out, err := execute(t, "list", "--catalog", testCatalog)
	require.NoError(t, err)
	assert.Contains(t, out, "鴿式")
	assert.Contains(t, out, catalog.UncategorizedLabel)
	assert.Contains(t, out, "2 of 3 poses have a drawing")
}

func TestRenderFormats(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"dog.png", "dog.webp", "dog.svg", "sub/dog.pdf"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			_, err := execute(t, "render", "下犬式", "-o", path, "--supersample", "2")
			require.NoError(t, err)
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}

	svg, err := os.ReadFile(filepath.Join(dir, "dog.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(svg), `<circle cx="45" cy="70" r="8"`)
}

func TestRenderRejectsUnknownExtension(t *testing.T) {
	_, err := execute(t, "render", "樹式", "-o", filepath.Join(t.TempDir(), "tree.gif"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), `".gif"`)
}

func TestRenderRequiresOutput(t *testing.T) {
	_, err := execute(t, "render", "樹式")
	assert.Error(t, err)
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "batch", testCatalog, "-o", dir, "--format", "png", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "manifest.json")

	for _, f := range []string{"1.png", "2.png", "3.png"} {
		assert.FileExists(t, filepath.Join(dir, f))
	}

	raw, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
	require.NoError(t, err)
	var m batch.Manifest
	require.NoError(t, json.Unmarshal(raw, &m))
	require.Len(t, m.Entries, 3)
	assert.True(t, m.Entries[0].Illustrated)
	assert.False(t, m.Entries[2].Illustrated)
}

func TestBatchSelectsIDs(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "batch", testCatalog, "-o", dir, "--id", "2")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "2.webp"))
	assert.NoFileExists(t, filepath.Join(dir, "1.webp"))
}

func TestBatchWithoutCatalog(t *testing.T) {
	_, err := execute(t, "batch", "-o", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestSelectPoses(t *testing.T) {
	poses := []catalog.Pose{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}
	assert.Len(t, selectPoses(poses, nil, 0), 4)
	assert.Equal(t, []catalog.Pose{{ID: 1}, {ID: 2}}, selectPoses(poses, nil, 2))
	assert.Equal(t, []catalog.Pose{{ID: 2}, {ID: 4}}, selectPoses(poses, []int{4, 2}, 0))
	assert.Equal(t, []catalog.Pose{{ID: 2}}, selectPoses(poses, []int{4, 2}, 1))
	assert.Empty(t, selectPoses(poses, []int{9}, 0))
}

func TestSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.pdf")
	_, err := execute(t, "sheet", testCatalog, "-o", path, "--columns", "2")
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF-")))
}

func TestVerifyAgainstOwnRender(t *testing.T) {
	dir := t.TempDir()
	ref := filepath.Join(dir, "樹式.png")
	_, err := execute(t, "render", "樹式", "-o", ref)
	require.NoError(t, err)

	out, err := execute(t, "verify", "樹式", ref)
	require.NoError(t, err)
	assert.Contains(t, out, "ok   樹式: 0/13200 pixels differ")

	out, err = execute(t, "verify", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "ok   樹式")

	out, err = execute(t, "verify", "下犬式", ref, "--tolerance", "8")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "FAIL 下犬式")
}

func TestVerifyMissingReference(t *testing.T) {
	_, err := execute(t, "verify", "樹式", filepath.Join(t.TempDir(), "none.png"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
