package figure_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posefig/internal/figure"
	"posefig/internal/record"
	"posefig/internal/skeleton"
)

func TestRenderDownwardDog(t *testing.T) {
	rec := record.New(figure.DefaultWidth, figure.DefaultHeight)
	require.True(t, figure.Render(rec, "下犬式"))

	assert.Equal(t, 1, rec.Count(record.KindCircle))
	assert.Equal(t, 3, rec.Count(record.KindStroke))
	assert.Zero(t, rec.Count(record.KindText))

	g := goldie.New(t)
	g.Assert(t, "downward_dog", []byte(rec.String()))
}

func TestRenderTreeDrawsAllFivePaths(t *testing.T) {
	rec := record.New(figure.DefaultWidth, figure.DefaultHeight)
	require.True(t, figure.Render(rec, "樹式"))
	assert.Equal(t, 5, rec.Count(record.KindStroke))

	g := goldie.New(t)
	g.Assert(t, "tree", []byte(rec.String()))
}

func TestRenderWarriorSkipsSecondaryArm(t *testing.T) {
	rec := record.New(figure.DefaultWidth, figure.DefaultHeight)
	require.True(t, figure.Render(rec, "戰士二"))
	assert.Equal(t, 4, rec.Count(record.KindStroke))
}

func TestRenderUnknownFallsBack(t *testing.T) {
	rec := record.New(figure.DefaultWidth, figure.DefaultHeight)
	assert.False(t, figure.Render(rec, "不存在的體式"))

	g := goldie.New(t)
	g.Assert(t, "fallback", []byte(rec.String()))
}

func TestFallbackForBlankNames(t *testing.T) {
	for _, name := range []string{"", " ", "\t\n", "　"} {
		t.Run(name, func(t *testing.T) {
			rec := record.New(200, 90)
			assert.False(t, figure.Render(rec, name))

			require.NotEmpty(t, rec.Ops)
			assert.Equal(t, record.KindClear, rec.Ops[0].Kind)
			assert.Equal(t, figure.Rect{W: 200, H: 90}, rec.Ops[0].Rect)
			assert.Equal(t, 1, rec.Count(record.KindRect))
			assert.Equal(t, 1, rec.Count(record.KindText))
			assert.Zero(t, rec.Count(record.KindStroke))
			assert.Zero(t, rec.Count(record.KindCircle))

			last := rec.Ops[len(rec.Ops)-1]
			assert.Equal(t, figure.FallbackLabel, last.Text)
			assert.Equal(t, skeleton.Pt(100, 45), last.Points[0])
		})
	}
}

func TestPlaceholderShrinksInsetOnSmallSurfaces(t *testing.T) {
	rec := record.New(40, 30)
	figure.DrawPlaceholder(rec)

	var rect figure.Rect
	for _, op := range rec.Ops {
		if op.Kind == record.KindRect {
			rect = op.Rect
		}
	}
	assert.Equal(t, figure.Rect{X: 7.5, Y: 7.5, W: 25, H: 15}, rect)
}

func TestRenderIsDeterministic(t *testing.T) {
	for _, name := range skeleton.Default().Names() {
		a := record.New(figure.DefaultWidth, figure.DefaultHeight)
		b := record.New(figure.DefaultWidth, figure.DefaultHeight)
		figure.Render(a, name)
		figure.Render(b, name)
		assert.Equal(t, a.String(), b.String(), name)
	}
}

func TestFitModeScalesGeometry(t *testing.T) {
	r := figure.NewRenderer(nil, figure.ScaleFit)
	rec := record.New(150, 200)
	require.True(t, r.Render(rec, "下犬式"))

	want := "clear 0 0 150 200\n" +
		"clear 0 0 150 150\n" +
		"fill-circle 22.5 35 r=4 #2d3436\n" +
		"stroke #2d3436 w=1.75 cap=round join=round 25,20 12.5,47.5\n" +
		"stroke #2d3436 w=1.75 cap=round join=round 25,20 40,47.5\n" +
		"stroke #2d3436 w=1.75 cap=round join=round 12.5,47.5 25,20\n"
	assert.Equal(t, want, rec.String())
}

func TestFitModeLeavesPlaceholderUnscaled(t *testing.T) {
	clip := record.New(figure.DefaultWidth, figure.DefaultHeight)
	fit := record.New(figure.DefaultWidth, figure.DefaultHeight)
	figure.NewRenderer(nil, figure.ScaleClip).Render(clip, "nope")
	figure.NewRenderer(nil, figure.ScaleFit).Render(fit, "nope")
	assert.Equal(t, clip.String(), fit.String())
}

func TestCustomRegistry(t *testing.T) {
	reg := skeleton.MustRegistry([]skeleton.Entry{{
		Name: "single",
		Program: skeleton.Program{
			Head:        skeleton.Pt(10, 10),
			Body:        skeleton.MustPath(skeleton.Pt(10, 18), skeleton.Pt(10, 40)),
			PrimaryLimb: skeleton.MustPath(skeleton.Pt(10, 40), skeleton.Pt(10, 60)),
			PrimaryArm:  skeleton.MustPath(skeleton.Pt(0, 25), skeleton.Pt(20, 25)),
		},
	}})
	r := figure.NewRenderer(reg, figure.ScaleClip)

	rec := record.New(50, 70)
	assert.True(t, r.Render(rec, "single"))
	assert.True(t, r.Illustrated("single"))
	assert.False(t, r.Illustrated("下犬式"))
	assert.Equal(t, 3, rec.Count(record.KindStroke))
}

func TestParseScaleMode(t *testing.T) {
	m, err := figure.ParseScaleMode("")
	require.NoError(t, err)
	assert.Equal(t, figure.ScaleClip, m)

	m, err = figure.ParseScaleMode(" FIT ")
	require.NoError(t, err)
	assert.Equal(t, figure.ScaleFit, m)
	assert.Equal(t, "fit", m.String())

	_, err = figure.ParseScaleMode("stretch")
	assert.Error(t, err)
}

func TestScaledSurface(t *testing.T) {
	rec := record.New(240, 220)
	s := figure.Scaled(rec, 2)

	w, h := s.Size()
	assert.Equal(t, 120, w)
	assert.Equal(t, 110, h)

	s.FillTextCentered("x", skeleton.Pt(60, 55), figure.Text{Size: 12})
	s.FillRect(figure.Rect{X: 1, Y: 2, W: 3, H: 4}, figure.PlaceholderFill)
	assert.Equal(t, "text \"x\" 120 110 size=24 #00000000\nfill-rect 2 4 6 8 #eeeeee\n", rec.String())

	assert.Same(t, rec, figure.Scaled(rec, 1))
}
