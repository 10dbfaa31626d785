package skeleton

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPathRejectsShortPaths(t *testing.T) {
	_, err := NewPath()
	assert.ErrorIs(t, err, ErrShortPath)

	_, err = NewPath(Pt(1, 2))
	assert.ErrorIs(t, err, ErrShortPath)
}

func TestNewPathRejectsNonFinite(t *testing.T) {
	_, err := NewPath(Pt(0, 0), Pt(math.NaN(), 1))
	assert.Error(t, err)

	_, err = NewPath(Pt(math.Inf(1), 0), Pt(1, 1))
	assert.Error(t, err)
}

func TestPathIsImmutable(t *testing.T) {
	src := []Point{Pt(0, 0), Pt(10, 10)}
	p, err := NewPath(src...)
	require.NoError(t, err)

	src[0] = Pt(99, 99)
	pts := p.Points()
	pts[1] = Pt(-1, -1)

	assert.Equal(t, []Point{Pt(0, 0), Pt(10, 10)}, p.Points())
	assert.Equal(t, 2, p.Len())
}

func TestMustPathPanics(t *testing.T) {
	assert.Panics(t, func() { MustPath(Pt(1, 1)) })
}

func TestOptionalPath(t *testing.T) {
	var zero OptionalPath
	assert.False(t, zero.Present())
	assert.False(t, None().Present())

	p := MustPath(Pt(0, 0), Pt(1, 1))
	got, ok := Some(p).Get()
	assert.True(t, ok)
	assert.Equal(t, p.Points(), got.Points())
}
