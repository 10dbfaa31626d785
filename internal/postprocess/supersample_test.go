package postprocess

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDownsampleUniformKeepsColor(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 240, 220))
	draw.Draw(src, src.Bounds(), image.NewUniform(color.RGBA{R: 0x2d, G: 0x34, B: 0x36, A: 0xff}), image.Point{}, draw.Src)

	out := Downsample(src, 120, 110)
	assert.Equal(t, image.Rect(0, 0, 120, 110), out.Bounds())
	for _, p := range []image.Point{{0, 0}, {60, 55}, {119, 109}} {
		c := out.NRGBAAt(p.X, p.Y)
		assert.InDelta(t, 0x2d, int(c.R), 1, "%v", p)
		assert.InDelta(t, 0x34, int(c.G), 1, "%v", p)
		assert.InDelta(t, 0x36, int(c.B), 1, "%v", p)
		assert.Equal(t, uint8(0xff), c.A, "%v", p)
	}
}

func TestDownsampleTransparentStaysTransparent(t *testing.T) {
	out := Downsample(image.NewRGBA(image.Rect(0, 0, 40, 40)), 20, 20)
	assert.Equal(t, color.NRGBA{}, out.NRGBAAt(10, 10))
}

func TestDownsampleSameSizeUnpremultiplies(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, color.RGBA{R: 0x40, A: 0x80})

	out := Downsample(src, 2, 2)
	assert.Equal(t, color.NRGBA{R: 0x80, A: 0x80}, out.NRGBAAt(0, 0))
}

func TestClamp8(t *testing.T) {
	assert.Equal(t, uint8(0), clamp8(-3))
	assert.Equal(t, uint8(255), clamp8(300))
	assert.Equal(t, uint8(13), clamp8(12.5))
}
