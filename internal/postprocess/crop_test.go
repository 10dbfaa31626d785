package postprocess

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

func TestFlattenTransparentBecomesBackground(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src.SetNRGBA(1, 1, color.NRGBA{R: 0x2d, G: 0x34, B: 0x36, A: 0xff})

	out := Flatten(src, white)
	assert.Equal(t, white, out.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 0x2d, G: 0x34, B: 0x36, A: 0xff}, out.NRGBAAt(1, 1))
}

func TestFlattenRebasesBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 8, 9))
	out := Flatten(src, white)
	assert.Equal(t, image.Rect(0, 0, 3, 4), out.Bounds())
}

func TestContentBounds(t *testing.T) {
	img := Flatten(image.NewNRGBA(image.Rect(0, 0, 10, 10)), white)
	assert.True(t, ContentBounds(img, white, 0).Empty())

	img.SetNRGBA(2, 3, color.NRGBA{A: 0xff})
	img.SetNRGBA(6, 7, color.NRGBA{A: 0xff})
	img.SetNRGBA(8, 1, color.NRGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff})
	assert.Equal(t, image.Rect(2, 3, 7, 8), ContentBounds(img, white, 8))
	assert.Equal(t, image.Rect(2, 1, 9, 8), ContentBounds(img, white, 0))
}

func TestCropAndCenter(t *testing.T) {
	img := Flatten(image.NewNRGBA(image.Rect(0, 0, 50, 50)), white)
	black := color.NRGBA{A: 0xff}
	for y := 10; y < 20; y++ {
		for x := 30; x < 40; x++ {
			img.SetNRGBA(x, y, black)
		}
	}

	out := CropAndCenter(img, white, 20, 20, 0.5)
	require.Equal(t, image.Rect(0, 0, 20, 20), out.Bounds())
	assert.Equal(t, white, out.NRGBAAt(1, 1))
	assert.Equal(t, black, out.NRGBAAt(10, 10))
	assert.Equal(t, image.Rect(5, 5, 15, 15), ContentBounds(out, white, 0x40))
}

func TestCropAndCenterBlank(t *testing.T) {
	out := CropAndCenter(image.NewNRGBA(image.Rect(0, 0, 8, 8)), white, 4, 4, 1)
	assert.Equal(t, white, out.NRGBAAt(2, 2))
}

func TestFlipHorizontal(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 1, A: 0xff})
	img.SetNRGBA(2, 0, color.NRGBA{B: 1, A: 0xff})

	out := FlipHorizontal(img)
	assert.Equal(t, color.NRGBA{B: 1, A: 0xff}, out.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{}, out.NRGBAAt(1, 0))
	assert.Equal(t, color.NRGBA{R: 1, A: 0xff}, out.NRGBAAt(2, 0))
}
