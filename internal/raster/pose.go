package raster

import (
	"image"

	"posefig/internal/figure"
	"posefig/internal/postprocess"
)

// Options sets the output size of RenderPose. Supersample renders at that
// multiple of the size and downsamples the result.
type Options struct {
	Width       int
	Height      int
	Supersample int
}

// RenderPose draws name on a fresh canvas and returns the image and whether
// the pose had a program.
func RenderPose(r *figure.Renderer, name string, opts Options) (image.Image, bool) {
	ss := max(opts.Supersample, 1)
	c := NewCanvas(opts.Width*ss, opts.Height*ss)
	ok := r.Render(figure.Scaled(c, float64(ss)), name)
	if ss == 1 {
		return c.Image(), ok
	}
	return postprocess.Downsample(c.Image(), opts.Width, opts.Height), ok
}
