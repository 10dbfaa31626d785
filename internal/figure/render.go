package figure

import (
	"fmt"
	"strings"

	"posefig/internal/skeleton"
)

// ScaleMode decides how reference-frame programs map onto smaller or larger
// surfaces.
type ScaleMode uint8

const (
	// ScaleClip draws reference coordinates 1:1; anything beyond the surface
	// is cut off.
	ScaleClip ScaleMode = iota
	// ScaleFit scales the reference frame uniformly to the surface's shorter
	// edge.
	ScaleFit
)

func (m ScaleMode) String() string {
	if m == ScaleFit {
		return "fit"
	}
	return "clip"
}

// ParseScaleMode accepts "clip" (or "") and "fit".
func ParseScaleMode(s string) (ScaleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "clip":
		return ScaleClip, nil
	case "fit":
		return ScaleFit, nil
	default:
		return ScaleClip, fmt.Errorf("figure: unknown scale mode %q", s)
	}
}

// Renderer resolves pose names against a registry and draws them.
type Renderer struct {
	registry *skeleton.Registry
	mode     ScaleMode
}

// NewRenderer returns a renderer over reg. A nil reg means the built-in
// registry.
func NewRenderer(reg *skeleton.Registry, mode ScaleMode) *Renderer {
	if reg == nil {
		reg = skeleton.Default()
	}
	return &Renderer{registry: reg, mode: mode}
}

// Registry returns the registry names are resolved against.
func (r *Renderer) Registry() *skeleton.Registry {
	return r.registry
}

// Mode returns the scale mode.
func (r *Renderer) Mode() ScaleMode {
	return r.mode
}

// Render clears s and draws the program registered under name, or the
// placeholder if there is none. It reports whether a program was found.
func (r *Renderer) Render(s Surface, name string) bool {
	w, h := s.Size()
	s.Clear(Rect{W: float64(w), H: float64(h)})

	p, ok := r.registry.Lookup(name)
	if !ok {
		DrawPlaceholder(s)
		return false
	}

	if r.mode == ScaleFit {
		k := float64(min(w, h)) / ReferenceSize
		Draw(Scaled(s, k), p)
		return true
	}
	Draw(s, p)
	return true
}

// Illustrated reports whether name has a registered program.
func (r *Renderer) Illustrated(name string) bool {
	_, ok := r.registry.Lookup(name)
	return ok
}

var defaultRenderer = NewRenderer(nil, ScaleClip)

// Render draws name with the built-in registry in clip mode.
func Render(s Surface, name string) bool {
	return defaultRenderer.Render(s, name)
}
