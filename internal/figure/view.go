package figure

import (
	"errors"
	"fmt"
	"io"
)

// ErrInvalidSize is returned for non-positive view dimensions.
var ErrInvalidSize = errors.New("figure: width and height must be positive")

// ErrNoAcquirer is returned by Render on a view built without an Acquirer.
var ErrNoAcquirer = errors.New("figure: view has no surface acquirer")

// Acquirer returns a surface of the given size. The view calls it on first
// render and whenever the requested dimensions change.
type Acquirer func(width, height int) Surface

type viewState struct {
	name          string
	width, height int
}

// View binds a renderer to one host-owned surface and redraws only when the
// requested pose or dimensions change. A View is not safe for concurrent
// use; its host drives it from a single loop.
type View struct {
	renderer *Renderer
	acquire  Acquirer

	surface Surface
	last    viewState
	mounted bool
}

// NewView returns an unmounted view. A nil renderer uses the built-in
// registry in clip mode. acquire is required; Render fails without it.
func NewView(r *Renderer, acquire Acquirer) *View {
	if r == nil {
		r = defaultRenderer
	}
	return &View{renderer: r, acquire: acquire}
}

// Render draws name at width×height. The first call always draws; later
// calls draw only when one of the three values differs from the previous
// call. It reports whether a draw happened.
func (v *View) Render(name string, width, height int) (bool, error) {
	if width <= 0 || height <= 0 {
		return false, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	next := viewState{name: name, width: width, height: height}
	if v.mounted && next == v.last {
		return false, nil
	}

	if v.surface == nil || !v.mounted || next.width != v.last.width || next.height != v.last.height {
		if v.acquire == nil {
			return false, ErrNoAcquirer
		}
		if err := v.release(); err != nil {
			return false, fmt.Errorf("figure: release surface: %w", err)
		}
		v.surface = v.acquire(width, height)
		if v.surface == nil {
			return false, fmt.Errorf("figure: no surface for %dx%d", width, height)
		}
	}

	v.renderer.Render(v.surface, name)
	v.last = next
	v.mounted = true
	return true, nil
}

// Surface returns the current surface, or nil before the first render.
func (v *View) Surface() Surface {
	return v.surface
}

// Close drops the surface handle. Drawn pixels are left as they are.
func (v *View) Close() error {
	err := v.release()
	v.mounted = false
	return err
}

func (v *View) release() error {
	if v.surface == nil {
		return nil
	}
	var err error
	if c, ok := v.surface.(io.Closer); ok {
		err = c.Close()
	}
	v.surface = nil
	return err
}
