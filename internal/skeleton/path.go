package skeleton

import (
	"errors"
	"fmt"
	"math"
)

// ErrShortPath is returned when a limb path has fewer than two joints.
var ErrShortPath = errors.New("skeleton: limb path needs at least two joints")

// Point is a joint position in reference-frame units.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Path is an ordered polyline of joints. The zero value is an empty,
// invalid path; build paths with NewPath. A Path never changes after it is
// built.
type Path struct {
	pts []Point
}

// NewPath copies pts into a Path.
func NewPath(pts ...Point) (Path, error) {
	if len(pts) < 2 {
		return Path{}, fmt.Errorf("%w (got %d)", ErrShortPath, len(pts))
	}
	for i, p := range pts {
		if !p.finite() {
			return Path{}, fmt.Errorf("skeleton: joint %d is not finite: %v", i, p)
		}
	}
	cp := make([]Point, len(pts))
	copy(cp, pts)
	return Path{pts: cp}, nil
}

// MustPath is NewPath for static pose data; it panics on invalid input.
func MustPath(pts ...Point) Path {
	p, err := NewPath(pts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Points returns a copy of the joints in stroke order.
func (p Path) Points() []Point {
	cp := make([]Point, len(p.pts))
	copy(cp, p.pts)
	return cp
}

// Len returns the number of joints.
func (p Path) Len() int {
	return len(p.pts)
}

// Valid reports whether the path can be stroked.
func (p Path) Valid() bool {
	return len(p.pts) >= 2
}

// OptionalPath is a limb path that may be absent. The zero value is absent.
type OptionalPath struct {
	path    Path
	present bool
}

// Some wraps a present path.
func Some(p Path) OptionalPath {
	return OptionalPath{path: p, present: true}
}

// None returns an absent path.
func None() OptionalPath {
	return OptionalPath{}
}

// Get returns the path and whether it is present.
func (o OptionalPath) Get() (Path, bool) {
	return o.path, o.present
}

// Present reports whether a path is set.
func (o OptionalPath) Present() bool {
	return o.present
}
