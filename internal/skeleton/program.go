package skeleton

import (
	"errors"
	"fmt"
)

// Program is the drawing program for one pose: a head disc plus the limb
// paths stroked in a fixed order. SecondaryLimb and SecondaryArm may be
// absent, which is how one-legged or one-armed silhouettes are expressed.
type Program struct {
	Head          Point
	Body          Path
	PrimaryLimb   Path
	SecondaryLimb OptionalPath
	PrimaryArm    Path
	SecondaryArm  OptionalPath
}

// Paths returns the paths in stroke order: body, primary limb, secondary
// limb, primary arm, secondary arm. Absent paths are skipped.
func (p Program) Paths() []Path {
	paths := make([]Path, 0, 5)
	paths = append(paths, p.Body, p.PrimaryLimb)
	if limb, ok := p.SecondaryLimb.Get(); ok {
		paths = append(paths, limb)
	}
	paths = append(paths, p.PrimaryArm)
	if arm, ok := p.SecondaryArm.Get(); ok {
		paths = append(paths, arm)
	}
	return paths
}

// Validate checks the registration invariants: a finite head and a
// strokeable body, primary limb, primary arm and any present secondary path.
func (p Program) Validate() error {
	if !p.Head.finite() {
		return fmt.Errorf("skeleton: head is not finite: %v", p.Head)
	}
	required := []struct {
		name string
		path Path
	}{
		{"body", p.Body},
		{"primary limb", p.PrimaryLimb},
		{"primary arm", p.PrimaryArm},
	}
	var errs []error
	for _, r := range required {
		if !r.path.Valid() {
			errs = append(errs, fmt.Errorf("%s: %w", r.name, ErrShortPath))
		}
	}
	optional := []struct {
		name string
		path OptionalPath
	}{
		{"secondary limb", p.SecondaryLimb},
		{"secondary arm", p.SecondaryArm},
	}
	for _, o := range optional {
		if path, ok := o.path.Get(); ok && !path.Valid() {
			errs = append(errs, fmt.Errorf("%s: %w", o.name, ErrShortPath))
		}
	}
	return errors.Join(errs...)
}
