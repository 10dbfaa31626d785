// Package skeleton holds the stick-figure data model: joints, limb paths,
// per-pose drawing programs and the read-only registry that maps a pose's
// display name to its program.
//
// Programs are authored in a 300×300 reference frame with the origin at the
// top-left corner. Nothing in this package draws; see package figure.
package skeleton
