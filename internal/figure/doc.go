// Package figure draws skeleton programs onto a drawing surface.
//
// A Surface is the narrow set of 2D capabilities the engine needs: clearing
// a rectangle, stroking a polyline, filling a circle or rectangle, and
// drawing centred text. Backends live in their own packages (raster, vecsvg,
// pdfsheet, record) and the engine never depends on them.
//
// Rendering is synchronous and has no I/O. A name without a registered
// program is drawn as the "No Image" placeholder; that is not an error.
package figure
