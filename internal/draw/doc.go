// Package draw holds the drawing primitives a design is built from: shapes,
// gradient backgrounds, text effects, the decorative frame and the layout
// of text along a circular arc.
//
// Angles are in degrees with the mathematical orientation (0 is the +x axis,
// counter-clockwise positive). Screen y grows downward, so a point at angle
// θ on a circle of radius r is (cx + r·cosθ, cy − r·sinθ).
package draw
