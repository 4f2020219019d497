// Package geometry implements the drag/resize interaction engine: handle
// classification over a rectangle's corners, edges and body, the rectangle
// arithmetic for move and resize gestures, and the mode-gated state machine
// that turns pointer events into a single committed rectangle per gesture.
package geometry
