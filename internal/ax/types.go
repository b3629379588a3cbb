package ax

import (
	"fmt"
	"strings"
)

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// ParseMouseButton converts a string flag value to MouseButton.
func ParseMouseButton(s string) (MouseButton, error) {
	switch strings.ToLower(s) {
	case "left":
		return MouseLeft, nil
	case "right":
		return MouseRight, nil
	case "middle":
		return MouseMiddle, nil
	default:
		return MouseLeft, fmt.Errorf("unknown mouse button: %q (expected left, right, or middle)", s)
	}
}

// Center returns the midpoint of an element's bounds, or ok=false when the
// element has no usable geometry.
func Center(el Element) (Point, bool) {
	pos, ok := el.Position()
	if !ok {
		return Point{}, false
	}
	size, ok := el.Size()
	if !ok || size.W <= 0 || size.H <= 0 {
		return Point{}, false
	}
	return Point{X: pos.X + size.W/2, Y: pos.Y + size.H/2}, true
}
