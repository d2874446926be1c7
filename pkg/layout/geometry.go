// Package layout provides the sizing and spacing values components declare
// in UI documents, along with their resolution against a host's space.
package layout

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Insets represents spacing on the four sides of a component.
type Insets struct {
	Top, Bottom, Left, Right int
}

// InsetsAll returns Insets with the same value on every side.
func InsetsAll(v int) Insets {
	return Insets{Top: v, Bottom: v, Left: v, Right: v}
}
