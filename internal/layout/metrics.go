package layout

import "github.com/grindlemire/go-layoutmetrics/internal/graphics"

// LayoutMetrics is the layout result for a single node.
//
// It is a plain value: copy it, compare it with ==, never mutate one that has been
// handed out. A new layout pass produces a new value that replaces the old one.
// The field order below is the order equality and Hash combine fields in.
type LayoutMetrics struct {
	// Frame is the border box. Origin is relative to the parent's content frame;
	// size includes border, padding and content.
	Frame graphics.Rect

	// ContentInsets is the width of border plus padding on each side.
	ContentInsets graphics.EdgeInsets

	// BorderWidth is the width of the border alone on each side.
	BorderWidth graphics.EdgeInsets

	DisplayType     DisplayType
	LayoutDirection LayoutDirection

	// PointScaleFactor maps logical points to device pixels.
	PointScaleFactor graphics.Float

	// OverflowInset is how far rendered content extends past Frame on each side.
	OverflowInset graphics.EdgeInsets
}

// New creates LayoutMetrics for the given frame. Fields not set by an option take
// their defaults: zero insets, flex display, undefined direction, scale factor 1.
// No validation is performed.
func New(frame graphics.Rect, opts ...Option) LayoutMetrics {
	m := LayoutMetrics{
		Frame:            frame,
		DisplayType:      DisplayFlex,
		LayoutDirection:  DirectionUndefined,
		PointScaleFactor: 1.0,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Empty returns the "not yet computed" value: a frame of size (-1, -1) at the
// origin with every other field at its default. It compares like any other value.
func Empty() LayoutMetrics {
	return New(graphics.NewRect(0, 0, -1, -1))
}

// IsEmpty returns true if m equals the Empty sentinel.
func (m LayoutMetrics) IsEmpty() bool {
	return m == Empty()
}

// ContentFrame returns the area left for content once border and padding are removed.
// Its origin is relative to the node's own border box, not to the parent.
// Insets larger than the frame produce a negative size; the result is not clamped.
func (m LayoutMetrics) ContentFrame() graphics.Rect {
	return graphics.Rect{
		Origin: graphics.Point{X: m.ContentInsets.Left, Y: m.ContentInsets.Top},
		Size: graphics.Size{
			Width:  m.Frame.Size.Width - m.ContentInsets.Left - m.ContentInsets.Right,
			Height: m.Frame.Size.Height - m.ContentInsets.Top - m.ContentInsets.Bottom,
		},
	}
}

// Equal reports whether every field of m and other is exactly equal.
// It is the same relation as m == other.
func (m LayoutMetrics) Equal(other LayoutMetrics) bool {
	return m == other
}

// NotEqual is the negation of Equal.
func (m LayoutMetrics) NotEqual(other LayoutMetrics) bool {
	return !m.Equal(other)
}
