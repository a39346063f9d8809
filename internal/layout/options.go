package layout

import "github.com/grindlemire/go-layoutmetrics/internal/graphics"

// Option sets a field of LayoutMetrics during New.
type Option func(*LayoutMetrics)

// WithContentInsets sets the combined border and padding widths.
func WithContentInsets(insets graphics.EdgeInsets) Option {
	return func(m *LayoutMetrics) {
		m.ContentInsets = insets
	}
}

// WithBorderWidth sets the border widths.
func WithBorderWidth(widths graphics.EdgeInsets) Option {
	return func(m *LayoutMetrics) {
		m.BorderWidth = widths
	}
}

// WithDisplayType sets the display type.
func WithDisplayType(d DisplayType) Option {
	return func(m *LayoutMetrics) {
		m.DisplayType = d
	}
}

// WithLayoutDirection sets the resolved layout direction.
func WithLayoutDirection(d LayoutDirection) Option {
	return func(m *LayoutMetrics) {
		m.LayoutDirection = d
	}
}

// WithPointScaleFactor sets the points-to-pixels scale factor.
func WithPointScaleFactor(scale graphics.Float) Option {
	return func(m *LayoutMetrics) {
		m.PointScaleFactor = scale
	}
}

// WithOverflowInset sets how far content overflows the frame.
func WithOverflowInset(insets graphics.EdgeInsets) Option {
	return func(m *LayoutMetrics) {
		m.OverflowInset = insets
	}
}
