// layoutmetrics.go re-exports types from internal/graphics and internal/layout.
// Any changes to those types must be mirrored here.
package layoutmetrics

import (
	"github.com/grindlemire/go-layoutmetrics/internal/graphics"
	"github.com/grindlemire/go-layoutmetrics/internal/layout"
)

// Float is the scalar used for logical point coordinates.
type Float = graphics.Float

// Point represents an (X, Y) coordinate.
type Point = graphics.Point

// Size is a width and height pair.
type Size = graphics.Size

// Rect is an origin plus a size.
type Rect = graphics.Rect

// EdgeInsets holds inward widths for the four sides of a box.
type EdgeInsets = graphics.EdgeInsets

// DisplayType is the layout mode applied to a node.
type DisplayType = layout.DisplayType

const (
	DisplayFlex   = layout.DisplayFlex
	DisplayNone   = layout.DisplayNone
	DisplayInline = layout.DisplayInline
)

// LayoutDirection is the text/flow direction a node was laid out with.
type LayoutDirection = layout.LayoutDirection

const (
	DirectionUndefined = layout.DirectionUndefined
	DirectionLTR       = layout.DirectionLTR
	DirectionRTL       = layout.DirectionRTL
)

// LayoutMetrics is the layout result for a single node.
type LayoutMetrics = layout.LayoutMetrics

// Option sets a field of LayoutMetrics during New.
type Option = layout.Option

// New creates LayoutMetrics for frame with defaults for every unset field.
func New(frame Rect, opts ...Option) LayoutMetrics { return layout.New(frame, opts...) }

// Empty returns the "not yet computed" sentinel.
func Empty() LayoutMetrics { return layout.Empty() }

func NewRect(x, y, width, height Float) Rect      { return graphics.NewRect(x, y, width, height) }
func EdgeInsetsAll(n Float) EdgeInsets           { return graphics.EdgeInsetsAll(n) }
func EdgeInsetsSymmetric(v, h Float) EdgeInsets  { return graphics.EdgeInsetsSymmetric(v, h) }
func EdgeInsetsTRBL(t, r, b, l Float) EdgeInsets { return graphics.EdgeInsetsTRBL(t, r, b, l) }

func WithContentInsets(insets EdgeInsets) Option   { return layout.WithContentInsets(insets) }
func WithBorderWidth(widths EdgeInsets) Option     { return layout.WithBorderWidth(widths) }
func WithDisplayType(d DisplayType) Option         { return layout.WithDisplayType(d) }
func WithLayoutDirection(d LayoutDirection) Option { return layout.WithLayoutDirection(d) }
func WithPointScaleFactor(scale Float) Option      { return layout.WithPointScaleFactor(scale) }
func WithOverflowInset(insets EdgeInsets) Option   { return layout.WithOverflowInset(insets) }
