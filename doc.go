// Package layoutmetrics provides the layout result value for a single UI node.
//
// A [LayoutMetrics] holds a node's frame, border and padding insets, overflow,
// display type, flow direction and point scale factor. Layout engines produce one
// per node per pass; commit pipelines compare successive values with == (or
// [LayoutMetrics.Equal]) to decide whether on-screen geometry changed.
//
// Values are immutable by convention: build them with [New], pass them by value,
// and replace them wholesale. [Empty] is the "not yet computed" marker.
package layoutmetrics
