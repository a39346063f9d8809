package layoutmetrics

import "github.com/grindlemire/go-layoutmetrics/internal/debugprops"

// DebugProp is a single diagnostic key/value pair.
type DebugProp = debugprops.Prop

// DebugName returns the debug name of m's type.
func DebugName(m LayoutMetrics) string { return debugprops.Name(m) }

// DebugProps lists every field of m for inspection tools.
func DebugProps(m LayoutMetrics) []DebugProp { return debugprops.Props(m) }

// Describe returns a one-line, human-readable rendering of m.
func Describe(m LayoutMetrics) string { return debugprops.Describe(m) }

// LogMetrics writes m to the debug log named by LAYOUTMETRICS_DEBUG.
// It does nothing when debug logging is off.
func LogMetrics(label string, m LayoutMetrics) { debugprops.Log(label, m) }
