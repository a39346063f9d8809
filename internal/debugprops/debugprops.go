// Package debugprops renders LayoutMetrics for logging and inspection tools.
//
// Nothing in the core value type depends on this package; import it only where
// diagnostics are wanted.
package debugprops

import (
	"strconv"
	"strings"

	"github.com/grindlemire/go-layoutmetrics/internal/debug"
	"github.com/grindlemire/go-layoutmetrics/internal/graphics"
	"github.com/grindlemire/go-layoutmetrics/internal/layout"
)

// Prop is a single diagnostic key/value pair.
type Prop struct {
	Name  string
	Value string
}

// Name returns the debug name of the value type.
func Name(layout.LayoutMetrics) string {
	return "LayoutMetrics"
}

// Props lists every field of m, in the same order equality compares them.
func Props(m layout.LayoutMetrics) []Prop {
	return []Prop{
		{Name: "frame", Value: formatRect(m.Frame)},
		{Name: "contentInsets", Value: formatInsets(m.ContentInsets)},
		{Name: "borderWidth", Value: formatInsets(m.BorderWidth)},
		{Name: "displayType", Value: m.DisplayType.String()},
		{Name: "layoutDirection", Value: m.LayoutDirection.String()},
		{Name: "pointScaleFactor", Value: formatFloat(m.PointScaleFactor)},
		{Name: "overflowInset", Value: formatInsets(m.OverflowInset)},
	}
}

// Describe returns a one-line description such as
// LayoutMetrics{frame={0, 0, 10, 10} contentInsets={0, 0, 0, 0} ...}.
func Describe(m layout.LayoutMetrics) string {
	var sb strings.Builder
	sb.WriteString(Name(m))
	sb.WriteByte('{')
	for i, p := range Props(m) {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.Name)
		sb.WriteByte('=')
		sb.WriteString(p.Value)
	}
	sb.WriteByte('}')
	return sb.String()
}

// Log writes the description of m to the debug log, prefixed by label.
func Log(label string, m layout.LayoutMetrics) {
	if !debug.Enabled() {
		return
	}
	debug.Log("%s: %s", label, Describe(m))
}

func formatFloat(f graphics.Float) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatRect(r graphics.Rect) string {
	return "{" + formatFloat(r.Origin.X) + ", " + formatFloat(r.Origin.Y) + ", " +
		formatFloat(r.Size.Width) + ", " + formatFloat(r.Size.Height) + "}"
}

func formatInsets(e graphics.EdgeInsets) string {
	return "{" + formatFloat(e.Top) + ", " + formatFloat(e.Right) + ", " +
		formatFloat(e.Bottom) + ", " + formatFloat(e.Left) + "}"
}
