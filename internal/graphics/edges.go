package graphics

// EdgeInsets holds inward widths for the four sides of a box.
type EdgeInsets struct {
	Top, Right, Bottom, Left Float
}

// EdgeInsetsAll creates EdgeInsets with the same value on all sides.
func EdgeInsetsAll(n Float) EdgeInsets {
	return EdgeInsets{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeInsetsSymmetric creates EdgeInsets with vertical (top/bottom) and horizontal (left/right) values.
func EdgeInsetsSymmetric(v, h Float) EdgeInsets {
	return EdgeInsets{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeInsetsTRBL creates EdgeInsets following CSS order: Top, Right, Bottom, Left.
func EdgeInsetsTRBL(t, r, b, l Float) EdgeInsets {
	return EdgeInsets{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns the sum of Left and Right.
func (e EdgeInsets) Horizontal() Float {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e EdgeInsets) Vertical() Float {
	return e.Top + e.Bottom
}

// IsZero returns true if all edge values are zero.
func (e EdgeInsets) IsZero() bool {
	return e == EdgeInsets{}
}
