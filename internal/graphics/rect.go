package graphics

// Rect is an origin plus a size. The origin is the top-left corner.
type Rect struct {
	Origin Point
	Size   Size
}

// NewRect creates a Rect from its position and dimensions.
func NewRect(x, y, width, height Float) Rect {
	return Rect{
		Origin: Point{X: x, Y: y},
		Size:   Size{Width: width, Height: height},
	}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() Float {
	return r.Origin.X + r.Size.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() Float {
	return r.Origin.Y + r.Size.Height
}

// Contains reports whether p lies inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && p.X < r.Right() && p.Y >= r.Origin.Y && p.Y < r.Bottom()
}

// Inset returns a new Rect shrunk by the given insets.
// The result is not clamped: insets larger than the rect yield a negative size.
func (r Rect) Inset(insets EdgeInsets) Rect {
	return Rect{
		Origin: Point{X: r.Origin.X + insets.Left, Y: r.Origin.Y + insets.Top},
		Size: Size{
			Width:  r.Size.Width - insets.Left - insets.Right,
			Height: r.Size.Height - insets.Top - insets.Bottom,
		},
	}
}

// Outset returns a new Rect expanded outward by the given insets.
func (r Rect) Outset(insets EdgeInsets) Rect {
	return Rect{
		Origin: Point{X: r.Origin.X - insets.Left, Y: r.Origin.Y - insets.Top},
		Size: Size{
			Width:  r.Size.Width + insets.Left + insets.Right,
			Height: r.Size.Height + insets.Top + insets.Bottom,
		},
	}
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy Float) Rect {
	return Rect{Origin: r.Origin.Add(Point{X: dx, Y: dy}), Size: r.Size}
}
