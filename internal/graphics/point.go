package graphics

// Float is the scalar used for logical point coordinates.
type Float = float64

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y Float
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns a new Point with other subtracted.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Size is a width and height pair.
type Size struct {
	Width, Height Float
}

// IsNegative reports whether either dimension is below zero. Negative sizes mark
// undefined or over-inset geometry.
func (s Size) IsNegative() bool {
	return s.Width < 0 || s.Height < 0
}
