package bmpr

// Point represents a 2D pixel coordinate. It carries no behavior; the
// drawing routines that take control points accept Points by value.
type Point struct {
	X, Y int32
}

// Pt is a convenience function to create a Point.
func Pt(x, y int32) Point {
	return Point{X: x, Y: y}
}
