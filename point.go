package scanbuf

// Point is an integer pixel coordinate or vector.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Cross returns the z component of the cross product of two vectors.
// On a y-down screen a positive result means q is clockwise from p.
func (p Point) Cross(q Point) int {
	return p.X*q.Y - p.Y*q.X
}
