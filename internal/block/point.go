package block

// Point is a single cell of a block, expressed as an offset from the block's
// origin. X grows to the right and Y grows up.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RotateRight rotates the point 90 degrees clockwise about the origin.
func (p Point) RotateRight() Point {
	return Point{X: p.Y, Y: -p.X}
}

// RotateLeft rotates the point 90 degrees counter-clockwise about the origin.
func (p Point) RotateLeft() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Add translates p by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}
