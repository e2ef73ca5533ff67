package painting

import "fmt"

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Neighbors lists the eight surrounding cells. Nothing is clamped: cells
// outside any surface are returned as well.
func (p Point) Neighbors() [8]Point {
	x, y := p.X, p.Y

	return [...]Point{
		NewPoint(x-1, y-1),
		NewPoint(x, y-1),
		NewPoint(x+1, y-1),
		NewPoint(x-1, y),
		NewPoint(x+1, y),
		NewPoint(x-1, y+1),
		NewPoint(x, y+1),
		NewPoint(x+1, y+1),
	}
}
