package painting

import "fmt"

// Item is a kind painted at one coordinate of a surface.
type Item struct {
	X    int  `json:"x"`
	Y    int  `json:"y"`
	Kind Kind `json:"kind"`
}

func NewItem(kind Kind, x, y int) Item {
	return Item{X: x, Y: y, Kind: kind}
}

func (i Item) Point() Point {
	return NewPoint(i.X, i.Y)
}

func (i Item) String() string {
	return fmt.Sprintf("%s at (%d, %d)", i.Kind, i.X, i.Y)
}
