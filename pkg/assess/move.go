package assess

import (
	"github.com/HuXin0817/painting/pkg/models/painting"
)

// Move is a candidate placement on a snapshot of a surface.
type Move struct {
	painting.State
	painting.Item
}

func NewMove(st painting.State, kind painting.Kind, p painting.Point) Move {
	return Move{
		State: st,
		Item:  painting.NewItem(kind, p.X, p.Y),
	}
}

// Gain is how much the surface value changes when the move is painted.
func (m Move) Gain() (int, error) {
	before, err := painting.Replay(m.Width, m.Height, m.Items...)
	if err != nil {
		return 0, err
	}

	after, err := painting.Replay(m.Width, m.Height, append(before.Items(), m.Item)...)
	if err != nil {
		return 0, err
	}

	return after.Value() - before.Value(), nil
}
