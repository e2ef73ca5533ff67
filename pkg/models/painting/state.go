package painting

import "fmt"

// State is a serialisable snapshot of a surface.
type State struct {
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Items   []Item `json:"items"`
	Pending Kind   `json:"pending"`
}

func (s *Surface) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{
		Width:   s.width,
		Height:  s.height,
		Items:   s.ledger.Items(),
		Pending: s.pending,
	}
}

// FromState rebuilds a surface, replaying every item through validated
// placement before restoring the pending kind.
func FromState(st State) (*Surface, error) {
	s, err := Replay(st.Width, st.Height, st.Items...)
	if err != nil {
		return nil, err
	}

	s.Select(st.Pending)
	return s, nil
}

func Replay(width, height int, items ...Item) (*Surface, error) {
	s, err := NewSurface(width, height)
	if err != nil {
		return nil, err
	}

	for step, i := range items {
		if i.Kind == Canvas {
			return nil, fmt.Errorf("step %d: %w: canvas is not paintable", step, ErrUnknownKind)
		}

		if _, err := s.Select(i.Kind).At(i.X, i.Y); err != nil {
			return nil, fmt.Errorf("step %d: %w", step, err)
		}
	}

	return s, nil
}
