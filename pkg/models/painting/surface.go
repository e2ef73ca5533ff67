package painting

import (
	"strings"
	"sync"
)

// Surface is a fixed size grid that kinds are painted on one at a time.
// All methods are safe for concurrent use.
type Surface struct {
	width  int
	height int

	mu      sync.Mutex
	ledger  Ledger
	pending Kind
}

func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}

	return &Surface{
		width:  width,
		height: height,
		ledger: NewLedger(),
	}, nil
}

func (s *Surface) Width() int { return s.width }

func (s *Surface) Height() int { return s.height }

// Select remembers kind as the next thing to paint. Selecting Canvas leaves
// nothing pending.
func (s *Surface) Select(kind Kind) *Surface {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = kind
	return s
}

func (s *Surface) Pending() (Kind, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pending, s.pending != Canvas
}

// At paints the pending kind at (x, y) when one was selected, returning the
// painted kind. Without a pending kind it only reports what is at (x, y).
// The pending kind is cleared whether or not painting succeeds.
func (s *Surface) At(x, y int) (Kind, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == Canvas {
		return s.ledger.Locate(x, y), nil
	}

	kind := s.pending
	defer func() { s.pending = Canvas }()

	if err := s.paint(kind, x, y); err != nil {
		return Canvas, err
	}

	return kind, nil
}

func (s *Surface) paint(kind Kind, x, y int) error {
	if s.ledger.Painted(x, y) {
		return &AlreadyPaintedError{X: x, Y: y}
	}

	if s.outOfBounds(x, y) {
		return &OutOfBoundsError{X: x, Y: y}
	}

	s.ledger.Append(NewItem(kind, x, y))
	return nil
}

func (s *Surface) outOfBounds(x, y int) bool {
	return x < 0 || y < 0 || x >= s.width || y >= s.height
}

// Locate reports the kind at (x, y) and never fails, even outside the
// surface.
func (s *Surface) Locate(x, y int) Kind {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger.Locate(x, y)
}

// Items returns the painted items in placement order.
func (s *Surface) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger.Items()
}

func (s *Surface) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger.Len()
}

// Value scores the painted items. A pending kind is ignored.
func (s *Surface) Value() int {
	return NewScorer(s.Items()).Value()
}

func (s *Surface) Breakdown() Breakdown {
	return NewScorer(s.Items()).Breakdown()
}

func (s *Surface) Rows() (rows [][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows = make([][]string, s.height)
	for y := range s.height {
		rows[y] = make([]string, s.width)
		for x := range s.width {
			rows[y][x] = s.ledger.Locate(x, y).Glyph()
		}
	}

	return
}

// Render draws one line of glyphs per row, each line ending with a newline.
func (s *Surface) Render() string {
	var builder strings.Builder
	for _, row := range s.Rows() {
		builder.WriteString(strings.Join(row, ""))
		builder.WriteString("\n")
	}
	return builder.String()
}
