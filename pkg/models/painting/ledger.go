package painting

// Ledger keeps items in placement order and indexes them by coordinate.
type Ledger struct {
	items []Item
	index map[Point]Kind
}

func NewLedger(items ...Item) (newLedger Ledger) {
	newLedger = Ledger{
		items: make([]Item, 0, len(items)),
		index: make(map[Point]Kind, len(items)),
	}

	for _, i := range items {
		newLedger.Append(i)
	}

	return
}

// Append records i. Callers are responsible for occupancy and bounds.
func (l *Ledger) Append(i Item) {
	if l.index == nil {
		l.index = make(map[Point]Kind)
	}

	l.items = append(l.items, i)
	l.index[i.Point()] = i.Kind
}

// Locate returns the kind painted at (x, y), or Canvas. Any coordinate may
// be asked for.
func (l Ledger) Locate(x, y int) Kind {
	if k, c := l.index[NewPoint(x, y)]; c {
		return k
	}
	return Canvas
}

func (l Ledger) Painted(x, y int) bool {
	return l.Locate(x, y) != Canvas
}

func (l Ledger) Len() int {
	return len(l.items)
}

func (l Ledger) Items() []Item {
	items := make([]Item, len(l.items))
	copy(items, l.items)
	return items
}
