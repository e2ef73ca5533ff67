package painting

const (
	maxSkyY          = 2
	maxGoodMountains = 3
	treeCrowd        = 3
	treeCrowdBonus   = 5
	maxTreeBonus     = 10
)

// Scorer computes the value of a finished ledger of items.
type Scorer struct {
	Ledger
	score        int
	numTrees     int
	numMountains int
}

type Contribution struct {
	Item  Item `json:"item"`
	Score int  `json:"score"`
}

type Breakdown struct {
	Contributions []Contribution `json:"contributions"`
	TreeBonus     int            `json:"treeBonus"`
	Total         int            `json:"total"`
}

func NewScorer(items []Item) *Scorer {
	return &Scorer{Ledger: NewLedger(items...)}
}

func (s *Scorer) Value() int {
	return s.Breakdown().Total
}

func (s *Scorer) Breakdown() (b Breakdown) {
	s.score, s.numTrees, s.numMountains = 0, 0, 0

	b.Contributions = make([]Contribution, 0, s.Len())
	for _, item := range s.items {
		score := s.itemScore(item)
		s.score += score
		b.Contributions = append(b.Contributions, Contribution{Item: item, Score: score})
	}

	b.TreeBonus = TreeBonus(s.numTrees)
	s.score += b.TreeBonus
	b.Total = s.score
	return
}

func (s *Scorer) itemScore(item Item) int {
	switch item.Kind {
	case Tree:
		s.numTrees++
		return 0
	case Mountain:
		s.numMountains++
		if s.numMountains > maxGoodMountains {
			return -5
		}
		return 2
	case Cloud:
		if item.Y < maxSkyY {
			return 1
		}
		return -1
	case River:
		score := 1
		for _, p := range item.Point().Neighbors() {
			if s.Locate(p.X, p.Y) == River {
				score += 2
			}
		}
		return score
	}
	return 0
}

func TreeBonus(numTrees int) int {
	score := numTrees
	if numTrees > treeCrowd {
		score += treeCrowdBonus
	}

	return min(score, maxTreeBonus)
}
