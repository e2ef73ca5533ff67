package assess

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/HuXin0817/painting/pkg/models/painting"
)

func Gain(st painting.State, kind painting.Kind, p painting.Point) (int, error) {
	return NewMove(st, kind, p).Gain()
}

// FreePoints lists the unpainted cells of st in row-major order.
func FreePoints(st painting.State) (freePoints []painting.Point) {
	ledger := painting.NewLedger(st.Items...)
	for y := range st.Height {
		for x := range st.Width {
			if !ledger.Painted(x, y) {
				freePoints = append(freePoints, painting.NewPoint(x, y))
			}
		}
	}
	return
}

// BetterPoints evaluates every free cell for kind and returns those sharing
// the highest gain, in row-major order.
func BetterPoints(st painting.State, kind painting.Kind) (betterPoints []painting.Point, bestGain int) {
	points := FreePoints(st)
	l := len(points)
	if l == 0 {
		return nil, 0
	}

	gains := make([]int, l)
	valid := make([]bool, l)

	var wg sync.WaitGroup
	wg.Add(l)
	for i, p := range points {
		go func(i int, p painting.Point) {
			defer wg.Done()
			gain, err := Gain(st, kind, p)
			gains[i], valid[i] = gain, err == nil
		}(i, p)
	}
	wg.Wait()

	bestGain = math.MinInt
	for i, p := range points {
		if !valid[i] {
			continue
		}

		switch {
		case gains[i] > bestGain:
			bestGain = gains[i]
			betterPoints = []painting.Point{p}
		case gains[i] == bestGain:
			betterPoints = append(betterPoints, p)
		}
	}

	if len(betterPoints) == 0 {
		return nil, 0
	}

	return
}

func RandPointInBetterPoints(st painting.State, kind painting.Kind) (painting.Point, bool) {
	points, _ := BetterPoints(st, kind)
	if len(points) == 0 {
		return painting.Point{}, false
	}
	return points[rand.New(rand.NewSource(time.Now().UnixNano())).Intn(len(points))], true
}
