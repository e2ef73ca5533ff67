package assess

import (
	"testing"

	"github.com/HuXin0817/painting/pkg/models/painting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func state(t *testing.T, width, height int, items ...painting.Item) painting.State {
	t.Helper()

	s, err := painting.Replay(width, height, items...)
	require.NoError(t, err)
	return s.State()
}

func TestGainMatchesValueDifference(t *testing.T) {
	st := state(t, 4, 4, painting.NewItem(painting.River, 1, 1))

	gain, err := Gain(st, painting.River, painting.NewPoint(2, 1))
	require.NoError(t, err)
	// 1 -> 3 + 3
	assert.Equal(t, 5, gain)

	gain, err = Gain(st, painting.Cloud, painting.NewPoint(0, 3))
	require.NoError(t, err)
	assert.Equal(t, -1, gain)
}

func TestGainRejectsPaintedCell(t *testing.T) {
	st := state(t, 2, 2, painting.NewItem(painting.Tree, 0, 0))

	_, err := Gain(st, painting.Tree, painting.NewPoint(0, 0))
	assert.ErrorIs(t, err, painting.ErrAlreadyPainted)

	_, err = Gain(st, painting.Tree, painting.NewPoint(2, 0))
	assert.ErrorIs(t, err, painting.ErrOutOfBounds)
}

func TestFreePoints(t *testing.T) {
	st := state(t, 2, 2, painting.NewItem(painting.Tree, 1, 0))

	assert.Equal(t, []painting.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}, FreePoints(st))
}

func TestBetterPointsForRiver(t *testing.T) {
	st := state(t, 3, 3,
		painting.NewItem(painting.River, 0, 0),
		painting.NewItem(painting.River, 2, 0),
	)

	points, gain := BetterPoints(st, painting.River)
	// (1, 0) and (1, 1) both touch the two rivers.
	assert.Equal(t, []painting.Point{{X: 1, Y: 0}, {X: 1, Y: 1}}, points)
	assert.Equal(t, 9, gain)
}

func TestBetterPointsForCloudPrefersSky(t *testing.T) {
	st := state(t, 2, 3)

	points, gain := BetterPoints(st, painting.Cloud)
	assert.Equal(t, 1, gain)
	assert.Len(t, points, 4)
	for _, p := range points {
		assert.Less(t, p.Y, 2)
	}
}

func TestBetterPointsOnFullSurface(t *testing.T) {
	st := state(t, 1, 1, painting.NewItem(painting.Tree, 0, 0))

	points, gain := BetterPoints(st, painting.Tree)
	assert.Empty(t, points)
	assert.Zero(t, gain)

	_, ok := RandPointInBetterPoints(st, painting.Tree)
	assert.False(t, ok)
}

func TestRandPointInBetterPoints(t *testing.T) {
	st := state(t, 3, 3, painting.NewItem(painting.River, 1, 1))

	p, ok := RandPointInBetterPoints(st, painting.River)
	require.True(t, ok)
	neighbors := painting.NewPoint(1, 1).Neighbors()
	assert.Contains(t, neighbors[:], p)
}
