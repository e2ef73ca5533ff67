package main

import (
	"testing"

	"github.com/HuXin0817/painting/pkg/models/message"
	"github.com/HuXin0817/painting/pkg/models/painting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hint(t *testing.T, kind painting.Kind, p painting.Point, items ...painting.Item) message.HintMessage {
	t.Helper()

	s, err := painting.Replay(3, 3, items...)
	require.NoError(t, err)

	messages := message.NewHintMessages(message.NewPaintingUid(), s.State(), kind, p)
	require.Len(t, messages, 1)
	return messages[0]
}

func TestAssess(t *testing.T) {
	m := hint(t, painting.River, painting.NewPoint(1, 0), painting.NewItem(painting.River, 0, 0))

	a, err := Assess(m, 1, true)
	require.NoError(t, err)
	assert.Equal(t, m.AssessMessageKey(), a.AssessMessageKey)
	assert.Equal(t, painting.NewPoint(1, 0), a.Point)
	assert.Equal(t, 5, a.Gain)
}

func TestAssessStale(t *testing.T) {
	m := hint(t, painting.Cloud, painting.NewPoint(1, 1))

	_, err := Assess(m, 1, true)
	assert.ErrorIs(t, err, errStale)

	_, err = Assess(m, 0, false)
	assert.ErrorIs(t, err, errStale)
}

func TestAssessPaintedCell(t *testing.T) {
	m := hint(t, painting.Cloud, painting.NewPoint(0, 0), painting.NewItem(painting.Tree, 0, 0))

	_, err := Assess(m, 1, true)
	assert.ErrorIs(t, err, painting.ErrAlreadyPainted)
}
