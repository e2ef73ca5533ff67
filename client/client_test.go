package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/HuXin0817/painting/pkg/models/painting"
	"github.com/gdamore/tcell/v2"
	"github.com/logrusorgru/aurora"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunValley(t *testing.T) {
	s, err := LoadScript(filepath.Join("scripts", "valley.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "valley", s.Name)

	r, err := s.Run()
	require.NoError(t, err)

	require.Len(t, r.Failures, 1)
	assert.Equal(t, 3, r.Failures[0].Step)
	assert.ErrorIs(t, r.Failures[0].Err, painting.ErrAlreadyPainted)
	assert.Equal(t, 8, r.Surface.Value())
}

func TestRunRange(t *testing.T) {
	s, err := LoadScript(filepath.Join("scripts", "range.yaml"))
	require.NoError(t, err)

	r, err := s.Run()
	require.NoError(t, err)
	assert.Empty(t, r.Failures)

	// clouds 1+1, mountains 2+2+2, trees 4+5, three rivers all touching: 5+5+5.
	assert.Equal(t, 2+6+9+15, r.Surface.Value())
}

func TestRunReportsBadPlacements(t *testing.T) {
	s, err := LoadScriptFromYaml([]byte(`
width: 2
height: 2
placements:
  - {kind: lake, x: 0, y: 0}
  - {kind: tree, x: 2, y: 0}
  - {kind: tree, x: 1, y: 1}
`))
	require.NoError(t, err)

	r, err := s.Run()
	require.NoError(t, err)
	require.Len(t, r.Failures, 2)
	assert.ErrorIs(t, r.Failures[0].Err, painting.ErrUnknownKind)
	assert.ErrorIs(t, r.Failures[1].Err, painting.ErrOutOfBounds)
	assert.Equal(t, 1, r.Surface.Value())
}

func TestRunRejectsEmptySurface(t *testing.T) {
	_, err := Script{Name: "flat", Width: 0, Height: 3}.Run()
	assert.ErrorIs(t, err, painting.ErrInvalidSize)
}

func TestPrintResult(t *testing.T) {
	s, err := LoadScript(filepath.Join("scripts", "valley.yaml"))
	require.NoError(t, err)
	r, err := s.Run()
	require.NoError(t, err)

	var out bytes.Buffer
	PrintResult(&out, aurora.NewAurora(false), r)

	assert.Contains(t, out.String(), "🌲☁️...\n.🌊🌊..\n")
	assert.Contains(t, out.String(), "already painted at (0, 0)")
	assert.Contains(t, out.String(), "value +8")
}

func TestDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(40, 20)

	r, err := Script{Name: "tiny", Width: 2, Height: 1, Placements: []Placement{{Kind: "river", X: 1, Y: 0}}}.Run()
	require.NoError(t, err)

	Draw(screen, []*Result{r})

	mainc, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, 't', mainc)

	mainc, _, _, _ = screen.GetContent(0, 1)
	assert.Equal(t, '.', mainc)

	mainc, _, style, _ := screen.GetContent(cellWidth, 1)
	assert.Equal(t, '🌊', mainc)
	assert.Equal(t, kindStyles[painting.River], style)

	mainc, _, _, _ = screen.GetContent(0, 2)
	assert.Equal(t, 'v', mainc)
}
