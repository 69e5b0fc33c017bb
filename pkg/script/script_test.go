package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/CirKit/pkg/scene"
)

func TestParseCommands(t *testing.T) {
	p, err := NewParser()
	require.NoError(t, err)

	s, err := p.ParseString("test.ckt", `
# build a tiny circuit
resize 800, 600
place resistor at 100 100
select none
move resistor-1 to -40.5 60
rotate
lock resistor-1
zoom in at 400 300
zoom out
pan from 0 0 to 50 0 to 60 10
fit
`)
	require.NoError(t, err)
	require.Len(t, s.Commands, 10)

	require.Equal(t, 800.0, s.Commands[0].Resize.Size.X)
	require.Equal(t, "resistor", s.Commands[1].Place.Kind)
	require.Equal(t, "none", s.Commands[2].Select.ID)
	require.Equal(t, -40.5, s.Commands[3].Move.To.X)
	require.True(t, s.Commands[4].Rotate.Rotate)
	require.Equal(t, "lock", s.Commands[5].Lock.Verb)
	require.NotNil(t, s.Commands[6].Zoom.At)
	require.Nil(t, s.Commands[7].Zoom.At)
	require.Len(t, s.Commands[8].Pan.To, 2)
	require.Equal(t, "fit", s.Commands[9].View.Verb)
	require.Equal(t, 4, s.Commands[1].Pos.Line)
}

func TestCompileExpandsPan(t *testing.T) {
	p, err := NewParser()
	require.NoError(t, err)
	s, err := p.ParseString("", "pan from 0 0 to 10 0 to 20 0")
	require.NoError(t, err)

	actions, err := Compile(s)
	require.NoError(t, err)
	require.Len(t, actions, 4)
	require.IsType(t, scene.BeginPan{}, actions[0])
	require.IsType(t, scene.UpdatePan{}, actions[2])
	require.Equal(t, scene.EndPan{}, actions[3])
}

func TestCompileRejectsUnknownKind(t *testing.T) {
	p, err := NewParser()
	require.NoError(t, err)
	s, err := p.ParseString("bad.ckt", "resize 10 10\nplace transistor at 1 1")
	require.NoError(t, err)

	_, err = Compile(s)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad.ckt:2:1")
	require.Contains(t, err.Error(), "transistor")
}

func TestParseError(t *testing.T) {
	err := Run(scene.NewStore(), "broken.ckt", "place resistor 1 2")
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "script: parse error"), err.Error())
}

func TestRunPlaceRotatePan(t *testing.T) {
	store := scene.NewStore()
	require.NoError(t, Run(store, "scenario.ckt", `
resize 800 600
place resistor at 100 100
rotate
pan from 0 0 to 50 0
`))

	snap := store.Snapshot()
	require.Len(t, snap.Symbols, 1)
	sym := snap.Symbols[0]
	require.Equal(t, "resistor-1", sym.ID)
	require.Equal(t, scene.Pt(100, 100), sym.Position)
	require.Equal(t, 90, sym.Rotation)
	require.Equal(t, scene.Pt(50, 0), snap.Transform.Offset)
	require.Equal(t, "x: 100, y: 100", scene.DescribeSelection(snap).Position)
}

func TestRunSelectToggleAndClear(t *testing.T) {
	store := scene.NewStore()
	require.NoError(t, Run(store, "", `
resize 800 600
place battery at 10 10
place switch at 900 10   # outside the viewport, ignored
select battery-1
`))
	snap := store.Snapshot()
	require.Len(t, snap.Symbols, 1)
	require.Empty(t, snap.Selection)

	require.NoError(t, Run(store, "", "unlock battery-1 select battery-1 clear"))
	snap = store.Snapshot()
	require.Empty(t, snap.Symbols)
	require.Empty(t, snap.Selection)
}
