package guide

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// TestDrawGuides renders a grid carrying both a legend and a colorbar into
// an image canvas. It guards the drawing glue against panics and API drift;
// the pixels themselves are not inspected.
func TestDrawGuides(t *testing.T) {
	g := NewGrid(1, 2)
	sm := g.Panels[0][0].Scales
	sm.Put(AesKey(ColorAes), discreteScale("Species", ColorAes, "a", "b"))

	g.Panels[0][0].Entries = []*Entry{{
		PlotType:   Scatter,
		Positional: []Value{Floats{1, 2}, Floats{3, 4}},
		Primary:    map[Aes]Value{ColorAes: Strings{"a", "b"}},
	}}
	g.Panels[0][1].Entries = []*Entry{
		heatmapEntry(Floats{0, 9, 4.5}, "Elevation"),
	}

	img := vgimg.New(300, 250)
	err := DrawGuides(g, draw.New(img), DefaultStyle(12))
	require.NoError(t, err)
}

func TestColorbarDrawDegenerateRange(t *testing.T) {
	g := singlePanelGrid(heatmapEntry(Floats{5, 5, 5}, "z"))
	cb := ComputeColorbar(g, DefaultStyle(12))
	require.NotNil(t, cb)
	require.Equal(t, Interval{5, 5}, cb.Limits)

	img := vgimg.New(200, 100)
	cb.Draw(draw.New(img), DefaultStyle(12))
}
