package guide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discreteScale(label string, a Aes, values ...string) *Scale {
	return &Scale{
		Label: label,
		Data:  values,
		Plot:  DefaultVisuals(a, len(values)),
	}
}

func TestComputeLegendAbsent(t *testing.T) {
	g := NewGrid(1, 1)
	sm := g.Panels[0][0].Scales
	sm.Put(AesKey(RowAes), discreteScale("Region", RowAes, "north", "south"))
	sm.Put(AesKey(GroupAes), discreteScale("ID", GroupAes, "a", "b"))
	sm.Put(PosKey(1), &Scale{Label: "x"})

	l, err := ComputeLegend(g)
	require.NoError(t, err)
	assert.Nil(t, l, "structural and positional scales need no legend")
}

func TestComputeLegendIgnoresColorMapKey(t *testing.T) {
	g := NewGrid(1, 1)
	g.Panels[0][0].Scales.Put(AesKey(ColorMapAes), discreteScale("Map", ColorMapAes, "a", "b"))

	l, err := ComputeLegend(g)
	require.NoError(t, err)
	assert.Nil(t, l, "the colormap override key carries no legend")
}

func TestComputeLegendTitleDedup(t *testing.T) {
	g := NewGrid(1, 1)
	sm := g.Panels[0][0].Scales
	sm.Put(AesKey(ColorAes), discreteScale("Species", ColorAes, "setosa", "versicolor", "virginica"))
	sm.Put(AesKey(ShapeAes), discreteScale("Species", ShapeAes, "setosa", "versicolor", "virginica"))

	g.Panels[0][0].Entries = []*Entry{{
		PlotType:   Scatter,
		Positional: []Value{Floats{1, 2}, Floats{3, 4}},
		Primary: map[Aes]Value{
			ColorAes: Strings{"setosa", "versicolor", "virginica"},
			ShapeAes: Strings{"setosa", "versicolor", "virginica"},
		},
	}}

	l, err := ComputeLegend(g)
	require.NoError(t, err)
	require.NotNil(t, l)
	require.Len(t, l.Sections, 1, "scales sharing a title form one section")

	sec := l.Sections[0]
	assert.Equal(t, "Species", sec.Title)
	assert.Equal(t, []string{"setosa", "versicolor", "virginica"}, sec.Labels)
	require.Len(t, sec.Groups, 3)

	colors, _ := sm.Get(AesKey(ColorAes))
	shapes, _ := sm.Get(AesKey(ShapeAes))
	for idx, group := range sec.Groups {
		require.Len(t, group, 1)
		marker, ok := group[0].(MarkerElement)
		require.True(t, ok)
		assert.Equal(t, colors.Plot[idx].Color, marker.Style.Color)
		assert.Equal(t, shapes.Plot[idx].Shape, marker.Style.Shape)
	}
}

func TestComputeLegendEmptyLabel(t *testing.T) {
	g := NewGrid(1, 1)
	g.Panels[0][0].Scales.Put(AesKey(ColorAes), discreteScale("", ColorAes, "a", "b"))
	g.Panels[0][0].Entries = []*Entry{{
		PlotType:   Scatter,
		Positional: []Value{Floats{1}, Floats{2}},
		Primary:    map[Aes]Value{ColorAes: Strings{"a", "b"}},
	}}

	l, err := ComputeLegend(g)
	require.NoError(t, err)
	require.NotNil(t, l)
	require.Len(t, l.Sections, 1)
	assert.Equal(t, " ", l.Sections[0].Title, "blank labels become a single space")
}

func TestComputeLegendUnionAcrossPlotTypes(t *testing.T) {
	g := NewGrid(1, 2)
	sm := g.Panels[0][0].Scales
	sm.Put(AesKey(ColorAes), discreteScale("Group", ColorAes, "a", "b"))

	g.Panels[0][0].Entries = []*Entry{{
		PlotType:   Scatter,
		Positional: []Value{Floats{1, 2}, Floats{3, 4}},
		Primary:    map[Aes]Value{ColorAes: Strings{"a", "b"}},
	}}
	g.Panels[0][1].Entries = []*Entry{{
		PlotType:   Lines,
		Positional: []Value{Floats{1, 2}, Floats{3, 4}},
		Named:      map[Aes]Value{ColorAes: Strings{"a", "b"}},
	}}

	l, err := ComputeLegend(g)
	require.NoError(t, err)
	require.NotNil(t, l)
	require.Len(t, l.Sections, 1)

	for _, group := range l.Sections[0].Groups {
		// Both plot types contribute to every value index.
		require.Len(t, group, 2)
		_, isMarker := group[0].(MarkerElement)
		_, isLine := group[1].(LineElement)
		assert.True(t, isMarker)
		assert.True(t, isLine)
	}
}

func TestComputeLegendInconsistentScaleGrouping(t *testing.T) {
	g := NewGrid(1, 1)
	sm := g.Panels[0][0].Scales
	sm.Put(AesKey(ColorAes), discreteScale("Species", ColorAes, "a", "b"))
	sm.Put(AesKey(ShapeAes), discreteScale("Species", ShapeAes, "a", "c"))

	g.Panels[0][0].Entries = []*Entry{{
		PlotType:   Scatter,
		Positional: []Value{Floats{1}, Floats{2}},
		Primary:    map[Aes]Value{ColorAes: Strings{"a"}, ShapeAes: Strings{"a"}},
	}}

	_, err := ComputeLegend(g)
	require.ErrorIs(t, err, ErrInconsistentScaleGrouping)
}

func TestComputeLegendUnresolvedPlotType(t *testing.T) {
	g := NewGrid(1, 1)
	g.Panels[0][0].Scales.Put(AesKey(ColorAes), discreteScale("G", ColorAes, "a"))
	g.Panels[0][0].Entries = []*Entry{{
		PlotType: AutoPlot,
		Primary:  map[Aes]Value{ColorAes: Strings{"a"}},
	}}

	_, err := ComputeLegend(g)
	require.ErrorIs(t, err, ErrUnresolvedPlotType)
}

func TestComputeLegendDeterministic(t *testing.T) {
	g := NewGrid(1, 1)
	sm := g.Panels[0][0].Scales
	sm.Put(AesKey(ColorAes), discreteScale("Species", ColorAes, "a", "b"))
	sm.Put(AesKey(StrokeAes), discreteScale("Treatment", StrokeAes, "x", "y"))

	g.Panels[0][0].Entries = []*Entry{{
		PlotType:   Lines,
		Positional: []Value{Floats{1, 2}, Floats{3, 4}},
		Primary: map[Aes]Value{
			ColorAes:  Strings{"a", "b"},
			StrokeAes: Strings{"x", "y"},
		},
	}}

	first, err := ComputeLegend(g)
	require.NoError(t, err)
	second, err := ComputeLegend(g)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	require.Len(t, first.Sections, 2)
	assert.Equal(t, "Species", first.Sections[0].Title)
	assert.Equal(t, "Treatment", first.Sections[1].Title)
}

func TestPlotTypeAttributes(t *testing.T) {
	entries := []*Entry{
		{
			PlotType:   AutoPlot, // resolves to lines
			Positional: []Value{Floats{1, 2}, Floats{3, 4}},
			Primary:    map[Aes]Value{ColorAes: Strings{"a", "b"}},
		},
		{
			PlotType:   Scatter,
			Positional: []Value{Floats{1}, Floats{2}},
			Named:      map[Aes]Value{ShapeAes: Strings{"a"}},
		},
		{
			PlotType:   Lines,
			Positional: []Value{Floats{1, 2}, Floats{3, 4}},
			Named:      map[Aes]Value{StrokeAes: Strings{"a", "b"}},
		},
	}

	types, attrs, err := plotTypeAttributes(entries)
	require.NoError(t, err)
	require.Equal(t, []PlotType{Lines, Scatter}, types)

	assert.True(t, attrs[0].Has(ColorAes))
	assert.True(t, attrs[0].Has(StrokeAes), "attribute sets are unions per type")
	assert.False(t, attrs[0].Has(ShapeAes))
	assert.True(t, attrs[1].Has(ShapeAes))
}
