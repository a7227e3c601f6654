package guide

// ----------------------------------------------------------------------------
// Entry

// An Entry is one drawn layer of a panel: its plot type, the positional
// data it was drawn from and its resolved styling. Entries are produced by
// the plotting pipeline and are read-only as far as guide is concerned.
type Entry struct {
	// PlotType is the declared visual kind of the layer. It may be the
	// generic AutoPlot which resolves based on the positional arguments,
	// see ResolvePlotType.
	PlotType PlotType

	// Positional holds the data arguments in call order.
	Positional []Value

	// Primary holds the default styling per channel while Named holds
	// styling requested explicitly. Attributes collects the remaining
	// resolved styling, e.g. a colormap override.
	Primary    map[Aes]Value
	Named      map[Aes]Value
	Attributes map[Aes]Value

	// Labels holds the display labels of the data fields behind the
	// entry's values.
	Labels map[Key]string
}

// Value returns the entry's value at k. Explicitly named styling wins over
// primary defaults which win over the remaining attributes.
func (e *Entry) Value(k Key) (Value, bool) {
	if !k.IsAes() {
		if k.Pos >= 1 && k.Pos <= len(e.Positional) {
			return e.Positional[k.Pos-1], true
		}
		return nil, false
	}
	if v, ok := e.Named[k.Aes]; ok {
		return v, true
	}
	if v, ok := e.Primary[k.Aes]; ok {
		return v, true
	}
	if v, ok := e.Attributes[k.Aes]; ok {
		return v, true
	}
	return nil, false
}

// ----------------------------------------------------------------------------
// Panel and Grid

// A Panel holds the entries drawn into one panel of a faceted plot
// together with the scales that produced their styling.
type Panel struct {
	Entries []*Entry
	Scales  *ScaleMap
}

// A Grid is the rows x cols arrangement of panels of one faceted plot.
type Grid struct {
	Rows, Cols int
	Panels     [][]*Panel
}

// NewGrid returns a rows x cols grid whose panels share a single scale
// map. Free per-panel scales are not supported: when deriving guides only
// the scales of the first panel are consulted.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{
		Rows:   rows,
		Cols:   cols,
		Panels: make([][]*Panel, rows),
	}
	shared := NewScaleMap()
	for r := 0; r < rows; r++ {
		g.Panels[r] = make([]*Panel, cols)
		for c := 0; c < cols; c++ {
			g.Panels[r][c] = &Panel{Scales: shared}
		}
	}
	return g
}

// entries returns all entries of g in row-major order.
func (g *Grid) entries() []*Entry {
	var es []*Entry
	for _, row := range g.Panels {
		for _, panel := range row {
			es = append(es, panel.Entries...)
		}
	}
	return es
}

// scales returns the scale map of the first panel of g.
func (g *Grid) scales() *ScaleMap {
	if len(g.Panels) == 0 || len(g.Panels[0]) == 0 || g.Panels[0][0].Scales == nil {
		return NewScaleMap()
	}
	return g.Panels[0][0].Scales
}
