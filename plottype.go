package guide

import (
	"errors"
	"fmt"
)

// A PlotType identifies the visual kind of an entry.
type PlotType int

const (
	// AutoPlot is the generic "plot" kind. Its effective kind depends on
	// the shape of the positional arguments.
	AutoPlot PlotType = iota
	Scatter
	Lines
	LinesPoints
	Bar
	Boxplot
	Heatmap
	Contour
	ContourFilled
	Surface
)

// String returns the name of pt.
func (pt PlotType) String() string {
	return []string{"auto", "scatter", "lines", "linespoints", "bar",
		"boxplot", "heatmap", "contour", "contourf", "surface"}[int(pt)]
}

// ErrUnresolvedPlotType is returned when the effective plot type of an
// entry cannot be determined from its positional arguments.
var ErrUnresolvedPlotType = errors.New("guide: cannot resolve plot type")

// ResolvePlotType resolves the effective plot type of an entry declared as
// pt with the given positional arguments. Concrete kinds resolve to
// themselves. The generic AutoPlot kind resolves from the argument shapes:
// a third numeric column draws as a heatmap, purely continuous coordinates
// draw as lines and discrete coordinates draw as points.
func ResolvePlotType(pt PlotType, positional []Value) (PlotType, error) {
	if pt != AutoPlot {
		return pt, nil
	}

	switch len(positional) {
	case 0:
		return AutoPlot, fmt.Errorf("%w: no positional arguments", ErrUnresolvedPlotType)
	case 1:
		if _, ok := positional[0].(Floats); ok {
			return Lines, nil
		}
		return Scatter, nil
	case 2:
		_, xc := positional[0].(Floats)
		_, yc := positional[1].(Floats)
		if xc && yc {
			return Lines, nil
		}
		return Scatter, nil
	default:
		if _, ok := positional[2].(Floats); ok {
			return Heatmap, nil
		}
		return AutoPlot, fmt.Errorf("%w: %d positional arguments with a non numeric third",
			ErrUnresolvedPlotType, len(positional))
	}
}
