package guide

import (
	"math"

	"gonum.org/v1/plot/palette"
)

// A Colorbar describes the colorbar of a grid: the label of the continuous
// color field, the numeric range it covers and the colormap rendering it.
type Colorbar struct {
	Label    string
	Limits   Interval
	ColorMap palette.ColorMap
}

// HasZColor reports whether e draws its color implicitly from a numeric
// field in its third positional slot. This is the case for the heatmap
// like plot types as long as no color channel is set explicitly anywhere.
// The effective plot type decides, so a generic AutoPlot entry with a
// numeric third column counts too.
func HasZColor(e *Entry) bool {
	pt, err := ResolvePlotType(e.PlotType, e.Positional)
	if err != nil {
		// Unresolvable entries lack the numeric third column that
		// implicit z-color needs.
		return false
	}
	switch pt {
	case Heatmap, Contour, ContourFilled, Surface:
	default:
		return false
	}
	if _, ok := e.Primary[ColorAes]; ok {
		return false
	}
	if _, ok := e.Named[ColorAes]; ok {
		return false
	}
	if _, ok := e.Attributes[ColorAes]; ok {
		return false
	}
	return true
}

// labeledColorRange determines the label and the joint numeric range of
// the continuous color field of g. If any entry draws implicit z-color the
// third positional slot is the color key for all entries, otherwise the
// color channel is. Entries without a numeric column at that key do not
// take part. The reported range is the union over all participating
// entries.
func labeledColorRange(g *Grid) (string, Interval, bool) {
	entries := g.entries()

	key := AesKey(ColorAes)
	for _, e := range entries {
		if HasZColor(e) {
			key = PosKey(3)
			break
		}
	}

	var label string
	haveLabel := false
	limits := unsetInterval()
	for _, e := range entries {
		v, ok := e.Value(key)
		if !ok {
			continue
		}
		f, ok := v.(Floats)
		if !ok {
			continue
		}
		if !haveLabel {
			// Labels are assumed consistent across participating
			// entries; the first one wins.
			label = e.Labels[key]
			haveLabel = true
		}
		limits.Update(f...)
	}

	// Empty or all-NaN columns leave the limits unset. Such a grid has
	// no usable color range and gets no colorbar at all, never a
	// partial one.
	if math.IsNaN(limits.Min) {
		return "", Interval{}, false
	}
	return label, limits, true
}

// ComputeColorbar derives the colorbar of g, or nil if no entry of g
// encodes a continuous numeric color field. The colormap starts out as the
// style's default and is overridden by any entry carrying an explicit
// colormap attribute; with several such entries the last one in row-major
// order wins. A nil sty selects DefaultStyle(12).
func ComputeColorbar(g *Grid, sty *Style) *Colorbar {
	if sty == nil {
		sty = DefaultStyle(12)
	}

	label, limits, ok := labeledColorRange(g)
	if !ok {
		return nil
	}

	cm := sty.Colorbar.ColorMap
	for _, e := range g.entries() {
		if v, ok := e.Attributes[ColorMapAes]; ok {
			if m, ok := v.(ColorMap); ok {
				cm = m.ColorMap
			}
		}
	}

	return &Colorbar{Label: label, Limits: limits, ColorMap: cm}
}
