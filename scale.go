package guide

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Scale

// A Scale records how the unique values of one data field were mapped to
// values of one visual channel. Scales arrive fully fitted from the
// plotting pipeline; guide only reads them.
type Scale struct {
	// Label is the scale's title as shown in a guide. May be empty.
	Label string

	// Data holds the unique data values in fit order. Plot holds the
	// corresponding visual values; both have the same length and index
	// correspondence.
	Data []string
	Plot []Visual
}

// A Visual holds the visual channel values a scale hands out for one data
// value. Only the fields meaningful for the scale's channel are set.
type Visual struct {
	Color  color.Color
	Shape  draw.GlyphDrawer
	Dashes []vg.Length
	Size   vg.Length
}

// DefaultVisuals returns n visual values for the channel a using the
// standard plotutil cycles. It is a convenience for constructing scales
// by hand, e.g. in tests and demos.
func DefaultVisuals(a Aes, n int) []Visual {
	vs := make([]Visual, n)
	for i := range vs {
		switch a {
		case ColorAes, FillAes:
			vs[i].Color = plotutil.Color(i)
		case ShapeAes:
			vs[i].Shape = plotutil.Shape(i)
		case StrokeAes:
			vs[i].Dashes = plotutil.Dashes(i)
		case SizeAes:
			vs[i].Size = vg.Points(float64(i) + 2)
		}
	}
	return vs
}

// ----------------------------------------------------------------------------
// ScaleMap

// A ScaleMap is an insertion ordered mapping from keys to scales. The
// order matters: legend section titles appear in the order their scale
// was first added.
type ScaleMap struct {
	keys   []Key
	scales map[Key]*Scale
}

// NewScaleMap returns an empty ScaleMap.
func NewScaleMap() *ScaleMap {
	return &ScaleMap{scales: make(map[Key]*Scale)}
}

// Put adds or replaces the scale at k. Adding keeps insertion order,
// replacing keeps the original position of k.
func (sm *ScaleMap) Put(k Key, s *Scale) {
	if _, ok := sm.scales[k]; !ok {
		sm.keys = append(sm.keys, k)
	}
	sm.scales[k] = s
}

// Get returns the scale at k.
func (sm *ScaleMap) Get(k Key) (*Scale, bool) {
	s, ok := sm.scales[k]
	return s, ok
}

// Keys returns the keys in insertion order.
func (sm *ScaleMap) Keys() []Key { return sm.keys }

// Len returns the number of scales.
func (sm *ScaleMap) Len() int { return len(sm.keys) }

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// set yet.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Equal reports whether i and j are the same interval. Unset edges
// compare equal to unset edges.
func (i *Interval) Equal(j Interval) bool {
	if math.IsNaN(i.Min) {
		return math.IsNaN(j.Min)
	}
	if math.IsNaN(i.Max) {
		return math.IsNaN(j.Max)
	}
	return i.Min == j.Min && i.Max == j.Max
}
