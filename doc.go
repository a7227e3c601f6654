// Package guide derives legends and colorbars from the entries of a
// faceted plot.
//
// It complements gonum.org/v1/plot: the plotting pipeline records, per
// panel, which entries were drawn and which scales produced their styling;
// package guide turns this record into the guides shown next to the plot.
//
// Scales
//
// The concept of a scale is taken from ggplot2. A scale maps the unique
// values of a data field to values of a visual channel ("aesthetic"):
//   - Color-Scale    The line and symbol color
//   - Fill-Scale     The fill color
//   - Shape-Scale    The symbol used to draw points
//   - Stroke-Scale   The line style (dash pattern)
//   - Size-Scale     The size of points and width of lines
//   - Alpha-Scale    The alpha (opacity) value
//
// The Row, Col, Layout, Stack, Dodge and Group aesthetics direct layout
// and positioning only. They never produce a guide.
//
// Guides
//
// ComputeLegend collects the scales of a grid, groups them by title and
// synthesizes one glyph group per unique data value. Scales with the same
// title are combined into one legend section iff they report the same
// unique data values; anything else is an error in the construction of
// the entries, not something guide tries to repair.
//
// ComputeColorbar checks whether any entry encodes a continuous numeric
// color field, either through an explicit color channel or implicitly
// through the third positional argument of heatmap like plot types, and
// reports its label, numeric range and colormap.
//
// All panels of a grid are assumed to share the same scale set; only the
// scales of the first panel are consulted. Free per-panel scales are not
// supported.
package guide
