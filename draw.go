package guide

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Legend

// Draw renders the legend into the canvas region c, sections from top to
// bottom. A nil sty selects DefaultStyle(12).
func (l *Legend) Draw(c draw.Canvas, sty *Style) {
	if sty == nil {
		sty = DefaultStyle(12)
	}
	size, pad := sty.Legend.Discrete.Size, sty.Legend.Discrete.Pad

	y := c.Max.Y
	for _, sec := range l.Sections {
		c.FillText(sty.Legend.Title, vg.Point{X: c.Min.X, Y: y}, sec.Title)
		y -= size

		for i, label := range sec.Labels {
			box := c
			box.Max.X = box.Min.X + size
			box.Max.Y = y
			box.Min.Y = y - size
			for _, el := range sec.Groups[i] {
				el.Thumbnail(&box)
			}

			c.FillText(sty.Legend.Label,
				vg.Point{X: box.Max.X + pad, Y: y - size/2}, label)
			y -= size + pad
		}
		y -= pad
	}
}

// ----------------------------------------------------------------------------
// Colorbar

// Draw renders the colorbar into the canvas region c as a horizontal
// gradient strip with its label above and ticks below. A nil sty selects
// DefaultStyle(12).
func (b *Colorbar) Draw(c draw.Canvas, sty *Style) {
	if sty == nil {
		sty = DefaultStyle(12)
	}

	cm := b.ColorMap
	min, max := b.Limits.Min, b.Limits.Max
	if min == max {
		// A degenerate range still gets a strip, in a single color.
		min, max = min-1, max+1
	}
	cm.SetMin(min)
	cm.SetMax(max)

	if b.Label != "" {
		c.FillText(sty.Colorbar.Title, vg.Point{X: c.Min.X, Y: c.Max.Y}, b.Label)
	}

	length := sty.Colorbar.Length
	if avail := c.Max.X - c.Min.X; length > avail {
		length = avail
	}
	y1 := c.Max.Y - sty.Colorbar.Size
	y0 := y1 - sty.Colorbar.Size

	// The gradient strip, one thin filled rectangle per device unit.
	n := int(length)
	if n < 2 {
		n = 2
	}
	for i := 0; i < n; i++ {
		v := min + (max-min)*float64(i)/float64(n-1)
		col, err := cm.At(v)
		if err != nil {
			continue
		}
		r := vg.Rectangle{
			Min: vg.Point{X: c.Min.X + vg.Length(i), Y: y0},
			Max: vg.Point{X: c.Min.X + vg.Length(i+1), Y: y1},
		}
		c.SetColor(col)
		c.Fill(r.Path())
	}

	for _, tick := range sty.Colorbar.Ticker.Ticks(min, max) {
		if tick.IsMinor() {
			continue
		}
		x := c.Min.X + length*vg.Length((tick.Value-min)/(max-min))
		c.StrokeLine2(sty.Colorbar.Tick.LineStyle,
			x, y0, x, y0-sty.Colorbar.Tick.Length)
		c.FillText(sty.Colorbar.Tick.Label,
			vg.Point{X: x, Y: y0 - sty.Colorbar.Tick.Length}, tick.Label)
	}
}

// ----------------------------------------------------------------------------
// Combined

// DrawGuides computes the legend and the colorbar of g and draws them into
// c: the legend fills the region from the top, the colorbar occupies a
// strip at the bottom. Grids needing neither draw nothing.
func DrawGuides(g *Grid, c draw.Canvas, sty *Style) error {
	if sty == nil {
		sty = DefaultStyle(12)
	}

	legend, err := ComputeLegend(g)
	if err != nil {
		return err
	}

	upper, lower := c, c
	if cb := ComputeColorbar(g, sty); cb != nil {
		split := c.Min.Y + 3*sty.Colorbar.Size
		upper.Min.Y = split
		lower.Max.Y = split
		cb.Draw(lower, sty)
	}
	if legend != nil {
		legend.Draw(upper, sty)
	}
	return nil
}
