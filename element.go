package guide

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// An Element is a single legend glyph: a swatch, marker or line sample
// representing one data value within one legend group. It draws itself
// into the small canvas reserved for one legend key, like the thumbnails
// of gonum's plotters.
type Element interface {
	Thumbnail(c *draw.Canvas)
}

// Defaults used when a legend group fixes only some of the channels an
// element needs.
var (
	defaultColor     color.Color      = color.Gray16{0x2222}
	defaultShape     draw.GlyphDrawer = draw.CircleGlyph{}
	defaultRadius    vg.Length        = 3
	defaultLineWidth vg.Length        = 1
)

// ----------------------------------------------------------------------------
// Elements

// A SwatchElement is a filled rectangle showing a fill color.
type SwatchElement struct {
	Color color.Color
}

// Thumbnail fills the whole key canvas with the swatch color.
func (e SwatchElement) Thumbnail(c *draw.Canvas) {
	if e.Color == nil {
		return
	}
	c.SetColor(e.Color)
	c.Fill(c.Rectangle.Path())
}

// A MarkerElement is a single point glyph.
type MarkerElement struct {
	Style draw.GlyphStyle
}

// Thumbnail draws the glyph centered in the key canvas.
func (e MarkerElement) Thumbnail(c *draw.Canvas) {
	if e.Style.Color == nil || e.Style.Shape == nil {
		return
	}
	c.DrawGlyph(e.Style, c.Center())
}

// A LineElement is a horizontal line sample.
type LineElement struct {
	Style draw.LineStyle
}

// Thumbnail draws the line through the middle of the key canvas.
func (e LineElement) Thumbnail(c *draw.Canvas) {
	if e.Style.Color == nil {
		return
	}
	y := c.Center().Y
	c.StrokeLine2(e.Style, c.Min.X, y, c.Max.X, y)
}

// ----------------------------------------------------------------------------
// Synthesis

// elementsFor synthesizes the legend glyphs of plot type pt for one data
// value whose visual channel values are given in vis. Plot types drawing
// filled areas get a swatch, point like types a marker, line like types a
// line sample and combined types both. Unknown or composite types fall
// back to a swatch.
func elementsFor(pt PlotType, vis map[Aes]Visual) []Element {
	switch pt {
	case Scatter:
		return []Element{markerElement(vis)}
	case Lines:
		return []Element{lineElement(vis)}
	case LinesPoints:
		return []Element{lineElement(vis), markerElement(vis)}
	default:
		return []Element{swatchElement(vis)}
	}
}

func markerElement(vis map[Aes]Visual) Element {
	sty := draw.GlyphStyle{
		Color:  defaultColor,
		Radius: defaultRadius,
		Shape:  defaultShape,
	}
	if v, ok := vis[ColorAes]; ok && v.Color != nil {
		sty.Color = v.Color
	}
	if v, ok := vis[ShapeAes]; ok && v.Shape != nil {
		sty.Shape = v.Shape
	}
	if v, ok := vis[SizeAes]; ok && v.Size > 0 {
		sty.Radius = v.Size
	}
	return MarkerElement{Style: sty}
}

func lineElement(vis map[Aes]Visual) Element {
	sty := draw.LineStyle{
		Color: defaultColor,
		Width: defaultLineWidth,
	}
	if v, ok := vis[ColorAes]; ok && v.Color != nil {
		sty.Color = v.Color
	}
	if v, ok := vis[StrokeAes]; ok && v.Dashes != nil {
		sty.Dashes = v.Dashes
	}
	if v, ok := vis[SizeAes]; ok && v.Size > 0 {
		sty.Width = v.Size
	}
	return LineElement{Style: sty}
}

func swatchElement(vis map[Aes]Visual) Element {
	col := defaultColor
	if v, ok := vis[ColorAes]; ok && v.Color != nil {
		col = v.Color
	}
	if v, ok := vis[FillAes]; ok && v.Color != nil {
		col = v.Color
	}
	return SwatchElement{Color: col}
}
