package guide

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how computed guides are drawn and supplies the theme
// defaults the computation itself needs, most notably the default
// colormap of a colorbar.
type Style struct {
	Legend struct {
		Title draw.TextStyle
		Label draw.TextStyle

		Discrete struct {
			Size vg.Length // edge length of one key box
			Pad  vg.Length // gap between key box rows
		}
	}

	Colorbar struct {
		// ColorMap is the theme default used when no entry overrides
		// the colormap explicitly.
		ColorMap palette.ColorMap

		Title  draw.TextStyle
		Size   vg.Length // height of the gradient strip
		Length vg.Length // length of the gradient strip

		Ticker plot.Ticker
		Tick   struct {
			draw.LineStyle
			Length vg.Length
			Label  draw.TextStyle
		}
	}
}

// DefaultStyle returns a Style which mimics the appearance of ggplot2.
// The baseFontSize is the font size for guide titles, labels are a bit
// smaller.
func DefaultStyle(baseFontSize vg.Length) *Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	baseFont, err := vg.MakeFont("Helvetica-Bold", baseFontSize)
	if err != nil {
		panic(err)
	}
	labelFont, err := vg.MakeFont("Helvetica", scale(baseFontSize, 1/1.2))
	if err != nil {
		panic(err)
	}

	sty := &Style{}

	sty.Legend.Title.Color = color.Black
	sty.Legend.Title.Font = baseFont
	sty.Legend.Title.XAlign = draw.XLeft
	sty.Legend.Title.YAlign = draw.YTop

	sty.Legend.Label.Color = color.Black
	sty.Legend.Label.Font = labelFont
	sty.Legend.Label.XAlign = draw.XLeft
	sty.Legend.Label.YAlign = -0.3 // draw.YCenter

	sty.Legend.Discrete.Size = vg.Length(20)
	sty.Legend.Discrete.Pad = vg.Length(4)

	sty.Colorbar.ColorMap = moreland.SmoothBlueRed()
	sty.Colorbar.Title = sty.Legend.Title
	sty.Colorbar.Size = vg.Length(20)
	sty.Colorbar.Length = vg.Length(150)
	sty.Colorbar.Ticker = plot.DefaultTicks{}
	sty.Colorbar.Tick.Color = color.Black
	sty.Colorbar.Tick.Width = vg.Length(1)
	sty.Colorbar.Tick.Length = vg.Length(3)
	sty.Colorbar.Tick.Label = sty.Legend.Label
	sty.Colorbar.Tick.Label.XAlign = draw.XCenter
	sty.Colorbar.Tick.Label.YAlign = draw.YTop

	return sty
}
