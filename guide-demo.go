// +build ignore

package main

import (
	"fmt"
	"os"

	"github.com/vdobler/guide"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func legendGrid() *guide.Grid {
	g := guide.NewGrid(1, 2)

	species := []string{"setosa", "versicolor", "virginica"}
	sm := g.Panels[0][0].Scales
	sm.Put(guide.AesKey(guide.ColorAes), &guide.Scale{
		Label: "Species",
		Data:  species,
		Plot:  guide.DefaultVisuals(guide.ColorAes, len(species)),
	})
	sm.Put(guide.AesKey(guide.ShapeAes), &guide.Scale{
		Label: "Species",
		Data:  species,
		Plot:  guide.DefaultVisuals(guide.ShapeAes, len(species)),
	})

	g.Panels[0][0].Entries = []*guide.Entry{{
		PlotType:   guide.Scatter,
		Positional: []guide.Value{guide.Floats{1, 2, 3}, guide.Floats{4, 5, 6}},
		Primary: map[guide.Aes]guide.Value{
			guide.ColorAes: guide.Strings(species),
			guide.ShapeAes: guide.Strings(species),
		},
	}}
	g.Panels[0][1].Entries = []*guide.Entry{{
		PlotType:   guide.Lines,
		Positional: []guide.Value{guide.Floats{1, 2, 3}, guide.Floats{6, 5, 4}},
		Primary: map[guide.Aes]guide.Value{
			guide.ColorAes: guide.Strings(species),
		},
	}}

	return g
}

func colorbarGrid() *guide.Grid {
	g := guide.NewGrid(1, 1)
	g.Panels[0][0].Entries = []*guide.Entry{{
		PlotType: guide.Heatmap,
		Positional: []guide.Value{
			guide.Floats{0, 1, 2},
			guide.Floats{0, 1, 2},
			guide.Floats{0.5, 4.5, 2.0, 7.5},
		},
		Labels: map[guide.Key]string{guide.PosKey(3): "Elevation"},
	}}
	return g
}

func main() {
	sty := guide.DefaultStyle(12)

	for name, g := range map[string]*guide.Grid{
		"legend":   legendGrid(),
		"colorbar": colorbarGrid(),
	} {
		img := vgimg.New(300, 250)
		if err := guide.DrawGuides(g, draw.New(img), sty); err != nil {
			panic(err)
		}
		write(img, fmt.Sprintf("testdata/guide-%s.png", name))
	}
}

func write(canvas *vgimg.Canvas, name string) {
	w, err := os.Create(name)
	if err != nil {
		panic(err)
	}
	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err = png.WriteTo(w); err != nil {
		panic(err)
	}
	if err = w.Close(); err != nil {
		panic(err)
	}
}
