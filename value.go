package guide

import (
	"image/color"

	"gonum.org/v1/plot/palette"
)

// A Value is one resolved positional argument or styling attribute of an
// entry. This is a sealed interface: Floats, Strings, Scalar, Str, Color
// and ColorMap are the only implementations. Tagging the handful of value
// kinds explicitly keeps the "is this a continuous numeric column" question
// a type assertion instead of reflection.
type Value interface {
	value()
}

// Floats is a continuous numeric data column.
type Floats []float64

// Strings is a discrete data column.
type Strings []string

// Scalar is a single numeric value.
type Scalar float64

// Str is a single string value.
type Str string

// Color is a single explicit color.
type Color struct{ color.Color }

// ColorMap is an explicit colormap override.
type ColorMap struct{ palette.ColorMap }

func (Floats) value()   {}
func (Strings) value()  {}
func (Scalar) value()   {}
func (Str) value()      {}
func (Color) value()    {}
func (ColorMap) value() {}
