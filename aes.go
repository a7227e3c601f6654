package guide

import "fmt"

// ----------------------------------------------------------------------------
// Aes

// An Aes names a visual channel ("aesthetic") an entry can map data to.
type Aes int

const (
	ColorAes Aes = iota
	FillAes
	ShapeAes
	StrokeAes
	SizeAes
	AlphaAes
	ColorMapAes
	RowAes
	ColAes
	LayoutAes
	StackAes
	DodgeAes
	GroupAes
	numAes
)

// String returns the name of a.
func (a Aes) String() string {
	return []string{"color", "fill", "shape", "stroke", "size", "alpha",
		"colormap", "row", "col", "layout", "stack", "dodge", "group"}[int(a)]
}

// structural reports whether a directs layout or positioning instead of
// visual encoding. Structural aesthetics cannot carry a legend.
func (a Aes) structural() bool {
	switch a {
	case RowAes, ColAes, LayoutAes, StackAes, DodgeAes, GroupAes:
		return true
	}
	return false
}

// ----------------------------------------------------------------------------
// Key

// A Key addresses a scale or an entry value: either a visual channel or a
// positional argument slot.
type Key struct {
	Aes Aes // the channel; meaningful only if Pos == 0
	Pos int // 1-based positional slot; 0 for channel keys
}

// AesKey returns the key of the visual channel a.
func AesKey(a Aes) Key { return Key{Aes: a} }

// PosKey returns the key of the i-th positional argument. Slots are
// numbered starting at 1.
func PosKey(i int) Key { return Key{Pos: i} }

// IsAes reports whether k addresses a visual channel.
func (k Key) IsAes() bool { return k.Pos == 0 }

func (k Key) String() string {
	if k.IsAes() {
		return k.Aes.String()
	}
	return fmt.Sprintf("%d", k.Pos)
}

// ----------------------------------------------------------------------------
// AesSet

// An AesSet is a set of aesthetics.
type AesSet [numAes]bool

// Add adds a to the set.
func (s *AesSet) Add(a Aes) { s[a] = true }

// Has reports whether a is in the set.
func (s AesSet) Has(a Aes) bool { return s[a] }
