package guide

import (
	"errors"
	"fmt"
	"os"
)

var debug = false

// ErrInconsistentScaleGrouping is returned when scales sharing a title
// disagree on their unique data values. Such scales cannot be combined
// into one legend section and guide refuses to merge them silently.
var ErrInconsistentScaleGrouping = errors.New("guide: scales sharing a title disagree on their data values")

// A Section is one titled block of a legend: per unique data value one
// label and one group of glyphs.
type Section struct {
	Title  string
	Labels []string
	Groups [][]Element // Groups[i] holds the glyphs for Labels[i].
}

// A Legend describes the legend of a grid as derived by ComputeLegend.
type Legend struct {
	Sections []Section
}

// plotTypeAttributes resolves the effective plot type of every entry and
// returns the distinct types in first-seen order together with, per type,
// the union of the aesthetics used by any entry of that type.
func plotTypeAttributes(entries []*Entry) ([]PlotType, []AesSet, error) {
	var types []PlotType
	var attrs []AesSet

	for _, e := range entries {
		pt, err := ResolvePlotType(e.PlotType, e.Positional)
		if err != nil {
			return nil, nil, err
		}

		i := -1
		for j, t := range types {
			if t == pt {
				i = j
				break
			}
		}
		if i == -1 {
			types = append(types, pt)
			attrs = append(attrs, AesSet{})
			i = len(types) - 1
		}

		for a := range e.Primary {
			attrs[i].Add(a)
		}
		for a := range e.Named {
			attrs[i].Add(a)
		}
	}
	return types, attrs, nil
}

// sectionTitle returns the legend title of s. A blank scale label becomes
// a single space so downstream layout never sees an empty title.
func sectionTitle(s *Scale) string {
	if s.Label == "" {
		return " "
	}
	return s.Label
}

// ComputeLegend derives the legend of g from the scales of its first
// panel. Scales keyed by positional slots and scales of the structural
// aesthetics are excluded; if nothing remains the grid needs no legend and
// ComputeLegend returns (nil, nil). Scales sharing a title are combined
// into one section; they must report identical data values or
// ErrInconsistentScaleGrouping is returned.
func ComputeLegend(g *Grid) (*Legend, error) {
	sm := g.scales()

	var keys []Key
	for _, k := range sm.Keys() {
		// ColorMapAes exists only as an attribute-bag override key;
		// a scale keyed by it cannot carry a legend.
		if !k.IsAes() || k.Aes.structural() || k.Aes == ColorMapAes {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	// Section titles in order of first occurrence.
	var titles []string
	seen := make(map[string]bool)
	for _, k := range keys {
		s, _ := sm.Get(k)
		if t := sectionTitle(s); !seen[t] {
			seen[t] = true
			titles = append(titles, t)
		}
	}

	types, attrs, err := plotTypeAttributes(g.entries())
	if err != nil {
		return nil, err
	}

	legend := &Legend{}
	for _, title := range titles {
		// All channels whose scale carries this title.
		var labelAes []Aes
		var ref *Scale
		for _, k := range keys {
			s, _ := sm.Get(k)
			if sectionTitle(s) != title {
				continue
			}
			if ref == nil {
				ref = s
			} else if !equalStrings(ref.Data, s.Data) {
				return nil, fmt.Errorf("%w: title %q, channel %s",
					ErrInconsistentScaleGrouping, title, k)
			}
			labelAes = append(labelAes, k.Aes)
		}

		sec := Section{
			Title:  title,
			Labels: append([]string(nil), ref.Data...),
		}
		for idx := range ref.Data {
			var group []Element
			for j, pt := range types {
				// Channels of this section the plot type actually uses.
				var shared []Aes
				for _, a := range labelAes {
					if attrs[j].Has(a) {
						shared = append(shared, a)
					}
				}
				if len(shared) == 0 {
					continue
				}

				vis := make(map[Aes]Visual, len(shared))
				for _, a := range shared {
					s, _ := sm.Get(AesKey(a))
					vis[a] = s.Plot[idx]
				}
				group = append(group, elementsFor(pt, vis)...)
			}
			sec.Groups = append(sec.Groups, group)
		}
		legend.Sections = append(legend.Sections, sec)
	}

	if debug {
		for _, sec := range legend.Sections {
			fmt.Fprintf(os.Stderr, "guide: section %q with %d keys\n",
				sec.Title, len(sec.Labels))
		}
	}

	return legend, nil
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
