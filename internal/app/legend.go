package app

import (
	"strings"

	"github.com/dshills/diskview/internal/input/chord"
	"github.com/dshills/diskview/internal/input/keymap"
	"github.com/dshills/diskview/internal/input/mode"
)

// NewLegend builds the key legend of each mode from the keymap hints,
// naming each chord by its shortest key.
func NewLegend(registry *keymap.Registry, normalizer *chord.Normalizer) LegendFunc {
	cache := make(map[mode.Mode]string)
	for _, m := range mode.All() {
		km := registry.Get(m)
		if km == nil {
			continue
		}
		if km.CatchAll {
			cache[m] = "any key: dismiss"
			continue
		}

		var parts []string
		for _, cat := range km.Hints() {
			for _, b := range cat.Bindings {
				if len(b.Chords) == 0 {
					continue
				}
				parts = append(parts, keyName(normalizer, b.Chords[0])+" "+b.Description)
			}
		}
		cache[m] = strings.Join(parts, "  ")
	}

	return func(m mode.Mode) string {
		return cache[m]
	}
}

// NewReloadingLegend is NewLegend over a normalizer that can be replaced
// while running. current is consulted on every call and the legend is
// rebuilt when it returns a different normalizer.
func NewReloadingLegend(registry *keymap.Registry, current func() *chord.Normalizer) LegendFunc {
	var (
		built  *chord.Normalizer
		legend LegendFunc
	)
	return func(m mode.Mode) string {
		if n := current(); n != built || legend == nil {
			built = n
			legend = NewLegend(registry, n)
		}
		return legend(m)
	}
}

func keyName(n *chord.Normalizer, c chord.Chord) string {
	members := n.Members(c)
	if len(members) == 0 {
		return c.String()
	}
	best := members[0]
	for _, m := range members[1:] {
		if len(m) < len(best) {
			best = m
		}
	}
	return best
}
