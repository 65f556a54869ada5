// Package chord collapses raw key events onto logical chords.
//
// Several physical inputs can mean the same thing: 'l', the Right arrow
// and Ctrl-F all move the selection right. The Normalizer maps each of them
// to the single chord Right, so command tables only ever bind chords.
//
// Normalization does not depend on the UI mode. The same raw input always
// yields the same chord; what the chord does is decided per mode by the
// keymap package.
//
// Inputs outside every synonym group become distinct raw chords
// ("raw:x" for the key x) that no table binds.
//
// Extra synonyms can be loaded from a TOML file:
//
//	[aliases]
//	right = ["d", "C-l"]
//	quit  = ["C-q"]
package chord
