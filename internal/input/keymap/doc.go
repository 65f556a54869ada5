// Package keymap holds the per-mode command tables of the dashboard.
//
// Each mode owns one Keymap that maps chords to an Action. An Action is
// an ordered list of controller operations (Op); most actions hold one
// op, the Exiting cancel action holds two (restore the mode, then
// redraw). Chords absent from a keymap resolve to its Default action,
// which is Noop unless stated otherwise.
//
// A CatchAll keymap skips chord lookup entirely and applies its Default
// action to every input. WarningMessage uses this to dismiss the warning
// on any key.
//
// # Usage
//
//	registry := keymap.DefaultRegistry()
//
//	km := registry.Get(mode.Normal)
//	action := km.Lookup(chord.Right)
//	// action.Ops == []keymap.Op{keymap.OpMoveRight}
//
// Keymaps only describe which operation a chord selects. Executing the
// operations is the dispatcher's job.
package keymap
