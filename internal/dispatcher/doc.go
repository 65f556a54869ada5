// Package dispatcher turns key events into controller invocations.
//
// Each event is resolved against the keymap of the controller's current
// mode and the resulting action is applied to the controller:
//
//  1. The controller's state is read (the mode is never cached)
//  2. The keymap for that mode is selected
//  3. Catch-all keymaps answer every event with their default action;
//     other keymaps normalize the event to a chord and look it up
//  4. Each operation of the action is invoked in order
//
// Resolution is pure and can be tested without a controller. Unmapped
// chords resolve to a no-op; they are not errors.
//
// # Usage
//
//	d := dispatcher.New(keymap.DefaultRegistry(), chord.DefaultNormalizer(), dispatcher.DefaultConfig())
//	err := d.Run(ctx, term, controller)
//
// Run returns nil when the event source ends. Events are handled strictly
// one at a time on the calling goroutine.
package dispatcher
