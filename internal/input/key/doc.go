// Package key provides the raw key event types read from the terminal.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a named key, or KeyRune for printable characters
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift)
//   - Event: A single physical key press with modifiers and timestamp
//
// # Key Specifications
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "q", "+", "0", "Enter", "Esc", "Right"
//   - With modifiers: "Ctrl+C", "Ctrl+F"
//   - Vim-style: "<C-c>", "<C-f>", "<CR>", "<Esc>", "<BS>"
//
// Specs are used by keymap alias files and by scripted replays.
package key
