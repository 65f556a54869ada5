// Package mode defines the UI modes of the dashboard.
//
// Exactly one mode is active at a time. The mode selects which command
// table the dispatcher consults:
//
//	┌─────────┐  loaded   ┌────────┐  Backspace  ┌───────────────────┐
//	│ Loading │ ────────▶ │ Normal │ ──────────▶ │ DeleteFileConfirm │
//	└─────────┘           └────────┘ ◀────────── └───────────────────┘
//	                        │    ▲      q/Esc/n
//	                     q  ▼    │ q/Esc/n
//	                      ┌─────────┐
//	                      │ Exiting │ ── y ──▶ process exit
//	                      └─────────┘
//
// ErrorMessage, WarningMessage and ScreenTooSmall are modal overlays that
// the controller enters on its own; the dispatcher only leaves them.
//
// The controller owns the current mode. The input core reads a State
// snapshot at dispatch time and never writes it.
package mode
