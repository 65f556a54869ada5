// Package config loads diskview's settings.
//
// Settings come from, in increasing precedence: built-in defaults, the
// TOML file config.toml, and DISKVIEW_* environment variables. Command
// line flags may be bound on top through Manager.BindFlag.
//
// The configuration file is searched for in $XDG_CONFIG_HOME/diskview
// (or the platform's user config directory) and the working directory.
// A missing file is not an error; a file named explicitly must exist.
//
// Keys use dotted paths, for example:
//
//	[logging]
//	level = "debug"
//	file = "/tmp/diskview.log"
//
//	[ui]
//	min_width = 60
//
//	[input]
//	keymap_file = "/home/me/.config/diskview/keys.toml"
//	redraw_on_mode_change = true
//
// and the matching environment variables are DISKVIEW_LOGGING_LEVEL,
// DISKVIEW_UI_MIN_WIDTH and so on.
package config
