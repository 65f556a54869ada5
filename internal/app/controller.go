// Package app implements the diskview dashboard controller.
//
// The controller owns all application state: the current directory and
// its listing, the selection, the zoom level and the UI mode. The input
// dispatcher drives it one operation at a time from a single goroutine,
// so it does no locking of its own.
package app

import (
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/dshills/diskview/internal/config"
	"github.com/dshills/diskview/internal/input/mode"
	"github.com/dshills/diskview/internal/terminal"
)

// Screen is the drawing surface the controller renders to.
type Screen interface {
	Size() (int, int)
	Clear()
	DrawText(x, y int, text string, style terminal.Style) int
	Show()
	Close()
}

// Options configures the controller.
type Options struct {
	// Columns is the number of entries per grid row.
	Columns int

	// MaxZoom is the highest zoom level.
	MaxZoom int

	// MinWidth and MinHeight are the smallest usable screen size.
	MinWidth  int
	MinHeight int

	// DryRun reports deletions without performing them.
	DryRun bool
}

// OptionsFromConfig extracts controller options from the configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Columns:   cfg.UI.Columns,
		MaxZoom:   cfg.UI.MaxZoom,
		MinWidth:  cfg.UI.MinWidth,
		MinHeight: cfg.UI.MinHeight,
		DryRun:    cfg.Delete.DryRun,
	}
}

// LegendFunc returns the key legend shown in a mode.
type LegendFunc func(m mode.Mode) string

// Controller is the diskview dashboard.
type Controller struct {
	fs      afero.Fs
	scanner *Scanner
	screen  Screen
	legend  LegendFunc
	opts    Options
	log     zerolog.Logger

	modes *mode.Tracker

	root     string
	path     []string
	entries  []Entry
	selected int
	zoom     int

	loading  bool
	tooSmall bool
	width    int
	height   int

	message      string
	status       string
	fileToDelete *mode.FileToDelete
	exited       bool
}

// New creates a controller browsing root.
func New(fs afero.Fs, scanner *Scanner, root string, screen Screen, opts Options) *Controller {
	if opts.Columns < 1 {
		opts.Columns = 1
	}
	if opts.MaxZoom < 0 {
		opts.MaxZoom = 0
	}

	c := &Controller{
		fs:      fs,
		scanner: scanner,
		screen:  screen,
		opts:    opts,
		log:     zerolog.Nop(),
		modes:   mode.NewTracker(mode.Loading),
		root:    filepath.Clean(root),
		loading: true,
	}
	c.modes.OnChange(func(from, to mode.Mode) {
		c.log.Debug().Stringer("from", from).Stringer("to", to).Msg("mode changed")
	})
	return c
}

// SetLogger sets the controller's logger.
func (c *Controller) SetLogger(log zerolog.Logger) {
	c.log = log
}

// SetLegend sets the function producing the key legend.
func (c *Controller) SetLegend(legend LegendFunc) {
	c.legend = legend
}

// Start sizes the screen and loads the root directory. The mode moves from
// Loading to Normal once the listing is available.
func (c *Controller) Start() error {
	w, h := c.screen.Size()
	c.applySize(w, h)
	c.Render()

	entries, err := c.scanner.List(c.dir())
	c.loading = false
	if err != nil {
		return err
	}

	c.entries = entries
	c.selected = 0
	if c.modes.Is(mode.Loading) {
		c.modes.Set(mode.Normal)
	}
	c.log.Info().Str("root", c.root).Int("entries", len(entries)).Msg("loaded")
	c.Render()
	return nil
}

// State returns the current mode and the entry held for deletion.
func (c *Controller) State() mode.State {
	st := mode.State{Mode: c.modes.Current()}
	if st.Mode == mode.DeleteFileConfirm && c.fileToDelete != nil {
		f := *c.fileToDelete
		f.Path = append([]string(nil), c.fileToDelete.Path...)
		st.FileToDelete = &f
	}
	return st
}

// Exited reports whether Exit has been called.
func (c *Controller) Exited() bool { return c.exited }

// Dir returns the directory being shown.
func (c *Controller) Dir() string { return c.dir() }

// Zoom returns the current zoom level.
func (c *Controller) Zoom() int { return c.zoom }

// Entries returns the current listing.
func (c *Controller) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Selected returns the selected entry.
func (c *Controller) Selected() (Entry, bool) {
	if c.selected < 0 || c.selected >= len(c.entries) {
		return Entry{}, false
	}
	return c.entries[c.selected], true
}

// Message returns the text of the current warning or error.
func (c *Controller) Message() string { return c.message }

// Status returns the last status line.
func (c *Controller) Status() string { return c.status }

func (c *Controller) dir() string {
	return filepath.Join(append([]string{c.root}, c.path...)...)
}

// baseMode is the mode to return to when no overlay is shown.
func (c *Controller) baseMode() mode.Mode {
	switch {
	case c.tooSmall:
		return mode.ScreenTooSmall
	case c.loading:
		return mode.Loading
	default:
		return mode.Normal
	}
}

// Resize records a new screen size and enters or leaves ScreenTooSmall.
func (c *Controller) Resize(width, height int) {
	c.applySize(width, height)
	c.Render()
}

func (c *Controller) applySize(width, height int) {
	c.width, c.height = width, height
	wasTooSmall := c.tooSmall
	c.tooSmall = width < c.opts.MinWidth || height < c.opts.MinHeight

	switch {
	case c.tooSmall:
		c.modes.Set(mode.ScreenTooSmall)
	case wasTooSmall:
		c.clearOverlay()
		c.modes.Set(c.baseMode())
	}
}

func (c *Controller) clearOverlay() {
	c.message = ""
	c.fileToDelete = nil
}

// PromptExit asks for confirmation before quitting.
func (c *Controller) PromptExit() {
	c.modes.Set(mode.Exiting)
	c.Render()
}

// Exit ends the application by closing the screen, which also ends the
// terminal's event stream.
func (c *Controller) Exit() {
	if c.exited {
		return
	}
	c.exited = true
	c.log.Info().Msg("exit")
	c.screen.Close()
}

// ResetUIMode drops any overlay and returns to the base mode. It does not
// render.
func (c *Controller) ResetUIMode() {
	c.clearOverlay()
	c.modes.Set(c.baseMode())
}

// NormalMode drops any overlay and enters Normal mode.
func (c *Controller) NormalMode() {
	c.clearOverlay()
	c.modes.Set(mode.Normal)
	c.Render()
}

// MoveSelectedLeft moves the selection one cell left within its row.
func (c *Controller) MoveSelectedLeft() {
	if c.selected%c.opts.Columns != 0 {
		c.selected--
	}
	c.Render()
}

// MoveSelectedRight moves the selection one cell right within its row.
func (c *Controller) MoveSelectedRight() {
	next := c.selected + 1
	if next < len(c.entries) && next%c.opts.Columns != 0 {
		c.selected = next
	}
	c.Render()
}

// MoveSelectedUp moves the selection one row up.
func (c *Controller) MoveSelectedUp() {
	if c.selected-c.opts.Columns >= 0 {
		c.selected -= c.opts.Columns
	}
	c.Render()
}

// MoveSelectedDown moves the selection one row down.
func (c *Controller) MoveSelectedDown() {
	if c.selected+c.opts.Columns < len(c.entries) {
		c.selected += c.opts.Columns
	}
	c.Render()
}

// ZoomIn increases the zoom level up to the configured maximum.
func (c *Controller) ZoomIn() {
	if c.zoom < c.opts.MaxZoom {
		c.zoom++
	}
	c.Render()
}

// ZoomOut decreases the zoom level down to zero.
func (c *Controller) ZoomOut() {
	if c.zoom > 0 {
		c.zoom--
	}
	c.Render()
}

// ResetZoom returns to zoom level zero.
func (c *Controller) ResetZoom() {
	c.zoom = 0
	c.Render()
}

// HandleEnter descends into the selected directory.
func (c *Controller) HandleEnter() {
	e, ok := c.Selected()
	if !ok || !e.IsDir {
		c.Render()
		return
	}
	c.changeDir(append(append([]string(nil), c.path...), e.Name), "")
}

// GoUp returns to the parent directory. It never leaves the root.
func (c *Controller) GoUp() {
	if len(c.path) == 0 {
		c.Render()
		return
	}
	from := c.path[len(c.path)-1]
	c.changeDir(c.path[:len(c.path)-1], from)
}

// changeDir lists the directory at path and selects the entry named
// selectName, if present. On failure the previous listing is kept and the
// error is shown.
func (c *Controller) changeDir(path []string, selectName string) {
	prev := c.path
	c.path = path
	c.loading = true
	if !c.tooSmall {
		c.modes.Set(mode.Loading)
	}
	c.Render()

	entries, err := c.scanner.List(c.dir())
	c.loading = false
	if err != nil {
		c.path = prev
		c.log.Warn().Err(err).Msg("change directory failed")
		c.showError(err)
		return
	}

	c.entries = entries
	c.selected = 0
	for i, e := range entries {
		if e.Name == selectName {
			c.selected = i
			break
		}
	}
	c.status = ""
	c.modes.Set(c.baseMode())
	c.Render()
}

// PromptFileDeletion asks to confirm deletion of the selected entry. With
// nothing selected it only reports so on the status line.
func (c *Controller) PromptFileDeletion() {
	e, ok := c.Selected()
	if !ok {
		c.status = NewOperationError("delete", c.dir(), ErrNothingSelected).Error()
		c.Render()
		return
	}

	segments := append(append([]string{c.root}, c.path...), e.Name)
	c.fileToDelete = &mode.FileToDelete{Path: segments, Size: e.Size, IsDir: e.IsDir}
	c.modes.Set(mode.DeleteFileConfirm)
	c.Render()
}

// ShowWarningModal tells the user deletion is unavailable while loading.
func (c *Controller) ShowWarningModal() {
	c.message = "Cannot delete while scanning. Press any key."
	c.modes.Set(mode.WarningMessage)
	c.Render()
}

// DeleteFile removes the given entry, or only reports it in dry-run mode.
// On failure the error is shown in ErrorMessage mode.
func (c *Controller) DeleteFile(file mode.FileToDelete) {
	target := filepath.Clean(file.FullPath())
	c.fileToDelete = nil

	if target == c.root || len(file.Path) < 2 {
		c.showError(NewOperationError("delete", target, ErrDeleteRoot))
		return
	}

	if c.opts.DryRun {
		c.status = "dry run: would delete " + target + " (" + FormatSize(file.Size) + ")"
		c.log.Info().Str("path", target).Int64("size", file.Size).Msg("dry run delete")
		c.modes.Set(c.baseMode())
		c.Render()
		return
	}

	if err := c.fs.RemoveAll(target); err != nil {
		c.log.Error().Err(err).Str("path", target).Msg("delete failed")
		c.showError(NewOperationError("delete", target, err))
		return
	}

	c.log.Info().Str("path", target).Int64("size", file.Size).Msg("deleted")
	c.status = "deleted " + target + " (" + FormatSize(file.Size) + ")"
	c.removeEntry(target)
	c.modes.Set(c.baseMode())
	c.Render()
}

func (c *Controller) removeEntry(target string) {
	if filepath.Dir(target) != c.dir() {
		return
	}
	name := filepath.Base(target)
	for i, e := range c.entries {
		if e.Name == name {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			break
		}
	}
	if c.selected >= len(c.entries) && c.selected > 0 {
		c.selected = len(c.entries) - 1
	}
}

func (c *Controller) showError(err error) {
	c.message = err.Error()
	if !c.tooSmall {
		c.modes.Set(mode.ErrorMessage)
	}
	c.Render()
}
