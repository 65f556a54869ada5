package app

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/diskview/internal/input/mode"
	"github.com/dshills/diskview/internal/terminal"
)

const (
	headerRows = 2
	legendRows = 1
)

// Render draws the whole screen for the current state.
func (c *Controller) Render() {
	if c.exited {
		return
	}

	c.screen.Clear()
	w, h := c.width, c.height
	m := c.modes.Current()

	if m == mode.ScreenTooSmall {
		c.screen.DrawText(0, 0, fmt.Sprintf("Terminal too small (need %dx%d)", c.opts.MinWidth, c.opts.MinHeight), terminal.StyleError)
		c.screen.DrawText(0, 1, c.legendFor(m), terminal.StyleHint)
		c.screen.Show()
		return
	}

	c.drawHeader(w)
	c.drawGrid(w, h-headerRows-legendRows)
	c.screen.DrawText(0, h-1, c.legendFor(m), terminal.StyleHint)
	c.drawModal(m, w, h)
	c.screen.Show()
}

func (c *Controller) legendFor(m mode.Mode) string {
	if c.legend == nil {
		return ""
	}
	return c.legend(m)
}

func (c *Controller) drawHeader(w int) {
	title := fmt.Sprintf(" %s  %s", c.dir(), FormatSize(Total(c.entries)))
	if c.zoom > 0 {
		title += fmt.Sprintf("  zoom %d", c.zoom)
	}
	if c.loading {
		title += "  scanning..."
	}
	c.screen.DrawText(0, 0, pad(title, w), terminal.StyleHeader)

	if c.status != "" {
		c.screen.DrawText(0, 1, " "+c.status, terminal.StyleHint)
	}
}

// drawGrid lays the entries out in rows of Columns cells. Each zoom level
// makes cells one line taller and shows more detail.
func (c *Controller) drawGrid(w, rows int) {
	if rows <= 0 {
		return
	}
	if len(c.entries) == 0 {
		if !c.loading {
			c.screen.DrawText(1, headerRows, "(empty)", terminal.StyleHint)
		}
		return
	}

	cols := c.opts.Columns
	cellW := w / cols
	cellH := 1 + c.zoom
	visible := rows / cellH
	if visible < 1 {
		visible = 1
	}

	selRow := c.selected / cols
	top := 0
	if selRow >= visible {
		top = selRow - visible + 1
	}

	total := Total(c.entries)
	for i, e := range c.entries {
		row := i/cols - top
		if row < 0 {
			continue
		}
		if row >= visible {
			break
		}

		x := (i % cols) * cellW
		y := headerRows + row*cellH

		style := terminal.StyleNormal
		name := e.Name
		if e.IsDir {
			name += "/"
			style = terminal.StyleDirectory
		}
		if i == c.selected {
			style = terminal.StyleSelected
		}

		lines := []string{name, FormatSize(e.Size), fmt.Sprintf("%d%%", percent(e.Size, total))}
		if cellH == 1 {
			lines = []string{name + " " + FormatSize(e.Size)}
		}
		for l := 0; l < cellH && l < len(lines); l++ {
			c.screen.DrawText(x, y+l, pad(lines[l], cellW-1), style)
		}
	}
}

func (c *Controller) drawModal(m mode.Mode, w, h int) {
	var lines []string
	style := terminal.StyleModal

	switch m {
	case mode.DeleteFileConfirm:
		if f := c.fileToDelete; f != nil {
			kind := "file"
			if f.IsDir {
				kind = "directory"
			}
			lines = []string{fmt.Sprintf("Delete %s %s (%s)?", kind, f.FullPath(), FormatSize(f.Size))}
			if c.opts.DryRun {
				lines = append(lines, "(dry run: nothing will be removed)")
			}
		}
	case mode.ErrorMessage:
		lines = []string{"Error: " + c.message}
		style = terminal.StyleError
	case mode.WarningMessage:
		lines = []string{c.message}
	case mode.Exiting:
		lines = []string{"Quit diskview?"}
	default:
		return
	}
	if legend := c.legendFor(m); legend != "" {
		lines = append(lines, legend)
	}

	width := 0
	for _, l := range lines {
		if lw := runewidth.StringWidth(l); lw > width {
			width = lw
		}
	}
	width += 4
	if width > w {
		width = w
	}

	x := (w - width) / 2
	y := (h - len(lines)) / 2
	for i, l := range lines {
		c.screen.DrawText(x, y+i, pad("  "+l, width), style)
	}
}

// pad truncates or space-pads s to exactly width columns.
func pad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, width, "~")
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}
