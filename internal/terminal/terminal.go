// Package terminal adapts a tcell screen for drawing and key input.
//
// A Terminal is both the drawing surface of the application and its
// event source: Next blocks on the screen's event queue and yields key
// events, handling resize events in place. Closing the terminal ends the
// event stream.
package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/diskview/internal/input/key"
)

// Style names a drawing style. The terminal maps it to colors.
type Style uint8

const (
	StyleNormal Style = iota
	StyleHeader
	StyleSelected
	StyleDirectory
	StyleHint
	StyleModal
	StyleError
)

var styles = map[Style]tcell.Style{
	StyleNormal:    tcell.StyleDefault,
	StyleHeader:    tcell.StyleDefault.Bold(true).Reverse(true),
	StyleSelected:  tcell.StyleDefault.Reverse(true),
	StyleDirectory: tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true),
	StyleHint:      tcell.StyleDefault.Dim(true),
	StyleModal:     tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow),
	StyleError:     tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed).Bold(true),
}

// Terminal wraps a tcell.Screen.
type Terminal struct {
	screen        tcell.Screen
	resizeHandler func(width, height int)
	closeOnce     sync.Once
	closed        bool
	mu            sync.Mutex
}

// New creates a terminal on the process's controlling tty.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewWithScreen creates a terminal over an existing screen, such as a
// tcell simulation screen.
func NewWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	return nil
}

// Close restores the terminal and ends the event stream.
// It is safe to call more than once and from any goroutine.
func (t *Terminal) Close() {
	t.closeOnce.Do(func() {
		t.mu.Lock()
		t.closed = true
		t.mu.Unlock()
		t.screen.Fini()
	})
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

// OnResize registers the handler invoked from Next on resize events.
func (t *Terminal) OnResize(callback func(width, height int)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.resizeHandler = callback
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

// DrawText draws text starting at (x, y), clipped to the screen width.
// It returns the number of columns used.
func (t *Terminal) DrawText(x, y int, text string, style Style) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	width, height := t.screen.Size()
	if y < 0 || y >= height {
		return 0
	}

	ts, ok := styles[style]
	if !ok {
		ts = tcell.StyleDefault
	}

	col := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > width {
			break
		}
		if col >= 0 {
			t.screen.SetContent(col, y, r, nil, ts)
		}
		col += w
	}
	return col - x
}

// Next blocks until a key event arrives. Resize events are passed to the
// resize handler and skipped; other non-key events are ignored. It returns false once the terminal is closed.
func (t *Terminal) Next() (key.Event, bool) {
	for {
		t.mu.Lock()
		closed := t.closed
		t.mu.Unlock()
		if closed {
			return key.Event{}, false
		}

		ev := t.screen.PollEvent()
		if ev == nil {
			return key.Event{}, false
		}

		switch e := ev.(type) {
		case *tcell.EventKey:
			return convertEvent(e), true
		case *tcell.EventResize:
			w, h := e.Size()
			t.mu.Lock()
			handler := t.resizeHandler
			t.mu.Unlock()
			if handler != nil {
				handler(w, h)
			}
		}
	}
}

// convertEvent converts a tcell key event. Keys without a name of their
// own are reported as KeyOther so every key press reaches the dispatcher.
func convertEvent(e *tcell.EventKey) key.Event {
	mods := convertMod(e.Modifiers())
	k := e.Key()

	switch k {
	case tcell.KeyRune:
		return key.NewRuneEvent(e.Rune(), mods)
	case tcell.KeyEnter, tcell.KeyLF:
		return key.NewSpecialEvent(key.KeyEnter, mods.Without(key.ModCtrl))
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods.Without(key.ModCtrl))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods.Without(key.ModCtrl))
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods)
	}

	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := 'a' + rune(k-tcell.KeyCtrlA)
		return key.NewRuneEvent(r, mods.With(key.ModCtrl))
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return key.NewSpecialEvent(key.KeyF1+key.Key(k-tcell.KeyF1), mods)
	}

	if special := convertKey(k); special.IsSpecial() {
		return key.NewSpecialEvent(special, mods)
	}
	return key.NewSpecialEvent(key.KeyOther, mods)
}

// convertKey converts the named tcell keys.
func convertKey(k tcell.Key) key.Key {
	switch k {
	case tcell.KeyDelete:
		return key.KeyDelete
	case tcell.KeyInsert:
		return key.KeyInsert
	case tcell.KeyHome:
		return key.KeyHome
	case tcell.KeyEnd:
		return key.KeyEnd
	case tcell.KeyPgUp:
		return key.KeyPageUp
	case tcell.KeyPgDn:
		return key.KeyPageDown
	case tcell.KeyUp:
		return key.KeyUp
	case tcell.KeyDown:
		return key.KeyDown
	case tcell.KeyLeft:
		return key.KeyLeft
	case tcell.KeyRight:
		return key.KeyRight
	default:
		return key.KeyNone
	}
}

func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		result |= key.ModAlt
	}
	return result
}
