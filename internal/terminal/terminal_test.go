package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	term := NewWithScreen(sim)
	require.NoError(t, term.Init())
	sim.SetSize(40, 12)
	t.Cleanup(term.Close)
	return term, sim
}

func post(t *testing.T, sim tcell.SimulationScreen, k tcell.Key, r rune, mod tcell.ModMask) {
	t.Helper()
	require.NoError(t, sim.PostEvent(tcell.NewEventKey(k, r, mod)))
}

func TestNextConvertsKeys(t *testing.T) {
	term, sim := newSimTerminal(t)

	tests := []struct {
		key  tcell.Key
		r    rune
		mod  tcell.ModMask
		want string
	}{
		{tcell.KeyRune, 'q', tcell.ModNone, "q"},
		{tcell.KeyRune, '+', tcell.ModNone, "+"},
		{tcell.KeyCtrlC, 0, tcell.ModCtrl, "C-c"},
		{tcell.KeyCtrlF, 0, tcell.ModNone, "C-f"},
		{tcell.KeyRight, 0, tcell.ModNone, "Right"},
		{tcell.KeyUp, 0, tcell.ModNone, "Up"},
		{tcell.KeyEnter, 0, tcell.ModNone, "Enter"},
		{tcell.KeyEscape, 0, tcell.ModNone, "Esc"},
		{tcell.KeyBackspace2, 0, tcell.ModNone, "BS"},
		{tcell.KeyBackspace, 0, tcell.ModNone, "BS"},
	}

	for _, tt := range tests {
		post(t, sim, tt.key, tt.r, tt.mod)
		ev, ok := term.Next()
		require.True(t, ok, tt.want)
		assert.Equal(t, tt.want, ev.String())
	}
}

func TestNextReportsEveryKey(t *testing.T) {
	term, sim := newSimTerminal(t)

	post(t, sim, tcell.KeyF5, 0, tcell.ModNone)
	post(t, sim, tcell.KeyInsert, 0, tcell.ModNone)
	post(t, sim, tcell.KeyPrint, 0, tcell.ModNone)
	post(t, sim, tcell.KeyRune, 'x', tcell.ModNone)

	var got []string
	for i := 0; i < 4; i++ {
		ev, ok := term.Next()
		require.True(t, ok)
		got = append(got, ev.String())
	}
	assert.Equal(t, []string{"F5", "Insert", "Other", "x"}, got)
}

func TestNextHandlesResize(t *testing.T) {
	term, sim := newSimTerminal(t)

	var gotW, gotH int
	term.OnResize(func(w, h int) {
		gotW, gotH = w, h
	})

	require.NoError(t, sim.PostEvent(tcell.NewEventResize(30, 10)))
	post(t, sim, tcell.KeyRune, 'l', tcell.ModNone)

	ev, ok := term.Next()
	require.True(t, ok)
	assert.Equal(t, "l", ev.String())
	assert.Equal(t, 30, gotW)
	assert.Equal(t, 10, gotH)
}

func TestCloseEndsStream(t *testing.T) {
	term, _ := newSimTerminal(t)

	term.Close()
	_, ok := term.Next()
	assert.False(t, ok)
	_, ok = term.Next()
	assert.False(t, ok)

	// Closing twice is harmless.
	term.Close()
}

func TestDrawTextClips(t *testing.T) {
	term, sim := newSimTerminal(t)

	n := term.DrawText(0, 1, "hello", StyleNormal)
	assert.Equal(t, 5, n)

	mainc, _, _, _ := sim.GetContent(1, 1) //nolint:staticcheck // GetContent is the correct API
	assert.Equal(t, 'e', mainc)

	n = term.DrawText(36, 2, "overflow", StyleHeader)
	assert.Equal(t, 4, n)

	assert.Equal(t, 0, term.DrawText(0, 50, "offscreen", StyleNormal))

	w, h := term.Size()
	assert.Equal(t, 40, w)
	assert.Equal(t, 12, h)
}

func TestDrawTextWideRunes(t *testing.T) {
	term, _ := newSimTerminal(t)

	assert.Equal(t, 4, term.DrawText(0, 0, "日本", StyleNormal))
	assert.Equal(t, 2, term.DrawText(37, 0, "日本", StyleNormal))
}
