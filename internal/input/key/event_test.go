package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventCanonical(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{"plain rune", NewRuneEvent('q', ModNone), "q"},
		{"shifted rune", NewRuneEvent('+', ModShift), "+"},
		{"ctrl upper", NewRuneEvent('C', ModCtrl), "C-c"},
		{"ctrl helper", NewCtrlEvent('F'), "C-f"},
		{"newline", NewRuneEvent('\n', ModNone), "Enter"},
		{"carriage return", NewRuneEvent('\r', ModNone), "Enter"},
		{"enter key", NewSpecialEvent(KeyEnter, ModNone), "Enter"},
		{"del rune", NewRuneEvent(0x7f, ModNone), "BS"},
		{"escape", NewSpecialEvent(KeyEscape, ModNone), "Esc"},
		{"arrow", NewSpecialEvent(KeyRight, ModNone), "Right"},
		{"shift arrow", NewSpecialEvent(KeyLeft, ModShift), "S-Left"},
		{"space", NewRuneEvent(' ', ModNone), "Space"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.String())
		})
	}
}

func TestEventEquals(t *testing.T) {
	assert.True(t, NewRuneEvent('\n', ModNone).Equals(NewSpecialEvent(KeyEnter, ModNone)))
	assert.True(t, NewRuneEvent('C', ModCtrl).Equals(NewCtrlEvent('c')))
	assert.False(t, NewRuneEvent('c', ModNone).Equals(NewCtrlEvent('c')))
	assert.False(t, NewSpecialEvent(KeyUp, ModNone).Equals(NewSpecialEvent(KeyDown, ModNone)))
}

func TestEventCanonicalDropsTimestamp(t *testing.T) {
	ev := NewRuneEvent('j', ModNone)
	assert.False(t, ev.Timestamp.IsZero())
	assert.True(t, ev.Canonical().Timestamp.IsZero())
}

func TestEventIsRune(t *testing.T) {
	assert.True(t, NewRuneEvent('a', ModNone).IsRune())
	assert.False(t, NewRuneEvent(0, ModNone).IsRune())
	assert.False(t, NewSpecialEvent(KeyEnter, ModNone).IsRune())
}
