package dispatcher

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dshills/diskview/internal/input/chord"
	"github.com/dshills/diskview/internal/input/key"
	"github.com/dshills/diskview/internal/input/keymap"
	"github.com/dshills/diskview/internal/input/mode"
	"github.com/dshills/diskview/internal/input/source"
)

// recorder is a controller that records every invocation. Entries in
// transitions change the mode after the named call.
type recorder struct {
	state       mode.State
	calls       []string
	deleted     []mode.FileToDelete
	transitions map[string]mode.Mode
}

func newRecorder(m mode.Mode) *recorder {
	return &recorder{state: mode.State{Mode: m}, transitions: map[string]mode.Mode{}}
}

func (r *recorder) State() mode.State { return r.state }

func (r *recorder) record(name string) {
	r.calls = append(r.calls, name)
	if m, ok := r.transitions[name]; ok {
		r.state.Mode = m
	}
}

func (r *recorder) PromptExit()         { r.record("PromptExit") }
func (r *recorder) Exit()               { r.record("Exit") }
func (r *recorder) GoUp()               { r.record("GoUp") }
func (r *recorder) HandleEnter()        { r.record("HandleEnter") }
func (r *recorder) ResetUIMode()        { r.record("ResetUIMode") }
func (r *recorder) NormalMode()         { r.record("NormalMode") }
func (r *recorder) MoveSelectedLeft()   { r.record("MoveSelectedLeft") }
func (r *recorder) MoveSelectedRight()  { r.record("MoveSelectedRight") }
func (r *recorder) MoveSelectedUp()     { r.record("MoveSelectedUp") }
func (r *recorder) MoveSelectedDown()   { r.record("MoveSelectedDown") }
func (r *recorder) ZoomIn()             { r.record("ZoomIn") }
func (r *recorder) ZoomOut()            { r.record("ZoomOut") }
func (r *recorder) ResetZoom()          { r.record("ResetZoom") }
func (r *recorder) PromptFileDeletion() { r.record("PromptFileDeletion") }
func (r *recorder) ShowWarningModal()   { r.record("ShowWarningModal") }
func (r *recorder) Render()             { r.record("Render") }

func (r *recorder) DeleteFile(f mode.FileToDelete) {
	r.deleted = append(r.deleted, f)
	r.record("DeleteFile")
}

func dispatchSpecs(t *testing.T, d *Dispatcher, c Controller, specs ...string) {
	t.Helper()
	for _, s := range specs {
		ev, err := key.Parse(s)
		require.NoError(t, err, s)
		d.Dispatch(ev, c)
	}
}

func TestSynonymsInBrowseModes(t *testing.T) {
	groups := []struct {
		specs []string
		want  string
	}{
		{[]string{"C-c", "q"}, "PromptExit"},
		{[]string{"l", "Right", "C-f"}, "MoveSelectedRight"},
		{[]string{"h", "Left", "C-b"}, "MoveSelectedLeft"},
		{[]string{"j", "Down", "C-n"}, "MoveSelectedDown"},
		{[]string{"k", "Up", "C-p"}, "MoveSelectedUp"},
		{[]string{"+"}, "ZoomIn"},
		{[]string{"-"}, "ZoomOut"},
		{[]string{"0"}, "ResetZoom"},
		{[]string{"Enter"}, "HandleEnter"},
		{[]string{"Esc"}, "GoUp"},
	}

	for _, m := range []mode.Mode{mode.Loading, mode.Normal} {
		for _, g := range groups {
			for _, spec := range g.specs {
				t.Run(m.String()+"/"+spec, func(t *testing.T) {
					d := NewWithDefaults()
					r := newRecorder(m)
					dispatchSpecs(t, d, r, spec)
					assert.Equal(t, []string{g.want}, r.calls)
				})
			}
		}
	}
}

func TestBackspaceDependsOnMode(t *testing.T) {
	d := NewWithDefaults()

	loading := newRecorder(mode.Loading)
	dispatchSpecs(t, d, loading, "BS")
	assert.Equal(t, []string{"ShowWarningModal"}, loading.calls)

	normal := newRecorder(mode.Normal)
	dispatchSpecs(t, d, normal, "BS")
	assert.Equal(t, []string{"PromptFileDeletion"}, normal.calls)
}

func TestUnmappedChordsAreIgnored(t *testing.T) {
	d := NewWithDefaults()

	for _, m := range []mode.Mode{mode.Loading, mode.Normal, mode.DeleteFileConfirm, mode.ErrorMessage, mode.ScreenTooSmall, mode.Exiting} {
		for _, spec := range []string{"x", "F5", "Insert", "Other"} {
			r := newRecorder(m)
			a := d.Dispatch(key.MustParse(spec), r)
			assert.True(t, a.IsNoop(), m.String()+" "+spec)
			assert.Empty(t, r.calls, m.String()+" "+spec)
		}
	}
}

func TestWarningMessageDismissesOnAnyKey(t *testing.T) {
	d := NewWithDefaults()

	for _, spec := range []string{"q", "y", "n", "x", "Enter", "Esc", "C-c", "BS", "Right", "F", "Space", "F5", "Insert", "Other"} {
		r := newRecorder(mode.WarningMessage)
		dispatchSpecs(t, d, r, spec)
		assert.Equal(t, []string{"ResetUIMode"}, r.calls, spec)
	}
}

func TestScreenTooSmallOnlyExits(t *testing.T) {
	d := NewWithDefaults()

	for _, spec := range []string{"q", "C-c"} {
		r := newRecorder(mode.ScreenTooSmall)
		dispatchSpecs(t, d, r, spec)
		assert.Equal(t, []string{"Exit"}, r.calls, spec)
	}

	r := newRecorder(mode.ScreenTooSmall)
	dispatchSpecs(t, d, r, "l", "Esc", "Enter", "BS", "+", "y", "n")
	assert.Empty(t, r.calls)
}

func TestExitingCancelRestoresAndRenders(t *testing.T) {
	d := NewWithDefaults()

	for _, spec := range []string{"q", "C-c", "Esc", "n"} {
		r := newRecorder(mode.Exiting)
		dispatchSpecs(t, d, r, spec)
		assert.Equal(t, []string{"ResetUIMode", "Render"}, r.calls, spec)
	}

	r := newRecorder(mode.Exiting)
	dispatchSpecs(t, d, r, "y")
	assert.Equal(t, []string{"Exit"}, r.calls)
}

func TestErrorMessageDismiss(t *testing.T) {
	d := NewWithDefaults()

	for _, spec := range []string{"q", "C-c", "Esc"} {
		r := newRecorder(mode.ErrorMessage)
		dispatchSpecs(t, d, r, spec)
		assert.Equal(t, []string{"NormalMode"}, r.calls, spec)
	}
}

func TestDeleteConfirmUsesHeldFile(t *testing.T) {
	d := NewWithDefaults()
	held := &mode.FileToDelete{Path: []string{"root", "big.iso"}, Size: 4 << 30}

	for _, spec := range []string{"q", "Esc", "n", "C-c"} {
		r := newRecorder(mode.DeleteFileConfirm)
		r.state.FileToDelete = held
		dispatchSpecs(t, d, r, spec)
		assert.Equal(t, []string{"NormalMode"}, r.calls, spec)
		assert.Empty(t, r.deleted, spec)
	}

	r := newRecorder(mode.DeleteFileConfirm)
	r.state.FileToDelete = held
	dispatchSpecs(t, d, r, "y")
	assert.Equal(t, []string{"DeleteFile"}, r.calls)
	require.Len(t, r.deleted, 1)
	assert.Equal(t, *held, r.deleted[0])
}

func TestDeleteWithoutHeldFileIsSkipped(t *testing.T) {
	d := NewWithDefaults()
	r := newRecorder(mode.DeleteFileConfirm)

	a := d.Dispatch(key.MustParse("y"), r)
	assert.True(t, a.Has(keymap.OpDeleteFile))
	assert.Empty(t, r.calls)
}

func TestModeIsReadFreshEachEvent(t *testing.T) {
	d := NewWithDefaults()
	r := newRecorder(mode.Normal)
	r.transitions["PromptExit"] = mode.Exiting

	// The second q is seen in Exiting mode and cancels the prompt.
	dispatchSpecs(t, d, r, "q", "q")
	assert.Equal(t, []string{"PromptExit", "ResetUIMode", "Render"}, r.calls)
}

func TestResolveIsPure(t *testing.T) {
	d := NewWithDefaults()

	a := d.Resolve(key.MustParse("l"), mode.State{Mode: mode.Normal})
	assert.Equal(t, []keymap.Op{keymap.OpMoveRight}, a.Ops)

	a = d.Resolve(key.MustParse("l"), mode.State{Mode: mode.WarningMessage})
	assert.Equal(t, []keymap.Op{keymap.OpResetUIMode}, a.Ops)

	a = d.Resolve(key.MustParse("l"), mode.State{Mode: mode.Mode(42)})
	assert.True(t, a.IsNoop())
}

func TestCustomAliases(t *testing.T) {
	n := chord.DefaultNormalizer()
	require.NoError(t, n.Alias(chord.Down, "s"))

	d := New(keymap.DefaultRegistry(), n, DefaultConfig())
	r := newRecorder(mode.Normal)
	dispatchSpecs(t, d, r, "s", "j")
	assert.Equal(t, []string{"MoveSelectedDown", "MoveSelectedDown"}, r.calls)
}

func TestSetNormalizerAppliesToNextEvent(t *testing.T) {
	d := NewWithDefaults()
	r := newRecorder(mode.Normal)

	dispatchSpecs(t, d, r, "d")
	assert.Empty(t, r.calls)

	n, err := chord.FromAliases(map[chord.Chord][]string{chord.Right: {"d"}})
	require.NoError(t, err)
	d.SetNormalizer(n)
	d.SetNormalizer(nil)
	assert.Same(t, n, d.Normalizer())

	dispatchSpecs(t, d, r, "d", "l")
	assert.Equal(t, []string{"MoveSelectedRight", "MoveSelectedRight"}, r.calls)
}

func TestRunRightThenLeft(t *testing.T) {
	d := NewWithDefaults()
	r := newRecorder(mode.Normal)

	src := source.NewSlice(key.MustParse("l"), key.MustParse("h"))
	require.NoError(t, d.Run(context.Background(), src, r))
	assert.Equal(t, []string{"MoveSelectedRight", "MoveSelectedLeft"}, r.calls)

	m := d.Metrics()
	require.NotNil(t, m)
	assert.Equal(t, uint64(2), m.TotalDispatches())
	assert.Equal(t, uint64(0), m.TotalNoops())
}

func TestRunStopsAtEndOfInput(t *testing.T) {
	d := NewWithDefaults()
	r := newRecorder(mode.Normal)

	calls := 0
	src := source.Func(func() (key.Event, bool) {
		calls++
		if calls == 1 {
			return key.MustParse("j"), true
		}
		if calls == 2 {
			return key.Event{}, false
		}
		// A misbehaving source that resumes after ending.
		return key.MustParse("k"), true
	})

	require.NoError(t, d.Run(context.Background(), src, r))
	assert.Equal(t, []string{"MoveSelectedDown"}, r.calls)
	assert.Equal(t, 2, calls)
}

func TestRunExitEndsLoop(t *testing.T) {
	d := NewWithDefaults()
	r := newRecorder(mode.Normal)
	r.transitions["PromptExit"] = mode.Exiting

	ch := make(chan key.Event, 4)
	ch <- key.MustParse("q")
	ch <- key.MustParse("y")
	close(ch)

	require.NoError(t, d.Run(context.Background(), source.NewChan(ch), r))
	assert.Equal(t, []string{"PromptExit", "Exit"}, r.calls)
}

// exitRecorder reports Exited once Exit has been invoked.
type exitRecorder struct {
	*recorder
	exited bool
}

func (r *exitRecorder) Exit() {
	r.recorder.Exit()
	r.exited = true
}

func (r *exitRecorder) Exited() bool { return r.exited }

func TestRunStopsAfterExit(t *testing.T) {
	d := NewWithDefaults()
	r := &exitRecorder{recorder: newRecorder(mode.Normal)}
	r.transitions["PromptExit"] = mode.Exiting

	src := source.NewSlice(key.MustParse("q"), key.MustParse("y"), key.MustParse("q"), key.MustParse("j"))
	require.NoError(t, d.Run(context.Background(), src, r))

	assert.Equal(t, []string{"PromptExit", "Exit"}, r.calls)
	assert.Equal(t, mode.Exiting, r.state.Mode)
	assert.Equal(t, 2, src.Remaining())
}

func TestRunDoesNotStartAfterExit(t *testing.T) {
	d := NewWithDefaults()
	r := &exitRecorder{recorder: newRecorder(mode.Normal), exited: true}

	src := source.NewSlice(key.MustParse("j"))
	require.NoError(t, d.Run(context.Background(), src, r))

	assert.Empty(t, r.calls)
	assert.Equal(t, 1, src.Remaining())
}

func TestRunCancelled(t *testing.T) {
	d := NewWithDefaults()
	r := newRecorder(mode.Normal)

	ctx, cancel := context.WithCancel(context.Background())
	src := source.Func(func() (key.Event, bool) {
		cancel()
		return key.MustParse("j"), true
	})

	err := d.Run(ctx, src, r)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, r.calls)
}

func TestRunRejectsNil(t *testing.T) {
	d := NewWithDefaults()
	assert.ErrorIs(t, d.Run(context.Background(), nil, newRecorder(mode.Normal)), ErrNilSource)
	assert.ErrorIs(t, d.Run(context.Background(), source.NewSlice(), nil), ErrNilController)
}

func TestRunScript(t *testing.T) {
	d := NewWithDefaults()
	r := newRecorder(mode.Normal)

	script := source.NewScript(strings.NewReader("l l # twice right\nh +\n"))
	require.NoError(t, d.Run(context.Background(), script, r))
	require.NoError(t, script.Err())
	assert.Equal(t, []string{"MoveSelectedRight", "MoveSelectedRight", "MoveSelectedLeft", "ZoomIn"}, r.calls)
}

func TestRedrawOnModeChange(t *testing.T) {
	config := DefaultConfig().WithRedrawOnModeChange(true)
	d := New(keymap.DefaultRegistry(), nil, config)

	r := newRecorder(mode.Normal)
	r.transitions["PromptExit"] = mode.Exiting
	r.transitions["ResetUIMode"] = mode.Normal

	// Mode changes: render is added.
	dispatchSpecs(t, d, r, "q")
	assert.Equal(t, []string{"PromptExit", "Render"}, r.calls)

	// Action already ends with render: no extra render.
	r.calls = nil
	dispatchSpecs(t, d, r, "n")
	assert.Equal(t, []string{"ResetUIMode", "Render"}, r.calls)

	// No mode change: nothing added.
	r.calls = nil
	dispatchSpecs(t, d, r, "l")
	assert.Equal(t, []string{"MoveSelectedRight"}, r.calls)

	assert.Equal(t, uint64(1), d.Metrics().TotalRedraws())
}

func TestRedrawOffByDefault(t *testing.T) {
	d := NewWithDefaults()
	r := newRecorder(mode.Normal)
	r.transitions["PromptExit"] = mode.Exiting

	dispatchSpecs(t, d, r, "q")
	assert.Equal(t, []string{"PromptExit"}, r.calls)
}

// mockController verifies invocation counts with testify/mock.
type mockController struct {
	mock.Mock
	recorder
}

func (m *mockController) DeleteFile(f mode.FileToDelete) { m.Called(f) }
func (m *mockController) NormalMode()                    { m.Called() }

func TestDeleteFileInvokedExactlyOnce(t *testing.T) {
	held := mode.FileToDelete{Path: []string{"data", "old.log"}, Size: 1024}

	c := &mockController{}
	c.state = mode.State{Mode: mode.DeleteFileConfirm, FileToDelete: &held}
	c.On("DeleteFile", held).Once()

	d := NewWithDefaults()
	d.Dispatch(key.MustParse("y"), c)

	c.AssertExpectations(t)
	c.AssertNotCalled(t, "NormalMode")
}
