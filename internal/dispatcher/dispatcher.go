package dispatcher

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/dshills/diskview/internal/input/chord"
	"github.com/dshills/diskview/internal/input/key"
	"github.com/dshills/diskview/internal/input/keymap"
	"github.com/dshills/diskview/internal/input/mode"
	"github.com/dshills/diskview/internal/input/source"
)

// Dispatcher resolves key events against per-mode keymaps and applies the
// resulting actions to a controller.
//
// A Dispatcher is not safe for concurrent use, except SetNormalizer.
// Events are dispatched one at a time, each to completion.
type Dispatcher struct {
	registry   *keymap.Registry
	normalizer atomic.Pointer[chord.Normalizer]
	config     Config
	metrics    *Metrics
	log        zerolog.Logger
}

// New creates a dispatcher over the given keymaps and chord normalizer.
// A nil normalizer uses the default chord synonyms.
func New(registry *keymap.Registry, normalizer *chord.Normalizer, config Config) *Dispatcher {
	if normalizer == nil {
		normalizer = chord.DefaultNormalizer()
	}

	d := &Dispatcher{
		registry: registry,
		config:   config,
		log:      zerolog.Nop(),
	}
	d.normalizer.Store(normalizer)

	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}

	return d
}

// NewWithDefaults creates a dispatcher with the default keymaps and chords.
func NewWithDefaults() *Dispatcher {
	return New(keymap.DefaultRegistry(), chord.DefaultNormalizer(), DefaultConfig())
}

// SetLogger sets the logger used for dispatch tracing.
func (d *Dispatcher) SetLogger(log zerolog.Logger) {
	d.log = log
}

// SetNormalizer replaces the chord normalizer. It may be called from any
// goroutine; the event being dispatched keeps the normalizer it started
// with and the next event uses n. A nil n is ignored.
func (d *Dispatcher) SetNormalizer(n *chord.Normalizer) {
	if n != nil {
		d.normalizer.Store(n)
	}
}

// Normalizer returns the current chord normalizer.
func (d *Dispatcher) Normalizer() *chord.Normalizer {
	return d.normalizer.Load()
}

// Metrics returns the collected statistics, or nil if disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Config returns the dispatcher configuration.
func (d *Dispatcher) Config() Config {
	return d.config
}

// Resolve returns the action an event maps to in the given state.
// It has no side effects.
func (d *Dispatcher) Resolve(ev key.Event, st mode.State) keymap.Action {
	km := d.registry.Get(st.Mode)
	if km == nil {
		return keymap.Noop
	}
	if km.CatchAll {
		return km.Default
	}
	return km.Lookup(d.normalizer.Load().Normalize(ev))
}

// Apply invokes the operations of an action on the controller, in order.
// st is the state the action was resolved in; it supplies the deletion
// descriptor for OpDeleteFile.
func (d *Dispatcher) Apply(action keymap.Action, st mode.State, c Controller) {
	for _, op := range action.Ops {
		d.invoke(op, st, c)
	}

	if !d.config.RedrawOnModeChange || action.IsNoop() || action.EndsWith(keymap.OpRender) {
		return
	}
	if c.State().Mode != st.Mode {
		c.Render()
		if d.metrics != nil {
			d.metrics.RecordRedraw()
		}
	}
}

func (d *Dispatcher) invoke(op keymap.Op, st mode.State, c Controller) {
	switch op {
	case keymap.OpPromptExit:
		c.PromptExit()
	case keymap.OpExit:
		c.Exit()
	case keymap.OpGoUp:
		c.GoUp()
	case keymap.OpHandleEnter:
		c.HandleEnter()
	case keymap.OpResetUIMode:
		c.ResetUIMode()
	case keymap.OpNormalMode:
		c.NormalMode()
	case keymap.OpMoveLeft:
		c.MoveSelectedLeft()
	case keymap.OpMoveRight:
		c.MoveSelectedRight()
	case keymap.OpMoveUp:
		c.MoveSelectedUp()
	case keymap.OpMoveDown:
		c.MoveSelectedDown()
	case keymap.OpZoomIn:
		c.ZoomIn()
	case keymap.OpZoomOut:
		c.ZoomOut()
	case keymap.OpResetZoom:
		c.ResetZoom()
	case keymap.OpPromptFileDeletion:
		c.PromptFileDeletion()
	case keymap.OpShowWarningModal:
		c.ShowWarningModal()
	case keymap.OpDeleteFile:
		if st.FileToDelete == nil {
			d.log.Warn().
				Str("mode", st.Mode.String()).
				Msg("delete requested with no file held; skipped")
			return
		}
		c.DeleteFile(*st.FileToDelete)
	case keymap.OpRender:
		c.Render()
	case keymap.OpNone:
	default:
		d.log.Warn().Stringer("op", op).Msg("unknown operation skipped")
	}
}

// Dispatch handles one event: it reads the controller's state, resolves
// the event in that state and applies the action. It returns the action.
func (d *Dispatcher) Dispatch(ev key.Event, c Controller) keymap.Action {
	start := time.Now()

	st := c.State()
	action := d.Resolve(ev, st)

	d.log.Debug().
		Str("key", ev.String()).
		Str("mode", st.Mode.String()).
		Str("action", action.Name).
		Msg("dispatch")

	d.Apply(action, st, c)

	if d.metrics != nil {
		d.metrics.RecordDispatch(action.Name, st.Mode.String(), action.IsNoop(), time.Since(start))
	}

	return action
}

// Run reads events from src and dispatches each to c until the source
// ends or c reports through Exiter that it has exited, which return nil,
// or ctx is cancelled, which returns ctx.Err(). Cancellation and exit are
// observed between events.
func (d *Dispatcher) Run(ctx context.Context, src source.Source, c Controller) error {
	if src == nil {
		return ErrNilSource
	}
	if c == nil {
		return ErrNilController
	}

	src = source.Once(src)
	exiter, _ := c.(Exiter)
	d.log.Info().Msg("input loop started")

	for {
		if err := ctx.Err(); err != nil {
			d.logSummary("input loop cancelled")
			return err
		}
		if exiter != nil && exiter.Exited() {
			d.logSummary("input loop ended by exit")
			return nil
		}

		ev, ok := src.Next()
		if !ok {
			d.logSummary("input loop ended")
			return nil
		}

		if err := ctx.Err(); err != nil {
			d.logSummary("input loop cancelled")
			return err
		}

		d.Dispatch(ev, c)
	}
}

func (d *Dispatcher) logSummary(msg string) {
	e := d.log.Info()
	if d.metrics != nil {
		e = e.Uint64("events", d.metrics.TotalDispatches()).
			Uint64("noops", d.metrics.TotalNoops()).
			Dur("avg", d.metrics.AverageDuration())
		for _, am := range d.metrics.TopActions(3) {
			e = e.Uint64("action."+am.Name, am.DispatchCount)
		}
	}
	e.Msg(msg)
}
