package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/wordboard/internal/layout"
	"github.com/mcoot/wordboard/internal/model"
	"github.com/mcoot/wordboard/internal/services/overlay"
	"github.com/mcoot/wordboard/internal/services/selection"
	"github.com/mcoot/wordboard/internal/services/solver"
)

// ErrStopped is returned when the event loop is not running
var ErrStopped = errors.New("board event loop stopped")

// Options configures a Controller
type Options struct {
	// OnChange runs on the event loop after every event that can change the board
	OnChange func()
}

// Controller owns every cell on the page and processes input one event at a
// time on a single loop goroutine. Solver calls run off the loop and post
// their result back to it.
type Controller struct {
	doc       *layout.Document
	solver    solver.Solver
	logger    *slog.Logger
	onChange  func()
	board     []*model.Cell
	rack      []*model.Cell
	cells     map[string]*model.Cell
	selection *selection.Controller
	overlay   *overlay.Controller

	events  chan event
	started chan struct{}
	stopped chan struct{}
	runCtx  context.Context

	// inFlight is set while a solver call is pending. generation changes on
	// clear so a stale answer is dropped instead of applied.
	inFlight   bool
	generation uint64
	idle       []chan struct{}
}

type event struct {
	apply func() error
	reply chan error
	// readOnly events never fire OnChange
	readOnly bool
}

// NewController builds the board and rack cells from the page. Each slot is
// classified once here and never again.
func NewController(doc *layout.Document, s solver.Solver, logger *slog.Logger, opts Options) (*Controller, error) {
	c := &Controller{
		doc:       doc,
		solver:    s,
		logger:    logger.With(slog.String("component", "board")),
		onChange:  opts.OnChange,
		cells:     make(map[string]*model.Cell),
		selection: selection.NewController(),
		events:    make(chan event),
		started:   make(chan struct{}),
		stopped:   make(chan struct{}),
	}

	for i, slot := range doc.BoardSlots() {
		cell, err := model.NewBoardCell(slot, i, layout.Classify(slot))
		if err != nil {
			return nil, err
		}
		c.board = append(c.board, cell)
		c.cells[cell.ID()] = cell
	}
	for i, slot := range doc.RackSlots() {
		cell, err := model.NewRackCell(slot, i)
		if err != nil {
			return nil, err
		}
		c.rack = append(c.rack, cell)
		c.cells[cell.ID()] = cell
	}

	c.overlay = overlay.NewController(c.board, doc.Score(), c.logger)
	return c, nil
}

// Run processes events until ctx is cancelled. It must be called exactly once.
func (c *Controller) Run(ctx context.Context) {
	c.runCtx = ctx
	close(c.started)
	defer close(c.stopped)

	c.logger.Info("board event loop started",
		slog.Int("board_cells", len(c.board)),
		slog.Int("rack_cells", len(c.rack)))

	for {
		select {
		case ev := <-c.events:
			err := ev.apply()
			if c.onChange != nil && !ev.readOnly {
				c.onChange()
			}
			if ev.reply != nil {
				ev.reply <- err
			}
		case <-ctx.Done():
			c.logger.Info("board event loop stopped")
			return
		}
	}
}

// do runs fn on the event loop and waits for its result
func (c *Controller) do(ctx context.Context, fn func() error) error {
	return c.send(ctx, event{apply: fn, reply: make(chan error, 1)})
}

// query is do for events that only read state
func (c *Controller) query(ctx context.Context, fn func() error) error {
	return c.send(ctx, event{apply: fn, reply: make(chan error, 1), readOnly: true})
}

func (c *Controller) send(ctx context.Context, ev event) error {
	select {
	case c.events <- ev:
	case <-c.stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-ev.reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// post queues fn on the event loop without waiting
func (c *Controller) post(fn func()) {
	select {
	case c.events <- event{apply: func() error { fn(); return nil }}:
	case <-c.stopped:
	}
}

// Click handles a click on a cell or a command target
func (c *Controller) Click(ctx context.Context, target string) error {
	return c.do(ctx, func() error {
		return c.click(target)
	})
}

// KeyDown handles a key press. Keys that do not apply are ignored.
func (c *Controller) KeyDown(ctx context.Context, key string) error {
	return c.do(ctx, func() error {
		c.selection.KeyDown(key)
		return nil
	})
}

func (c *Controller) click(target string) error {
	if cell, ok := c.cells[target]; ok {
		c.overlay.Discard()
		c.selection.Click(cell)
		return nil
	}

	if !c.doc.HasCommand(target) {
		return fmt.Errorf("%w: %q", model.ErrUnknownTarget, target)
	}
	switch target {
	case layout.TargetClear:
		c.clear()
	case layout.TargetGo:
		return c.computeBestMove()
	case layout.TargetDiscard:
		c.overlay.Discard()
	case layout.TargetKeep:
		c.overlay.Keep()
	}
	return nil
}

// clear empties the board and rack and drops any pending solver answer
func (c *Controller) clear() {
	c.selection.Deselect()
	for _, cell := range c.board {
		cell.SetLetter(nil)
	}
	for _, cell := range c.rack {
		cell.SetLetter(nil)
	}
	c.overlay.Discard()
	c.generation++
	c.logger.Info("board cleared", slog.Bool("request_in_flight", c.inFlight))
}

func (c *Controller) computeBestMove() error {
	if c.inFlight {
		return model.ErrRequestInFlight
	}

	c.overlay.Discard()
	c.selection.Deselect()
	c.doc.SetBusy(true)
	c.inFlight = true

	generation := c.generation
	req := solver.BuildRequest(c.board, c.rack)
	ctx := c.runCtx

	go func() {
		move, err := c.solver.BestMove(ctx, req)
		c.post(func() {
			c.completeBestMove(generation, move, err)
		})
	}()
	return nil
}

func (c *Controller) completeBestMove(generation uint64, move *model.BestMove, err error) {
	c.inFlight = false
	c.doc.SetBusy(false)
	defer c.wakeIdle()

	switch {
	case err != nil:
		c.logger.Warn("best move unavailable", slog.String("error", err.Error()))
	case generation != c.generation:
		c.logger.Info("discarding stale best move", slog.String("word", move.Word))
	default:
		if err := c.overlay.Apply(move); err != nil {
			c.logger.Warn("best move rejected", slog.String("error", err.Error()))
		}
	}
}

// WaitIdle blocks until no solver call is pending
func (c *Controller) WaitIdle(ctx context.Context) error {
	var wait chan struct{}
	err := c.query(ctx, func() error {
		if c.inFlight {
			wait = make(chan struct{})
			c.idle = append(c.idle, wait)
		}
		return nil
	})
	if err != nil || wait == nil {
		return err
	}
	select {
	case <-wait:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-c.stopped:
		return ErrStopped
	}
}

func (c *Controller) wakeIdle() {
	for _, wait := range c.idle {
		close(wait)
	}
	c.idle = nil
}

// Wait blocks until Run has started
func (c *Controller) Wait(ctx context.Context) error {
	select {
	case <-c.started:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Interface for dependency injection
type ControllerInterface interface {
	Click(ctx context.Context, target string) error
	KeyDown(ctx context.Context, key string) error
	Snapshot(ctx context.Context) (*Snapshot, error)
	Render(ctx context.Context, region string) (string, error)
	WaitIdle(ctx context.Context) error
}

var _ ControllerInterface = (*Controller)(nil)
