package history

import (
	"errors"

	"github.com/linuxmatters/magiccanvas/internal/config"
	"github.com/linuxmatters/magiccanvas/internal/logging"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Info summarises the state of a History.
type Info struct {
	UndoCount  int
	RedoCount  int
	MaxHistory int
}

// History manages the undo and redo stacks for one target.
type History[T any] struct {
	target T

	undoStack []Command[T]
	redoStack []Command[T]

	// Grouping state
	grouping  bool
	groupName string
	groupCmds []Command[T]

	maxHistory int
}

// New creates a history for target. maxHistory <= 0 selects the default.
func New[T any](target T, maxHistory int) *History[T] {
	if maxHistory <= 0 {
		maxHistory = config.MaxHistory
	}
	return &History[T]{
		target:     target,
		maxHistory: maxHistory,
	}
}

// Target returns the object commands are applied to.
func (h *History[T]) Target() T {
	return h.target
}

// Execute applies cmd and records it. If Apply fails nothing is recorded.
// A successful Execute discards the redo stack.
func (h *History[T]) Execute(cmd Command[T]) error {
	if err := cmd.Apply(h.target); err != nil {
		return err
	}

	if h.grouping {
		h.groupCmds = append(h.groupCmds, cmd)
		return nil
	}

	h.push(cmd)
	return nil
}

// push records an already applied command.
func (h *History[T]) push(cmd Command[T]) {
	h.undoStack = append(h.undoStack, cmd)
	h.redoStack = nil
	h.evict()
}

// evict drops the oldest entries beyond maxHistory without reverting them.
func (h *History[T]) evict() {
	if excess := len(h.undoStack) - h.maxHistory; excess > 0 {
		for _, cmd := range h.undoStack[:excess] {
			logging.Logger().Debug("history: evicting", "command", cmd.Description())
		}
		clear(h.undoStack[:excess])
		h.undoStack = h.undoStack[excess:]
	}
}

// Undo reverts the most recent command.
// If Revert fails the entry stays on the undo stack.
func (h *History[T]) Undo() error {
	if len(h.undoStack) == 0 {
		return ErrNothingToUndo
	}

	cmd := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]

	if err := cmd.Revert(h.target); err != nil {
		h.undoStack = append(h.undoStack, cmd)
		return err
	}

	h.redoStack = append(h.redoStack, cmd)
	return nil
}

// Redo re-applies the most recently undone command.
// If Apply fails the entry stays on the redo stack.
func (h *History[T]) Redo() error {
	if len(h.redoStack) == 0 {
		return ErrNothingToRedo
	}

	cmd := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]

	if err := cmd.Apply(h.target); err != nil {
		h.redoStack = append(h.redoStack, cmd)
		return err
	}

	h.undoStack = append(h.undoStack, cmd)
	return nil
}

// CanUndo reports whether Undo would do anything.
func (h *History[T]) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo reports whether Redo would do anything.
func (h *History[T]) CanRedo() bool {
	return len(h.redoStack) > 0
}

// Clear drops both stacks and any open group. The target is left as is.
func (h *History[T]) Clear() {
	h.undoStack = nil
	h.redoStack = nil
	h.grouping = false
	h.groupCmds = nil
}

// Info returns the stack sizes and the bound.
func (h *History[T]) Info() Info {
	return Info{
		UndoCount:  len(h.undoStack),
		RedoCount:  len(h.redoStack),
		MaxHistory: h.maxHistory,
	}
}

// UndoDescriptions lists undo entries, most recent first.
func (h *History[T]) UndoDescriptions() []string {
	return describeNewestFirst(h.undoStack)
}

// RedoDescriptions lists redo entries, next to redo first.
func (h *History[T]) RedoDescriptions() []string {
	return describeNewestFirst(h.redoStack)
}

func describeNewestFirst[T any](stack []Command[T]) []string {
	out := make([]string, 0, len(stack))
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, stack[i].Description())
	}
	return out
}

// MaxHistory returns the undo stack bound.
func (h *History[T]) MaxHistory() int {
	return h.maxHistory
}

// SetMaxHistory changes the bound. Shrinking evicts the oldest entries.
func (h *History[T]) SetMaxHistory(max int) {
	if max <= 0 {
		max = config.MaxHistory
	}
	h.maxHistory = max
	h.evict()
}
