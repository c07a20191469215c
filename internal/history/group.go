package history

import (
	"errors"
	"fmt"
)

// BeginGroup starts collecting executed commands into a single undo unit.
// Nested calls are ignored.
func (h *History[T]) BeginGroup(name string) {
	if h.grouping {
		return
	}
	h.grouping = true
	h.groupName = name
	h.groupCmds = nil
}

// EndGroup records the commands executed since BeginGroup as one Composite.
// An empty group records nothing.
func (h *History[T]) EndGroup() {
	if !h.grouping {
		return
	}
	h.grouping = false

	cmds := h.groupCmds
	h.groupCmds = nil
	if len(cmds) == 0 {
		return
	}
	h.push(NewComposite(h.groupName, cmds...))
}

// CancelGroup reverts the commands executed since BeginGroup and forgets them.
func (h *History[T]) CancelGroup() error {
	if !h.grouping {
		return nil
	}
	h.grouping = false

	cmds := h.groupCmds
	h.groupCmds = nil
	return revertAll(h.target, cmds)
}

// IsGrouping reports whether a group is open.
func (h *History[T]) IsGrouping() bool {
	return h.grouping
}

// Transaction runs fn inside a group. If fn fails, every command it executed
// is reverted and nothing is recorded.
func (h *History[T]) Transaction(name string, fn func() error) error {
	if h.grouping {
		return fn()
	}

	h.BeginGroup(name)
	if err := fn(); err != nil {
		if cerr := h.CancelGroup(); cerr != nil {
			return errors.Join(err, fmt.Errorf("cancel %s: %w", name, cerr))
		}
		return err
	}
	h.EndGroup()
	return nil
}
