package history

import (
	"errors"
	"fmt"
)

// Command is a reversible mutation of a target.
//
// Revert after Apply must restore the target exactly; Apply after Revert
// must reproduce the mutation exactly.
type Command[T any] interface {
	// Apply performs the mutation. On error the target must be unchanged.
	Apply(target T) error

	// Revert undoes a previous Apply.
	Revert(target T) error

	// Description returns a short human-readable label.
	Description() string
}

// Composite runs its children as one undo unit.
type Composite[T any] struct {
	Name     string
	Children []Command[T]
}

// NewComposite creates a composite command.
func NewComposite[T any](name string, children ...Command[T]) *Composite[T] {
	return &Composite[T]{Name: name, Children: children}
}

// Apply runs the children in order. If a child fails, the children already
// applied are reverted in reverse order and the error is returned.
func (c *Composite[T]) Apply(target T) error {
	for i, child := range c.Children {
		if err := child.Apply(target); err != nil {
			applyErr := fmt.Errorf("%s: %w", child.Description(), err)
			if rbErr := revertAll(target, c.Children[:i]); rbErr != nil {
				return errors.Join(applyErr, fmt.Errorf("rollback: %w", rbErr))
			}
			return applyErr
		}
	}
	return nil
}

// Revert reverts the children in reverse order.
func (c *Composite[T]) Revert(target T) error {
	return revertAll(target, c.Children)
}

// Description returns the composite name, or the single child's description.
func (c *Composite[T]) Description() string {
	if c.Name == "" && len(c.Children) == 1 {
		return c.Children[0].Description()
	}
	return c.Name
}

// Len returns the number of children.
func (c *Composite[T]) Len() int {
	return len(c.Children)
}

func revertAll[T any](target T, cmds []Command[T]) error {
	for i := len(cmds) - 1; i >= 0; i-- {
		if err := cmds[i].Revert(target); err != nil {
			return fmt.Errorf("revert %s: %w", cmds[i].Description(), err)
		}
	}
	return nil
}

// Func adapts a pair of closures into a Command.
type Func[T any] struct {
	Name       string
	ApplyFunc  func(T) error
	RevertFunc func(T) error
}

// Apply calls ApplyFunc if set.
func (f *Func[T]) Apply(target T) error {
	if f.ApplyFunc == nil {
		return nil
	}
	return f.ApplyFunc(target)
}

// Revert calls RevertFunc if set.
func (f *Func[T]) Revert(target T) error {
	if f.RevertFunc == nil {
		return nil
	}
	return f.RevertFunc(target)
}

// Description returns Name.
func (f *Func[T]) Description() string {
	return f.Name
}
