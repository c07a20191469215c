package document

import (
	"fmt"
	"slices"
)

type addShape struct {
	shape Shape
	index int
}

// AddShape appends a shape.
func AddShape(s Shape) Command {
	return &addShape{shape: s.clone()}
}

func (c *addShape) Apply(d *Document) error {
	if err := c.shape.Validate(); err != nil {
		return err
	}
	c.index = len(d.Shapes)
	d.Shapes = append(d.Shapes, c.shape.clone())
	return nil
}

func (c *addShape) Revert(d *Document) error {
	if c.index >= len(d.Shapes) {
		return fmt.Errorf("%w: %d", ErrNoSuchShape, c.index)
	}
	d.Shapes = slices.Delete(d.Shapes, c.index, c.index+1)
	return nil
}

func (c *addShape) Description() string {
	return "Add " + c.shape.Describe()
}

type removeShape struct {
	index   int
	removed Shape
}

// RemoveShape deletes the shape at index.
func RemoveShape(index int) Command {
	return &removeShape{index: index}
}

func (c *removeShape) Apply(d *Document) error {
	if c.index < 0 || c.index >= len(d.Shapes) {
		return fmt.Errorf("%w: %d", ErrNoSuchShape, c.index)
	}
	c.removed = d.Shapes[c.index]
	d.Shapes = slices.Delete(d.Shapes, c.index, c.index+1)
	return nil
}

func (c *removeShape) Revert(d *Document) error {
	if c.index > len(d.Shapes) {
		return fmt.Errorf("%w: %d", ErrNoSuchShape, c.index)
	}
	d.Shapes = slices.Insert(d.Shapes, c.index, c.removed)
	return nil
}

func (c *removeShape) Description() string {
	return fmt.Sprintf("Remove shape %d", c.index+1)
}
