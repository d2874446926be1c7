package component

// Category is an explicit capability tag carried by every component.
// Categories form a tree: a component of category C satisfies C and every
// ancestor of C.
type Category struct {
	name   string
	parent *Category
}

// NewCategory creates a category below parent. A nil parent creates a root
// category; custom categories normally descend from CategoryComponent.
func NewCategory(name string, parent *Category) *Category {
	return &Category{name: name, parent: parent}
}

// Name returns the category's display name.
func (c *Category) Name() string {
	if c == nil {
		return "<nil>"
	}
	return c.name
}

func (c *Category) String() string {
	return c.Name()
}

// Parent returns the enclosing category, or nil for a root.
func (c *Category) Parent() *Category {
	return c.parent
}

// Satisfies reports whether a component of category c may be used where
// expected is required.
func (c *Category) Satisfies(expected *Category) bool {
	if expected == nil {
		return true
	}
	for cur := c; cur != nil; cur = cur.parent {
		if cur == expected {
			return true
		}
	}
	return false
}

var (
	// CategoryComponent is satisfied by every component.
	CategoryComponent = NewCategory("Component", nil)
	// CategoryParent is satisfied by components that hold child components.
	CategoryParent = NewCategory("ParentComponent", CategoryComponent)
)
