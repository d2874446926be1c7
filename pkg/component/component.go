// Package component defines the contract between the UI specification
// parser and the components it constructs.
//
// A component is created empty by a Factory registered for its tag name and
// then fills itself in from its declaring element:
//
//	type Label struct {
//	    component.Base
//	    Text string
//	}
//
//	func (l *Label) Category() *component.Category { return CategoryLabel }
//
//	func (l *Label) ParseProperties(p component.Parser, el *etree.Element, children map[string]*etree.Element) error {
//	    if err := l.Base.ParseProperties(p, el, children); err != nil {
//	        return err
//	    }
//	    if text, ok := children["text"]; ok {
//	        l.Text = dom.TextContent(text)
//	    }
//	    return nil
//	}
//
// Container components receive the Parser so nested declarations, including
// template invocations, are resolved by the same expansion session.
package component

import (
	"github.com/beevik/etree"

	"github.com/go-drift/uispec/pkg/layout"
)

// ParamLookup resolves a template parameter by name.
type ParamLookup func(name string) (string, bool)

// ChildLookup resolves a template child slot by id.
type ChildLookup func(id string) (*etree.Element, bool)

// Parser resolves nested component declarations. It is implemented by the
// expansion session that is currently parsing a document.
type Parser interface {
	// ParseComponent parses el, expanding it when it is a template
	// invocation, and checks the result against expected.
	ParseComponent(expected *Category, el *etree.Element) (Component, error)
	// ExpandTemplate expands the named template with the given lookups.
	ExpandTemplate(expected *Category, name string, params ParamLookup, children ChildLookup) (Component, error)
	// ExpandTemplateParams expands the named template with a flat parameter
	// map and no child slots.
	ExpandTemplateParams(expected *Category, name string, params map[string]string) (Component, error)
}

// Component is a node of the parsed UI tree.
type Component interface {
	// Category reports the component's capability tag.
	Category() *Category
	// ID returns the value of the declaring element's id attribute.
	ID() string
	// Sizing returns the horizontal and vertical sizing.
	Sizing() (horizontal, vertical layout.Sizing)
	// SetSizing replaces both axes' sizing.
	SetSizing(horizontal, vertical layout.Sizing)
	// ParseProperties reads the component's properties from its declaring
	// element. children groups el's element children by tag name.
	ParseProperties(p Parser, el *etree.Element, children map[string]*etree.Element) error
}

// ParentComponent is a component that holds child components.
type ParentComponent interface {
	Component
	// Children returns the direct children in declaration order.
	Children() []Component
}

// Satisfies reports whether c's category satisfies expected.
func Satisfies(c Component, expected *Category) bool {
	return c != nil && c.Category().Satisfies(expected)
}

// ChildByID searches the subtree below root, depth-first, for a component
// with the given id.
func ChildByID(root Component, id string) Component {
	parent, ok := root.(ParentComponent)
	if !ok {
		return nil
	}
	for _, child := range parent.Children() {
		if child.ID() == id {
			return child
		}
		if found := ChildByID(child, id); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits root and its descendants in depth-first pre-order until visit
// returns false.
func Walk(root Component, visit func(Component) bool) bool {
	if root == nil {
		return true
	}
	if !visit(root) {
		return false
	}
	if parent, ok := root.(ParentComponent); ok {
		for _, child := range parent.Children() {
			if !Walk(child, visit) {
				return false
			}
		}
	}
	return true
}
