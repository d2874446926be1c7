// Package components provides the stock component set for UI documents.
//
// # Registration
//
// Register adds every stock component to a registry:
//
//	registry := component.NewRegistry()
//	components.Register(registry)
//	s, err := spec.Load(r, spec.WithRegistry(registry))
//
// Importing this package does not touch component.DefaultRegistry; call
// RegisterDefault once at startup to populate it.
//
// # Tags
//
//   - flow-layout: children laid out along the direction attribute
//   - stack-layout: children layered on top of each other
//   - label: a single string
//   - button: a clickable text control
//   - box: a solid or outlined rectangle
//   - spacer: flexible free space inside a flow layout
//
// Every component reads an id attribute and the sizing, margins and
// tooltip-text properties. Layouts additionally read padding and children.
package components

import (
	"sync"

	"github.com/go-drift/uispec/pkg/component"
)

// Categories of the stock components.
var (
	CategoryFlowLayout  = component.NewCategory("FlowLayout", component.CategoryParent)
	CategoryStackLayout = component.NewCategory("StackLayout", component.CategoryParent)
	CategoryLabel       = component.NewCategory("Label", component.CategoryComponent)
	CategoryButton      = component.NewCategory("Button", component.CategoryComponent)
	CategoryBox         = component.NewCategory("Box", component.CategoryComponent)
	CategorySpacer      = component.NewCategory("Spacer", component.CategoryComponent)
)

// Register adds the stock components to r.
func Register(r *component.Registry) {
	r.Register("flow-layout", newFlowLayout)
	r.Register("stack-layout", component.Simple(func() component.Component { return &StackLayout{} }))
	r.Register("label", component.Simple(newLabel))
	r.Register("button", component.Simple(newButton))
	r.Register("box", component.Simple(newBox))
	r.Register("spacer", component.Simple(newSpacer))
}

var registerDefaultOnce sync.Once

// RegisterDefault adds the stock components to component.DefaultRegistry.
// Repeated calls are no-ops.
func RegisterDefault() {
	registerDefaultOnce.Do(func() {
		Register(component.DefaultRegistry)
	})
}

// NewRegistry returns a registry holding only the stock components.
func NewRegistry() *component.Registry {
	r := component.NewRegistry()
	Register(r)
	return r
}
