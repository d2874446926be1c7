package component

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/go-drift/uispec/pkg/dom"
	"github.com/go-drift/uispec/pkg/layout"
)

// Base carries the properties shared by every component. Embed it and call
// Base.ParseProperties from the embedding type's ParseProperties.
type Base struct {
	id         string
	horizontal layout.Sizing
	vertical   layout.Sizing
	margins    layout.Insets
	tooltip    string
}

// ID returns the component id.
func (b *Base) ID() string { return b.id }

// SetID sets the component id.
func (b *Base) SetID(id string) { b.id = id }

// Sizing returns the horizontal and vertical sizing.
func (b *Base) Sizing() (horizontal, vertical layout.Sizing) {
	return b.horizontal, b.vertical
}

// SetSizing replaces both axes' sizing.
func (b *Base) SetSizing(horizontal, vertical layout.Sizing) {
	b.horizontal = horizontal
	b.vertical = vertical
}

// Margins returns the outer spacing.
func (b *Base) Margins() layout.Insets { return b.margins }

// Tooltip returns the tooltip text, if any.
func (b *Base) Tooltip() string { return b.tooltip }

// ParseProperties reads the id attribute and the sizing, margins and
// tooltip-text children.
func (b *Base) ParseProperties(_ Parser, el *etree.Element, children map[string]*etree.Element) error {
	if id, ok := dom.Attr(el, "id"); ok {
		b.id = id
	}
	if sizing, ok := children["sizing"]; ok {
		axes := dom.ChildrenByTag(sizing)
		if h, ok := axes["horizontal"]; ok {
			s, err := layout.ParseSizing(h)
			if err != nil {
				return err
			}
			b.horizontal = s
		}
		if v, ok := axes["vertical"]; ok {
			s, err := layout.ParseSizing(v)
			if err != nil {
				return err
			}
			b.vertical = s
		}
	}
	if margins, ok := children["margins"]; ok {
		insets, err := layout.ParseInsets(margins)
		if err != nil {
			return err
		}
		b.margins = insets
	}
	if tooltip, ok := children["tooltip-text"]; ok {
		b.tooltip = strings.TrimSpace(dom.TextContent(tooltip))
	}
	return nil
}

// ParentBase extends Base with a child list and padding.
type ParentBase struct {
	Base
	children []Component
	padding  layout.Insets
}

// Children returns the direct children in declaration order.
func (b *ParentBase) Children() []Component { return b.children }

// AddChild appends a child.
func (b *ParentBase) AddChild(c Component) { b.children = append(b.children, c) }

// Padding returns the inner spacing.
func (b *ParentBase) Padding() layout.Insets { return b.padding }

// ParseProperties reads the Base properties and padding.
func (b *ParentBase) ParseProperties(p Parser, el *etree.Element, children map[string]*etree.Element) error {
	if err := b.Base.ParseProperties(p, el, children); err != nil {
		return err
	}
	if padding, ok := children["padding"]; ok {
		insets, err := layout.ParseInsets(padding)
		if err != nil {
			return err
		}
		b.padding = insets
	}
	return nil
}

// ParseChildren parses every element below the children element, if
// present, as a component and appends it.
func (b *ParentBase) ParseChildren(p Parser, children map[string]*etree.Element) error {
	list, ok := children["children"]
	if !ok {
		return nil
	}
	for _, child := range dom.Children(list) {
		c, err := p.ParseComponent(CategoryComponent, child)
		if err != nil {
			return err
		}
		b.AddChild(c)
	}
	return nil
}
