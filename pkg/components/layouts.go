package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/go-drift/uispec/pkg/component"
	"github.com/go-drift/uispec/pkg/dom"
	"github.com/go-drift/uispec/pkg/errors"
)

// Axis represents the layout direction.
// AxisVertical is the zero value.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// FlowLayout arranges its children one after another along Direction.
//
//	<flow-layout direction="vertical">
//	    <gap>4</gap>
//	    <children>
//	        <label><text>First</text></label>
//	        <label><text>Second</text></label>
//	    </children>
//	</flow-layout>
//
// The direction attribute is required and is read by the factory.
type FlowLayout struct {
	component.ParentBase
	// Direction is the main axis.
	Direction Axis
	// Gap is the spacing between consecutive children in pixels.
	Gap int
}

func newFlowLayout(el *etree.Element) (component.Component, error) {
	direction, ok := dom.Attr(el, "direction")
	if !ok {
		return nil, errors.Parsingf("flow-layout is missing 'direction' attribute")
	}
	switch strings.TrimSpace(direction) {
	case "vertical":
		return &FlowLayout{Direction: AxisVertical}, nil
	case "horizontal":
		return &FlowLayout{Direction: AxisHorizontal}, nil
	default:
		return nil, errors.Parsingf("unknown flow-layout direction '%s'", direction)
	}
}

func (*FlowLayout) Category() *component.Category { return CategoryFlowLayout }

func (f *FlowLayout) ParseProperties(p component.Parser, el *etree.Element, children map[string]*etree.Element) error {
	if err := f.ParentBase.ParseProperties(p, el, children); err != nil {
		return err
	}
	if gap, ok := children["gap"]; ok {
		text := strings.TrimSpace(dom.TextContent(gap))
		v, err := strconv.Atoi(text)
		if err != nil {
			return errors.Parsingf("flow-layout gap %q is not an integer", text)
		}
		f.Gap = v
	}
	return f.ParseChildren(p, children)
}

// StackLayout layers its children on top of each other.
type StackLayout struct {
	component.ParentBase
}

func (*StackLayout) Category() *component.Category { return CategoryStackLayout }

func (s *StackLayout) ParseProperties(p component.Parser, el *etree.Element, children map[string]*etree.Element) error {
	if err := s.ParentBase.ParseProperties(p, el, children); err != nil {
		return err
	}
	return s.ParseChildren(p, children)
}
