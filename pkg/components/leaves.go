package components

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/go-drift/uispec/pkg/component"
	"github.com/go-drift/uispec/pkg/dom"
	"github.com/go-drift/uispec/pkg/errors"
	"github.com/go-drift/uispec/pkg/graphics"
)

// Label displays a single string.
//
//	<label id="title">
//	    <text>Settings</text>
//	    <color>gold</color>
//	    <shadow>true</shadow>
//	</label>
type Label struct {
	component.Base
	// Text is the displayed string, taken verbatim from the text element.
	Text string
	// Color is the text color. Defaults to white.
	Color graphics.Color
	// MaxWidth wraps the text at this many pixels (0 = no wrapping).
	MaxWidth int
	// Shadow draws a drop shadow below the text.
	Shadow bool
}

func newLabel() component.Component {
	return &Label{Color: graphics.ColorWhite}
}

func (*Label) Category() *component.Category { return CategoryLabel }

func (l *Label) ParseProperties(p component.Parser, el *etree.Element, children map[string]*etree.Element) error {
	if err := l.Base.ParseProperties(p, el, children); err != nil {
		return err
	}
	if text, ok := children["text"]; ok {
		l.Text = dom.TextContent(text)
	}
	if color, ok := children["color"]; ok {
		c, err := parseColor(color)
		if err != nil {
			return err
		}
		l.Color = c
	}
	if maxWidth, ok := children["max-width"]; ok {
		v, err := parseInt(maxWidth)
		if err != nil {
			return err
		}
		l.MaxWidth = v
	}
	if shadow, ok := children["shadow"]; ok {
		v, err := parseBool(shadow)
		if err != nil {
			return err
		}
		l.Shadow = v
	}
	return nil
}

// Button is a clickable control with a text message.
type Button struct {
	component.Base
	// Text is the button message.
	Text string
	// Active reports whether the button accepts input. Defaults to true.
	Active bool
}

func newButton() component.Component {
	return &Button{Active: true}
}

func (*Button) Category() *component.Category { return CategoryButton }

func (b *Button) ParseProperties(p component.Parser, el *etree.Element, children map[string]*etree.Element) error {
	if err := b.Base.ParseProperties(p, el, children); err != nil {
		return err
	}
	if text, ok := children["text"]; ok {
		b.Text = dom.TextContent(text)
	}
	if active, ok := children["active"]; ok {
		v, err := parseBool(active)
		if err != nil {
			return err
		}
		b.Active = v
	}
	return nil
}

// Box draws a solid or outlined rectangle.
type Box struct {
	component.Base
	// Color is the box color. Defaults to black.
	Color graphics.Color
	// Fill draws a solid rectangle instead of an outline.
	Fill bool
}

func newBox() component.Component {
	return &Box{Color: graphics.ColorBlack}
}

func (*Box) Category() *component.Category { return CategoryBox }

func (b *Box) ParseProperties(p component.Parser, el *etree.Element, children map[string]*etree.Element) error {
	if err := b.Base.ParseProperties(p, el, children); err != nil {
		return err
	}
	if color, ok := children["color"]; ok {
		c, err := parseColor(color)
		if err != nil {
			return err
		}
		b.Color = c
	}
	if fill, ok := children["fill"]; ok {
		v, err := parseBool(fill)
		if err != nil {
			return err
		}
		b.Fill = v
	}
	return nil
}

// Spacer takes up Percent of the free space in a flow layout.
type Spacer struct {
	component.Base
	Percent int
}

func newSpacer() component.Component {
	return &Spacer{Percent: 100}
}

func (*Spacer) Category() *component.Category { return CategorySpacer }

func (s *Spacer) ParseProperties(p component.Parser, el *etree.Element, children map[string]*etree.Element) error {
	if err := s.Base.ParseProperties(p, el, children); err != nil {
		return err
	}
	if percent, ok := children["percent"]; ok {
		v, err := parseInt(percent)
		if err != nil {
			return err
		}
		if v < 0 || v > 100 {
			return errors.Parsingf("spacer percent %d is outside 0-100", v)
		}
		s.Percent = v
	}
	return nil
}

func parseColor(el *etree.Element) (graphics.Color, error) {
	c, err := graphics.ParseColor(dom.TextContent(el))
	if err != nil {
		return 0, &errors.ParsingError{Msg: "invalid '" + el.FullTag() + "' property", Err: err}
	}
	return c, nil
}

func parseInt(el *etree.Element) (int, error) {
	text := strings.TrimSpace(dom.TextContent(el))
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, errors.Parsingf("'%s' value %q is not an integer", el.FullTag(), text)
	}
	return v, nil
}

func parseBool(el *etree.Element) (bool, error) {
	text := strings.TrimSpace(dom.TextContent(el))
	v, err := strconv.ParseBool(text)
	if err != nil {
		return false, errors.Parsingf("'%s' value %q is not a boolean", el.FullTag(), text)
	}
	return v, nil
}
