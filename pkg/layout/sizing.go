package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/go-drift/uispec/pkg/dom"
	"github.com/go-drift/uispec/pkg/errors"
)

// Method selects how a Sizing value is interpreted.
type Method int

const (
	// MethodContent sizes a component to its content plus Value pixels of padding.
	MethodContent Method = iota
	// MethodFixed sizes a component to exactly Value pixels.
	MethodFixed
	// MethodFill sizes a component to Value percent of the available space.
	MethodFill
)

func (m Method) String() string {
	switch m {
	case MethodFixed:
		return "fixed"
	case MethodFill:
		return "fill"
	default:
		return "content"
	}
}

// ParseMethod converts a method attribute value to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "content":
		return MethodContent, nil
	case "fixed":
		return MethodFixed, nil
	case "fill":
		return MethodFill, nil
	default:
		return 0, fmt.Errorf("unknown sizing method %q", s)
	}
}

// Sizing describes one axis of a component's size.
type Sizing struct {
	Method Method
	Value  int
}

// Content returns a content sizing with the given padding.
func Content(padding int) Sizing {
	return Sizing{Method: MethodContent, Value: padding}
}

// Fixed returns a fixed sizing of the given pixel count.
func Fixed(pixels int) Sizing {
	return Sizing{Method: MethodFixed, Value: pixels}
}

// Fill returns a sizing that takes percent of the available space.
func Fill(percent int) Sizing {
	return Sizing{Method: MethodFill, Value: percent}
}

func (s Sizing) String() string {
	return fmt.Sprintf("%s(%d)", s.Method, s.Value)
}

// Resolve returns the extent of this sizing given the available space and
// the content extent.
func (s Sizing) Resolve(space, content float64) float64 {
	switch s.Method {
	case MethodFixed:
		return float64(s.Value)
	case MethodFill:
		return space * float64(s.Value) / 100
	default:
		return content + float64(s.Value)
	}
}

// ParseSizing reads an axis element such as
// <horizontal method="fill">100</horizontal>. A missing value means zero.
func ParseSizing(el *etree.Element) (Sizing, error) {
	methodAttr, ok := dom.Attr(el, "method")
	if !ok {
		return Sizing{}, errors.Parsingf("sizing element '%s' is missing 'method' attribute", el.FullTag())
	}
	method, err := ParseMethod(methodAttr)
	if err != nil {
		return Sizing{}, &errors.ParsingError{Msg: fmt.Sprintf("invalid sizing element '%s'", el.FullTag()), Err: err}
	}
	value := 0
	if text := strings.TrimSpace(dom.TextContent(el)); text != "" {
		value, err = strconv.Atoi(text)
		if err != nil {
			return Sizing{}, errors.Parsingf("sizing value %q of '%s' is not an integer", text, el.FullTag())
		}
	}
	return Sizing{Method: method, Value: value}, nil
}

// ParseInsets reads an insets element with optional all, top, bottom,
// left and right children. Side values override all.
func ParseInsets(el *etree.Element) (Insets, error) {
	var insets Insets
	children := dom.ChildrenByTag(el)
	if all, ok := children["all"]; ok {
		v, err := parseInt(all)
		if err != nil {
			return Insets{}, err
		}
		insets = InsetsAll(v)
	}
	sides := []struct {
		tag string
		dst *int
	}{
		{"top", &insets.Top},
		{"bottom", &insets.Bottom},
		{"left", &insets.Left},
		{"right", &insets.Right},
	}
	for _, side := range sides {
		child, ok := children[side.tag]
		if !ok {
			continue
		}
		v, err := parseInt(child)
		if err != nil {
			return Insets{}, err
		}
		*side.dst = v
	}
	return insets, nil
}

func parseInt(el *etree.Element) (int, error) {
	text := strings.TrimSpace(dom.TextContent(el))
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, errors.Parsingf("value %q of '%s' is not an integer", text, el.FullTag())
	}
	return v, nil
}
