package spec

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"github.com/go-drift/uispec/pkg/component"
	"github.com/go-drift/uispec/pkg/dom"
	"github.com/go-drift/uispec/pkg/errors"
)

// Session parses components from a Spec and owns the expansion stack used
// while doing so. A Session is not safe for concurrent use; concurrent
// callers each create their own with Spec.NewSession.
//
// Session implements component.Parser, so component property parsers that
// resolve nested declarations share the enclosing expansion scope.
type Session struct {
	spec  *Spec
	stack expansionStack
}

var _ component.Parser = (*Session)(nil)

// Depth returns the current template nesting depth.
func (s *Session) Depth() int {
	return s.stack.depth()
}

// Reset discards any expansion frames. Every top-level call resets on
// return, so Reset is only needed by callers that abandon a session from
// inside a property parser.
func (s *Session) Reset() {
	s.stack.reset()
}

// enter marks the start of a call and returns the function that must run
// when it returns. Calls made with an empty stack are top-level calls and
// leave the stack empty again, whatever their outcome.
func (s *Session) enter() func() {
	if s.stack.depth() == 0 {
		return s.stack.reset
	}
	return func() {}
}

// ParseComponent parses el into a component that satisfies expected.
// A template element is expanded through ExpandTemplate; any other element
// is built by the factory registered for its tag.
func (s *Session) ParseComponent(expected *component.Category, el *etree.Element) (component.Component, error) {
	defer s.enter()()

	if el.FullTag() == templateTag {
		return s.parseTemplateInvocation(expected, el)
	}

	factory, ok := s.spec.opts.registry.Lookup(el.FullTag())
	if !ok {
		return nil, errors.Parsingf("unknown component tag '%s'", el.FullTag())
	}
	c, err := s.build(factory, el)
	if err != nil {
		return nil, err
	}

	if !c.Category().Satisfies(expected) {
		return nil, &errors.IncompatibleError{
			Subject:  describeElement(el),
			Expected: expected.Name(),
			Actual:   c.Category().Name(),
		}
	}
	return c, nil
}

// build runs a factory and the component's property parser. A panic in
// either is reported and returned as a *errors.PanicError.
func (s *Session) build(factory component.Factory, el *etree.Element) (c component.Component, err error) {
	defer errors.RecoverTo("spec.ParseComponent", &err)

	c, err = factory(el)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.Parsingf("factory for '%s' returned no component", el.FullTag())
	}
	if err := c.ParseProperties(s, el, dom.ChildrenByTag(el)); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Session) parseTemplateInvocation(expected *component.Category, el *etree.Element) (component.Component, error) {
	name, _ := dom.Attr(el, "name")
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Parsingf("template element is missing 'name' attribute")
	}

	params := make(map[string]string)
	children := make(map[string]*etree.Element)
	for _, child := range dom.Children(el) {
		if child.FullTag() != childTag {
			params[child.FullTag()] = dom.TextContent(child)
			continue
		}
		id, _ := dom.Attr(child, "id")
		fragment := dom.Children(child)
		if len(fragment) == 0 {
			return nil, errors.Parsingf("template child '%s' of '%s' must declare an element", id, name)
		}
		children[id] = fragment[0]
	}

	return s.ExpandTemplate(expected, name, mapParams(params), mapChildren(children))
}

// ExpandTemplate expands the named template and parses the result into a
// component that satisfies expected. Parameters and child slots the given
// lookups do not resolve fall back to the templates currently being
// expanded, innermost first.
func (s *Session) ExpandTemplate(expected *component.Category, name string, params component.ParamLookup, children component.ChildLookup) (component.Component, error) {
	defer s.enter()()

	s.stack.push(frame{template: name, params: params, children: children})
	defer s.stack.pop()

	s.spec.opts.logger.Debug("expanding template",
		zap.String("template", name),
		zap.Int("depth", s.stack.depth()))

	tmpl, ok := s.spec.templates.Lookup(name)
	if !ok {
		return nil, errors.Parsingf("unknown template '%s'", name)
	}
	body := tmpl.Copy()

	if err := s.fillSlots(body, make(map[string]bool)); err != nil {
		return nil, err
	}
	s.applySubstitutions(body)

	roots := dom.Children(body)
	if len(roots) != 1 {
		return nil, errors.Parsingf("template '%s' must declare a single root element, found %d", name, len(roots))
	}

	c, err := s.ParseComponent(component.CategoryComponent, roots[0])
	if err != nil {
		return nil, err
	}
	if !c.Category().Satisfies(expected) {
		return nil, &errors.IncompatibleError{
			Subject:  fmt.Sprintf("template '%s'", name),
			Template: true,
			Expected: expected.Name(),
			Actual:   c.Category().Name(),
		}
	}
	return c, nil
}

// ExpandTemplateParams expands the named template with a flat parameter
// map. No child slots are supplied, so templates that declare
// template-child elements fail to expand through this method.
func (s *Session) ExpandTemplateParams(expected *component.Category, name string, params map[string]string) (component.Component, error) {
	return s.ExpandTemplate(expected, name, mapParams(params), noChildren)
}

func describeElement(el *etree.Element) string {
	if id, ok := dom.Attr(el, "id"); ok {
		return fmt.Sprintf("component '%s' with id '%s'", el.FullTag(), id)
	}
	return fmt.Sprintf("component '%s'", el.FullTag())
}
