package spec

import (
	"regexp"
	"strings"

	"github.com/beevik/etree"

	"github.com/go-drift/uispec/pkg/dom"
	"github.com/go-drift/uispec/pkg/errors"
)

const (
	templateTag      = "template"
	templateChildTag = "template-child"
	childTag         = "child"
)

// placeholderPattern matches a whole text run of the form {{name}}.
var placeholderPattern = regexp.MustCompile(`^\{\{.*\}\}$`)

// fillSlots replaces every template-child element below el with the
// fragment supplied for its id. Children of the template-child element are
// fallbacks: each is moved onto the fragment unless the fragment already
// contains an element with the same tag. Slots inside an inserted fragment
// are filled too, except those naming a slot already being filled on the
// same path, which would never terminate.
func (s *Session) fillSlots(el *etree.Element, filling map[string]bool) error {
	for _, child := range el.ChildElements() {
		if child.FullTag() != templateChildTag {
			if err := s.fillSlots(child, filling); err != nil {
				return err
			}
			continue
		}

		id, _ := dom.Attr(child, "id")
		if filling[id] {
			return errors.Parsingf("template-child '%s' of template '%s' refers to itself", id, s.stack.current())
		}
		fragment, ok := s.stack.child(id)
		if !ok {
			if s.spec.opts.missingSlots == MissingSlotError {
				return errors.Parsingf("template '%s' requires child '%s'", s.stack.current(), id)
			}
			if err := s.fillSlots(child, filling); err != nil {
				return err
			}
			continue
		}

		expanded := fragment.Copy()
		for _, fallback := range child.ChildElements() {
			if dom.HasDescendant(expanded, fallback.FullTag()) {
				continue
			}
			expanded.AddChild(fallback)
		}
		dom.Replace(child, expanded)

		filling[id] = true
		err := s.fillSlots(expanded, filling)
		delete(filling, id)
		if err != nil {
			return err
		}
	}
	return nil
}

// applySubstitutions replaces placeholder text below el with the values of
// the parameters they name. Placeholders without a value are left as-is.
func (s *Session) applySubstitutions(el *etree.Element) {
	for _, child := range el.ChildElements() {
		for _, text := range dom.Texts(child) {
			content := strings.TrimSpace(text.Data)
			if !placeholderPattern.MatchString(content) {
				continue
			}
			name := strings.TrimSpace(content[2 : len(content)-2])
			if v, ok := s.stack.param(name); ok {
				text.SetData(v)
			}
		}
		s.applySubstitutions(child)
	}
}
