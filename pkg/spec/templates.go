package spec

import (
	"sort"

	"github.com/beevik/etree"

	"github.com/go-drift/uispec/pkg/dom"
	"github.com/go-drift/uispec/pkg/errors"
)

// TemplateStore maps template names to their defining elements. Stored
// elements are never modified; expansion always works on a copy.
type TemplateStore struct {
	templates map[string]*etree.Element
}

func newTemplateStore(section *etree.Element, policy DuplicatePolicy) (*TemplateStore, error) {
	store := &TemplateStore{templates: make(map[string]*etree.Element)}
	for _, el := range dom.Children(section) {
		if _, dup := store.templates[el.FullTag()]; dup && policy == DuplicateReject {
			return nil, errors.Parsingf("duplicate template '%s'", el.FullTag())
		}
		store.templates[el.FullTag()] = el
	}
	return store, nil
}

// Lookup returns the defining element of the named template.
func (t *TemplateStore) Lookup(name string) (*etree.Element, bool) {
	el, ok := t.templates[name]
	return el, ok
}

// Len returns the number of templates.
func (t *TemplateStore) Len() int {
	return len(t.templates)
}

// Names returns the template names in sorted order.
func (t *TemplateStore) Names() []string {
	names := make([]string, 0, len(t.templates))
	for name := range t.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
