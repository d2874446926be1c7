package spec

import (
	"io"
	"os"

	"github.com/beevik/etree"

	"github.com/go-drift/uispec/pkg/component"
	"github.com/go-drift/uispec/pkg/dom"
	"github.com/go-drift/uispec/pkg/errors"
	"github.com/go-drift/uispec/pkg/layout"
)

const (
	rootTag       = "owo-ui"
	componentsTag = "components"
	templatesTag  = "templates"
)

// Spec is a validated UI document: the root of its component hierarchy
// and its templates. A Spec is immutable and safe for concurrent use.
type Spec struct {
	root      *etree.Element
	templates *TemplateStore
	opts      options
}

// New validates a document root and builds a Spec from it.
func New(doc *etree.Element, opts ...Option) (*Spec, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if doc == nil {
		return nil, errors.Parsingf("document has no root element")
	}
	if doc.FullTag() != rootTag {
		return nil, errors.Parsingf("root element must be '%s', found '%s'", rootTag, doc.FullTag())
	}

	sections := dom.ChildrenByTag(doc)
	components, ok := sections[componentsTag]
	if !ok {
		return nil, errors.Parsingf("missing '%s' element in UI specification", componentsTag)
	}
	roots := dom.Children(components)
	if len(roots) != 1 {
		return nil, errors.Parsingf("invalid number of children in '%s' element - a single child must be declared, found %d", componentsTag, len(roots))
	}

	templates, err := newTemplateStore(sections[templatesTag], o.duplicates)
	if err != nil {
		return nil, err
	}

	return &Spec{root: roots[0], templates: templates, opts: o}, nil
}

// Load decodes the UI document read from r. Decoding and validation errors
// are returned to the caller.
func Load(r io.Reader, opts ...Option) (*Spec, error) {
	doc, err := dom.Read(r)
	if err != nil {
		return nil, &errors.ParsingError{Msg: "could not decode UI document", Err: err}
	}
	return New(doc, opts...)
}

// LoadFileErr is like LoadFile but returns the error instead of reporting it.
func LoadFileErr(path string, opts ...Option) (*Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f, opts...)
}

// LoadFile loads the UI document stored at path. If the file cannot be read
// or does not describe a valid document, the failure is reported through
// errors.Report and nil is returned.
func LoadFile(path string, opts ...Option) *Spec {
	s, err := LoadFileErr(path, opts...)
	if err != nil {
		errors.Report(errors.Wrap("spec.LoadFile", path, err))
		return nil
	}
	return s
}

// Root returns the root element of the component hierarchy.
func (s *Spec) Root() *etree.Element {
	return s.root
}

// Templates returns the template store.
func (s *Spec) Templates() *TemplateStore {
	return s.templates
}

// Registry returns the registry components are built from.
func (s *Spec) Registry() *component.Registry {
	return s.opts.registry
}

// NewSession returns a fresh parsing session over s.
func (s *Spec) NewSession() *Session {
	return &Session{spec: s}
}

// ParseComponent parses el in a fresh session. See Session.ParseComponent.
func (s *Spec) ParseComponent(expected *component.Category, el *etree.Element) (component.Component, error) {
	return s.NewSession().ParseComponent(expected, el)
}

// ExpandTemplate expands a template in a fresh session. See
// Session.ExpandTemplate.
func (s *Spec) ExpandTemplate(expected *component.Category, name string, params component.ParamLookup, children component.ChildLookup) (component.Component, error) {
	return s.NewSession().ExpandTemplate(expected, name, params, children)
}

// ExpandTemplateParams expands a template with a flat parameter map in a
// fresh session. See Session.ExpandTemplateParams.
func (s *Spec) ExpandTemplateParams(expected *component.Category, name string, params map[string]string) (component.Component, error) {
	return s.NewSession().ExpandTemplateParams(expected, name, params)
}

// ParseComponentTree parses the hierarchy root and sizes it to fill its
// host on both axes.
func (s *Spec) ParseComponentTree(expected *component.Category) (component.Component, error) {
	root, err := s.ParseComponent(expected, s.root)
	if err != nil {
		return nil, err
	}
	root.SetSizing(layout.Fill(100), layout.Fill(100))
	return root, nil
}
