package testing

import (
	"fmt"
	"reflect"

	"github.com/go-drift/uispec/pkg/component"
)

// Finder locates components in a component tree.
type Finder interface {
	// Evaluate returns all matching components under root (depth-first pre-order).
	Evaluate(root component.Component) []component.Component
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	components []component.Component
	finder     Finder
}

// Find evaluates f against root.
func Find(root component.Component, f Finder) FinderResult {
	return FinderResult{components: f.Evaluate(root), finder: f}
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() component.Component {
	if len(r.components) == 0 {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder found no components: %s", desc))
	}
	return r.components[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() component.Component {
	if len(r.components) == 0 {
		return nil
	}
	return r.components[0]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []component.Component {
	return r.components
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.components)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.components) > 0
}

// --- Concrete finders ---

type idFinder struct {
	id string
}

func (f *idFinder) Evaluate(root component.Component) []component.Component {
	return collectMatches(root, func(c component.Component) bool {
		return c.ID() == f.id
	})
}

func (f *idFinder) Description() string {
	return fmt.Sprintf("ByID(%q)", f.id)
}

// ByID returns a finder that matches components with the given id.
func ByID(id string) Finder {
	return &idFinder{id: id}
}

type categoryFinder struct {
	category *component.Category
}

func (f *categoryFinder) Evaluate(root component.Component) []component.Component {
	return collectMatches(root, func(c component.Component) bool {
		return c.Category().Satisfies(f.category)
	})
}

func (f *categoryFinder) Description() string {
	return fmt.Sprintf("ByCategory(%s)", f.category.Name())
}

// ByCategory returns a finder that matches components whose category
// satisfies category.
func ByCategory(category *component.Category) Finder {
	return &categoryFinder{category: category}
}

type typeFinder struct {
	componentType reflect.Type
}

func (f *typeFinder) Evaluate(root component.Component) []component.Component {
	return collectMatches(root, func(c component.Component) bool {
		return reflect.TypeOf(c) == f.componentType
	})
}

func (f *typeFinder) Description() string {
	return fmt.Sprintf("ByType(%s)", f.componentType)
}

// ByType returns a finder that matches components of concrete type T.
func ByType[T component.Component]() Finder {
	return &typeFinder{componentType: reflect.TypeFor[T]()}
}

type predicateFinder struct {
	fn   func(component.Component) bool
	desc string
}

func (f *predicateFinder) Evaluate(root component.Component) []component.Component {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches components satisfying fn.
func ByPredicate(desc string, fn func(component.Component) bool) Finder {
	return &predicateFinder{fn: fn, desc: desc}
}

func collectMatches(root component.Component, match func(component.Component) bool) []component.Component {
	var out []component.Component
	component.Walk(root, func(c component.Component) bool {
		if match(c) {
			out = append(out, c)
		}
		return true
	})
	return out
}
