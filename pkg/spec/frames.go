package spec

import (
	"github.com/beevik/etree"

	"github.com/go-drift/uispec/pkg/component"
)

// frame is the lookup layer contributed by one template expansion.
type frame struct {
	template string
	params   component.ParamLookup
	children component.ChildLookup
}

// expansionStack holds one frame per template being expanded. Lookups
// search frames from the innermost expansion outwards and the first hit
// wins, so an inner template sees its own parameters first and falls back
// to those of the templates enclosing it.
type expansionStack struct {
	frames []frame
}

func (s *expansionStack) push(f frame) {
	s.frames = append(s.frames, f)
}

func (s *expansionStack) pop() {
	if len(s.frames) == 0 {
		return
	}
	s.frames[len(s.frames)-1] = frame{}
	s.frames = s.frames[:len(s.frames)-1]
}

func (s *expansionStack) depth() int {
	return len(s.frames)
}

func (s *expansionStack) reset() {
	clear(s.frames)
	s.frames = s.frames[:0]
}

// current returns the name of the innermost template.
func (s *expansionStack) current() string {
	if len(s.frames) == 0 {
		return ""
	}
	return s.frames[len(s.frames)-1].template
}

func (s *expansionStack) param(name string) (string, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if lookup := s.frames[i].params; lookup != nil {
			if v, ok := lookup(name); ok {
				return v, true
			}
		}
	}
	return "", false
}

func (s *expansionStack) child(id string) (*etree.Element, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if lookup := s.frames[i].children; lookup != nil {
			if el, ok := lookup(id); ok && el != nil {
				return el, true
			}
		}
	}
	return nil, false
}

func mapParams(params map[string]string) component.ParamLookup {
	return func(name string) (string, bool) {
		v, ok := params[name]
		return v, ok
	}
}

func mapChildren(children map[string]*etree.Element) component.ChildLookup {
	return func(id string) (*etree.Element, bool) {
		el, ok := children[id]
		return el, ok
	}
}

func noChildren(string) (*etree.Element, bool) {
	return nil, false
}
