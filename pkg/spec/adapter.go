package spec

import (
	"github.com/go-drift/uispec/pkg/component"
	"github.com/go-drift/uispec/pkg/layout"
)

// Host is the surface that owns a parsed hierarchy.
type Host interface {
	// Size returns the host's coordinate space.
	Size() layout.Size
}

// HostSize is a Host with a fixed size.
type HostSize layout.Size

// Size returns s.
func (s HostSize) Size() layout.Size {
	return layout.Size(s)
}

// Adapter attaches a parsed component hierarchy to its host.
type Adapter struct {
	// Root is the hierarchy root, sized to fill the host.
	Root component.Component
	// Host owns the hierarchy.
	Host Host
}

// CreateHierarchy parses the component hierarchy, checks its root against
// expectedRoot and attaches it to host.
func (s *Spec) CreateHierarchy(expectedRoot *component.Category, host Host) (*Adapter, error) {
	root, err := s.ParseComponentTree(expectedRoot)
	if err != nil {
		return nil, err
	}
	return &Adapter{Root: root, Host: host}, nil
}

// RootSize resolves the root's sizing against the host's space. Content
// sizing resolves against an empty content extent.
func (a *Adapter) RootSize() layout.Size {
	space := layout.Size{}
	if a.Host != nil {
		space = a.Host.Size()
	}
	horizontal, vertical := a.Root.Sizing()
	return layout.Size{
		Width:  horizontal.Resolve(space.Width, 0),
		Height: vertical.Resolve(space.Height, 0),
	}
}

// ChildByID finds a component below the root by id.
func (a *Adapter) ChildByID(id string) component.Component {
	if a.Root.ID() == id {
		return a.Root
	}
	return component.ChildByID(a.Root, id)
}
