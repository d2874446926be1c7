package spec

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/go-drift/uispec/pkg/component"
)

// DuplicatePolicy decides what happens when two templates share a name.
type DuplicatePolicy int

const (
	// DuplicateOverwrite keeps the last declaration.
	DuplicateOverwrite DuplicatePolicy = iota
	// DuplicateReject fails the load with a parsing error.
	DuplicateReject
)

func (p DuplicatePolicy) String() string {
	if p == DuplicateReject {
		return "reject"
	}
	return "overwrite"
}

// ParseDuplicatePolicy converts "overwrite" or "reject".
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "overwrite":
		return DuplicateOverwrite, nil
	case "reject":
		return DuplicateReject, nil
	default:
		return 0, fmt.Errorf("unknown duplicate template policy %q (use overwrite or reject)", s)
	}
}

// MissingSlotPolicy decides what happens when a template-child slot has no
// caller-supplied fragment.
type MissingSlotPolicy int

const (
	// MissingSlotError fails the expansion naming the template and slot.
	MissingSlotError MissingSlotPolicy = iota
	// MissingSlotKeep leaves the template-child element in place. It then
	// fails as an unknown component tag unless a factory handles it.
	MissingSlotKeep
)

func (p MissingSlotPolicy) String() string {
	if p == MissingSlotKeep {
		return "keep"
	}
	return "error"
}

// ParseMissingSlotPolicy converts "error" or "keep".
func ParseMissingSlotPolicy(s string) (MissingSlotPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "error":
		return MissingSlotError, nil
	case "keep":
		return MissingSlotKeep, nil
	default:
		return 0, fmt.Errorf("unknown missing slot policy %q (use error or keep)", s)
	}
}

type options struct {
	registry     *component.Registry
	duplicates   DuplicatePolicy
	missingSlots MissingSlotPolicy
	logger       *zap.Logger
}

func defaultOptions() options {
	return options{
		registry: component.DefaultRegistry,
		logger:   zap.NewNop(),
	}
}

// Option configures a Spec.
type Option func(*options)

// WithRegistry selects the factory registry used to construct components.
// The default is component.DefaultRegistry.
func WithRegistry(r *component.Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithDuplicateTemplates selects the duplicate template policy.
func WithDuplicateTemplates(p DuplicatePolicy) Option {
	return func(o *options) { o.duplicates = p }
}

// WithMissingSlots selects the missing slot policy.
func WithMissingSlots(p MissingSlotPolicy) Option {
	return func(o *options) { o.missingSlots = p }
}

// WithLogger enables debug logging of template expansion.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
