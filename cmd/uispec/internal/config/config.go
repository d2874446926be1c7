package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap/zapcore"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/uispec/pkg/layout"
	"github.com/go-drift/uispec/pkg/spec"
)

// FileName is the optional project configuration file.
const FileName = "uispec.yaml"

// Config represents the optional uispec.yaml configuration.
type Config struct {
	Spec SpecConfig `yaml:"spec"`
	Host HostConfig `yaml:"host"`
	Log  LogConfig  `yaml:"log"`
}

// SpecConfig contains expansion policies.
type SpecConfig struct {
	DuplicateTemplates string `yaml:"duplicate_templates,omitempty"`
	MissingSlots       string `yaml:"missing_slots,omitempty"`
}

// HostConfig describes the surface hierarchies are attached to.
type HostConfig struct {
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level   string `yaml:"level,omitempty"`
	Verbose bool   `yaml:"verbose,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root         string
	ModulePath   string
	ProjectName  string
	Duplicates   spec.DuplicatePolicy
	MissingSlots spec.MissingSlotPolicy
	Host         layout.Size
	LogLevel     zapcore.Level
	Verbose      bool
}

// Default host size when uispec.yaml does not set one.
const (
	DefaultWidth  = 1280
	DefaultHeight = 720
)

// Options returns the spec options selected by the configuration.
func (r *Resolved) Options() []spec.Option {
	return []spec.Option{
		spec.WithDuplicateTemplates(r.Duplicates),
		spec.WithMissingSlots(r.MissingSlots),
	}
}

// LoadOptional reads uispec.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads uispec.yaml (if present) and resolves defaults. A directory
// without go.mod resolves with an empty module path.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	duplicates, err := spec.ParseDuplicatePolicy(cfg.Spec.DuplicateTemplates)
	if err != nil {
		return nil, fmt.Errorf("spec.duplicate_templates: %w", err)
	}
	missing, err := spec.ParseMissingSlotPolicy(cfg.Spec.MissingSlots)
	if err != nil {
		return nil, fmt.Errorf("spec.missing_slots: %w", err)
	}

	host, err := hostSize(cfg.Host)
	if err != nil {
		return nil, err
	}

	level := zapcore.InfoLevel
	if name := strings.TrimSpace(cfg.Log.Level); name != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
			return nil, fmt.Errorf("log.level: %w", err)
		}
	}

	return &Resolved{
		Root:         dir,
		ModulePath:   modulePath,
		ProjectName:  projectName(modulePath, dir),
		Duplicates:   duplicates,
		MissingSlots: missing,
		Host:         host,
		LogLevel:     level,
		Verbose:      cfg.Log.Verbose,
	}, nil
}

// FindProjectRoot walks up from start to find go.mod. If none is found, start
// itself is returned so a loose directory of documents still resolves.
func FindProjectRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for d := dir; ; {
		if _, err := os.Stat(filepath.Join(d, "go.mod")); err == nil {
			return d, nil
		}
		parent := filepath.Dir(d)
		if parent == d {
			return dir, nil
		}
		d = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func projectName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modName, _, ok := module.SplitPathVersion(modulePath); ok && modName != "" {
		parts := strings.Split(modName, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "uispec"
	}
	return base
}

func hostSize(h HostConfig) (layout.Size, error) {
	size := layout.Size{Width: DefaultWidth, Height: DefaultHeight}
	if h.Width < 0 || h.Height < 0 {
		return size, fmt.Errorf("host size must not be negative (got %gx%g)", h.Width, h.Height)
	}
	if h.Width > 0 {
		size.Width = h.Width
	}
	if h.Height > 0 {
		size.Height = h.Height
	}
	return size, nil
}
