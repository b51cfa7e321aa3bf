// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/fixed-skips/internal/domain"
	"github.com/runoshun/fixed-skips/internal/infra/logging"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file.
type Loader struct {
	path     string // Config file path
	required bool   // Whether a missing file is an error
}

// NewLoader creates a Loader for the default config file in dir.
// A missing file yields the defaults.
func NewLoader(dir string) *Loader {
	return &Loader{path: domain.ConfigPath(dir)}
}

// NewLoaderWithPath creates a Loader for an explicitly named file,
// which must exist.
func NewLoaderWithPath(path string) *Loader {
	return &Loader{path: path, required: true}
}

// knownKeys lists the accepted keys per section.
var knownKeys = map[string][]string{
	"scan":  {"roots", "extensions", "scripts"},
	"fixes": {"verbs"},
	"git":   {"backend"},
	"log":   {"level"},
}

// Load returns the file configuration merged over the defaults.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !l.required {
			return base, nil
		}
		return nil, domain.NewError(domain.KindConfiguration, fmt.Errorf("read config: %w", err))
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, domain.NewError(domain.KindConfiguration, fmt.Errorf("parse %s: %w", l.path, err))
	}
	var file domain.Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, domain.NewError(domain.KindConfiguration, fmt.Errorf("parse %s: %w", l.path, err))
	}

	cfg := mergeConfigs(base, &file)
	cfg.Path = l.path
	cfg.Warnings = unknownKeyWarnings(raw)

	if err := validate(cfg); err != nil {
		return nil, domain.NewError(domain.KindConfiguration, fmt.Errorf("%s: %w", l.path, err))
	}
	return cfg, nil
}

// mergeConfigs overlays the non-empty values of override onto base.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	if len(override.Scan.Roots) > 0 {
		base.Scan.Roots = override.Scan.Roots
	}
	if len(override.Scan.Extensions) > 0 {
		base.Scan.Extensions = override.Scan.Extensions
	}
	if len(override.Scan.Scripts) > 0 {
		base.Scan.Scripts = override.Scan.Scripts
	}
	if len(override.Fixes.Verbs) > 0 {
		base.Fixes.Verbs = override.Fixes.Verbs
	}
	if override.Git.Backend != "" {
		base.Git.Backend = override.Git.Backend
	}
	if override.Log.Level != "" {
		base.Log.Level = override.Log.Level
	}
	return base
}

func validate(cfg *domain.Config) error {
	switch cfg.Git.Backend {
	case domain.GitBackendExec, domain.GitBackendGoGit:
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownGitBackend, cfg.Git.Backend)
	}
	if !logging.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("invalid log level %q", cfg.Log.Level)
	}
	return nil
}

// unknownKeyWarnings reports sections and keys the loader ignores.
func unknownKeyWarnings(raw map[string]any) []string {
	var warnings []string
	for section, value := range raw {
		keys, ok := knownKeys[section]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown section: [%s]", section))
			continue
		}
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("[%s] must be a table", section))
			continue
		}
		for k := range m {
			if !contains(keys, k) {
				warnings = append(warnings, fmt.Sprintf("unknown key in [%s]: %s", section, k))
			}
		}
	}
	sort.Strings(warnings)
	return warnings
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
