package domain

import "path/filepath"

// Config is the run configuration, built once at startup.
// Fields are ordered to minimize memory padding.
type Config struct {
	Dir      string     `toml:"-"` // Working tree root the search runs in
	Path     string     `toml:"-"` // Config file the values were read from, if any
	Warnings []string   `toml:"-"`
	Scan     ScanConfig `toml:"scan"`
	Fixes    FixConfig  `toml:"fixes"`
	Git      GitConfig  `toml:"git"`
	Log      LogConfig  `toml:"log"`
	Debug    bool       `toml:"-"` // Echo discarded scanner lines
}

// ScanConfig holds settings for the skip/FIXME search from [scan] section.
type ScanConfig struct {
	Roots      []string `toml:"roots,omitempty"`      // Directories searched recursively
	Extensions []string `toml:"extensions,omitempty"` // File extensions that may carry skips
	Scripts    []string `toml:"scripts,omitempty"`    // Extension-less scripts that may carry skips
}

// FixConfig holds settings for fix-claim detection from [fixes] section.
type FixConfig struct {
	Verbs []string `toml:"verbs,omitempty"` // Verb stems, e.g. "Fix", "Clos"
}

// GitConfig holds settings from [git] section.
type GitConfig struct {
	Backend string `toml:"backend,omitempty"` // "exec" (default) or "go-git"
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
}

// Git backends.
const (
	GitBackendExec  = "exec"
	GitBackendGoGit = "go-git"
)

// Config defaults.
const (
	ConfigFileName  = ".fixed-skips.toml"
	DefaultLogLevel = "warn"
)

// DefaultScanRoots are the source directories searched for skips.
// The list is fixed; vendored code is excluded by not naming it.
var DefaultScanRoots = []string{"test", "cmd", "libpod", "pkg"}

// DefaultScanExtensions are the file types that carry test skips.
var DefaultScanExtensions = []string{"go", "bats", "sh"}

// DefaultScanScripts are extension-less files that carry skips.
var DefaultScanScripts = []string{"test/buildah-bud/apply-podman-deltas"}

// DefaultFixVerbs are the verb stems of a fix-claim phrase.
var DefaultFixVerbs = []string{"Fix", "Clos", "Resolv"}

// NewDefaultConfig returns a new Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Roots:      append([]string(nil), DefaultScanRoots...),
			Extensions: append([]string(nil), DefaultScanExtensions...),
			Scripts:    append([]string(nil), DefaultScanScripts...),
		},
		Fixes: FixConfig{
			Verbs: append([]string(nil), DefaultFixVerbs...),
		},
		Git: GitConfig{
			Backend: GitBackendExec,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// ConfigPath returns the default config file path for dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, ConfigFileName)
}
