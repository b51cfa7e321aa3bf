package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// MatchLine is one line reported by the skip/FIXME search.
// Fields are ordered to minimize memory padding.
type MatchLine struct {
	Path string `yaml:"path"`
	Text string `yaml:"text"`
	Raw  string `yaml:"-"` // Full "path:lineno:text" line as printed by the search
	Line int    `yaml:"line"`
}

func (m MatchLine) String() string {
	if m.Raw != "" {
		return m.Raw
	}
	return fmt.Sprintf("%s:%d:%s", m.Path, m.Line, m.Text)
}

var (
	matchLinePattern = regexp.MustCompile(`^(.+?):(\d+):(.*)$`)
	issueNumPattern  = regexp.MustCompile(`^\d+$`)
)

// ParseMatchLine splits a "path:lineno:text" search result line.
func ParseMatchLine(raw string) (MatchLine, error) {
	m := matchLinePattern.FindStringSubmatch(raw)
	if m == nil {
		return MatchLine{}, fmt.Errorf("%w: %q", ErrMalformedMatch, raw)
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return MatchLine{}, fmt.Errorf("%w: %q", ErrMalformedMatch, raw)
	}
	return MatchLine{Path: m[1], Line: n, Text: m[3], Raw: raw}, nil
}

// SkipPattern returns the extended regular expression matching a skip or
// FIXME line that references any of issues. The line may start with a
// "//" or "#" comment leader. An issue number must be followed by a
// non-digit or the end of line, so "12" never matches "#123".
// The pattern is meant for case-insensitive matching.
func SkipPattern(issues []string) (string, error) {
	if len(issues) == 0 {
		return "", ErrNoIssues
	}
	for _, n := range issues {
		if !issueNumPattern.MatchString(n) {
			return "", fmt.Errorf("invalid issue number %q", n)
		}
	}
	return `^[[:space:]]*((//|#)[[:space:]]*)?(skip|fixme).*#(` +
		strings.Join(issues, "|") + `)([^0-9]|$)`, nil
}

// FileFilter decides which files may legitimately carry a test skip.
type FileFilter struct {
	extensions map[string]bool
	scripts    map[string]bool
}

// NewFileFilter creates a filter accepting the given extensions (without
// the leading dot) and the given script paths.
func NewFileFilter(extensions, scripts []string) *FileFilter {
	f := &FileFilter{
		extensions: make(map[string]bool, len(extensions)),
		scripts:    make(map[string]bool, len(scripts)),
	}
	for _, ext := range extensions {
		f.extensions[strings.ToLower(strings.TrimPrefix(ext, "."))] = true
	}
	for _, s := range scripts {
		f.scripts[normalizePath(s)] = true
	}
	return f
}

// Accepts reports whether path is a test or script file.
func (f *FileFilter) Accepts(path string) bool {
	p := normalizePath(path)
	if f.scripts[p] {
		return true
	}
	ext := strings.TrimPrefix(filepath.Ext(p), ".")
	return ext != "" && f.extensions[strings.ToLower(ext)]
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

// SortMatchLines sorts lines lexicographically by their full text.
func SortMatchLines(lines []MatchLine) {
	slices.SortFunc(lines, func(a, b MatchLine) int {
		return strings.Compare(a.String(), b.String())
	})
}
