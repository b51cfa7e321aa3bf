package domain

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// compileSkipPattern compiles the pattern the way grep -i would apply it.
func compileSkipPattern(t *testing.T, issues ...string) *regexp.Regexp {
	t.Helper()
	p, err := SkipPattern(issues)
	require.NoError(t, err)
	return regexp.MustCompile("(?i)" + p)
}

func TestSkipPattern_NumberBoundary(t *testing.T) {
	line := `    skip "flaky, see #123"`

	assert.False(t, compileSkipPattern(t, "12").MatchString(line), "12 must not match #123")
	assert.True(t, compileSkipPattern(t, "123").MatchString(line))
	assert.True(t, compileSkipPattern(t, "12", "123").MatchString(line))
}

func TestSkipPattern_Lines(t *testing.T) {
	re := compileSkipPattern(t, "42", "7")

	tests := []struct {
		name string
		line string
		want bool
	}{
		{"bats skip", `    skip "broken: #42"`, true},
		{"bats skip_if_remote", `skip_if_remote "not yet: #7"`, true},
		{"ginkgo Skip", `		Skip("#42 still broken")`, true},
		{"go fixme comment", `// FIXME: #42 still broken`, true},
		{"shell fixme comment", `# fixme #7`, true},
		{"issue at end of line", `# FIXME see #42`, true},
		{"uppercase SKIP", `SKIP #42 later`, true},
		{"reference without skip", `foo := bar // #42`, false},
		{"skip not at line start", `echo skip #42`, false},
		{"other issue", `skip "see #421"`, false},
		{"different issue", `skip "see #4"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, re.MatchString(tt.line))
		})
	}
}

func TestSkipPattern_Errors(t *testing.T) {
	_, err := SkipPattern(nil)
	assert.True(t, errors.Is(err, ErrNoIssues))

	_, err = SkipPattern([]string{"12|.*"})
	assert.Error(t, err)
}

func TestParseMatchLine(t *testing.T) {
	m, err := ParseMatchLine("test/system/010-images.bats:57:    skip \"#42\"")
	require.NoError(t, err)
	assert.Equal(t, "test/system/010-images.bats", m.Path)
	assert.Equal(t, 57, m.Line)
	assert.Equal(t, `    skip "#42"`, m.Text)
	assert.Equal(t, "test/system/010-images.bats:57:    skip \"#42\"", m.String())

	m, err = ParseMatchLine("pkg/a.go:3:// FIXME: #42: with colons")
	require.NoError(t, err)
	assert.Equal(t, "pkg/a.go", m.Path)
	assert.Equal(t, "// FIXME: #42: with colons", m.Text)

	for _, raw := range []string{"", "no separators", "pkg/a.go:notanumber:text", "pkg/a.go"} {
		_, err := ParseMatchLine(raw)
		assert.True(t, errors.Is(err, ErrMalformedMatch), "raw=%q", raw)
	}
}

func TestFileFilter_Accepts(t *testing.T) {
	f := NewFileFilter(DefaultScanExtensions, DefaultScanScripts)

	tests := []struct {
		path string
		want bool
	}{
		{"test/e2e/run_test.go", true},
		{"pkg/util/util.go", true},
		{"test/system/030-run.bats", true},
		{"hack/helper.sh", true},
		{"test/buildah-bud/apply-podman-deltas", true},
		{"./test/buildah-bud/apply-podman-deltas", true},
		{"test/buildah-bud/README.md", false},
		{"docs/podman-run.1.md", false},
		{"test/apiv2/10-images.at", false},
		{"pkg/Makefile", false},
		{"test/other-deltas", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Accepts(tt.path))
		})
	}
}

func TestFileFilter_ExtensionTableIsData(t *testing.T) {
	f := NewFileFilter([]string{".at", "GO"}, nil)
	assert.True(t, f.Accepts("test/apiv2/10-images.at"))
	assert.True(t, f.Accepts("x/y.go"))
	assert.False(t, f.Accepts("x/y.bats"))
}

func TestSortMatchLines(t *testing.T) {
	lines := []MatchLine{
		{Path: "test/b.go", Line: 1, Text: "skip #1", Raw: "test/b.go:1:skip #1"},
		{Path: "cmd/a.go", Line: 20, Text: "skip #1", Raw: "cmd/a.go:20:skip #1"},
		{Path: "cmd/a.go", Line: 3, Text: "skip #1", Raw: "cmd/a.go:3:skip #1"},
	}
	SortMatchLines(lines)
	assert.Equal(t, "cmd/a.go:20:skip #1", lines[0].String())
	assert.Equal(t, "cmd/a.go:3:skip #1", lines[1].String())
	assert.Equal(t, "test/b.go:1:skip #1", lines[2].String())
}
