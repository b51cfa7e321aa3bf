package grep

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/runoshun/fixed-skips/internal/domain"
	"github.com/runoshun/fixed-skips/internal/infra/executor"
	"github.com/runoshun/fixed-skips/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files under dir from a path -> content map.
func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestSearcher_Search_Parses(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"test/x.bats": "", "pkg/y.go": ""})

	runner := &testutil.MockRunner{Responses: []testutil.MockRunResponse{{
		Stdout: "test/x.bats:12:    skip \"#42\"\npkg/y.go:3:// FIXME: #42\n",
	}}}
	s := NewSearcher(runner, domain.NopLogger{}, dir)

	lines, err := s.Search(context.Background(), "PATTERN", []string{"test", "cmd", "pkg"})
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "test/x.bats", lines[0].Path)
	assert.Equal(t, 12, lines[0].Line)
	assert.Equal(t, "pkg/y.go", lines[1].Path)

	require.Len(t, runner.Calls, 1)
	call := runner.Calls[0]
	assert.Equal(t, "grep", call.Program)
	assert.Equal(t, dir, call.Dir)
	assert.Equal(t, []string{"-rniIE", "--", "PATTERN", "test", "pkg"}, call.Args, "missing roots are dropped")
}

func TestSearcher_Search_ExitStatus(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"test/x.go": ""})

	t.Run("no match", func(t *testing.T) {
		runner := &testutil.MockRunner{Responses: []testutil.MockRunResponse{{Exit: 1}}}
		lines, err := NewSearcher(runner, domain.NopLogger{}, dir).Search(context.Background(), "p", []string{"test"})
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("grep error", func(t *testing.T) {
		runner := &testutil.MockRunner{Responses: []testutil.MockRunResponse{{Exit: 2, Stderr: "grep: bad regex"}}}
		_, err := NewSearcher(runner, domain.NopLogger{}, dir).Search(context.Background(), "p", []string{"test"})
		require.Error(t, err)
		assert.Equal(t, domain.KindExternalTool, domain.KindOf(err))
		assert.Contains(t, err.Error(), "bad regex")
	})

	t.Run("launch failure", func(t *testing.T) {
		runner := &testutil.MockRunner{Responses: []testutil.MockRunResponse{{Err: testutil.ErrMock}}}
		_, err := NewSearcher(runner, domain.NopLogger{}, dir).Search(context.Background(), "p", []string{"test"})
		require.Error(t, err)
		assert.Equal(t, domain.KindExternalTool, domain.KindOf(err))
	})

	t.Run("malformed output", func(t *testing.T) {
		runner := &testutil.MockRunner{Responses: []testutil.MockRunResponse{{Stdout: "test/x.go:1:ok\nBinary file matches\n"}}}
		_, err := NewSearcher(runner, domain.NopLogger{}, dir).Search(context.Background(), "p", []string{"test"})
		require.Error(t, err)
		assert.Equal(t, domain.KindInternalContract, domain.KindOf(err))
		assert.ErrorIs(t, err, domain.ErrMalformedMatch)
	})
}

func TestSearcher_Search_NoRoots(t *testing.T) {
	logger := &testutil.MockLogger{}
	runner := &testutil.MockRunner{}

	lines, err := NewSearcher(runner, logger, t.TempDir()).Search(context.Background(), "p", []string{"test", "pkg"})
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.Empty(t, runner.Calls, "grep must not run without roots")
	assert.Len(t, logger.Messages("DEBUG"), 3)
}

func TestSearcher_Search_RealGrep(t *testing.T) {
	if _, err := exec.LookPath("grep"); err != nil {
		t.Skip("grep not installed")
	}

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"test/e2e/run_test.go":     "package e2e\n\n// FIXME: #42 still broken\nfunc f() {}\n",
		"test/system/010.bats":     "@test \"x\" {\n    skip \"see #123\"\n}\n",
		"pkg/util/util.go":         "// unrelated #42\n",
		"cmd/podman/main.go":       "\tSkip(\"#12 flaky\")\n",
		"vendor/github.com/x/x.go": "// FIXME #42\n",
		"libpod/notes.md":          "fixme: #42\n",
	})

	pattern, err := domain.SkipPattern([]string{"42", "12"})
	require.NoError(t, err)

	s := NewSearcher(executor.NewClient(), domain.NopLogger{}, dir)
	lines, err := s.Search(context.Background(), pattern, domain.DefaultScanRoots)
	require.NoError(t, err)

	var got []string
	for _, l := range lines {
		got = append(got, l.String())
	}
	assert.ElementsMatch(t, []string{
		"test/e2e/run_test.go:3:// FIXME: #42 still broken",
		"cmd/podman/main.go:1:\tSkip(\"#12 flaky\")",
		"libpod/notes.md:1:fixme: #42",
	}, got)
}
