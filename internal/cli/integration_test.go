//go:build integration

package cli

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRepo creates a temporary git repository for integration testing.
// The branch "dest" points at the initial commit.
func testRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	// Initialize git repository
	run(t, dir, "git", "init")
	run(t, dir, "git", "config", "user.email", "test@example.com")
	run(t, dir, "git", "config", "user.name", "Test User")

	// Create initial commit (required for merge-base)
	readme := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(readme, []byte("# Test\n"), 0o644))
	run(t, dir, "git", "add", ".")
	run(t, dir, "git", "commit", "-m", "Initial commit")
	run(t, dir, "git", "branch", "dest")

	return dir
}

// run executes a command and fails the test if it errors.
func run(t *testing.T, dir string, name string, args ...string) string {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "command failed: %s %v\noutput: %s", name, args, out)
	return string(out)
}

// fixedSkips runs the CLI binary in dir with the given environment.
// It returns stdout, stderr and the exit code.
func fixedSkips(t *testing.T, dir string, env []string, args ...string) (string, string, int) {
	t.Helper()

	binPath := buildFixedSkips(t)

	cmd := exec.Command(binPath, args...)
	cmd.Dir = dir
	cmd.Env = append([]string{"PATH=" + os.Getenv("PATH"), "HOME=" + os.Getenv("HOME")}, env...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	code := 0
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	} else {
		require.NoError(t, err)
	}
	return stdout.String(), stderr.String(), code
}

var (
	binPath   string
	buildOnce sync.Once
	buildErr  error
)

// buildFixedSkips builds the binary once and caches the path.
func buildFixedSkips(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		// Get the module root directory
		wd, err := os.Getwd()
		if err != nil {
			buildErr = err
			return
		}

		// Find module root by looking for go.mod
		moduleRoot := wd
		for {
			if _, err := os.Stat(filepath.Join(moduleRoot, "go.mod")); err == nil {
				break
			}
			parent := filepath.Dir(moduleRoot)
			if parent == moduleRoot {
				buildErr = os.ErrNotExist
				return
			}
			moduleRoot = parent
		}

		// Build to a fixed temp directory (not per-test)
		path := filepath.Join(os.TempDir(), "fixed-skips-integration-test")
		cmd := exec.Command("go", "build", "-o", path, "./cmd/fixed-skips")
		cmd.Dir = moduleRoot
		out, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = err
			t.Logf("build failed: %s", out)
			return
		}

		binPath = path
	})

	require.NoError(t, buildErr, "failed to build fixed-skips binary")
	return binPath
}

// =============================================================================
// End-to-end scenarios
// =============================================================================

func TestIntegration_NoPRNoDestBranch(t *testing.T) {
	dir := testRepo(t)

	stdout, stderr, code := fixedSkips(t, dir, nil)

	assert.Equal(t, 0, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestIntegration_StaleFixmeFromCommitLog(t *testing.T) {
	for _, backend := range []string{"exec", "go-git"} {
		t.Run(backend, func(t *testing.T) {
			dir := testRepo(t)
			require.NoError(t, os.WriteFile(filepath.Join(dir, ".fixed-skips.toml"),
				[]byte("[git]\nbackend = \""+backend+"\"\n"), 0o644))

			testFile := filepath.Join(dir, "test", "e2e", "run_test.go")
			require.NoError(t, os.MkdirAll(filepath.Dir(testFile), 0o755))
			require.NoError(t, os.WriteFile(testFile, []byte("package e2e\n\n// FIXME: #42 still broken\n"), 0o644))
			run(t, dir, "git", "add", ".")
			run(t, dir, "git", "commit", "-m", "Repair run\n\nFixes #42")

			_, stderr, code := fixedSkips(t, dir, []string{"DEST_BRANCH=dest"})

			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, "#42")
			assert.Contains(t, stderr, "test/e2e/run_test.go:3:// FIXME: #42 still broken")
			assert.Contains(t, stderr, "Please review the instances above.")
		})
	}
}

func TestIntegration_ClaimWithoutSkips(t *testing.T) {
	dir := testRepo(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "pkg"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pkg", "a.go"), []byte("// FIXME: #421\n"), 0o644))

	_, _, code := fixedSkips(t, dir, []string{"CIRRUS_PR=1", "CIRRUS_CHANGE_MESSAGE=Fixes #42"})

	assert.Equal(t, 0, code)
}

func TestIntegration_MissingChangeMessage(t *testing.T) {
	dir := testRepo(t)

	_, stderr, code := fixedSkips(t, dir, []string{"CIRRUS_PR=1"})

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "CIRRUS_CHANGE_MESSAGE")
}
