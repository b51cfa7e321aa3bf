// Package grep provides the skip/FIXME search using the grep binary.
package grep

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/runoshun/fixed-skips/internal/domain"
)

// Exit statuses of grep.
const (
	exitMatch   = 0
	exitNoMatch = 1
)

// Searcher implements domain.Searcher with "grep -rniE".
type Searcher struct {
	runner domain.ProcessRunner
	logger domain.Logger
	dir    string // Directory the roots are relative to
}

// Ensure Searcher implements domain.Searcher interface.
var _ domain.Searcher = (*Searcher)(nil)

// NewSearcher creates a Searcher running grep in dir.
func NewSearcher(runner domain.ProcessRunner, logger domain.Logger, dir string) *Searcher {
	return &Searcher{
		runner: runner,
		logger: logger,
		dir:    dir,
	}
}

// Search greps roots recursively and case-insensitively for pattern.
// Roots that do not exist are skipped. Every output line must have the
// "path:lineno:text" shape; anything else is an internal contract error.
func (s *Searcher) Search(ctx context.Context, pattern string, roots []string) ([]domain.MatchLine, error) {
	existing := s.existingRoots(roots)
	if len(existing) == 0 {
		s.logger.Debug("scan", "no search roots exist, nothing to scan")
		return nil, nil
	}

	args := append([]string{"-rniIE", "--", pattern}, existing...)
	res, err := s.runner.Run(ctx, domain.NewCommand("grep", args, s.dir))
	if err != nil {
		return nil, domain.NewError(domain.KindExternalTool, fmt.Errorf("failed to start grep: %w", err))
	}
	switch res.ExitCode {
	case exitMatch:
	case exitNoMatch:
		return nil, nil
	default:
		return nil, domain.NewError(domain.KindExternalTool,
			fmt.Errorf("grep exited with status %d: %s", res.ExitCode, strings.TrimSpace(string(res.Stderr))))
	}

	var lines []domain.MatchLine
	sc := bufio.NewScanner(bytes.NewReader(res.Stdout))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		raw := sc.Text()
		if raw == "" {
			continue
		}
		m, err := domain.ParseMatchLine(raw)
		if err != nil {
			return nil, domain.NewError(domain.KindInternalContract, err)
		}
		lines = append(lines, m)
	}
	if err := sc.Err(); err != nil {
		return nil, domain.NewError(domain.KindInternalContract, fmt.Errorf("read grep output: %w", err))
	}
	return lines, nil
}

func (s *Searcher) existingRoots(roots []string) []string {
	var out []string
	for _, r := range roots {
		path := r
		if !filepath.IsAbs(path) && s.dir != "" {
			path = filepath.Join(s.dir, r)
		}
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				s.logger.Debug("scan", fmt.Sprintf("skipping missing search root %s", r))
				continue
			}
		}
		out = append(out, r)
	}
	return out
}
