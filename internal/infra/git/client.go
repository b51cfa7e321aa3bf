// Package git provides commit-log access through the git binary.
package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/fixed-skips/internal/domain"
)

// Client provides git operations.
type Client struct {
	runner domain.ProcessRunner
	dir    string // Working directory git runs in
}

// NewClient creates a new git client running commands in dir.
func NewClient(runner domain.ProcessRunner, dir string) *Client {
	return &Client{
		runner: runner,
		dir:    dir,
	}
}

// Ensure Client implements domain.CommitLog interface.
var _ domain.CommitLog = (*Client)(nil)

// MergeBase returns the merge-base commit of dest and current.
func (c *Client) MergeBase(ctx context.Context, dest, current string) (string, error) {
	out, err := c.git(ctx, "merge-base", dest, current)
	if err != nil {
		return "", fmt.Errorf("failed to compute merge-base of %s and %s: %w", dest, current, err)
	}
	base := strings.TrimSpace(out)
	if base == "" {
		return "", domain.NewError(domain.KindExternalTool,
			fmt.Errorf("git merge-base %s %s printed no commit", dest, current))
	}
	return base, nil
}

// Messages returns the full message bodies of the commits in base..current.
func (c *Client) Messages(ctx context.Context, base, current string) (string, error) {
	out, err := c.git(ctx, "log", "--format=%B", base+".."+current)
	if err != nil {
		return "", fmt.Errorf("failed to read commit log %s..%s: %w", base, current, err)
	}
	return out, nil
}

// git runs a git subcommand and returns its stdout.
// Any failure, including a non-zero exit, is an external tool error.
func (c *Client) git(ctx context.Context, args ...string) (string, error) {
	res, err := c.runner.Run(ctx, domain.NewCommand("git", args, c.dir))
	if err != nil {
		return "", domain.NewError(domain.KindExternalTool, err)
	}
	if !res.Success() {
		return "", domain.NewError(domain.KindExternalTool,
			fmt.Errorf("git %s exited with status %d: %s",
				strings.Join(args, " "), res.ExitCode, strings.TrimSpace(string(res.Stderr))))
	}
	return string(res.Stdout), nil
}
