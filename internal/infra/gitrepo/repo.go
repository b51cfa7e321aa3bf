// Package gitrepo provides an in-process implementation of domain.CommitLog
// backed by go-git, for environments without a git binary.
package gitrepo

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/runoshun/fixed-skips/internal/domain"
)

// Repo implements domain.CommitLog by reading the object database directly.
// The repository is opened on first use.
type Repo struct {
	repo *git.Repository
	err  error
	dir  string
	once sync.Once
}

// Ensure Repo implements domain.CommitLog interface.
var _ domain.CommitLog = (*Repo)(nil)

// New creates a Repo for the repository containing dir.
func New(dir string) *Repo {
	return &Repo{dir: dir}
}

// Open opens the repository containing dir immediately.
func Open(dir string) (*Repo, error) {
	r := New(dir)
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// NewWithRepo creates a Repo with an existing repository instance.
func NewWithRepo(repo *git.Repository) *Repo {
	r := &Repo{repo: repo}
	r.once.Do(func() {})
	return r
}

func (r *Repo) open() error {
	r.once.Do(func() {
		repo, err := git.PlainOpenWithOptions(r.dir, &git.PlainOpenOptions{DetectDotGit: true})
		if err != nil {
			r.err = domain.NewError(domain.KindExternalTool, fmt.Errorf("open git repository: %w", err))
			return
		}
		r.repo = repo
	})
	return r.err
}

// MergeBase returns the best common ancestor of dest and current.
func (r *Repo) MergeBase(_ context.Context, dest, current string) (string, error) {
	a, err := r.commit(dest)
	if err != nil {
		return "", err
	}
	b, err := r.commit(current)
	if err != nil {
		return "", err
	}
	bases, err := a.MergeBase(b)
	if err != nil {
		return "", domain.NewError(domain.KindExternalTool,
			fmt.Errorf("compute merge-base of %s and %s: %w", dest, current, err))
	}
	if len(bases) == 0 {
		return "", domain.NewError(domain.KindExternalTool,
			fmt.Errorf("%s and %s have no common ancestor", dest, current))
	}
	return bases[0].Hash.String(), nil
}

// Messages returns the messages of every commit reachable from current but
// not from base, each followed by a blank line.
func (r *Repo) Messages(_ context.Context, base, current string) (string, error) {
	baseCommit, err := r.commit(base)
	if err != nil {
		return "", err
	}
	head, err := r.commit(current)
	if err != nil {
		return "", err
	}

	excluded := make(map[plumbing.Hash]bool)
	err = object.NewCommitPreorderIter(baseCommit, nil, nil).ForEach(func(c *object.Commit) error {
		excluded[c.Hash] = true
		return nil
	})
	if err != nil {
		return "", domain.NewError(domain.KindExternalTool, fmt.Errorf("walk history of %s: %w", base, err))
	}

	var sb strings.Builder
	err = object.NewCommitPreorderIter(head, excluded, nil).ForEach(func(c *object.Commit) error {
		sb.WriteString(c.Message)
		if !strings.HasSuffix(c.Message, "\n") {
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
		return nil
	})
	if err != nil {
		return "", domain.NewError(domain.KindExternalTool, fmt.Errorf("walk history of %s: %w", current, err))
	}
	return sb.String(), nil
}

func (r *Repo) commit(rev string) (*object.Commit, error) {
	if err := r.open(); err != nil {
		return nil, err
	}
	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, domain.NewError(domain.KindExternalTool, fmt.Errorf("resolve revision %s: %w", rev, err))
	}
	c, err := r.repo.CommitObject(*hash)
	if err != nil {
		return nil, domain.NewError(domain.KindExternalTool, fmt.Errorf("read commit %s: %w", rev, err))
	}
	return c, nil
}
