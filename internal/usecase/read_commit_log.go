package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/fixed-skips/internal/domain"
)

// ReadCommitLogInput contains the parameters for reading the commit log.
type ReadCommitLogInput struct{}

// ReadCommitLogOutput contains the concatenated commit messages.
type ReadCommitLogOutput struct {
	Log     string // Empty when DEST_BRANCH is not set
	Base    string // Merge-base commit
	Current string // Revision compared against the destination branch
}

// ReadCommitLog is the use case for collecting commit messages of the change.
type ReadCommitLog struct {
	env    domain.Environment
	commit domain.CommitLog
	logger domain.Logger
}

// NewReadCommitLog creates a new ReadCommitLog use case.
func NewReadCommitLog(env domain.Environment, commit domain.CommitLog, logger domain.Logger) *ReadCommitLog {
	return &ReadCommitLog{
		env:    env,
		commit: commit,
		logger: logger,
	}
}

// Execute returns the messages of every commit in (merge-base, current].
//
// Processing:
//   - Skip entirely if DEST_BRANCH is unset
//   - current is CIRRUS_CHANGE_IN_REPO, or HEAD
//   - Compute merge-base of DEST_BRANCH and current
//   - Read the commit messages in the range
func (uc *ReadCommitLog) Execute(ctx context.Context, _ ReadCommitLogInput) (*ReadCommitLogOutput, error) {
	dest, _ := uc.env.LookupEnv(domain.EnvDestBranch)
	if dest == "" {
		uc.logger.Debug("git", "DEST_BRANCH not set, skipping commit log")
		return &ReadCommitLogOutput{}, nil
	}

	current, _ := uc.env.LookupEnv(domain.EnvChangeInRepo)
	if current == "" {
		current = domain.DefaultCurrentRef
	}

	base, err := uc.commit.MergeBase(ctx, dest, current)
	if err != nil {
		return nil, fmt.Errorf("merge-base: %w", err)
	}
	uc.logger.Debug("git", fmt.Sprintf("merge-base of %s and %s is %s", dest, current, base))

	log, err := uc.commit.Messages(ctx, base, current)
	if err != nil {
		return nil, fmt.Errorf("commit log: %w", err)
	}

	return &ReadCommitLogOutput{
		Log:     log,
		Base:    base,
		Current: current,
	}, nil
}
