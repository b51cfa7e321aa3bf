package domain

import "context"

// ProcessRunner runs external commands to completion.
type ProcessRunner interface {
	// Run executes cmd and captures its output.
	// The returned error is non-nil only when the process could not be
	// started; a non-zero exit status is reported in ExecResult.ExitCode.
	Run(ctx context.Context, cmd *ExecCommand) (*ExecResult, error)
}

// Environment provides read access to process environment variables.
type Environment interface {
	// LookupEnv returns the value of key and whether it is set.
	LookupEnv(key string) (string, bool)
}

// CommitLog retrieves commit messages from version control.
type CommitLog interface {
	// MergeBase returns the best common ancestor of the two revisions.
	MergeBase(ctx context.Context, dest, current string) (string, error)

	// Messages returns the full messages of every commit in (base, current],
	// concatenated in log order.
	Messages(ctx context.Context, base, current string) (string, error)
}

// Searcher runs a recursive, case-insensitive text search.
type Searcher interface {
	// Search returns every line under roots matching the extended regular
	// expression pattern.
	Search(ctx context.Context, pattern string, roots []string) ([]MatchLine, error)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the configuration merged over the defaults.
	Load() (*Config, error)
}

// ReportWriter persists the findings of a run.
type ReportWriter interface {
	// Write stores the report.
	Write(report *Report) error
}

// Logger provides categorized leveled logging.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards everything.
type NopLogger struct{}

// Debug does nothing.
func (NopLogger) Debug(_, _ string) {}

// Info does nothing.
func (NopLogger) Info(_, _ string) {}

// Warn does nothing.
func (NopLogger) Warn(_, _ string) {}

// Error does nothing.
func (NopLogger) Error(_, _ string) {}
