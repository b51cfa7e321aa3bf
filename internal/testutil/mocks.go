// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/fixed-skips/internal/domain"
)

// MockRunResponse is one canned reply of MockRunner.
type MockRunResponse struct {
	Err    error
	Stdout string
	Stderr string
	Exit   int
}

// MockRunner is a test double for domain.ProcessRunner.
// Responses are consumed in call order.
type MockRunner struct {
	Responses []MockRunResponse
	Calls     []domain.ExecCommand
}

// Ensure MockRunner implements domain.ProcessRunner interface.
var _ domain.ProcessRunner = (*MockRunner)(nil)

// Run records the command and returns the next canned response.
func (m *MockRunner) Run(_ context.Context, cmd *domain.ExecCommand) (*domain.ExecResult, error) {
	m.Calls = append(m.Calls, *cmd)
	if len(m.Responses) == 0 {
		return nil, fmt.Errorf("mock runner: unexpected call to %s", cmd.Program)
	}
	r := m.Responses[0]
	m.Responses = m.Responses[1:]
	if r.Err != nil {
		return nil, r.Err
	}
	return &domain.ExecResult{
		Stdout:   []byte(r.Stdout),
		Stderr:   []byte(r.Stderr),
		ExitCode: r.Exit,
	}, nil
}

// MockEnv is a test double for domain.Environment.
type MockEnv map[string]string

// Ensure MockEnv implements domain.Environment interface.
var _ domain.Environment = MockEnv(nil)

// LookupEnv returns the configured value.
func (m MockEnv) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// MockCommitLog is a test double for domain.CommitLog.
// Fields are ordered to minimize memory padding.
type MockCommitLog struct {
	MergeBaseErr   error
	MessagesErr    error
	Base           string
	Log            string
	GotDest        string
	GotCurrent     string
	GotBase        string
	MergeBaseCalls int
	MessagesCalls  int
}

// Ensure MockCommitLog implements domain.CommitLog interface.
var _ domain.CommitLog = (*MockCommitLog)(nil)

// MergeBase records the call and returns the configured base.
func (m *MockCommitLog) MergeBase(_ context.Context, dest, current string) (string, error) {
	m.MergeBaseCalls++
	m.GotDest = dest
	m.GotCurrent = current
	if m.MergeBaseErr != nil {
		return "", m.MergeBaseErr
	}
	return m.Base, nil
}

// Messages records the call and returns the configured log.
func (m *MockCommitLog) Messages(_ context.Context, base, current string) (string, error) {
	m.MessagesCalls++
	m.GotBase = base
	m.GotCurrent = current
	if m.MessagesErr != nil {
		return "", m.MessagesErr
	}
	return m.Log, nil
}

// MockSearcher is a test double for domain.Searcher.
type MockSearcher struct {
	Err        error
	Pattern    string
	Roots      []string
	Lines      []domain.MatchLine
	SearchCall int
}

// Ensure MockSearcher implements domain.Searcher interface.
var _ domain.Searcher = (*MockSearcher)(nil)

// Search records the call and returns the configured lines.
func (m *MockSearcher) Search(_ context.Context, pattern string, roots []string) ([]domain.MatchLine, error) {
	m.SearchCall++
	m.Pattern = pattern
	m.Roots = roots
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]domain.MatchLine(nil), m.Lines...), nil
}

// MockLogEntry is one message captured by MockLogger.
type MockLogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger.
type MockLogger struct {
	Entries []MockLogEntry
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

// Debug records a debug message.
func (m *MockLogger) Debug(category, msg string) { m.add("DEBUG", category, msg) }

// Info records an info message.
func (m *MockLogger) Info(category, msg string) { m.add("INFO", category, msg) }

// Warn records a warning message.
func (m *MockLogger) Warn(category, msg string) { m.add("WARN", category, msg) }

// Error records an error message.
func (m *MockLogger) Error(category, msg string) { m.add("ERROR", category, msg) }

func (m *MockLogger) add(level, category, msg string) {
	m.Entries = append(m.Entries, MockLogEntry{Level: level, Category: category, Msg: msg})
}

// Messages returns the captured messages of the given level.
func (m *MockLogger) Messages(level string) []string {
	var out []string
	for _, e := range m.Entries {
		if e.Level == level {
			out = append(out, e.Msg)
		}
	}
	return out
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config *domain.Config
	Err    error
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or the defaults.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// MockReportWriter is a test double for domain.ReportWriter.
type MockReportWriter struct {
	Err     error
	Reports []*domain.Report
}

// Ensure MockReportWriter implements domain.ReportWriter interface.
var _ domain.ReportWriter = (*MockReportWriter)(nil)

// Write records the report.
func (m *MockReportWriter) Write(report *domain.Report) error {
	if m.Err != nil {
		return m.Err
	}
	m.Reports = append(m.Reports, report)
	return nil
}

// ErrMock is a generic error for failure injection.
var ErrMock = errors.New("mock error")
