package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/fixed-skips/internal/domain"
)

// CheckFixedSkipsInput contains the parameters for a check run.
// Fields are ordered to minimize memory padding.
type CheckFixedSkipsInput struct {
	Roots []string // Directories to search
	Debug bool     // Log discarded scanner lines
}

// CheckFixedSkipsOutput contains the result of a check run.
type CheckFixedSkipsOutput struct {
	Report *domain.Report
}

// CheckFixedSkips is the use case that fails a change claiming to fix
// issues that still have skips or FIXMEs pointing at them.
type CheckFixedSkips struct {
	changeMessage *ReadChangeMessage
	commitLog     *ReadCommitLog
	scan          *ScanSkips
	extractor     *domain.IssueRefExtractor
	reports       domain.ReportWriter
	logger        domain.Logger
}

// NewCheckFixedSkips creates a new CheckFixedSkips use case.
// reports may be nil.
func NewCheckFixedSkips(
	changeMessage *ReadChangeMessage,
	commitLog *ReadCommitLog,
	scan *ScanSkips,
	extractor *domain.IssueRefExtractor,
	reports domain.ReportWriter,
	logger domain.Logger,
) *CheckFixedSkips {
	return &CheckFixedSkips{
		changeMessage: changeMessage,
		commitLog:     commitLog,
		scan:          scan,
		extractor:     extractor,
		reports:       reports,
		logger:        logger,
	}
}

// Execute runs the check.
//
// Processing:
//   - Read the PR description and the commit log
//   - Extract the issue numbers claimed as fixed; none means success
//   - Scan the tree for skips naming those issues; none means success
//   - Otherwise the outcome is OutcomeStaleSkipsFound
//
// A found skip is not an error; callers inspect Report.Outcome.
func (uc *CheckFixedSkips) Execute(ctx context.Context, in CheckFixedSkipsInput) (*CheckFixedSkipsOutput, error) {
	msg, err := uc.changeMessage.Execute(ctx, ReadChangeMessageInput{})
	if err != nil {
		return nil, fmt.Errorf("read change message: %w", err)
	}

	commits, err := uc.commitLog.Execute(ctx, ReadCommitLogInput{})
	if err != nil {
		return nil, fmt.Errorf("read commit log: %w", err)
	}

	report := &domain.Report{
		Issues: uc.extractor.Extract(msg.Message, commits.Log),
	}

	if len(report.Issues) == 0 {
		uc.logger.Debug("check", "no fix claims found")
		report.Outcome = domain.OutcomeNoIssuesClaimed
		return uc.finish(report)
	}
	uc.logger.Debug("check", "issues claimed as fixed: "+strings.Join(report.Issues, ", "))

	scan, err := uc.scan.Execute(ctx, ScanSkipsInput{
		Issues: report.Issues,
		Roots:  in.Roots,
		Debug:  in.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("scan for skips: %w", err)
	}

	report.Matches = scan.Matches
	if len(report.Matches) == 0 {
		report.Outcome = domain.OutcomeNoSkips
	} else {
		report.Outcome = domain.OutcomeStaleSkipsFound
	}
	return uc.finish(report)
}

func (uc *CheckFixedSkips) finish(report *domain.Report) (*CheckFixedSkipsOutput, error) {
	if uc.reports != nil {
		if err := uc.reports.Write(report); err != nil {
			return nil, fmt.Errorf("write report: %w", err)
		}
	}
	return &CheckFixedSkipsOutput{Report: report}, nil
}
