package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/fixed-skips/internal/domain"
)

// ScanSkipsInput contains the parameters for scanning the tree.
// Fields are ordered to minimize memory padding.
type ScanSkipsInput struct {
	Issues []string // Issue numbers claimed as fixed (required, non-empty)
	Roots  []string // Directories to search
	Debug  bool     // Log every discarded line
}

// ScanSkipsOutput contains the skip/FIXME lines found.
type ScanSkipsOutput struct {
	Matches   []domain.MatchLine // Accepted lines, sorted
	Discarded int                // Lines dropped by the file filter
}

// ScanSkips is the use case for finding skips that reference given issues.
type ScanSkips struct {
	searcher domain.Searcher
	filter   *domain.FileFilter
	logger   domain.Logger
}

// NewScanSkips creates a new ScanSkips use case.
func NewScanSkips(searcher domain.Searcher, filter *domain.FileFilter, logger domain.Logger) *ScanSkips {
	return &ScanSkips{
		searcher: searcher,
		filter:   filter,
		logger:   logger,
	}
}

// Execute searches for skip or FIXME lines naming any of the issues.
// Lines in files that cannot hold a test skip are dropped.
func (uc *ScanSkips) Execute(ctx context.Context, in ScanSkipsInput) (*ScanSkipsOutput, error) {
	pattern, err := domain.SkipPattern(in.Issues)
	if err != nil {
		return nil, domain.NewError(domain.KindInternalContract, err)
	}

	lines, err := uc.searcher.Search(ctx, pattern, in.Roots)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	out := &ScanSkipsOutput{}
	for _, l := range lines {
		if !uc.filter.Accepts(l.Path) {
			out.Discarded++
			if in.Debug {
				uc.logger.Debug("scan", fmt.Sprintf("ignoring match in non-test file: %s", l))
			}
			continue
		}
		out.Matches = append(out.Matches, l)
	}
	domain.SortMatchLines(out.Matches)

	return out, nil
}
