package domain

// Environment variables read from the CI platform.
const (
	EnvChangeMessage = "CIRRUS_CHANGE_MESSAGE"
	EnvPR            = "CIRRUS_PR"
	EnvChangeInRepo  = "CIRRUS_CHANGE_IN_REPO"
	EnvDestBranch    = "DEST_BRANCH"
)

// DefaultCurrentRef is the revision compared against the destination branch
// when CIRRUS_CHANGE_IN_REPO is not set.
const DefaultCurrentRef = "HEAD"

// Outcome is the terminal state of a check run.
type Outcome string

// Check outcomes.
const (
	OutcomeNoIssuesClaimed Outcome = "no-issues-claimed"
	OutcomeNoSkips         Outcome = "issues-claimed-no-skips"
	OutcomeStaleSkipsFound Outcome = "issues-claimed-skips-found"
)

// Failed reports whether the outcome is a policy violation.
func (o Outcome) Failed() bool {
	return o == OutcomeStaleSkipsFound
}

// Report is the result of a check run.
type Report struct {
	Outcome Outcome     `yaml:"outcome"`
	Issues  []string    `yaml:"issues,omitempty"`
	Matches []MatchLine `yaml:"matches,omitempty"`
}

// Advisory is printed after the list of stale skips.
const Advisory = `Please review the instances above. If any of them refer to the issue
this PR fixes, please remove the skip or FIXME; the test should now pass.
If a skip is still needed for an unrelated reason, update the issue number
it refers to so that it no longer points at a fixed issue.`
