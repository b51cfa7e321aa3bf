package domain

import (
	"errors"
	"regexp"
	"strings"
)

// IssueRefExtractor finds fix-claim phrases such as "Fixes #123" or
// "Closes: #45" in free-form text.
type IssueRefExtractor struct {
	pattern *regexp.Regexp
}

var defaultExtractor = MustIssueRefExtractor(DefaultFixVerbs)

// NewIssueRefExtractor builds an extractor for the given verb stems.
// Each stem may be followed by "e", "es" or "ed", then a colon or
// whitespace, then "#" and the issue number.
func NewIssueRefExtractor(verbs []string) (*IssueRefExtractor, error) {
	if len(verbs) == 0 {
		return nil, errors.New("no fix verbs configured")
	}
	quoted := make([]string, 0, len(verbs))
	for _, v := range verbs {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(v))
	}
	if len(quoted) == 0 {
		return nil, errors.New("no fix verbs configured")
	}
	re, err := regexp.Compile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)(?:e|es|ed)?[:\s]\s*#(\d+)`)
	if err != nil {
		return nil, err
	}
	return &IssueRefExtractor{pattern: re}, nil
}

// MustIssueRefExtractor is like NewIssueRefExtractor but panics on error.
func MustIssueRefExtractor(verbs []string) *IssueRefExtractor {
	x, err := NewIssueRefExtractor(verbs)
	if err != nil {
		panic(err)
	}
	return x
}

// Extract returns the issue numbers claimed as fixed across all messages,
// deduplicated, in first-seen order. Empty messages are ignored.
func (x *IssueRefExtractor) Extract(messages ...string) []string {
	seen := make(map[string]bool)
	var issues []string
	for _, msg := range messages {
		if msg == "" {
			continue
		}
		for _, m := range x.pattern.FindAllStringSubmatch(msg, -1) {
			if !seen[m[1]] {
				seen[m[1]] = true
				issues = append(issues, m[1])
			}
		}
	}
	return issues
}

// ExtractIssueRefs runs the default extractor over messages.
func ExtractIssueRefs(messages ...string) []string {
	return defaultExtractor.Extract(messages...)
}
