package gid

import (
	"regexp"
	"strings"
)

// Kind selects which resource's identifier to extract.
type Kind string

const (
	KindTask    Kind = "task"
	KindProject Kind = "project"
)

// GID length bounds. Real identifiers are fixed-width numeric tokens;
// anything outside this window is treated as not-an-identifier.
const (
	minLen = 16
	maxLen = 19
)

// IsValid reports whether s is a well-formed identifier: all digits,
// 16 to 19 characters. This check is authoritative: a failing token is
// "not found", never coerced.
func IsValid(s string) bool {
	if len(s) < minLen || len(s) > maxLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Extraction rules are tried in strict priority order; the first rule
// producing a valid token wins. Bare-token matching is last because it is
// the most failure-prone (phone numbers, dates).
var (
	// Canonical resource link: https://<host>/0/<projectGID>/<taskGID>
	reResourceLink = regexp.MustCompile(`https?://[^\s/]+/0/(\d+)/(\d+)`)

	// Explicit labels: "task id: 123...", "task gid 123...", "task #123..."
	reTaskLabel = regexp.MustCompile(`(?i)\btask\s*(?:id|gid)?\s*[:#=]\s*(\d+)`)
	reTaskWord  = regexp.MustCompile(`(?i)\btask\s+(?:id|gid)\s+(\d+)`)

	reProjectLabel = regexp.MustCompile(`(?i)\bproject\s*(?:id|gid)?\s*[:#=]\s*(\d+)`)
	reProjectWord  = regexp.MustCompile(`(?i)\bproject\s+(?:id|gid)\s+(\d+)`)

	// Parenthetical annotation: "Ship the release (1234567890123456)"
	reParenthetical = regexp.MustCompile(`\((\d+)\)`)

	// Bare numeric token.
	reBareToken = regexp.MustCompile(`\b(\d+)\b`)

	// A bare token immediately preceded by a task label must never be
	// taken as a project identifier. RE2 has no lookbehind, so the guard
	// is applied to the text before the match instead.
	reTaskLabelSuffix = regexp.MustCompile(`(?i)\btask\s*(?:id|gid)?\s*[:#=]?\s*$`)
)

// ExtractTask pulls a task identifier out of free text.
//
// A canonical link is trusted positionally: its path segments are accepted
// as-is, since the link structure already disambiguates them. All other
// rules require IsValid.
func ExtractTask(text string) (string, bool) {
	if m := reResourceLink.FindStringSubmatch(text); m != nil {
		return m[2], true
	}
	for _, re := range []*regexp.Regexp{reTaskLabel, reTaskWord} {
		if m := re.FindStringSubmatch(text); m != nil && IsValid(m[1]) {
			return m[1], true
		}
	}
	if m := reParenthetical.FindStringSubmatch(text); m != nil && IsValid(m[1]) {
		return m[1], true
	}
	if m := reBareToken.FindStringSubmatch(text); m != nil && IsValid(m[1]) {
		return m[1], true
	}
	return "", false
}

// ExtractProject pulls a project identifier out of free text.
func ExtractProject(text string) (string, bool) {
	if m := reResourceLink.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	for _, re := range []*regexp.Regexp{reProjectLabel, reProjectWord} {
		if m := re.FindStringSubmatch(text); m != nil && IsValid(m[1]) {
			return m[1], true
		}
	}
	if m := reParenthetical.FindStringSubmatch(text); m != nil && IsValid(m[1]) {
		return m[1], true
	}
	// Bare token, skipping tokens that belong to a task label so task and
	// project identifiers in the same utterance never cross-contaminate.
	for _, loc := range reBareToken.FindAllStringSubmatchIndex(text, -1) {
		token := text[loc[2]:loc[3]]
		if !IsValid(token) {
			continue
		}
		if reTaskLabelSuffix.MatchString(text[:loc[2]]) {
			continue
		}
		return token, true
	}
	return "", false
}

// Extract dispatches on kind. Unknown kinds fall back to bare-token
// extraction only.
func Extract(kind Kind, text string) (string, bool) {
	switch kind {
	case KindTask:
		return ExtractTask(text)
	case KindProject:
		return ExtractProject(text)
	}
	if m := reBareToken.FindStringSubmatch(text); m != nil && IsValid(m[1]) {
		return m[1], true
	}
	return "", false
}

// StripLink removes canonical resource links from text. Useful before
// name extraction so URLs are not mistaken for entity names.
func StripLink(text string) string {
	return strings.TrimSpace(reResourceLink.ReplaceAllString(text, ""))
}
