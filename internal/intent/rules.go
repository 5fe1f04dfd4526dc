package intent

import (
	"regexp"
	"strings"
)

// captureRule is one entry in an ordered per-field rule list. Rules are
// data so phrasings can be appended without touching control flow, and so
// the matching engine could later be swapped behind the same extract
// signatures.
type captureRule struct {
	re        *regexp.Regexp
	leadCheck bool
}

// rule compiles a case-insensitive capture rule.
func rule(expr string) captureRule {
	return captureRule{re: regexp.MustCompile(`(?i)` + expr)}
}

// ruleCS compiles a case-sensitive capture rule (used where capitalization
// itself is the signal, e.g. bare proper-noun names).
func ruleCS(expr string) captureRule {
	return captureRule{re: regexp.MustCompile(expr)}
}

// ruleRef compiles a case-insensitive rule whose capture is discarded when
// it starts with a connector word. A connector lead means the rule grabbed
// trailing grammar ("task as done") instead of a name, so the match is
// dropped and later rules get a chance.
func ruleRef(expr string) captureRule {
	return captureRule{re: regexp.MustCompile(`(?i)` + expr), leadCheck: true}
}

// refStopLeads are connector words a captured reference can never start
// with.
var refStopLeads = map[string]bool{
	"as":   true,
	"is":   true,
	"was":  true,
	"to":   true,
	"into": true,
	"from": true,
	"with": true,
}

// match returns the first non-empty capture group, trimmed.
func (r captureRule) match(text string) (string, bool) {
	m := r.re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	for _, g := range m[1:] {
		if s := strings.TrimSpace(g); s != "" {
			if r.leadCheck && refStopLeads[strings.ToLower(strings.Fields(s)[0])] {
				return "", false
			}
			return s, true
		}
	}
	return "", false
}

// firstMatch runs an ordered rule list and takes the first hit. Later
// rules catch phrasings the stricter earlier rules miss.
func firstMatch(text string, rules []captureRule) (string, bool) {
	for _, r := range rules {
		if got, ok := r.match(text); ok {
			return got, true
		}
	}
	return "", false
}

// cleanSpan strips wrapping quotes, leading articles and trailing
// punctuation from a captured span.
func cleanSpan(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	s = strings.TrimRight(s, ".,!?;:")
	lower := strings.ToLower(s)
	for _, article := range []string{"the ", "a ", "an "} {
		if strings.HasPrefix(lower, article) {
			s = s[len(article):]
			break
		}
	}
	return strings.TrimSpace(s)
}

// Connector fragments that frequently trail a captured task name. They
// belong to other fields (assignee, due date, project, notes) and are cut
// off so the name span stays clean.
var nameTailTrimmers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s+and\s+assign\b.*$`),
	regexp.MustCompile(`(?i)\s+assign(?:ed)?\s+(?:it\s+|this\s+)?to\b.*$`),
	regexp.MustCompile(`(?i)\s+and\s+(?:set|make)\b.*$`),
	regexp.MustCompile(`(?i)\s+due\b.*$`),
	regexp.MustCompile(`(?i)\s+by\s+(?:today|tonight|tomorrow|next\b|monday|tuesday|wednesday|thursday|friday|saturday|sunday|end of\b).*$`),
	regexp.MustCompile(`(?i)\s+with\s+(?:the\s+)?notes?\b.*$`),
	regexp.MustCompile(`(?i)\s+(?:in|for|under)\s+(?:the\s+)?project\b.*$`),
}

// trimNameTail removes trailing connector fragments from a name span.
func trimNameTail(name string) string {
	for _, re := range nameTailTrimmers {
		name = re.ReplaceAllString(name, "")
	}
	return strings.TrimSpace(name)
}

// reProjectFragment recognizes an embedded "in/for project <name>" span.
// Cross-field consistency: a span must never be simultaneously task name
// and project reference, so this fragment is stripped from captured names
// and its payload moved to the project field.
var reProjectFragment = regexp.MustCompile(`(?i)\s*(?:in|for|under)\s+(?:the\s+)?project\s+(.+)$`)

// splitProjectFragment splits an embedded project reference off a name
// span. Returns the cleaned name and the project name ("" when absent).
func splitProjectFragment(name string) (string, string) {
	m := reProjectFragment.FindStringSubmatch(name)
	if m == nil {
		return name, ""
	}
	project := cleanSpan(m[1])
	cleaned := strings.TrimSpace(reProjectFragment.ReplaceAllString(name, ""))
	return cleaned, project
}
