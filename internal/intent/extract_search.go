package intent

import (
	"regexp"
	"strings"
)

// Search phrasing. The resource-type hint is separated from the query
// remainder and its tokens stripped, so the entity resolver is not asked
// to fuzzy-match type-name noise.
var (
	reSearchVerb = regexp.MustCompile(`(?i)^\s*(?:please\s+)?(?:search|find|look\s+(?:up|for)|locate)\s*(?:for\s+)?`)
	reSearchType = regexp.MustCompile(`(?i)^(?:all\s+|my\s+|a\s+|an\s+|the\s+)*(tasks?|projects?|users?|portfolios?|tags?)\b\s*`)
	reSearchGlue = regexp.MustCompile(`(?i)^(?:called|named|titled|about|matching|containing|with|for)\b\s*`)
)

// ExtractSearch pulls the query and optional resource-type hint.
func ExtractSearch(text string) SearchEntityIntent {
	out := SearchEntityIntent{}

	rest := strings.TrimSpace(text)
	if loc := reSearchVerb.FindStringIndex(rest); loc != nil {
		rest = rest[loc[1]:]
	}

	if m := reSearchType.FindStringSubmatch(rest); m != nil {
		out.ResourceType = singularType(m[1])
		rest = rest[len(m[0]):]
	}

	if loc := reSearchGlue.FindStringIndex(rest); loc != nil {
		rest = rest[loc[1]:]
	}

	out.Query = cleanSpan(rest)
	return out
}

// singularType normalizes a plural type hint token.
func singularType(token string) string {
	return strings.TrimSuffix(strings.ToLower(token), "s")
}

// User-info phrasing. "me" stands for the requesting user.
var (
	reUserSelf = regexp.MustCompile(`(?i)\bwho\s+am\s+i\b|\bmy\s+(?:user\s+)?(?:info|profile|account)\b|\babout\s+(?:me|myself)\b|\bmy\s+(?:name|email|workspace)\b`)
)

var userNameRules = []captureRule{
	rule(`\babout\s+user\s+"([^"]+)"`),
	rule(`\babout\s+user\s+'([^']+)'`),
	ruleCS(`(?i:\babout\s+user\s+)([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)?)`),
	rule(`\buser\s+(\S+)`),
}

// ExtractUserInfo pulls the subject of a user-info request.
func ExtractUserInfo(text string) GetUserInfoIntent {
	if reUserSelf.MatchString(text) {
		return GetUserInfoIntent{UserName: "me"}
	}
	if got, ok := firstMatch(text, userNameRules); ok {
		return GetUserInfoIntent{UserName: cleanSpan(got)}
	}
	return GetUserInfoIntent{UserName: "me"}
}
