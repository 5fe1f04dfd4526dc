package intent

import (
	"regexp"
	"strings"
)

// The parser has no memory of its own across turns; the caller replays
// accumulated fields. These predicates only keep legitimate short replies
// to a prior creation prompt from being rejected for a missing task name.

var confirmationReplies = map[string]bool{
	"yes": true, "y": true, "yep": true, "yeah": true, "yes please": true,
	"ok": true, "okay": true, "sure": true, "go ahead": true,
	"proceed": true, "do it": true, "confirm": true, "confirmed": true,
	"sounds good": true, "correct": true, "that's right": true,
	"please do": true, "go for it": true,
}

var reConfirmationPrefix = regexp.MustCompile(`(?i)^(?:yes|ok(?:ay)?|sure|go ahead)[,.!]?\s`)

// isConfirmationReply recognizes short confirmatory replies ("yes",
// "ok, proceed").
func isConfirmationReply(text string) bool {
	norm := strings.ToLower(strings.TrimRight(strings.TrimSpace(text), ".!"))
	if confirmationReplies[norm] {
		return true
	}
	return reConfirmationPrefix.MatchString(strings.TrimSpace(text))
}

var (
	reOrdinalSelection = regexp.MustCompile(`(?i)^(?:the\s+)?(?:first|second|third|fourth|fifth|last|(?:option|number)\s+\d+|\d+)(?:\s+one)?$`)
	reBareNamePhrase   = regexp.MustCompile(`^[A-Z][\w&-]*(?:\s+[A-Za-z0-9][\w&-]*){0,4}$`)
)

// isSelectionReply recognizes bare context replies: an ordinal choice or
// a short name-like phrase (typically a project name offered alone).
func isSelectionReply(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	if reOrdinalSelection.MatchString(trimmed) {
		return true
	}
	return reBareNamePhrase.MatchString(trimmed)
}

// isOrdinalReply recognizes only the ordinal form ("the second one",
// "option 2"). The caller maps ordinals against its own suggestion list;
// they never become a project name.
func isOrdinalReply(text string) bool {
	return reOrdinalSelection.MatchString(strings.TrimSpace(text))
}

var reAssignmentReply = regexp.MustCompile(`(?i)^(?:please\s+)?assign(?:\s+(?:it|this|that))?\s+to\s+\S+|^for\s+me$|^to\s+me$`)

// isAssignmentReply recognizes a bare assignment reply ("assign to me",
// "assign it to Alice").
func isAssignmentReply(text string) bool {
	return reAssignmentReply.MatchString(strings.TrimSpace(text))
}

// isCreateContinuation reports whether text is an acceptable continuation
// of a prior creation intent despite carrying no task name.
func isCreateContinuation(text string) bool {
	return isConfirmationReply(text) || isAssignmentReply(text) || isSelectionReply(text)
}
