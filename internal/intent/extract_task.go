package intent

import (
	"regexp"
	"strings"

	"task-command-interpreter/pkg/gid"
)

// Per-field rule lists for task extraction. Ordered strictest first:
// quoted span, then unquoted multi-word span, then a bare capitalized
// word as the last resort.
var taskNameRules = []captureRule{
	rule(`(?:called|named|titled)\s+"([^"]+)"`),
	rule(`(?:called|named|titled)\s+'([^']+)'`),
	rule(`"([^"]+)"`),
	rule(`'([^']+)'`),
	rule(`(?:called|named|titled)\s+(.+)$`),
	rule(`\b(?:create|add|make)\s+(?:a\s+|another\s+)?(?:new\s+)?task\s+(?:to\s+|for\s+)?(.+)$`),
	rule(`\bremind me to\s+(.+)$`),
}

// taskNameCapitalized is the last-resort rule: a bare capitalized span.
// Kept separate so command verbs at sentence start can be filtered out.
var taskNameCapitalized = ruleCS(`\b([A-Z][A-Za-z0-9]+(?:\s+[A-Z][A-Za-z0-9]+)*)\b`)

// capStopWords are capitalized tokens that are command vocabulary, not
// names.
var capStopWords = map[string]bool{
	"Create": true, "Add": true, "Make": true, "New": true, "Task": true,
	"Please": true, "Update": true, "Show": true, "List": true, "I": true,
}

var notesRules = []captureRule{
	rule(`\bwith\s+(?:the\s+)?notes?\s*:?\s*"([^"]+)"`),
	rule(`\bwith\s+(?:the\s+)?notes?\s*:?\s*'([^']+)'`),
	rule(`\b(?:notes?|description)\s*[:=]\s*(.+)$`),
	rule(`\bwith\s+(?:the\s+)?(?:notes?|description)\s+(.+)$`),
}

var dueDateRules = []captureRule{
	rule(`\bdue\s+date\b[^,]*?\b(?:to|on|by|at)\s+(.+?)(?:,| and |\.$|$)`),
	rule(`\bdue(?:\s+date)?(?:\s+(?:on|by|at))?\s*:?\s+(.+?)(?:,| and |\.$|$)`),
	rule(`\bby\s+(today|tonight|tomorrow|next\s+\w+|monday|tuesday|wednesday|thursday|friday|saturday|sunday|end of\s+\w+)\b`),
	rule(`\b(today|tonight|tomorrow|next\s+\w+|in\s+\d+\s+(?:days?|weeks?|months?))\b`),
}

// "assign to me" is both the most common phrasing and the one most easily
// mis-captured by a generic name regex, so the literal "me" check runs
// before any named-entity rule.
var reAssigneeMe = regexp.MustCompile(`(?i)\bassign(?:ed)?(?:\s+(?:it|this|that))?\s+to\s+me\b|\bto\s+myself\b|\bfor\s+myself\b`)

var assigneeRules = []captureRule{
	ruleCS(`(?i:\bassign(?:ed)?(?:\s+(?:it|this|that))?\s+to\s+)([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)?)`),
	rule(`\bassignee\s*[:=]\s*(\S+)`),
	rule(`\bassign(?:ed)?(?:\s+(?:it|this|that))?\s+to\s+(\w+)`),
}

// extractAssignee resolves the assignee field, with the literal "me" rule
// first.
func extractAssignee(text string) string {
	if reAssigneeMe.MatchString(text) {
		return "me"
	}
	if got, ok := firstMatch(text, assigneeRules); ok {
		return cleanSpan(got)
	}
	return ""
}

// extractDueDate returns the raw due-date expression. Relative
// expressions are never resolved to absolute dates here; that belongs to
// the execution layer.
func extractDueDate(text string) string {
	if got, ok := firstMatch(text, dueDateRules); ok {
		return cleanSpan(got)
	}
	return ""
}

func extractNotes(text string) string {
	if got, ok := firstMatch(text, notesRules); ok {
		return cleanSpan(got)
	}
	return ""
}

// ExtractCreateTask pulls the fields of a task-creation request. Field
// absence is a legitimate outcome the caller must handle.
func ExtractCreateTask(text string) CreateTaskIntent {
	out := CreateTaskIntent{
		ProjectName:  extractProjectName(text),
		DueDate:      extractDueDate(text),
		AssigneeName: extractAssignee(text),
		Notes:        extractNotes(text),
	}

	got, ok := firstMatch(text, taskNameRules)
	if !ok {
		if span, spanOK := taskNameCapitalized.match(text); spanOK && !capStopWords[strings.Fields(span)[0]] {
			got, ok = span, true
		}
	}
	if ok {
		name := trimNameTail(cleanSpan(got))
		name, embedded := splitProjectFragment(name)
		if embedded != "" && out.ProjectName == "" {
			out.ProjectName = embedded
		}
		out.TaskName = cleanSpan(name)
	}

	return out
}

// Task reference rules: how an existing task is named in text.
var taskRefRules = []captureRule{
	rule(`\btask\s+(?:called\s+|named\s+)?"([^"]+)"`),
	rule(`\btask\s+(?:called\s+|named\s+)?'([^']+)'`),
	rule(`"([^"]+)"`),
	rule(`'([^']+)'`),
	ruleRef(`\btask\s+(?:called\s+|named\s+)?(.+?)(?:\s+(?:in|for|under)\s+(?:the\s+)?project\b.*|\s+to\b.*|\s+from\b.*|[.,]|$)`),
	rule(`\b(?:mark|complete|finish|close|reopen|show|view|open|about)\s+(?:the\s+)?(.+?)\s+task\b`),
}

// ExtractTaskIdentifier pulls a task reference (name and/or gid, plus
// optional project context) from text. A zero identifier means no
// reference was found.
func ExtractTaskIdentifier(text string) TaskIdentifier {
	ti := TaskIdentifier{}

	if g, ok := gid.ExtractTask(text); ok {
		ti.GID = g
	}

	// Strip links first so URL path segments are not mistaken for names.
	nameText := gid.StripLink(text)
	if got, ok := firstMatch(nameText, taskRefRules); ok {
		name := trimNameTail(cleanSpan(got))
		name, embedded := splitProjectFragment(name)
		if embedded != "" {
			ti.ProjectName = embedded
		}
		// A bare numeric span is an identifier candidate, not a name.
		if !regexp.MustCompile(`^\d+$`).MatchString(name) {
			ti.Name = cleanSpan(name)
		}
	}

	if ti.ProjectName == "" {
		ti.ProjectName = extractProjectName(text)
	}

	return ti
}

// Update-field phrasing. The negative rules run before the broader
// positive ones so "mark incomplete" is never overridden by the later
// "complete" match.
var (
	reCompletedNegative = regexp.MustCompile(`(?i)\breopen\b|\bmark\b.*\b(?:incomplete|not\s+(?:done|complete[d]?))\b|\bun-?complete\b|\bunfinish`)
	reCompletedPositive = regexp.MustCompile(`(?i)\bmark\b.*\b(?:done|complete[d]?|finished)\b|\b(?:complete|close|finish(?:ed)?)\b|\bdone\b`)
)

var newNameRules = []captureRule{
	rule(`\brename\b.*?\bto\s+"([^"]+)"`),
	rule(`\brename\b.*?\bto\s+'([^']+)'`),
	rule(`\brename\b.*?\bto\s+(.+)$`),
	rule(`\b(?:change|set|update)\b.*?\bname\b.*?\bto\s+(.+)$`),
}

// ExtractUpdateFields pulls the partial update record from text.
func ExtractUpdateFields(text string) UpdateFields {
	uf := UpdateFields{
		Notes:        extractNotes(text),
		DueDate:      extractDueDate(text),
		AssigneeName: extractAssignee(text),
	}

	switch {
	case reCompletedNegative.MatchString(text):
		uf.Completed = boolPtr(false)
	case reCompletedPositive.MatchString(text):
		uf.Completed = boolPtr(true)
	}

	if got, ok := firstMatch(text, newNameRules); ok {
		uf.NewName = cleanSpan(got)
	}

	return uf
}

func boolPtr(b bool) *bool { return &b }

// List-task filters.
var (
	reMyTasks        = regexp.MustCompile(`(?i)\bmy\s+tasks\b|\btasks\s+assigned\s+to\s+me\b|\bon my plate\b`)
	reCompletedTasks = regexp.MustCompile(`(?i)\b(?:completed|finished|done|closed)\s+tasks\b|\btasks\s+(?:that\s+are\s+)?(?:done|completed?|finished)\b`)
	reOpenTasks      = regexp.MustCompile(`(?i)\b(?:incomplete|open|pending|unfinished|remaining|outstanding)\s+tasks\b`)
)

// ExtractListTasks pulls list filters: project, assignee, completion.
func ExtractListTasks(text string) ListTasksIntent {
	out := ListTasksIntent{
		ProjectName: extractProjectName(text),
	}
	if reMyTasks.MatchString(text) {
		out.AssigneeName = "me"
	}
	switch {
	case reOpenTasks.MatchString(text):
		out.Completed = boolPtr(false)
	case reCompletedTasks.MatchString(text):
		out.Completed = boolPtr(true)
	}
	return out
}

// Subtask phrasing.
var subtaskNameRules = []captureRule{
	rule(`\bsubtask\s+(?:called\s+|named\s+)?"([^"]+)"`),
	rule(`\bsubtask\s+(?:called\s+|named\s+)?'([^']+)'`),
	rule(`\bsubtask\s+(?:called\s+|named\s+)?(.+?)(?:\s+(?:under|to|for|of)\b.*|[.,]|$)`),
}

var subtaskParentRules = []captureRule{
	rule(`\b(?:under|to|for|of)\s+(?:the\s+)?task\s+(?:called\s+|named\s+)?"([^"]+)"`),
	rule(`\b(?:under|to|for|of)\s+(?:the\s+)?task\s+(?:called\s+|named\s+)?'([^']+)'`),
	rule(`\b(?:under|to|for|of)\s+(?:the\s+)?task\s+(?:called\s+|named\s+)?(.+?)(?:[.,]|$)`),
	rule(`\b(?:under|of)\s+(?:the\s+)?(.+?)(?:[.,]|$)`),
}

// ExtractAddSubtask pulls the subtask name and its parent reference.
func ExtractAddSubtask(text string) AddSubtaskIntent {
	out := AddSubtaskIntent{}

	if got, ok := firstMatch(text, subtaskNameRules); ok {
		out.SubtaskName = trimNameTail(cleanSpan(got))
	}
	if g, ok := gid.ExtractTask(text); ok {
		out.Parent.GID = g
	}
	if got, ok := firstMatch(gid.StripLink(text), subtaskParentRules); ok {
		name := cleanSpan(got)
		if !regexp.MustCompile(`^\d+$`).MatchString(name) && name != out.SubtaskName {
			out.Parent.Name = name
		}
	}
	return out
}

// Dependency phrasing: "<task> depends on <blocker>".
var reDependsOn = regexp.MustCompile(`(?i)^(.*?)\s+(?:no\s+longer\s+)?(?:depends?|dependent)\s+on\s+(.+)$`)
var reBlockedBy = regexp.MustCompile(`(?i)^(.*?)\s+is\s+(?:no\s+longer\s+)?blocked\s+by\s+(.+)$`)

// dependencyVerbPrefix strips the leading command verbs off the dependent
// side ("make task A depend on B" -> "task A").
var dependencyVerbPrefix = regexp.MustCompile(`(?i)^(?:please\s+)?(?:make|set|mark|add\s+(?:a\s+)?dependency(?:\s+so(?:\s+that)?)?|remove\s+(?:the\s+)?dependency(?:\s+so(?:\s+that)?)?)\s+`)

// ExtractDependency pulls both sides of a dependency statement. The same
// shape serves add and remove; the classifier supplies the direction.
func ExtractDependency(text string) DependencyIntent {
	out := DependencyIntent{}

	m := reDependsOn.FindStringSubmatch(text)
	if m == nil {
		m = reBlockedBy.FindStringSubmatch(text)
	}
	if m == nil {
		out.Task = ExtractTaskIdentifier(text)
		return out
	}

	left := dependencyVerbPrefix.ReplaceAllString(strings.TrimSpace(m[1]), "")
	right := strings.TrimSpace(m[2])

	out.Task = sideToIdentifier(left)
	out.DependsOn = sideToIdentifier(right)
	return out
}

// sideToIdentifier converts one side of a dependency phrase into a task
// identifier: gid when the side is a valid token, name otherwise.
func sideToIdentifier(side string) TaskIdentifier {
	side = strings.TrimSpace(side)
	if g, ok := gid.ExtractTask(side); ok {
		return TaskIdentifier{GID: g}
	}
	name := cleanSpan(strings.TrimPrefix(strings.TrimPrefix(side, "task "), "Task "))
	name = regexp.MustCompile(`(?i)^task\s+`).ReplaceAllString(name, "")
	return TaskIdentifier{Name: cleanSpan(name)}
}

// Follower phrasing.
var followerUserRules = []captureRule{
	ruleCS(`(?i:\b(?:add|remove)\s+)([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)?)(?i:\s+(?:as\s+a\s+follower|to|from))`),
	rule(`\b(?:add|remove)\s+(\w+)\s+(?:as\s+a\s+follower|to|from)\b`),
	rule(`\b(?:have|let|make)\s+(\w+)\s+follow\b`),
	rule(`\bunsubscribe\s+(\w+)\b`),
}

var reFollowerMe = regexp.MustCompile(`(?i)\b(?:add|remove)\s+me\b|\bi\s+want\s+to\s+(?:follow|unfollow)\b|\bunsubscribe\s+me\b`)

// ExtractFollower pulls the user and task reference of a follower change.
func ExtractFollower(text string) FollowerIntent {
	out := FollowerIntent{
		Task: ExtractTaskIdentifier(text),
	}
	if reFollowerMe.MatchString(text) {
		out.UserName = "me"
		return out
	}
	if got, ok := firstMatch(text, followerUserRules); ok {
		out.UserName = cleanSpan(got)
	}
	return out
}

// ExtractSetDueDate pulls the task reference and the raw date expression.
func ExtractSetDueDate(text string) SetDueDateIntent {
	return SetDueDateIntent{
		Task:    ExtractTaskIdentifier(text),
		DueDate: extractDueDate(text),
	}
}
