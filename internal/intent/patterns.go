package intent

import "regexp"

// operationPatterns pairs one operation with the regexes that select it.
type operationPatterns struct {
	op       OperationType
	patterns []*regexp.Regexp
}

func compileAll(exprs ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		res = append(res, regexp.MustCompile(`(?i)`+e))
	}
	return res
}

// classifierTable is scanned in declaration order; the first operation
// with a matching pattern wins. Order is significant: several operations
// share surface vocabulary ("update", "mark", "complete"), so the more
// specific pattern sets are declared ahead of the general ones. Reordering
// entries changes behavior; the regression tests in classifier_test.go
// pin the override cases.
var classifierTable = []operationPatterns{
	{OperationGetUserInfo, compileAll(
		`\bwho am i\b`,
		`\bmy (?:user )?(?:info|profile|account)\b`,
		`\b(?:show|tell) me about (?:my account|myself)\b`,
		`\bwhat(?:'s| is) my (?:name|email|workspace)\b`,
	)},
	{OperationAddSubtask, compileAll(
		`\b(?:add|create|make) (?:a |new )?subtask\b`,
		`\bsubtask\b.*\b(?:under|to|for|of)\b`,
	)},
	{OperationListSubtasks, compileAll(
		`\b(?:list|show|view|get|what are)\b.*\bsubtasks\b`,
		`\bsubtasks (?:of|in|under|for)\b`,
	)},
	// Removal phrasing first: the broad "depends on" pattern below would
	// otherwise claim "no longer depends on".
	{OperationRemoveDependency, compileAll(
		`\bremove (?:the |a )?dependency\b`,
		`\bno longer depends? on\b`,
		`\bdoes ?n[o']t depend on\b`,
		`\bunblock\b`,
	)},
	{OperationAddDependency, compileAll(
		`\badd (?:a )?dependency\b`,
		`\b(?:make|set|mark)\b.*\bdepend(?:s|ent)? on\b`,
		`\bis blocked by\b`,
		`\bdepends on\b`,
	)},
	{OperationAddFollower, compileAll(
		`\badd\b.*\b(?:as a )?followers?\b`,
		`\b(?:have|let|make)\b.*\bfollow (?:the |this )?task\b`,
		`\bsubscribe\b.*\bto (?:the |this )?task\b`,
	)},
	{OperationRemoveFollower, compileAll(
		`\bremove\b.*\bfollowers?\b`,
		`\bunfollow\b`,
		`\bunsubscribe\b`,
		`\bstop following\b`,
	)},
	{OperationMoveTaskToSection, compileAll(
		`\bmove\b.*\b(?:to|into) (?:the |a )?section\b`,
		`\bmove (?:the )?task\b.*\b(?:to|into)\b`,
		`\bput\b.*\bin (?:the )?section\b`,
	)},
	{OperationCreateSection, compileAll(
		`\b(?:create|add|make) (?:a |new )?section\b`,
		`\bnew section\b`,
	)},
	{OperationListSections, compileAll(
		`\b(?:list|show|view|what are|get)\b.*\bsections\b`,
		`\bsections (?:of|in|for)\b`,
	)},
	{OperationSetDueDate, compileAll(
		`\b(?:set|change|update|move|push)\b.*\bdue date\b`,
		`\bdue date\b.*\bto\b`,
		`\bmake\b.*\bdue (?:on|by)?\b`,
		`\b(?:set|change)\b.*\bdeadline\b`,
	)},
	// Negative completion phrasing must be classified before the broad
	// completion verbs pick it up ("mark incomplete" contains "complete").
	{OperationUpdateTask, compileAll(
		`\breopen\b`,
		`\bmark\b.*\b(?:incomplete|not (?:done|complete[d]?))\b`,
		`\bun-?complete\b`,
		`\b(?:update|change|rename|edit|modify)\b.*\btask\b`,
		`\b(?:change|set|update)\b.*\b(?:assignee|notes?|description) (?:of|on|for)\b.*\btask\b`,
	)},
	{OperationCompleteTask, compileAll(
		`\bmark\b.*\b(?:as )?(?:done|complete[d]?|finished)\b`,
		`\b(?:complete|finish|close)\b.*\btask\b`,
		`\bcheck off\b`,
		// Pronoun is mandatory: a bare "completed" is usually the
		// adjective ("show completed tasks"), which belongs to listing.
		`\b(?:i'?ve|i)\s+(?:finished|completed|done with)\b`,
	)},
	{OperationCreateTask, compileAll(
		`\b(?:create|add|make)\b.*\btask\b`,
		`\bnew task\b`,
		`\bremind me to\b`,
		`\b(?:add|put)\b.*\bto(?: my)? (?:to-?do|task) list\b`,
	)},
	{OperationListTasks, compileAll(
		`\b(?:list|show|view|see|display|what are|get)\b.*\btasks\b`,
		`\bmy tasks\b`,
		`\btasks (?:in|for|from|assigned)\b`,
		`\bwhat(?:'s| is) on my plate\b`,
	)},
	{OperationGetTaskDetails, compileAll(
		`\b(?:show|view|get|see|open)\b.*\b(?:details? (?:of|for|about|on))\b`,
		`\b(?:details?|info|information) (?:of|for|about|on)\b.*\btask\b`,
		`\btell me about (?:the |this )?task\b`,
		`\bwhat(?:'s| is) (?:the status of|in)\b.*\btask\b`,
		`\b(?:show|view|open|get)\b.*\btask\b`,
	)},
	{OperationCreateProject, compileAll(
		`\b(?:create|add|make)\b.*\bproject\b`,
		`\bnew project\b`,
		`\bstart a project\b`,
	)},
	{OperationUpdateProject, compileAll(
		`\b(?:update|change|rename|edit|modify)\b.*\bproject\b`,
		`\b(?:archive|unarchive)\b.*\bproject\b`,
		`\bproject status\b.*\bto\b`,
	)},
	{OperationListProjects, compileAll(
		`\b(?:list|show|view|see|display|what are|get)\b.*\bprojects\b`,
		`\bmy projects\b`,
		`\bprojects (?:in|for|from)\b`,
	)},
	{OperationSearchEntity, compileAll(
		`\bsearch\b`,
		`\bfind\b`,
		`\blook (?:up|for)\b`,
		`\blocate\b`,
	)},
}

// Keyword fallback vocabulary: coarse verb buckets combined with the bare
// nouns "task"/"project" when no pattern matched. A best-effort guess is
// more useful downstream than an outright UNKNOWN when noun and verb are
// clear even if the exact phrasing wasn't anticipated.
var fallbackVerbs = []struct {
	op     map[string]OperationType // keyed by noun: "task" / "project"
	tokens []string
}{
	{
		op:     map[string]OperationType{"task": OperationCreateTask, "project": OperationCreateProject},
		tokens: []string{"create", "add", "make", "new", "remind"},
	},
	{
		op:     map[string]OperationType{"task": OperationUpdateTask, "project": OperationUpdateProject},
		tokens: []string{"update", "change", "edit", "rename", "modify"},
	},
	{
		op:     map[string]OperationType{"task": OperationCompleteTask},
		tokens: []string{"complete", "done", "finish", "finished"},
	},
	{
		op:     map[string]OperationType{"task": OperationListTasks, "project": OperationListProjects},
		tokens: []string{"list", "all", "every", "overview"},
	},
	{
		op:     map[string]OperationType{"task": OperationGetTaskDetails},
		tokens: []string{"detail", "details", "show", "view", "about", "status"},
	},
}
