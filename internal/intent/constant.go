package intent

// Log prefixes
const (
	LogPrefixParse = "internal.intent.ParseIntent"
)

// Messages carried by the Unknown variant. They are user-facing re-prompt
// text: generic for a classification miss, targeted when classification
// succeeded but a required field was missing.
const (
	MsgNoOperation = `I couldn't work out what you want to do. Try rephrasing, for example "create a task called Review metrics" or "list my tasks".`

	MsgMissingTaskName    = "Please provide a task name, for example: create a task called 'Review metrics'."
	MsgMissingTaskRef     = "Please tell me which task you mean, by name or id."
	MsgMissingUpdateField = "Please tell me what to change on the task (name, notes, due date, assignee, or completion)."
	MsgMissingProjectName = "Please provide a project name, for example: create a project called 'Q3 Planning'."
	MsgMissingProjectRef  = "Please tell me which project you mean, by name or id."
	MsgMissingQuery       = "Please tell me what to search for."
	MsgMissingFollower    = "Please tell me which user to change as follower, and on which task."
	MsgMissingDueDate     = "Please provide the due date, for example: set the due date of 'Review metrics' to tomorrow."
	MsgMissingSubtask     = "Please provide the subtask name and its parent task."
	MsgMissingDependency  = "Please name both tasks, for example: make 'Deploy' depend on 'Review'."
	MsgMissingSection     = "Please provide the section name."
)
