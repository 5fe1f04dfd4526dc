package intent

import (
	"context"
	"strings"

	"task-command-interpreter/internal/model"
	pkgLog "task-command-interpreter/pkg/log"
)

// ParseIntent turns free text into a tagged operation descriptor. It
// never fails: classification misses and missing required fields both
// surface as the Unknown variant with a re-prompt message, so the caller
// inside a conversational loop is never aborted by a fault.
func (p *Parser) ParseIntent(ctx context.Context, text string) ParsedIntent {
	rc := model.NewRequestContext()
	ctx = pkgLog.WithRequestID(ctx, rc.RequestID)

	op := Classify(text)
	continuation := false
	if op == OperationUnknown && isCreateContinuation(text) {
		// Short confirmation, selection and assignment replies continue a
		// prior creation turn instead of failing classification.
		op = OperationCreateTask
		continuation = true
	}
	p.l.Infof(ctx, "%s: classified %q as %s", LogPrefixParse, snippet(text), op)

	parsed := p.dispatch(op, text, continuation)
	if parsed.Operation == OperationUnknown && parsed.Unknown != nil {
		p.l.Infof(ctx, "%s: unresolved (attempted %v) in %s", LogPrefixParse, parsed.Unknown.Attempted, rc.Elapsed())
	}
	return parsed
}

// dispatch runs the extractor for the classified operation and validates
// the minimum required fields. Validation failures return the Unknown
// variant carrying the attempted operation so the caller can re-prompt
// for the specific missing field.
func (p *Parser) dispatch(op OperationType, text string, continuation bool) ParsedIntent {
	switch op {
	case OperationCreateTask:
		out := ExtractCreateTask(text)
		if continuation {
			// The reply continues a prior creation turn. It never carries
			// a task name of its own; a name-like span is context, not a
			// name.
			out.Continuation = true
			out.TaskName = ""
			if out.ProjectName == "" && out.AssigneeName == "" &&
				isSelectionReply(text) && !isOrdinalReply(text) && !isConfirmationReply(text) {
				// A bare name-like reply is a project selection.
				out.ProjectName = cleanSpan(text)
			}
			return ParsedIntent{Operation: op, CreateTask: &out}
		}
		if out.TaskName == "" {
			return unknown(MsgMissingTaskName, OperationCreateTask)
		}
		return ParsedIntent{Operation: op, CreateTask: &out}

	case OperationUpdateTask:
		out := UpdateTaskIntent{
			Task:   ExtractTaskIdentifier(text),
			Fields: ExtractUpdateFields(text),
		}
		if out.Task.IsZero() {
			return unknown(MsgMissingTaskRef, op)
		}
		if out.Fields.IsZero() {
			return unknown(MsgMissingUpdateField, op)
		}
		return ParsedIntent{Operation: op, UpdateTask: &out}

	case OperationGetTaskDetails:
		out := TaskDetailsIntent{Task: ExtractTaskIdentifier(text)}
		if out.Task.IsZero() {
			return unknown(MsgMissingTaskRef, op)
		}
		return ParsedIntent{Operation: op, GetTaskDetails: &out}

	case OperationListTasks:
		out := ExtractListTasks(text)
		return ParsedIntent{Operation: op, ListTasks: &out}

	case OperationCompleteTask:
		out := CompleteTaskIntent{Task: ExtractTaskIdentifier(text)}
		if out.Task.IsZero() {
			return unknown(MsgMissingTaskRef, op)
		}
		return ParsedIntent{Operation: op, CompleteTask: &out}

	case OperationCreateProject:
		out := ExtractCreateProject(text)
		if out.ProjectName == "" {
			return unknown(MsgMissingProjectName, op)
		}
		return ParsedIntent{Operation: op, CreateProject: &out}

	case OperationUpdateProject:
		out := UpdateProjectIntent{
			Project: ExtractProjectIdentifier(text),
			Fields:  ExtractProjectUpdateFields(text),
		}
		if out.Project.IsZero() {
			return unknown(MsgMissingProjectRef, op)
		}
		if out.Fields.IsZero() {
			return unknown(MsgMissingUpdateField, op)
		}
		return ParsedIntent{Operation: op, UpdateProject: &out}

	case OperationListProjects:
		out := ExtractListProjects(text)
		return ParsedIntent{Operation: op, ListProjects: &out}

	case OperationGetUserInfo:
		out := ExtractUserInfo(text)
		return ParsedIntent{Operation: op, GetUserInfo: &out}

	case OperationSearchEntity:
		out := ExtractSearch(text)
		if out.Query == "" {
			return unknown(MsgMissingQuery, op)
		}
		return ParsedIntent{Operation: op, SearchEntity: &out}

	case OperationAddFollower, OperationRemoveFollower:
		out := ExtractFollower(text)
		if out.Task.IsZero() || out.UserName == "" {
			return unknown(MsgMissingFollower, op)
		}
		if op == OperationAddFollower {
			return ParsedIntent{Operation: op, AddFollower: &out}
		}
		return ParsedIntent{Operation: op, RemoveFollower: &out}

	case OperationSetDueDate:
		out := ExtractSetDueDate(text)
		if out.Task.IsZero() {
			return unknown(MsgMissingTaskRef, op)
		}
		if out.DueDate == "" {
			return unknown(MsgMissingDueDate, op)
		}
		return ParsedIntent{Operation: op, SetDueDate: &out}

	case OperationAddSubtask:
		out := ExtractAddSubtask(text)
		if out.SubtaskName == "" || out.Parent.IsZero() {
			return unknown(MsgMissingSubtask, op)
		}
		return ParsedIntent{Operation: op, AddSubtask: &out}

	case OperationListSubtasks:
		out := ListSubtasksIntent{Task: ExtractTaskIdentifier(text)}
		if out.Task.IsZero() {
			return unknown(MsgMissingTaskRef, op)
		}
		return ParsedIntent{Operation: op, ListSubtasks: &out}

	case OperationAddDependency, OperationRemoveDependency:
		out := ExtractDependency(text)
		if out.Task.IsZero() || out.DependsOn.IsZero() {
			return unknown(MsgMissingDependency, op)
		}
		if op == OperationAddDependency {
			return ParsedIntent{Operation: op, AddDependency: &out}
		}
		return ParsedIntent{Operation: op, RemoveDependency: &out}

	case OperationListSections:
		out := ExtractListSections(text)
		if out.Project.IsZero() {
			return unknown(MsgMissingProjectRef, op)
		}
		return ParsedIntent{Operation: op, ListSections: &out}

	case OperationCreateSection:
		out := ExtractCreateSection(text)
		if out.SectionName == "" {
			return unknown(MsgMissingSection, op)
		}
		return ParsedIntent{Operation: op, CreateSection: &out}

	case OperationMoveTaskToSection:
		out := ExtractMoveTask(text)
		if out.Task.IsZero() {
			return unknown(MsgMissingTaskRef, op)
		}
		if out.SectionName == "" {
			return unknown(MsgMissingSection, op)
		}
		return ParsedIntent{Operation: op, MoveTaskToSection: &out}
	}

	return unknown(MsgNoOperation)
}

// unknown builds the Unknown variant: message plus attempted operations.
func unknown(message string, attempted ...OperationType) ParsedIntent {
	return ParsedIntent{
		Operation: OperationUnknown,
		Unknown: &UnknownIntent{
			Message:   message,
			Attempted: attempted,
		},
	}
}

// snippet shortens text for log lines.
func snippet(text string) string {
	text = strings.TrimSpace(text)
	if len(text) > 60 {
		return text[:57] + "..."
	}
	return text
}
