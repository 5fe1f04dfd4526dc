package intent

import (
	"regexp"

	"task-command-interpreter/pkg/gid"
)

// Project name rule list: quoted span, then capitalized multi-word span,
// then the generic unquoted remainder.
var projectNameRules = []captureRule{
	rule(`\b(?:in|to|for|under|of)\s+(?:the\s+)?project\s+(?:called\s+|named\s+)?"([^"]+)"`),
	rule(`\b(?:in|to|for|under|of)\s+(?:the\s+)?project\s+(?:called\s+|named\s+)?'([^']+)'`),
	ruleCS(`(?i:\b(?:in|to|for|under|of)\s+(?:the\s+)?project\s+(?:called\s+|named\s+)?)([A-Z][\w-]*(?:\s+[A-Z0-9][\w-]*)*)`),
	rule(`\b(?:in|to|for|under|of)\s+(?:the\s+)?project\s+(?:called\s+|named\s+)?([^,.;]+)`),
	rule(`\bproject\s*[:=]\s*(.+)$`),
}

// extractProjectName pulls the name of a referenced project, or "".
func extractProjectName(text string) string {
	if got, ok := firstMatch(text, projectNameRules); ok {
		return cleanSpan(got)
	}
	return ""
}

// Rules for naming a project that is itself the object of the command
// ("create a project called X", "rename project X").
var projectObjectRules = []captureRule{
	rule(`\bproject\s+(?:called\s+|named\s+|titled\s+)?"([^"]+)"`),
	rule(`\bproject\s+(?:called\s+|named\s+|titled\s+)?'([^']+)'`),
	rule(`\bproject\s+(?:called|named|titled)\s+(.+?)(?:\s+(?:in|with|for)\b.*|[.,]|$)`),
	ruleCS(`(?i:\bproject\s+)([A-Z][\w-]*(?:\s+[A-Z0-9][\w-]*)*)`),
	rule(`\bproject\s+(.+?)(?:\s+(?:in|with|for)\b.*|[.,]|$)`),
}

var workspaceRules = []captureRule{
	rule(`\bworkspace\s+(?:called\s+|named\s+)?"([^"]+)"`),
	rule(`\bworkspace\s+(?:called\s+|named\s+)?'([^']+)'`),
	rule(`\bin\s+(?:the\s+)?([\w-]+)\s+workspace\b`),
	rule(`\bworkspace\s*[:=]\s*(\S+)`),
}

func extractWorkspace(text string) string {
	if got, ok := firstMatch(text, workspaceRules); ok {
		return cleanSpan(got)
	}
	return ""
}

// ExtractCreateProject pulls the fields of a project-creation request.
func ExtractCreateProject(text string) CreateProjectIntent {
	out := CreateProjectIntent{
		Notes:     extractNotes(text),
		Workspace: extractWorkspace(text),
	}
	if got, ok := firstMatch(text, projectObjectRules); ok {
		out.ProjectName = trimNameTail(cleanSpan(got))
	}
	return out
}

// ExtractProjectIdentifier pulls a project reference (name and/or gid).
func ExtractProjectIdentifier(text string) ProjectIdentifier {
	pi := ProjectIdentifier{}
	if g, ok := gid.ExtractProject(text); ok {
		pi.GID = g
	}
	nameText := gid.StripLink(text)
	if got, ok := firstMatch(nameText, projectObjectRules); ok {
		name := cleanSpan(got)
		if !regexp.MustCompile(`^\d+$`).MatchString(name) {
			pi.Name = name
		}
	}
	return pi
}

// Project status phrasing ("set project status to on track").
var projectStatusRules = []captureRule{
	rule(`\bstatus\s+(?:to|=|:)\s*"([^"]+)"`),
	rule(`\bstatus\s+(?:to|=|:)\s*'([^']+)'`),
	rule(`\bstatus\s+(?:to|=|:)\s*(.+?)(?:[.,]|$)`),
}

// ExtractProjectUpdateFields pulls a partial project update record.
func ExtractProjectUpdateFields(text string) ProjectUpdateFields {
	pf := ProjectUpdateFields{
		Notes: extractNotes(text),
	}
	if got, ok := firstMatch(text, newNameRules); ok {
		pf.NewName = cleanSpan(got)
	}
	if got, ok := firstMatch(text, projectStatusRules); ok {
		pf.Status = cleanSpan(got)
	}
	return pf
}

// ExtractListProjects pulls the optional workspace filter.
func ExtractListProjects(text string) ListProjectsIntent {
	return ListProjectsIntent{Workspace: extractWorkspace(text)}
}

// Section phrasing.
var sectionNameRules = []captureRule{
	rule(`\bsection\s+(?:called\s+|named\s+)?"([^"]+)"`),
	rule(`\bsection\s+(?:called\s+|named\s+)?'([^']+)'`),
	rule(`\bsection\s+(?:called|named)\s+(.+?)(?:\s+(?:in|of|for)\b.*|[.,]|$)`),
	ruleCS(`(?i:\bsection\s+)([A-Z][\w-]*(?:\s+[A-Z0-9][\w-]*)*)`),
	rule(`\b(?:create|add|make)\s+(?:a\s+|new\s+)?section\s+(.+?)(?:\s+(?:in|of|for)\b.*|[.,]|$)`),
	rule(`\b(?:to|into)\s+(?:the\s+)?section\s+(.+?)(?:\s+(?:in|of)\b.*|[.,]|$)`),
}

func extractSectionName(text string) string {
	if got, ok := firstMatch(text, sectionNameRules); ok {
		return cleanSpan(got)
	}
	return ""
}

// ExtractListSections pulls the project whose sections are listed.
func ExtractListSections(text string) ListSectionsIntent {
	out := ListSectionsIntent{}
	if name := extractProjectName(text); name != "" {
		out.Project.Name = name
	}
	if g, ok := gid.ExtractProject(text); ok {
		out.Project.GID = g
	}
	if out.Project.IsZero() {
		out.Project = ExtractProjectIdentifier(text)
	}
	return out
}

// ExtractCreateSection pulls the section name and target project.
func ExtractCreateSection(text string) CreateSectionIntent {
	out := CreateSectionIntent{
		SectionName: extractSectionName(text),
	}
	if name := extractProjectName(text); name != "" {
		out.Project.Name = name
	}
	if g, ok := gid.ExtractProject(text); ok {
		out.Project.GID = g
	}
	return out
}

// ExtractMoveTask pulls the task, target section and optional project.
func ExtractMoveTask(text string) MoveTaskIntent {
	out := MoveTaskIntent{
		Task:        ExtractTaskIdentifier(text),
		SectionName: extractSectionName(text),
	}
	if name := extractProjectName(text); name != "" {
		out.Project.Name = name
	}
	if g, ok := gid.ExtractProject(text); ok {
		out.Project.GID = g
	}
	return out
}
