package intent

// OperationType is one member of the closed set of supported user-intent
// categories. Immutable once classified.
type OperationType string

const (
	OperationCreateTask        OperationType = "CREATE_TASK"
	OperationUpdateTask        OperationType = "UPDATE_TASK"
	OperationGetTaskDetails    OperationType = "GET_TASK_DETAILS"
	OperationListTasks         OperationType = "LIST_TASKS"
	OperationCompleteTask      OperationType = "COMPLETE_TASK"
	OperationCreateProject     OperationType = "CREATE_PROJECT"
	OperationUpdateProject     OperationType = "UPDATE_PROJECT"
	OperationListProjects      OperationType = "LIST_PROJECTS"
	OperationGetUserInfo       OperationType = "GET_USER_INFO"
	OperationSearchEntity      OperationType = "SEARCH_ENTITY"
	OperationAddFollower       OperationType = "ADD_FOLLOWER"
	OperationRemoveFollower    OperationType = "REMOVE_FOLLOWER"
	OperationSetDueDate        OperationType = "SET_DUE_DATE"
	OperationAddSubtask        OperationType = "ADD_SUBTASK"
	OperationListSubtasks      OperationType = "LIST_SUBTASKS"
	OperationAddDependency     OperationType = "ADD_DEPENDENCY"
	OperationRemoveDependency  OperationType = "REMOVE_DEPENDENCY"
	OperationListSections      OperationType = "LIST_SECTIONS"
	OperationCreateSection     OperationType = "CREATE_SECTION"
	OperationMoveTaskToSection OperationType = "MOVE_TASK_TO_SECTION"
	OperationUnknown           OperationType = "UNKNOWN"
)

// TaskIdentifier names a task by text name and/or gid. ProjectName is
// optional disambiguating context ("the Review task in project Alpha").
type TaskIdentifier struct {
	Name        string `json:"name,omitempty"`
	GID         string `json:"gid,omitempty"`
	ProjectName string `json:"project_name,omitempty"`
}

// IsZero reports whether neither a name nor a gid was extracted.
func (ti TaskIdentifier) IsZero() bool {
	return ti.Name == "" && ti.GID == ""
}

// ProjectIdentifier names a project by text name and/or gid.
type ProjectIdentifier struct {
	Name string `json:"name,omitempty"`
	GID  string `json:"gid,omitempty"`
}

// IsZero reports whether neither a name nor a gid was extracted.
func (pi ProjectIdentifier) IsZero() bool {
	return pi.Name == "" && pi.GID == ""
}

// CreateTaskIntent carries the fields of a task-creation request.
// Continuation is set when the text is a short confirmation, selection or
// assignment reply to a prior creation turn; such replies carry no task
// name of their own and the caller replays accumulated fields.
type CreateTaskIntent struct {
	TaskName     string `json:"task_name,omitempty"`
	Notes        string `json:"notes,omitempty"`
	ProjectName  string `json:"project_name,omitempty"`
	DueDate      string `json:"due_date,omitempty"` // raw expression, never resolved
	AssigneeName string `json:"assignee_name,omitempty"`
	Continuation bool   `json:"continuation,omitempty"`
}

// UpdateFields is the partial record of task fields to change.
// Completed is a tri-state: nil means "not mentioned".
type UpdateFields struct {
	NewName      string `json:"new_name,omitempty"`
	Notes        string `json:"notes,omitempty"`
	DueDate      string `json:"due_date,omitempty"`
	AssigneeName string `json:"assignee_name,omitempty"`
	Completed    *bool  `json:"completed,omitempty"`
}

// IsZero reports whether no field change was extracted.
func (uf UpdateFields) IsZero() bool {
	return uf.NewName == "" && uf.Notes == "" && uf.DueDate == "" &&
		uf.AssigneeName == "" && uf.Completed == nil
}

// UpdateTaskIntent carries a task reference plus the fields to change.
type UpdateTaskIntent struct {
	Task   TaskIdentifier `json:"task"`
	Fields UpdateFields   `json:"fields"`
}

// TaskDetailsIntent asks for the details of one task.
type TaskDetailsIntent struct {
	Task TaskIdentifier `json:"task"`
}

// ListTasksIntent lists tasks with optional filters. Completed is
// tri-state: nil lists regardless of completion state.
type ListTasksIntent struct {
	ProjectName  string `json:"project_name,omitempty"`
	AssigneeName string `json:"assignee_name,omitempty"`
	Completed    *bool  `json:"completed,omitempty"`
}

// CompleteTaskIntent marks one task complete.
type CompleteTaskIntent struct {
	Task TaskIdentifier `json:"task"`
}

// CreateProjectIntent carries the fields of a project-creation request.
type CreateProjectIntent struct {
	ProjectName string `json:"project_name"`
	Notes       string `json:"notes,omitempty"`
	Workspace   string `json:"workspace,omitempty"`
}

// ProjectUpdateFields is the partial record of project fields to change.
type ProjectUpdateFields struct {
	NewName string `json:"new_name,omitempty"`
	Notes   string `json:"notes,omitempty"`
	Status  string `json:"status,omitempty"`
}

// IsZero reports whether no field change was extracted.
func (pf ProjectUpdateFields) IsZero() bool {
	return pf.NewName == "" && pf.Notes == "" && pf.Status == ""
}

// UpdateProjectIntent carries a project reference plus fields to change.
type UpdateProjectIntent struct {
	Project ProjectIdentifier   `json:"project"`
	Fields  ProjectUpdateFields `json:"fields"`
}

// ListProjectsIntent lists projects, optionally within a workspace.
type ListProjectsIntent struct {
	Workspace string `json:"workspace,omitempty"`
}

// GetUserInfoIntent asks for user details. UserName is "me" for the
// requesting user.
type GetUserInfoIntent struct {
	UserName string `json:"user_name"`
}

// SearchEntityIntent is a free search. ResourceType is the singular type
// hint stripped from the query (task, project, user, portfolio, tag), or
// empty when the text gave none.
type SearchEntityIntent struct {
	Query        string `json:"query"`
	ResourceType string `json:"resource_type,omitempty"`
}

// FollowerIntent adds or removes a follower on a task; the tag says which.
type FollowerIntent struct {
	Task     TaskIdentifier `json:"task"`
	UserName string         `json:"user_name"`
}

// SetDueDateIntent sets a task's due date. DueDate is the raw expression.
type SetDueDateIntent struct {
	Task    TaskIdentifier `json:"task"`
	DueDate string         `json:"due_date"`
}

// AddSubtaskIntent creates a subtask under a parent task.
type AddSubtaskIntent struct {
	Parent      TaskIdentifier `json:"parent"`
	SubtaskName string         `json:"subtask_name"`
}

// ListSubtasksIntent lists the subtasks of one task.
type ListSubtasksIntent struct {
	Task TaskIdentifier `json:"task"`
}

// DependencyIntent adds or removes a dependency; the tag says which.
// Task is the dependent task, DependsOn the blocking one.
type DependencyIntent struct {
	Task      TaskIdentifier `json:"task"`
	DependsOn TaskIdentifier `json:"depends_on"`
}

// ListSectionsIntent lists the sections of a project.
type ListSectionsIntent struct {
	Project ProjectIdentifier `json:"project"`
}

// CreateSectionIntent creates a section in a project.
type CreateSectionIntent struct {
	SectionName string            `json:"section_name"`
	Project     ProjectIdentifier `json:"project"`
}

// MoveTaskIntent moves a task into a section.
type MoveTaskIntent struct {
	Task        TaskIdentifier    `json:"task"`
	SectionName string            `json:"section_name"`
	Project     ProjectIdentifier `json:"project,omitempty"`
}

// UnknownIntent is the explicit "didn't understand, here's my best guess"
// contract: a human-readable message plus the operation(s) attempted.
type UnknownIntent struct {
	Message   string          `json:"message"`
	Attempted []OperationType `json:"attempted,omitempty"`
}

// ParsedIntent is a tagged union keyed by Operation. Exactly one variant
// pointer matching the tag is non-nil; callers switch on Operation.
type ParsedIntent struct {
	Operation OperationType `json:"operation"`

	CreateTask        *CreateTaskIntent    `json:"create_task,omitempty"`
	UpdateTask        *UpdateTaskIntent    `json:"update_task,omitempty"`
	GetTaskDetails    *TaskDetailsIntent   `json:"get_task_details,omitempty"`
	ListTasks         *ListTasksIntent     `json:"list_tasks,omitempty"`
	CompleteTask      *CompleteTaskIntent  `json:"complete_task,omitempty"`
	CreateProject     *CreateProjectIntent `json:"create_project,omitempty"`
	UpdateProject     *UpdateProjectIntent `json:"update_project,omitempty"`
	ListProjects      *ListProjectsIntent  `json:"list_projects,omitempty"`
	GetUserInfo       *GetUserInfoIntent   `json:"get_user_info,omitempty"`
	SearchEntity      *SearchEntityIntent  `json:"search_entity,omitempty"`
	AddFollower       *FollowerIntent      `json:"add_follower,omitempty"`
	RemoveFollower    *FollowerIntent      `json:"remove_follower,omitempty"`
	SetDueDate        *SetDueDateIntent    `json:"set_due_date,omitempty"`
	AddSubtask        *AddSubtaskIntent    `json:"add_subtask,omitempty"`
	ListSubtasks      *ListSubtasksIntent  `json:"list_subtasks,omitempty"`
	AddDependency     *DependencyIntent    `json:"add_dependency,omitempty"`
	RemoveDependency  *DependencyIntent    `json:"remove_dependency,omitempty"`
	ListSections      *ListSectionsIntent  `json:"list_sections,omitempty"`
	CreateSection     *CreateSectionIntent `json:"create_section,omitempty"`
	MoveTaskToSection *MoveTaskIntent      `json:"move_task_to_section,omitempty"`
	Unknown           *UnknownIntent       `json:"unknown,omitempty"`
}
