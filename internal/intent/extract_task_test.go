package intent_test

import (
	"testing"

	"task-command-interpreter/internal/intent"
)

func TestExtractCreateTask(t *testing.T) {
	t.Run("Quoted Name With Project And Self Assignment", func(t *testing.T) {
		out := intent.ExtractCreateTask("create a task called 'Review metrics' in project Alpha and assign it to me")
		if out.TaskName != "Review metrics" {
			t.Errorf("TaskName = %q, want %q", out.TaskName, "Review metrics")
		}
		if out.ProjectName != "Alpha" {
			t.Errorf("ProjectName = %q, want %q", out.ProjectName, "Alpha")
		}
		if out.AssigneeName != "me" {
			t.Errorf("AssigneeName = %q, want %q", out.AssigneeName, "me")
		}
		if out.DueDate != "" {
			t.Errorf("DueDate = %q, want empty", out.DueDate)
		}
	})

	t.Run("Remind Me Phrasing With Due Date", func(t *testing.T) {
		out := intent.ExtractCreateTask("remind me to send the weekly report by Friday")
		if out.TaskName != "send the weekly report" {
			t.Errorf("TaskName = %q, want %q", out.TaskName, "send the weekly report")
		}
		if out.DueDate != "Friday" {
			t.Errorf("DueDate = %q, want %q", out.DueDate, "Friday")
		}
	})

	t.Run("Unquoted Name With Relative Due Date", func(t *testing.T) {
		out := intent.ExtractCreateTask("add a task to buy milk due tomorrow")
		if out.TaskName != "buy milk" {
			t.Errorf("TaskName = %q, want %q", out.TaskName, "buy milk")
		}
		if out.DueDate != "tomorrow" {
			t.Errorf("DueDate = %q, want %q", out.DueDate, "tomorrow")
		}
	})

	t.Run("Embedded Project Fragment Moves To Project Field", func(t *testing.T) {
		out := intent.ExtractCreateTask("create a task called Review budget in project Finance")
		if out.TaskName != "Review budget" {
			t.Errorf("TaskName = %q, want %q", out.TaskName, "Review budget")
		}
		if out.ProjectName != "Finance" {
			t.Errorf("ProjectName = %q, want %q", out.ProjectName, "Finance")
		}
	})

	t.Run("Quoted Notes", func(t *testing.T) {
		out := intent.ExtractCreateTask("create a task called 'Ship v2' with notes 'Check the logs first'")
		if out.TaskName != "Ship v2" {
			t.Errorf("TaskName = %q, want %q", out.TaskName, "Ship v2")
		}
		if out.Notes != "Check the logs first" {
			t.Errorf("Notes = %q, want %q", out.Notes, "Check the logs first")
		}
	})

	t.Run("Named Assignee", func(t *testing.T) {
		out := intent.ExtractCreateTask("create a task called 'Review metrics' and assign it to Alice")
		if out.AssigneeName != "Alice" {
			t.Errorf("AssigneeName = %q, want %q", out.AssigneeName, "Alice")
		}
		if out.TaskName != "Review metrics" {
			t.Errorf("TaskName = %q, want %q", out.TaskName, "Review metrics")
		}
	})

	t.Run("No Name Found", func(t *testing.T) {
		out := intent.ExtractCreateTask("create a task")
		if out.TaskName != "" {
			t.Errorf("TaskName = %q, want empty", out.TaskName)
		}
	})
}

func TestExtractTaskIdentifier(t *testing.T) {
	t.Run("Quoted Name With Project Context", func(t *testing.T) {
		ti := intent.ExtractTaskIdentifier("complete the task 'Deploy website' in project Alpha")
		if ti.Name != "Deploy website" {
			t.Errorf("Name = %q, want %q", ti.Name, "Deploy website")
		}
		if ti.ProjectName != "Alpha" {
			t.Errorf("ProjectName = %q, want %q", ti.ProjectName, "Alpha")
		}
		if ti.GID != "" {
			t.Errorf("GID = %q, want empty", ti.GID)
		}
	})

	t.Run("Bare Numeric Token Is GID Not Name", func(t *testing.T) {
		ti := intent.ExtractTaskIdentifier("show task 1234567890123456")
		if ti.GID != "1234567890123456" {
			t.Errorf("GID = %q, want %q", ti.GID, "1234567890123456")
		}
		if ti.Name != "" {
			t.Errorf("Name = %q, want empty", ti.Name)
		}
	})

	t.Run("Completion Connector Is Not A Name", func(t *testing.T) {
		ti := intent.ExtractTaskIdentifier("mark the deploy task as done")
		if ti.Name != "deploy" {
			t.Errorf("Name = %q, want %q", ti.Name, "deploy")
		}
		if ti.ProjectName != "" {
			t.Errorf("ProjectName = %q, want empty", ti.ProjectName)
		}
	})

	t.Run("Canonical Link Yields Task Segment", func(t *testing.T) {
		ti := intent.ExtractTaskIdentifier("check https://app.example.com/0/1234567890123456/9876543210987654")
		if ti.GID != "9876543210987654" {
			t.Errorf("GID = %q, want %q", ti.GID, "9876543210987654")
		}
		if ti.Name != "" {
			t.Errorf("Name = %q, want empty", ti.Name)
		}
	})

	t.Run("No Reference", func(t *testing.T) {
		ti := intent.ExtractTaskIdentifier("the weather is nice")
		if !ti.IsZero() {
			t.Errorf("expected zero identifier, got %+v", ti)
		}
	})
}

func TestExtractUpdateFields(t *testing.T) {
	t.Run("Mark Incomplete Wins Over Complete", func(t *testing.T) {
		uf := intent.ExtractUpdateFields("mark the deploy task as incomplete")
		if uf.Completed == nil || *uf.Completed != false {
			t.Errorf("Completed = %v, want false", uf.Completed)
		}
	})

	t.Run("Reopen Sets Completed False", func(t *testing.T) {
		uf := intent.ExtractUpdateFields("reopen the deploy task")
		if uf.Completed == nil || *uf.Completed != false {
			t.Errorf("Completed = %v, want false", uf.Completed)
		}
	})

	t.Run("Mark Done Sets Completed True", func(t *testing.T) {
		uf := intent.ExtractUpdateFields("mark the deploy task as done")
		if uf.Completed == nil || *uf.Completed != true {
			t.Errorf("Completed = %v, want true", uf.Completed)
		}
	})

	t.Run("Rename", func(t *testing.T) {
		uf := intent.ExtractUpdateFields("rename the task to Launch checklist")
		if uf.NewName != "Launch checklist" {
			t.Errorf("NewName = %q, want %q", uf.NewName, "Launch checklist")
		}
	})

	t.Run("Nothing To Change", func(t *testing.T) {
		uf := intent.ExtractUpdateFields("the task")
		if !uf.IsZero() {
			t.Errorf("expected zero fields, got %+v", uf)
		}
	})
}

func TestExtractListTasks(t *testing.T) {
	t.Run("My Tasks", func(t *testing.T) {
		out := intent.ExtractListTasks("list my tasks")
		if out.AssigneeName != "me" {
			t.Errorf("AssigneeName = %q, want %q", out.AssigneeName, "me")
		}
		if out.Completed != nil {
			t.Errorf("Completed = %v, want nil", out.Completed)
		}
	})

	t.Run("Completed Tasks In Project", func(t *testing.T) {
		out := intent.ExtractListTasks("show completed tasks in project Alpha")
		if out.ProjectName != "Alpha" {
			t.Errorf("ProjectName = %q, want %q", out.ProjectName, "Alpha")
		}
		if out.Completed == nil || *out.Completed != true {
			t.Errorf("Completed = %v, want true", out.Completed)
		}
	})

	t.Run("Open Tasks", func(t *testing.T) {
		out := intent.ExtractListTasks("list open tasks")
		if out.Completed == nil || *out.Completed != false {
			t.Errorf("Completed = %v, want false", out.Completed)
		}
	})
}

func TestExtractAddSubtask(t *testing.T) {
	t.Run("Quoted Subtask Under Quoted Parent", func(t *testing.T) {
		out := intent.ExtractAddSubtask("add a subtask called 'Draft copy' under the task 'Landing page'")
		if out.SubtaskName != "Draft copy" {
			t.Errorf("SubtaskName = %q, want %q", out.SubtaskName, "Draft copy")
		}
		if out.Parent.Name != "Landing page" {
			t.Errorf("Parent.Name = %q, want %q", out.Parent.Name, "Landing page")
		}
	})

	t.Run("Parent By GID", func(t *testing.T) {
		out := intent.ExtractAddSubtask("add a subtask called 'Draft copy' to task 1234567890123456")
		if out.SubtaskName != "Draft copy" {
			t.Errorf("SubtaskName = %q, want %q", out.SubtaskName, "Draft copy")
		}
		if out.Parent.GID != "1234567890123456" {
			t.Errorf("Parent.GID = %q, want %q", out.Parent.GID, "1234567890123456")
		}
	})
}

func TestExtractDependency(t *testing.T) {
	t.Run("Depend On With Quoted Names", func(t *testing.T) {
		out := intent.ExtractDependency("make 'Deploy website' depend on 'Code review'")
		if out.Task.Name != "Deploy website" {
			t.Errorf("Task.Name = %q, want %q", out.Task.Name, "Deploy website")
		}
		if out.DependsOn.Name != "Code review" {
			t.Errorf("DependsOn.Name = %q, want %q", out.DependsOn.Name, "Code review")
		}
	})

	t.Run("Blocked By", func(t *testing.T) {
		out := intent.ExtractDependency("'Deploy website' is blocked by 'Code review'")
		if out.Task.Name != "Deploy website" {
			t.Errorf("Task.Name = %q, want %q", out.Task.Name, "Deploy website")
		}
		if out.DependsOn.Name != "Code review" {
			t.Errorf("DependsOn.Name = %q, want %q", out.DependsOn.Name, "Code review")
		}
	})

	t.Run("GID Sides", func(t *testing.T) {
		out := intent.ExtractDependency("1234567890123456 depends on 9876543210987654")
		if out.Task.GID != "1234567890123456" {
			t.Errorf("Task.GID = %q, want %q", out.Task.GID, "1234567890123456")
		}
		if out.DependsOn.GID != "9876543210987654" {
			t.Errorf("DependsOn.GID = %q, want %q", out.DependsOn.GID, "9876543210987654")
		}
	})
}

func TestExtractFollower(t *testing.T) {
	t.Run("Named User On GID Task", func(t *testing.T) {
		out := intent.ExtractFollower("add Alice as a follower to task 1234567890123456")
		if out.UserName != "Alice" {
			t.Errorf("UserName = %q, want %q", out.UserName, "Alice")
		}
		if out.Task.GID != "1234567890123456" {
			t.Errorf("Task.GID = %q, want %q", out.Task.GID, "1234567890123456")
		}
	})

	t.Run("Self Follower", func(t *testing.T) {
		out := intent.ExtractFollower("add me to the task 'Deploy website'")
		if out.UserName != "me" {
			t.Errorf("UserName = %q, want %q", out.UserName, "me")
		}
	})
}

func TestExtractSetDueDate(t *testing.T) {
	t.Run("Quoted Task To Relative Date", func(t *testing.T) {
		out := intent.ExtractSetDueDate("set the due date of task 'Review metrics' to next Friday")
		if out.Task.Name != "Review metrics" {
			t.Errorf("Task.Name = %q, want %q", out.Task.Name, "Review metrics")
		}
		if out.DueDate != "next Friday" {
			t.Errorf("DueDate = %q, want %q", out.DueDate, "next Friday")
		}
	})

	t.Run("Raw Expression Is Never Resolved", func(t *testing.T) {
		out := intent.ExtractSetDueDate("set the due date of 'Ship v2' to 2026-09-15")
		if out.DueDate != "2026-09-15" {
			t.Errorf("DueDate = %q, want %q", out.DueDate, "2026-09-15")
		}
	})
}
