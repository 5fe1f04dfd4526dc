package http

import (
	"task-command-interpreter/internal/ambiguity"
	"task-command-interpreter/internal/intent"
	"task-command-interpreter/internal/interpret"
	"task-command-interpreter/internal/model"
	"task-command-interpreter/internal/resolver"
)

// --- Request DTOs ---

type interpretReq struct {
	Text      string `json:"text"       binding:"required,min=1,max=2000"`
	SessionID string `json:"session_id" binding:"max=128"`
}

func (r interpretReq) validate() error { return nil }

func (r interpretReq) toInput() interpret.InterpretInput {
	return interpret.InterpretInput{Text: r.Text}
}

func (r interpretReq) toScope() model.Scope {
	return model.Scope{SessionID: r.SessionID}
}

// ---

type candidateReq struct {
	GID      string            `json:"gid"  binding:"required"`
	Name     string            `json:"name" binding:"required"`
	Metadata map[string]string `json:"metadata"`
}

type resolveReq struct {
	Query         string         `json:"query"          binding:"required,min=1,max=500"`
	Candidates    []candidateReq `json:"candidates"     binding:"max=500"`
	ResourceType  string         `json:"resource_type"  binding:"omitempty,oneof=task project user portfolio tag entity"`
	SearchContext string         `json:"search_context" binding:"max=255"`
	SessionID     string         `json:"session_id"     binding:"max=128"`
}

func (r resolveReq) validate() error { return nil }

func (r resolveReq) toInput() interpret.ResolveInput {
	candidates := make([]resolver.Candidate, 0, len(r.Candidates))
	for _, c := range r.Candidates {
		candidates = append(candidates, resolver.Candidate{
			GID:      c.GID,
			Name:     c.Name,
			Metadata: c.Metadata,
		})
	}
	return interpret.ResolveInput{
		Query:         r.Query,
		Candidates:    candidates,
		ResourceType:  r.ResourceType,
		SearchContext: r.SearchContext,
	}
}

func (r resolveReq) toScope() model.Scope {
	return model.Scope{SessionID: r.SessionID}
}

// ---

type selectionReq struct {
	Query     string `json:"query"      binding:"required,min=1,max=500"`
	GID       string `json:"gid"        binding:"required"`
	Name      string `json:"name"       binding:"max=500"`
	SessionID string `json:"session_id" binding:"required,max=128"`
}

func (r selectionReq) validate() error { return nil }

func (r selectionReq) toInput() interpret.SelectionInput {
	return interpret.SelectionInput{
		Query: r.Query,
		GID:   r.GID,
		Name:  r.Name,
	}
}

func (r selectionReq) toScope() model.Scope {
	return model.Scope{SessionID: r.SessionID}
}

// --- Response DTOs ---

type interpretResp struct {
	Intent intent.ParsedIntent `json:"intent"`
}

func (h *handler) newInterpretResp(out interpret.InterpretOutput) interpretResp {
	return interpretResp{Intent: out.Intent}
}

type resolveResp struct {
	Result    resolver.Result    `json:"result"`
	Ambiguity ambiguity.Resolved `json:"ambiguity"`
}

func (h *handler) newResolveResp(out interpret.ResolveOutput) resolveResp {
	return resolveResp{
		Result:    out.Result,
		Ambiguity: out.Ambiguity,
	}
}
