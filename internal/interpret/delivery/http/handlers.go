package http

import (
	"github.com/gin-gonic/gin"

	"task-command-interpreter/pkg/response"
)

// Interpret godoc
// @Summary     Interpret a free-text command
// @Description Turns a natural-language request into a structured operation descriptor.
// @Tags        Interpret
// @Accept      json
// @Produce     json
// @Param       body body interpretReq true "Command text and session id"
// @Success     200  {object} interpretResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/commands/interpret [POST]
func (h *handler) Interpret(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processInterpretReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Interpret(ctx, req.toScope(), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Interpret: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newInterpretResp(output))
}

// Resolve godoc
// @Summary     Resolve an entity reference
// @Description Fuzzy-matches a query against caller-supplied candidates and returns a disambiguation outcome.
// @Tags        Interpret
// @Accept      json
// @Produce     json
// @Param       body body resolveReq true "Query, candidates, resource type, session id"
// @Success     200  {object} resolveResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/entities/resolve [POST]
func (h *handler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResolveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Resolve(ctx, req.toScope(), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Resolve: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newResolveResp(output))
}

// RecordSelection godoc
// @Summary     Record a confirmed selection
// @Description Stores a user-confirmed (query, gid) pairing in the session's learning memory.
// @Tags        Interpret
// @Accept      json
// @Produce     json
// @Param       body body selectionReq true "Confirmed selection"
// @Success     200  {object} response.Resp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/entities/selections [POST]
func (h *handler) RecordSelection(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSelectionReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.RecordSelection(ctx, req.toScope(), req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.RecordSelection: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, map[string]string{"status": "recorded"})
}
