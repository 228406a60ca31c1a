package httpadapter

import (
	"context"
	"encoding/json"
	"errors"

	"storyforge/internal/app/action"
	"storyforge/internal/app/assist"
	"storyforge/internal/app/beat"
	"storyforge/internal/app/ports"
	"storyforge/internal/app/requirement"
	"storyforge/internal/app/resolve"
	"storyforge/internal/domain/story"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	ActionUC      action.UseCase
	AssistUC      assist.UseCase
	RequirementUC requirement.UseCase
	ResolveUC     resolve.UseCase
	BeatUC        beat.UseCase
	KPI           kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	actions := s.Group("/api/actions")
	actions.POST("", h.createAction)
	actions.POST("/:id/fields", h.updateFields)
	actions.POST("/:id/submit", h.submitAction)
	actions.POST("/:id/cancel", h.cancelAction)
	actions.POST("/:id/publish", h.publishAction)
	actions.POST("/:id/requirements", h.addRequirement)
	actions.POST("/:id/requirements/fulfill", h.fulfillRequirement)
	actions.POST("/:id/difficulty", h.setDifficulty)
	actions.POST("/:id/roll", h.rollAction)
	actions.POST("/:id/assists/invite", h.inviteAssist)
	actions.POST("/:id/assists/story", h.setAssistStory)
	actions.POST("/:id/assists/submit", h.submitAssist)
	actions.POST("/:id/assists/cancel", h.cancelAssist)
	actions.POST("/:id/assists/attendance", h.toggleAttendance)

	s.POST("/api/plots/:id/beats", h.createBeat)
	s.GET("/ops/kpi", h.kpi)
}

func (h Handler) createAction(c context.Context, ctx *app.RequestContext) {
	var body action.CreateRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ActionUC.Create(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) updateFields(c context.Context, ctx *app.RequestContext) {
	var body action.UpdateFieldsRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	body.ActionID = string(ctx.Param("id"))
	resp, err := h.ActionUC.UpdateFields(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) submitAction(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ActionUC.Submit(c, action.SubmitRequest{ActionID: string(ctx.Param("id"))})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) cancelAction(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ActionUC.Cancel(c, action.CancelRequest{ActionID: string(ctx.Param("id"))})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) publishAction(c context.Context, ctx *app.RequestContext) {
	var body action.PublishRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	body.ActionID = string(ctx.Param("id"))
	resp, err := h.ActionUC.Publish(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) addRequirement(c context.Context, ctx *app.RequestContext) {
	var body requirement.AddRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	body.ActionID = string(ctx.Param("id"))
	resp, err := h.RequirementUC.Add(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) fulfillRequirement(c context.Context, ctx *app.RequestContext) {
	var body requirement.FulfillRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	body.ActionID = string(ctx.Param("id"))
	resp, err := h.RequirementUC.Fulfill(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) setDifficulty(c context.Context, ctx *app.RequestContext) {
	var body resolve.SetDifficultyRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	body.ActionID = string(ctx.Param("id"))
	resp, err := h.ResolveUC.SetDifficulty(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) rollAction(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ResolveUC.Roll(c, resolve.RollRequest{ActionID: string(ctx.Param("id"))})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) inviteAssist(c context.Context, ctx *app.RequestContext) {
	var body assist.InviteRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	body.ActionID = string(ctx.Param("id"))
	resp, err := h.AssistUC.Invite(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) setAssistStory(c context.Context, ctx *app.RequestContext) {
	var body assist.SetStoryRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	body.ActionID = string(ctx.Param("id"))
	resp, err := h.AssistUC.SetStory(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) submitAssist(c context.Context, ctx *app.RequestContext) {
	var body assist.SubmitRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	body.ActionID = string(ctx.Param("id"))
	resp, err := h.AssistUC.Submit(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) cancelAssist(c context.Context, ctx *app.RequestContext) {
	var body assist.CancelRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	body.ActionID = string(ctx.Param("id"))
	resp, err := h.AssistUC.Cancel(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) toggleAttendance(c context.Context, ctx *app.RequestContext) {
	var body assist.ToggleAttendanceRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	body.ActionID = string(ctx.Param("id"))
	resp, err := h.AssistUC.ToggleAttendance(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) createBeat(c context.Context, ctx *app.RequestContext) {
	var body beat.CreateRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	body.PlotID = string(ctx.Param("id"))
	resp, err := h.BeatUC.Create(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	var rejected *story.SubmissionRejectedError
	var payment *story.PaymentError
	switch {
	case errors.As(err, &rejected):
		writeRejected(ctx, rejected)
	case errors.As(err, &payment):
		writeErrorBody(ctx, consts.StatusPaymentRequired, "insufficient_funds", payment.Error())
	case errors.Is(err, story.ErrInvariant):
		writeErrorBody(ctx, consts.StatusInternalServerError, "invariant_violation", err.Error())
	case errors.Is(err, action.ErrNotEditable),
		errors.Is(err, assist.ErrNotEditable):
		writeErrorBody(ctx, consts.StatusConflict, "not_editable", err.Error())
	case errors.Is(err, action.ErrInvalidRequest),
		errors.Is(err, assist.ErrInvalidRequest),
		errors.Is(err, requirement.ErrInvalidRequest),
		errors.Is(err, resolve.ErrInvalidRequest),
		errors.Is(err, beat.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

// writeRejected keeps preflight rejections distinguishable from malformed
// requests: callers retry a warning, they fix a plain rejection.
func writeRejected(ctx *app.RequestContext, rejected *story.SubmissionRejectedError) {
	ctx.JSON(consts.StatusUnprocessableEntity, map[string]any{
		"error": map[string]any{
			"code":            "submission_rejected",
			"message":         rejected.Msg,
			"warning":         rejected.Warning,
			"unready_assists": rejected.UnreadyAssists,
		},
	})
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
