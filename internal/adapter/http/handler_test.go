package httpadapter

import (
	"encoding/json"
	"testing"

	"storyforge/internal/app/action"
	"storyforge/internal/app/ports"
	"storyforge/internal/domain/story"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func TestWriteError_NotFound(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, ports.ErrNotFound)

	if got, want := ctx.Response.StatusCode(), consts.StatusNotFound; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["code"], "not_found"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestWriteError_Conflict(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, ports.ErrConflict)

	if got, want := ctx.Response.StatusCode(), consts.StatusConflict; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["code"], "conflict"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestWriteError_InvalidRequest(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, action.ErrInvalidRequest)

	if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["code"], "bad_request"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestWriteError_SubmissionRejectedCarriesWarning(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, &story.SubmissionRejectedError{
		Msg:            "make certain you invited everyone",
		Warning:        true,
		UnreadyAssists: []string{"helper-1"},
	})

	if got, want := ctx.Response.StatusCode(), consts.StatusUnprocessableEntity; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]any
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	errObj := body["error"]
	if got, want := errObj["code"], "submission_rejected"; got != want {
		t.Fatalf("error code mismatch: got=%v want=%v", got, want)
	}
	if got, want := errObj["warning"], true; got != want {
		t.Fatalf("warning mismatch: got=%v want=%v", got, want)
	}
	unready, _ := errObj["unready_assists"].([]any)
	if len(unready) != 1 || unready[0] != "helper-1" {
		t.Fatalf("unready assists mismatch: %v", errObj["unready_assists"])
	}
}

func TestWriteError_PaymentRequired(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, &story.PaymentError{Resource: story.ResourceSilver, Amount: 500})

	if got, want := ctx.Response.StatusCode(), consts.StatusPaymentRequired; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["code"], "insufficient_funds"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestWriteError_NotEditable(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, action.ErrNotEditable)

	if got, want := ctx.Response.StatusCode(), consts.StatusConflict; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	var body map[string]map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["code"], "not_editable"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestDecodeJSON_EmptyBodyIsNoop(t *testing.T) {
	ctx := &app.RequestContext{}
	var out action.CreateRequest
	if err := decodeJSON(ctx, &out); err != nil {
		t.Fatalf("decode empty body: %v", err)
	}
	if out.OwnerID != "" {
		t.Fatalf("expected zero value, got %+v", out)
	}
}
