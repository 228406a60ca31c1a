// Package notify delivers the engine's player and staff notices. The log
// sink is the default delivery channel; a mail or messenger integration can
// replace it without touching the engine.
package notify

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type LogSink struct{}

func NewLogSink() LogSink {
	return LogSink{}
}

func (LogSink) Notify(ctx context.Context, participantID, text string) {
	hlog.CtxInfof(ctx, "notify participant=%s: %s", participantID, text)
}

func (LogSink) NotifyStaff(ctx context.Context, text string) {
	hlog.CtxInfof(ctx, "notify staff: %s", text)
}
