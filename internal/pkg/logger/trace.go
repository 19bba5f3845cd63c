package logger

import (
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

const (
	// TraceIDKey 定义 Context 中的 Key
	TraceIDKey = "trace_id"
	// UserIDKey 鉴权通过后写入 Context 的用户 ID
	UserIDKey = "user_id"
)

// ContextHandler 包装器，从 ctx 中提取 trace_id 与 user_id
type ContextHandler struct {
	log.Handler
}

func (h *ContextHandler) Handle(ctx context.Context, r log.Record) error {
	if ctx != nil {
		if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
			r.AddAttrs(log.String(TraceIDKey, traceID))
		}
		if userID, ok := ctx.Value(UserIDKey).(string); ok && userID != "" {
			r.AddAttrs(log.String(UserIDKey, userID))
		}
	}
	return h.Handler.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []log.Attr) log.Handler {
	return &ContextHandler{h.Handler.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) log.Handler {
	return &ContextHandler{h.Handler.WithGroup(name)}
}

// NewTraceContext 为后台任务生成带 trace_id 的 ctx
func NewTraceContext(parent context.Context, prefix string) context.Context {
	return context.WithValue(parent, TraceIDKey, prefix+"-"+uuid.NewString())
}
