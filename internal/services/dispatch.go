package services

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/session"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/store"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

// Dispatch applies a to the session's store inside a trace span.
func Dispatch(ctx context.Context, sess *session.Session, a store.Action) (*store.State, bool) {
	_, span := telemetry.Tracer().Start(ctx, "store.dispatch")
	defer span.End()

	state, changed := sess.Store.Dispatch(a)
	span.SetAttributes(
		attribute.String("session.id", sess.ID),
		attribute.String("action.kind", a.Kind()),
		attribute.Bool("action.noop", !changed),
		attribute.String("stage", string(state.CurrentStage)),
	)
	return state, changed
}
