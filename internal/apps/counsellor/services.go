package counsellor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/models"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/responder"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/services"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/session"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/store"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type ChatService struct {
	catalog    *catalog.Catalog
	replyDelay time.Duration
	now        func() time.Time
}

func NewChatService(c *catalog.Catalog, replyDelay time.Duration) *ChatService {
	return &ChatService{catalog: c, replyDelay: replyDelay, now: time.Now}
}

// Send runs one conversation turn: the user's message is logged, a reply is
// computed from the state at that moment, and after the reply delay the
// counsellor's message is logged with its suggested actions.
func (s *ChatService) Send(ctx context.Context, sess *session.Session, text string) (*dto.ChatResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, services.ErrEmptyMessage
	}

	ctx, span := telemetry.Tracer().Start(ctx, "counsellor.turn")
	defer span.End()

	userMsg := models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      models.RoleUser,
		Content:   text,
		Timestamp: s.now(),
	}
	state, _ := services.Dispatch(ctx, sess, store.AddChatMessage{Message: userMsg})

	reply := responder.Respond(responder.Input{
		Text:       text,
		Onboarding: state.Onboarding(),
		Shortlist:  state.Shortlist,
		Catalog:    s.catalog,
		Now:        s.now(),
	})
	span.SetAttributes(
		attribute.String("counsellor.intent", string(reply.Intent)),
		attribute.Int("counsellor.actions", len(reply.Actions)),
	)

	// Once the user message is logged the reply is always delivered, even if
	// the caller goes away during the delay.
	_ = services.Wait(context.WithoutCancel(ctx), s.replyDelay)

	aiMsg := models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      models.RoleAI,
		Content:   reply.Content,
		Timestamp: s.now(),
		Actions:   reply.Actions,
	}
	state, _ = services.Dispatch(ctx, sess, store.AddChatMessage{Message: aiMsg})

	return &dto.ChatResponse{
		UserMessage: userMsg,
		Reply:       aiMsg,
		Intent:      string(reply.Intent),
		State:       state,
	}, nil
}

// Execute decodes a suggested action from its wire form, checks its
// payload the same way the direct endpoints do, and applies it.
func (s *ChatService) Execute(ctx context.Context, sess *session.Session, env models.AIActionEnvelope) (*store.State, bool, error) {
	action, err := env.Decode()
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", services.ErrUnknownAction, err)
	}
	switch a := action.(type) {
	case models.TaskSuggestion:
		if err := a.Task.Validate(); err != nil {
			return nil, false, fmt.Errorf("%w: %v", services.ErrInvalidTask, err)
		}
	case models.StageSuggestion:
		if !a.Stage.Valid() {
			return nil, false, fmt.Errorf("%w: %q", services.ErrInvalidStage, a.Stage)
		}
	}
	state, changed := services.Dispatch(ctx, sess, store.ExecuteAIAction{Action: action})
	return state, changed, nil
}

// ExecuteSuggested applies the index-th action attached to a counsellor message.
func (s *ChatService) ExecuteSuggested(ctx context.Context, sess *session.Session, messageID string, index int) (*store.State, bool, error) {
	msg, ok := sess.Store.Snapshot().Message(messageID)
	if !ok || msg.Role != models.RoleAI || index < 0 || index >= len(msg.Actions) {
		return nil, false, services.ErrActionNotFound
	}
	state, changed := services.Dispatch(ctx, sess, store.ExecuteAIAction{Action: msg.Actions[index]})
	return state, changed, nil
}
