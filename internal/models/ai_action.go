package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnknownAIAction = errors.New("unknown ai action type")

type AIActionType string

const (
	AIShortlistUniversity AIActionType = "shortlist_university"
	AILockUniversity      AIActionType = "lock_university"
	AIAddTask             AIActionType = "add_task"
	AIUpdateStage         AIActionType = "update_stage"
)

// AIAction is a suggestion attached to a counsellor reply. The set of
// implementations is closed: ShortlistSuggestion, LockSuggestion,
// TaskSuggestion and StageSuggestion.
type AIAction interface {
	Type() AIActionType
	Label() string
	isAIAction()
}

type ShortlistSuggestion struct {
	UniversityID string
	Text         string
}

type LockSuggestion struct {
	UniversityID string
	Text         string
}

type TaskSuggestion struct {
	Task Task
	Text string
}

type StageSuggestion struct {
	Stage Stage
	Text  string
}

func (ShortlistSuggestion) Type() AIActionType { return AIShortlistUniversity }
func (LockSuggestion) Type() AIActionType      { return AILockUniversity }
func (TaskSuggestion) Type() AIActionType      { return AIAddTask }
func (StageSuggestion) Type() AIActionType     { return AIUpdateStage }

func (a ShortlistSuggestion) Label() string { return a.Text }
func (a LockSuggestion) Label() string      { return a.Text }
func (a TaskSuggestion) Label() string      { return a.Text }
func (a StageSuggestion) Label() string     { return a.Text }

func (ShortlistSuggestion) isAIAction() {}
func (LockSuggestion) isAIAction()      {}
func (TaskSuggestion) isAIAction()      {}
func (StageSuggestion) isAIAction()     {}

// AIActionEnvelope is the wire form {"type", "payload", "label"}.
type AIActionEnvelope struct {
	Type    AIActionType    `json:"type"`
	Payload json.RawMessage `json:"payload"`
	Label   string          `json:"label"`
}

type universityPayload struct {
	UniversityID string `json:"university_id"`
}

type taskPayload struct {
	Task Task `json:"task"`
}

type stagePayload struct {
	Stage Stage `json:"stage"`
}

// EncodeAIAction converts an action to its wire envelope.
func EncodeAIAction(a AIAction) (AIActionEnvelope, error) {
	var payload any
	switch v := a.(type) {
	case ShortlistSuggestion:
		payload = universityPayload{UniversityID: v.UniversityID}
	case LockSuggestion:
		payload = universityPayload{UniversityID: v.UniversityID}
	case TaskSuggestion:
		payload = taskPayload{Task: v.Task}
	case StageSuggestion:
		payload = stagePayload{Stage: v.Stage}
	default:
		return AIActionEnvelope{}, ErrUnknownAIAction
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return AIActionEnvelope{}, err
	}
	return AIActionEnvelope{Type: a.Type(), Payload: raw, Label: a.Label()}, nil
}

// Decode converts the envelope back into a typed action.
func (e AIActionEnvelope) Decode() (AIAction, error) {
	switch e.Type {
	case AIShortlistUniversity, AILockUniversity:
		var p universityPayload
		if err := json.Unmarshal(e.Payload, &p); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", e.Type, err)
		}
		if e.Type == AIShortlistUniversity {
			return ShortlistSuggestion{UniversityID: p.UniversityID, Text: e.Label}, nil
		}
		return LockSuggestion{UniversityID: p.UniversityID, Text: e.Label}, nil
	case AIAddTask:
		var p taskPayload
		if err := json.Unmarshal(e.Payload, &p); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", e.Type, err)
		}
		return TaskSuggestion{Task: p.Task, Text: e.Label}, nil
	case AIUpdateStage:
		var p stagePayload
		if err := json.Unmarshal(e.Payload, &p); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", e.Type, err)
		}
		return StageSuggestion{Stage: p.Stage, Text: e.Label}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAIAction, e.Type)
}
