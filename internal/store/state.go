package store

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/models"
)

// WelcomeMessageID identifies the message every fresh chat log starts with.
const WelcomeMessageID = "welcome"

const welcomeText = "Hello! I'm your AI Counsellor. I'll help you navigate your study abroad journey. " +
	"Let's start by completing your profile so I can provide personalized recommendations."

// State is the aggregate root of one applicant's session. Values reachable
// from a *State are never mutated after Apply returns it; transitions copy
// whatever they change.
type State struct {
	User            *models.User         `json:"user"`
	IsAuthenticated bool                 `json:"is_authenticated"`
	CurrentStage    models.Stage         `json:"current_stage"`
	Shortlist       []models.University  `json:"shortlisted_universities"`
	Locked          *models.University   `json:"locked_university"`
	Tasks           []models.Task        `json:"tasks"`
	ChatHistory     []models.ChatMessage `json:"chat_history"`
}

func initialState(now time.Time) *State {
	return &State{
		CurrentStage: models.StageBuildingProfile,
		Shortlist:    []models.University{},
		Tasks:        []models.Task{},
		ChatHistory: []models.ChatMessage{{
			ID:        WelcomeMessageID,
			Role:      models.RoleAI,
			Content:   welcomeText,
			Timestamp: now,
		}},
	}
}

// IsOnboarded reports whether the current user finished onboarding.
func (s *State) IsOnboarded() bool {
	return s.User != nil && s.User.Profile.IsOnboarded
}

// Onboarding returns the current user's answers, or nil.
func (s *State) Onboarding() *models.OnboardingData {
	if s.User == nil {
		return nil
	}
	return s.User.Onboarding
}

func (s *State) shortlistIndex(id string) int {
	for i, u := range s.Shortlist {
		if u.ID == id {
			return i
		}
	}
	return -1
}

func (s *State) taskIndex(id string) int {
	for i, t := range s.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Task returns the task with id, if present.
func (s *State) Task(id string) (models.Task, bool) {
	if i := s.taskIndex(id); i >= 0 {
		return s.Tasks[i], true
	}
	return models.Task{}, false
}

// Message returns the chat message with id, if present.
func (s *State) Message(id string) (models.ChatMessage, bool) {
	for _, m := range s.ChatHistory {
		if m.ID == id {
			return m, true
		}
	}
	return models.ChatMessage{}, false
}

// IsShortlisted reports whether a university with id is on the shortlist.
func (s *State) IsShortlisted(id string) bool {
	return s.shortlistIndex(id) >= 0
}
