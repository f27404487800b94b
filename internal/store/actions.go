package store

import "github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/models"

// Action is a named transition. The set is closed: only the types in this
// file implement it.
type Action interface {
	Kind() string
	isAction()
}

type Login struct{ User models.User }

type Logout struct{}

type CompleteOnboarding struct{ Data models.OnboardingData }

type UpdateStage struct{ Stage models.Stage }

type ShortlistUniversity struct{ University models.University }

type RemoveShortlist struct{ UniversityID string }

type LockUniversity struct{ University models.University }

type UnlockUniversity struct{}

type AddTask struct{ Task models.Task }

type ToggleTask struct{ TaskID string }

type AddChatMessage struct{ Message models.ChatMessage }

type UpdateProfile struct{ Patch models.OnboardingPatch }

type ExecuteAIAction struct{ Action models.AIAction }

func (Login) Kind() string               { return "login" }
func (Logout) Kind() string              { return "logout" }
func (CompleteOnboarding) Kind() string  { return "complete_onboarding" }
func (UpdateStage) Kind() string         { return "update_stage" }
func (ShortlistUniversity) Kind() string { return "shortlist_university" }
func (RemoveShortlist) Kind() string     { return "remove_shortlist" }
func (LockUniversity) Kind() string      { return "lock_university" }
func (UnlockUniversity) Kind() string    { return "unlock_university" }
func (AddTask) Kind() string             { return "add_task" }
func (ToggleTask) Kind() string          { return "toggle_task" }
func (AddChatMessage) Kind() string      { return "add_chat_message" }
func (UpdateProfile) Kind() string       { return "update_profile" }
func (ExecuteAIAction) Kind() string     { return "execute_ai_action" }

func (Login) isAction()               {}
func (Logout) isAction()              {}
func (CompleteOnboarding) isAction()  {}
func (UpdateStage) isAction()         {}
func (ShortlistUniversity) isAction() {}
func (RemoveShortlist) isAction()     {}
func (LockUniversity) isAction()      {}
func (UnlockUniversity) isAction()    {}
func (AddTask) isAction()             {}
func (ToggleTask) isAction()          {}
func (AddChatMessage) isAction()      {}
func (UpdateProfile) isAction()       {}
func (ExecuteAIAction) isAction()     {}
