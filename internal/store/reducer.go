// Package store is the applicant state machine: a closed set of actions and a
// total transition function over them, plus a handle that serialises dispatch.
package store

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/models"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/tasks"
)

// Reducer applies actions. It reads the catalog for AI shortlist suggestions
// and the clock for generated timestamps; it has no other dependencies.
type Reducer struct {
	catalog *catalog.Catalog
	now     func() time.Time
}

func NewReducer(c *catalog.Catalog, now func() time.Time) *Reducer {
	if now == nil {
		now = time.Now
	}
	return &Reducer{catalog: c, now: now}
}

// Initial returns the logged-out state with a welcome message.
func (r *Reducer) Initial() *State {
	return initialState(r.now())
}

// Apply returns the state after a. Actions whose preconditions fail return s
// itself, so callers can detect no-ops by pointer comparison.
func (r *Reducer) Apply(s *State, a Action) *State {
	switch a := a.(type) {
	case Login:
		return r.login(s, a.User)
	case Logout:
		return r.Initial()
	case CompleteOnboarding:
		return r.completeOnboarding(s, a.Data)
	case UpdateStage:
		return r.updateStage(s, a.Stage)
	case ShortlistUniversity:
		return r.shortlist(s, a.University)
	case RemoveShortlist:
		return r.removeShortlist(s, a.UniversityID)
	case LockUniversity:
		return r.lock(s, a.University)
	case UnlockUniversity:
		return r.unlock(s)
	case AddTask:
		return r.addTask(s, a.Task)
	case ToggleTask:
		return r.toggleTask(s, a.TaskID)
	case AddChatMessage:
		return r.addChatMessage(s, a.Message)
	case UpdateProfile:
		return r.updateProfile(s, a.Patch)
	case ExecuteAIAction:
		return r.executeAIAction(s, a.Action)
	}
	return s
}

func (r *Reducer) login(s *State, u models.User) *State {
	next := *s
	next.User = u.Clone()
	next.IsAuthenticated = true
	if u.Onboarding != nil {
		next.CurrentStage = models.StageDiscoveringUniversities
	} else {
		next.CurrentStage = models.StageBuildingProfile
	}
	return &next
}

func (r *Reducer) completeOnboarding(s *State, data models.OnboardingData) *State {
	if s.User == nil {
		return s
	}
	next := *s
	user := s.User.Clone()
	d := data.Clone()
	user.Onboarding = &d
	user.Profile.IsOnboarded = true
	next.User = user
	next.CurrentStage = models.StageDiscoveringUniversities
	next.Tasks = tasks.AppendMissing(s.Tasks, tasks.GenerateInitial(d, r.now()))
	return &next
}

func (r *Reducer) updateStage(s *State, stage models.Stage) *State {
	if !stage.Valid() || stage == s.CurrentStage {
		return s
	}
	next := *s
	next.CurrentStage = stage
	return &next
}

func (r *Reducer) shortlist(s *State, u models.University) *State {
	if u.ID == "" || s.IsShortlisted(u.ID) {
		return s
	}
	next := *s
	next.Shortlist = appendUniversity(s.Shortlist, u)
	if s.CurrentStage == models.StageDiscoveringUniversities {
		next.CurrentStage = models.StageFinalizingUniversities
	}
	return &next
}

func (r *Reducer) removeShortlist(s *State, id string) *State {
	i := s.shortlistIndex(id)
	if i < 0 {
		return s
	}
	next := *s
	list := make([]models.University, 0, len(s.Shortlist)-1)
	list = append(list, s.Shortlist[:i]...)
	list = append(list, s.Shortlist[i+1:]...)
	next.Shortlist = list
	return &next
}

// lock commits to u. Locking the already-locked id is a no-op, so the
// application bundle is never appended twice.
func (r *Reducer) lock(s *State, u models.University) *State {
	if u.ID == "" || (s.Locked != nil && s.Locked.ID == u.ID) {
		return s
	}
	next := *s
	locked := u
	next.Locked = &locked
	if !s.IsShortlisted(u.ID) {
		next.Shortlist = appendUniversity(s.Shortlist, u)
	}
	next.CurrentStage = models.StagePreparingApplications
	next.Tasks = tasks.AppendMissing(s.Tasks, tasks.GenerateApplication(u, r.now()))
	return &next
}

func (r *Reducer) unlock(s *State) *State {
	if s.Locked == nil {
		return s
	}
	next := *s
	next.Locked = nil
	next.CurrentStage = models.StageFinalizingUniversities
	return &next
}

func (r *Reducer) addTask(s *State, t models.Task) *State {
	if t.ID == "" || s.taskIndex(t.ID) >= 0 {
		return s
	}
	next := *s
	next.Tasks = tasks.AppendMissing(s.Tasks, []models.Task{t})
	return &next
}

func (r *Reducer) toggleTask(s *State, id string) *State {
	i := s.taskIndex(id)
	if i < 0 {
		return s
	}
	next := *s
	list := make([]models.Task, len(s.Tasks))
	copy(list, s.Tasks)
	list[i].Completed = !list[i].Completed
	next.Tasks = list
	return &next
}

func (r *Reducer) addChatMessage(s *State, m models.ChatMessage) *State {
	next := *s
	list := make([]models.ChatMessage, 0, len(s.ChatHistory)+1)
	list = append(list, s.ChatHistory...)
	next.ChatHistory = append(list, m)
	return &next
}

func (r *Reducer) updateProfile(s *State, p models.OnboardingPatch) *State {
	if s.User == nil || s.User.Onboarding == nil || p.Empty() {
		return s
	}
	next := *s
	user := s.User.Clone()
	merged := user.Onboarding.Merge(p)
	user.Onboarding = &merged
	next.User = user
	return &next
}

func (r *Reducer) executeAIAction(s *State, a models.AIAction) *State {
	switch a := a.(type) {
	case models.ShortlistSuggestion:
		if r.catalog == nil {
			return s
		}
		u, ok := r.catalog.Get(a.UniversityID)
		if !ok {
			return s
		}
		return r.shortlist(s, u)
	case models.LockSuggestion:
		i := s.shortlistIndex(a.UniversityID)
		if i < 0 {
			return s
		}
		return r.lock(s, s.Shortlist[i])
	case models.TaskSuggestion:
		return r.addTask(s, a.Task)
	case models.StageSuggestion:
		return r.updateStage(s, a.Stage)
	}
	return s
}

func appendUniversity(list []models.University, u models.University) []models.University {
	out := make([]models.University, 0, len(list)+1)
	out = append(out, list...)
	return append(out, u)
}
