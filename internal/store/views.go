package store

import (
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/models"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/tasks"
)

// Guards are the two booleans navigation decisions depend on.
type Guards struct {
	IsAuthenticated bool   `json:"is_authenticated"`
	IsOnboarded     bool   `json:"is_onboarded"`
	Redirect        string `json:"redirect,omitempty"`
}

func (s *State) Guards() Guards {
	g := Guards{IsAuthenticated: s.IsAuthenticated, IsOnboarded: s.IsOnboarded()}
	switch {
	case !g.IsAuthenticated:
		g.Redirect = "/login"
	case !g.IsOnboarded:
		g.Redirect = "/onboarding"
	}
	return g
}

type StageView struct {
	ID          models.Stage `json:"id"`
	Label       string       `json:"label"`
	Description string       `json:"description"`
	Current     bool         `json:"current"`
	Done        bool         `json:"done"`
}

type Progress struct {
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"`
}

// TaskProgress counts completed tasks.
func TaskProgress(list []models.Task) Progress {
	p := Progress{Total: len(list)}
	for _, t := range list {
		if t.Completed {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percent = float64(p.Completed) / float64(p.Total) * 100
	}
	return p
}

// Dashboard summarises a session for the overview screen.
type Dashboard struct {
	Stage           models.Stage        `json:"stage"`
	StageLabel      string              `json:"stage_label"`
	Stages          []StageView         `json:"stages"`
	ProfileStrength int                 `json:"profile_strength"`
	Tasks           Progress            `json:"tasks"`
	Exams           *models.ExamStatus  `json:"exams,omitempty"`
	Shortlist       []models.University `json:"shortlisted_universities"`
	Locked          *models.University  `json:"locked_university"`
}

func BuildDashboard(s *State) Dashboard {
	current := s.CurrentStage.Index()
	d := Dashboard{
		Stage:           s.CurrentStage,
		StageLabel:      s.CurrentStage.Label(),
		ProfileStrength: ProfileStrength(s.Onboarding()),
		Tasks:           TaskProgress(s.Tasks),
		Shortlist:       s.Shortlist,
		Locked:          s.Locked,
	}
	for i, st := range models.Stages {
		d.Stages = append(d.Stages, StageView{
			ID:          st,
			Label:       st.Label(),
			Description: st.Description(),
			Current:     i == current,
			Done:        i < current,
		})
	}
	if o := s.Onboarding(); o != nil {
		exams := o.Exams
		d.Exams = &exams
	}
	return d
}

// ProfileStrength scores 25 points per filled-in onboarding section.
func ProfileStrength(d *models.OnboardingData) int {
	if d == nil {
		return 0
	}
	score := 0
	if d.Academic.Degree != "" || d.Academic.Major != "" {
		score += 25
	}
	if d.Goals.FieldOfStudy != "" || len(d.Goals.PreferredCountries) > 0 {
		score += 25
	}
	if d.Budget.Range != "" {
		score += 25
	}
	if d.Exams.IELTS != "" || d.Exams.GRE != "" || d.Exams.SOP != "" {
		score += 25
	}
	return score
}

// Guidance splits the checklist into the locked university's application
// bundle and everything else.
type Guidance struct {
	Locked           *models.University `json:"locked_university"`
	ApplicationTasks []models.Task      `json:"application_tasks"`
	OtherTasks       []models.Task      `json:"other_tasks"`
	Progress         Progress           `json:"progress"`
}

func BuildGuidance(s *State) Guidance {
	g := Guidance{
		Locked:           s.Locked,
		ApplicationTasks: []models.Task{},
		OtherTasks:       []models.Task{},
		Progress:         TaskProgress(s.Tasks),
	}
	for _, t := range s.Tasks {
		if s.Locked != nil && tasks.IsApplicationTask(t, s.Locked.ID) {
			g.ApplicationTasks = append(g.ApplicationTasks, t)
		} else {
			g.OtherTasks = append(g.OtherTasks, t)
		}
	}
	return g
}
