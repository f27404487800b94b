package store

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/models"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/tasks"
)

func TestGuards(t *testing.T) {
	r := newReducer()
	if g := r.Initial().Guards(); g.IsAuthenticated || g.Redirect != "/login" {
		t.Fatalf("logged out guards = %+v", g)
	}
	s := r.Apply(r.Initial(), Login{User: demoUser()})
	if g := s.Guards(); !g.IsAuthenticated || g.IsOnboarded || g.Redirect != "/onboarding" {
		t.Fatalf("logged in guards = %+v", g)
	}
	if g := onboarded(r).Guards(); !g.IsOnboarded || g.Redirect != "" {
		t.Fatalf("onboarded guards = %+v", g)
	}
}

func TestBuildDashboard(t *testing.T) {
	r := newReducer()
	s := apply(r, onboarded(r),
		ShortlistUniversity{University: university(t, "mit")},
		ToggleTask{TaskID: tasks.ResearchTaskID},
	)
	d := BuildDashboard(s)
	if d.Stage != models.StageFinalizingUniversities || d.StageLabel != "Finalizing Universities" {
		t.Fatalf("stage = %s (%s)", d.Stage, d.StageLabel)
	}
	if len(d.Stages) != 4 || !d.Stages[0].Done || !d.Stages[1].Done || !d.Stages[2].Current || d.Stages[3].Done {
		t.Fatalf("stages = %+v", d.Stages)
	}
	if d.ProfileStrength != 100 {
		t.Fatalf("profile strength = %d, want 100", d.ProfileStrength)
	}
	if d.Tasks.Completed != 1 || d.Tasks.Total != 4 || d.Tasks.Percent != 25 {
		t.Fatalf("progress = %+v", d.Tasks)
	}
	if d.Exams == nil || d.Exams.IELTS != models.ExamNotStarted {
		t.Fatalf("exams = %+v", d.Exams)
	}
}

func TestProfileStrengthWithoutOnboarding(t *testing.T) {
	if got := ProfileStrength(nil); got != 0 {
		t.Fatalf("strength = %d, want 0", got)
	}
}

func TestBuildGuidanceSplitsApplicationTasks(t *testing.T) {
	r := newReducer()
	mit := university(t, "mit")
	s := apply(r, onboarded(r), ShortlistUniversity{University: mit}, LockUniversity{University: mit})
	g := BuildGuidance(s)
	if len(g.ApplicationTasks) != 4 || len(g.OtherTasks) != 4 {
		t.Fatalf("application = %d, other = %d", len(g.ApplicationTasks), len(g.OtherTasks))
	}
	if g.Progress.Total != 8 {
		t.Fatalf("progress total = %d, want 8", g.Progress.Total)
	}

	g = BuildGuidance(r.Apply(s, UnlockUniversity{}))
	if len(g.ApplicationTasks) != 0 || len(g.OtherTasks) != 8 {
		t.Fatalf("after unlock: application = %d, other = %d", len(g.ApplicationTasks), len(g.OtherTasks))
	}
}
