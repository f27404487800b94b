// Package tasks derives checklist items from onboarding answers and from
// locking a university. Generation is deterministic apart from CreatedAt.
package tasks

import (
	"strconv"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/models"
)

const (
	IELTSTaskID    = "task-ielts-1"
	GRETaskID      = "task-gre-1"
	SOPTaskID      = "task-sop-1"
	ResearchTaskID = "task-research-1"

	applicationPrefix    = "task-app-"
	applicationTaskCount = 4
)

// GenerateInitial emits, in order: English test registration, graduate test
// preparation, SOP draft and university research. Only research is unconditional.
func GenerateInitial(data models.OnboardingData, now time.Time) []models.Task {
	var out []models.Task

	if data.Exams.IELTS == models.ExamNotStarted {
		out = append(out, models.Task{
			ID:          IELTSTaskID,
			Title:       "Register for IELTS/TOEFL",
			Description: "Book your English proficiency test date",
			Category:    models.TaskExam,
			Priority:    models.PriorityHigh,
			CreatedAt:   now,
		})
	}

	if data.Exams.GRE == models.ExamNotStarted && data.RequiresGraduateTest() {
		out = append(out, models.Task{
			ID:          GRETaskID,
			Title:       "Start GRE/GMAT Preparation",
			Description: "Begin studying for your standardized test",
			Category:    models.TaskExam,
			Priority:    models.PriorityHigh,
			CreatedAt:   now,
		})
	}

	if data.Exams.SOP == models.SOPNotStarted {
		out = append(out, models.Task{
			ID:          SOPTaskID,
			Title:       "Draft Statement of Purpose",
			Description: "Start working on your SOP outline",
			Category:    models.TaskDocument,
			Priority:    models.PriorityMedium,
			CreatedAt:   now,
		})
	}

	out = append(out, models.Task{
		ID:          ResearchTaskID,
		Title:       "Research Universities",
		Description: "Explore universities matching your profile",
		Category:    models.TaskResearch,
		Priority:    models.PriorityHigh,
		CreatedAt:   now,
	})
	return out
}

// GenerateApplication emits the four application tasks for u. Ids are
// namespaced by the university id so bundles never collide.
func GenerateApplication(u models.University, now time.Time) []models.Task {
	prefix := ApplicationPrefix(u.ID)
	return []models.Task{
		{
			ID:          prefix + "1",
			Title:       "Complete " + u.Name + " Application",
			Description: "Fill out the online application form",
			Category:    models.TaskApplication,
			Priority:    models.PriorityHigh,
			CreatedAt:   now,
		},
		{
			ID:          prefix + "2",
			Title:       "Request Transcripts",
			Description: "Order official transcripts from your institution",
			Category:    models.TaskDocument,
			Priority:    models.PriorityHigh,
			CreatedAt:   now,
		},
		{
			ID:          prefix + "3",
			Title:       "Get Recommendation Letters",
			Description: "Contact professors for LORs",
			Category:    models.TaskDocument,
			Priority:    models.PriorityHigh,
			CreatedAt:   now,
		},
		{
			ID:          prefix + "4",
			Title:       "Finalize SOP",
			Description: "Tailor your SOP for " + u.Name,
			Category:    models.TaskDocument,
			Priority:    models.PriorityHigh,
			CreatedAt:   now,
		},
	}
}

// ApplicationPrefix is the id prefix shared by a university's application tasks.
func ApplicationPrefix(universityID string) string {
	return applicationPrefix + universityID + "-"
}

// IsApplicationTask reports whether t is one of the generated tasks of
// universityID's bundle. Ids are matched exactly, so "mit" never claims the
// bundle of "mit-b".
func IsApplicationTask(t models.Task, universityID string) bool {
	suffix, ok := strings.CutPrefix(t.ID, ApplicationPrefix(universityID))
	if !ok {
		return false
	}
	n, err := strconv.Atoi(suffix)
	return err == nil && n >= 1 && n <= applicationTaskCount && strconv.Itoa(n) == suffix
}

// AppendMissing appends the tasks of add whose ids are not already present.
// The result never aliases existing.
func AppendMissing(existing, add []models.Task) []models.Task {
	seen := make(map[string]struct{}, len(existing)+len(add))
	out := make([]models.Task, 0, len(existing)+len(add))
	for _, t := range existing {
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	for _, t := range add {
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	return out
}
