package dto

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/models"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/store"
)

// OnboardingRequest mirrors models.OnboardingData. Exams may be omitted and
// default to not started.
type OnboardingRequest struct {
	Academic models.AcademicBackground `json:"academic"`
	Goals    models.StudyGoal          `json:"goals"`
	Budget   models.Budget             `json:"budget"`
	Exams    *models.ExamStatus        `json:"exams,omitempty"`
}

type StageRequest struct {
	Stage models.Stage `json:"stage"`
}

type CreateTaskRequest struct {
	ID          string              `json:"id,omitempty"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    models.TaskCategory `json:"category"`
	Priority    models.Priority     `json:"priority"`
	DueDate     *time.Time          `json:"due_date,omitempty"`
}

// StateResponse is returned by every mutating endpoint. Changed is false
// when the request was accepted but left the state as it was.
type StateResponse struct {
	Changed bool         `json:"changed"`
	State   *store.State `json:"state"`
}

type TaskListResponse struct {
	Tasks    []models.Task  `json:"tasks"`
	Progress store.Progress `json:"progress"`
}

type UniversityListResponse struct {
	Universities []models.University `json:"universities"`
	Total        int                 `json:"total"`
}
