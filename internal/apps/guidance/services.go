package guidance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/models"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/services"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/session"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/store"
	"github.com/google/uuid"
)

// JourneyService turns validated requests into store actions.
type JourneyService struct {
	catalog         *catalog.Catalog
	onboardingDelay time.Duration
	now             func() time.Time
}

func NewJourneyService(c *catalog.Catalog, onboardingDelay time.Duration) *JourneyService {
	return &JourneyService{catalog: c, onboardingDelay: onboardingDelay, now: time.Now}
}

func (s *JourneyService) CompleteOnboarding(ctx context.Context, sess *session.Session, req *dto.OnboardingRequest) (*store.State, bool, error) {
	data := models.OnboardingData{
		Academic: req.Academic,
		Goals:    req.Goals,
		Budget:   req.Budget,
		Exams: models.ExamStatus{
			IELTS: models.ExamNotStarted,
			GRE:   models.ExamNotStarted,
			SOP:   models.SOPNotStarted,
		},
	}
	if req.Exams != nil {
		data.Exams = *req.Exams
	}
	if err := ValidateOnboarding(data); err != nil {
		return nil, false, err
	}
	if err := services.Wait(ctx, s.onboardingDelay); err != nil {
		return nil, false, err
	}

	state, changed := services.Dispatch(ctx, sess, store.CompleteOnboarding{Data: data})
	return state, changed, nil
}

func (s *JourneyService) UpdateProfile(ctx context.Context, sess *session.Session, patch models.OnboardingPatch) (*store.State, bool, error) {
	if patch.Empty() {
		return nil, false, fmt.Errorf("%w: nothing to update", services.ErrInvalidOnboarding)
	}
	if err := validatePatch(patch); err != nil {
		return nil, false, err
	}
	state, changed := services.Dispatch(ctx, sess, store.UpdateProfile{Patch: patch})
	return state, changed, nil
}

func (s *JourneyService) UpdateStage(ctx context.Context, sess *session.Session, stage models.Stage) (*store.State, bool, error) {
	if !stage.Valid() {
		return nil, false, fmt.Errorf("%w: %q", services.ErrInvalidStage, stage)
	}
	state, changed := services.Dispatch(ctx, sess, store.UpdateStage{Stage: stage})
	return state, changed, nil
}

func (s *JourneyService) Shortlist(ctx context.Context, sess *session.Session, universityID string) (*store.State, bool, error) {
	u, ok := s.catalog.Get(universityID)
	if !ok {
		return nil, false, services.ErrUniversityNotFound
	}
	state, changed := services.Dispatch(ctx, sess, store.ShortlistUniversity{University: u})
	return state, changed, nil
}

func (s *JourneyService) RemoveShortlist(ctx context.Context, sess *session.Session, universityID string) (*store.State, bool) {
	return services.Dispatch(ctx, sess, store.RemoveShortlist{UniversityID: universityID})
}

// Lock commits to a university, preferring the shortlisted copy over the catalog entry.
func (s *JourneyService) Lock(ctx context.Context, sess *session.Session, universityID string) (*store.State, bool, error) {
	var (
		u     models.University
		found bool
	)
	for _, candidate := range sess.Store.Snapshot().Shortlist {
		if candidate.ID == universityID {
			u, found = candidate, true
			break
		}
	}
	if !found {
		u, found = s.catalog.Get(universityID)
	}
	if !found {
		return nil, false, services.ErrUniversityNotFound
	}
	state, changed := services.Dispatch(ctx, sess, store.LockUniversity{University: u})
	return state, changed, nil
}

func (s *JourneyService) Unlock(ctx context.Context, sess *session.Session) (*store.State, bool) {
	return services.Dispatch(ctx, sess, store.UnlockUniversity{})
}

func (s *JourneyService) AddTask(ctx context.Context, sess *session.Session, req *dto.CreateTaskRequest) (*store.State, bool, error) {
	task := models.Task{
		ID:          strings.TrimSpace(req.ID),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Category:    req.Category,
		Priority:    req.Priority,
		CreatedAt:   s.now(),
		DueDate:     req.DueDate,
	}
	if task.ID == "" {
		task.ID = "task-" + uuid.NewString()
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if err := task.Validate(); err != nil {
		return nil, false, fmt.Errorf("%w: %v", services.ErrInvalidTask, err)
	}

	state, changed := services.Dispatch(ctx, sess, store.AddTask{Task: task})
	return state, changed, nil
}

func (s *JourneyService) ToggleTask(ctx context.Context, sess *session.Session, taskID string) (*store.State, error) {
	if _, ok := sess.Store.Snapshot().Task(taskID); !ok {
		return nil, services.ErrTaskNotFound
	}
	state, _ := services.Dispatch(ctx, sess, store.ToggleTask{TaskID: taskID})
	return state, nil
}

// ValidateOnboarding checks the four questionnaire sections. Every field marked
// required on the form must be present; enums must hold known values.
func ValidateOnboarding(d models.OnboardingData) error {
	if err := validateAcademic(d.Academic); err != nil {
		return err
	}
	if err := validateGoals(d.Goals); err != nil {
		return err
	}
	if err := validateBudget(d.Budget); err != nil {
		return err
	}
	return validateExams(d.Exams)
}

func validatePatch(p models.OnboardingPatch) error {
	if p.Academic != nil {
		if err := validateAcademic(*p.Academic); err != nil {
			return err
		}
	}
	if p.Goals != nil {
		if err := validateGoals(*p.Goals); err != nil {
			return err
		}
	}
	if p.Budget != nil {
		if err := validateBudget(*p.Budget); err != nil {
			return err
		}
	}
	if p.Exams != nil {
		return validateExams(*p.Exams)
	}
	return nil
}

func validateAcademic(a models.AcademicBackground) error {
	if blank(a.CurrentEducation, a.Degree, a.Major, a.GraduationYear) {
		return fmt.Errorf("%w: education level, degree, major and graduation year are required", services.ErrInvalidOnboarding)
	}
	return nil
}

func validateGoals(g models.StudyGoal) error {
	if blank(g.IntendedDegree, g.FieldOfStudy, g.TargetIntake) {
		return fmt.Errorf("%w: intended degree, field of study and target intake are required", services.ErrInvalidOnboarding)
	}
	if len(g.PreferredCountries) == 0 {
		return fmt.Errorf("%w: select at least one preferred country", services.ErrInvalidOnboarding)
	}
	return nil
}

func validateBudget(b models.Budget) error {
	if blank(b.Range) {
		return fmt.Errorf("%w: budget range is required", services.ErrInvalidOnboarding)
	}
	if !b.FundingPlan.Valid() {
		return fmt.Errorf("%w: unknown funding plan %q", services.ErrInvalidOnboarding, b.FundingPlan)
	}
	return nil
}

func validateExams(e models.ExamStatus) error {
	if !e.IELTS.Valid() || !e.GRE.Valid() || !e.SOP.Valid() {
		return fmt.Errorf("%w: unknown exam status", services.ErrInvalidOnboarding)
	}
	return nil
}

func blank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
