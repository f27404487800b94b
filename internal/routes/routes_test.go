package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/apps"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/apps/counsellor"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/apps/guidance"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/apps/universities"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/config"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/models"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/services"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/session"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/store"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/tasks"
	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T) (*fiber.App, *session.Registry) {
	t.Helper()
	cfg := &config.Config{JWTSecret: "test-secret", JWTSessionExpiry: time.Hour}
	cat := catalog.Default()
	registry := session.NewRegistry(store.NewReducer(cat, nil), time.Hour, nil)

	app := fiber.New()
	Setup(app, cfg, registry,
		handlers.NewAuthHandler(services.NewAuthService(registry, cfg)),
		handlers.NewHealthHandler(registry, cat, config.LogSinkNone),
		[]apps.Plugin{
			guidance.New(cat, 0),
			counsellor.New(cat, 0),
			universities.New(cat),
		},
	)
	return app, registry
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any, out any) int {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: decode: %v", method, path, err)
		}
	}
	return resp.StatusCode
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	var resp dto.AuthResponse
	status := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "demo@example.com", Password: "pw"}, &resp)
	if status != http.StatusOK {
		t.Fatalf("login status = %d", status)
	}
	return resp.AccessToken
}

func onboardingBody() dto.OnboardingRequest {
	return dto.OnboardingRequest{
		Academic: models.AcademicBackground{CurrentEducation: "bachelors", Degree: "B.Tech", Major: "Computer Science", GraduationYear: "2025"},
		Goals: models.StudyGoal{
			IntendedDegree:     "Master's",
			FieldOfStudy:       "Computer Science",
			TargetIntake:       "Fall 2026",
			PreferredCountries: []string{"USA"},
		},
		Budget: models.Budget{Range: "40k-60k", FundingPlan: models.FundingSelf},
	}
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t)
	var resp dto.HealthResponse
	if status := call(t, app, http.MethodGet, "/api/health", "", nil, &resp); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if resp.CatalogSize != 10 || resp.LogSink != "disabled" {
		t.Fatalf("health = %+v", resp)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app, _ := newTestApp(t)
	var resp dto.ErrorResponse
	if status := call(t, app, http.MethodGet, "/api/p/state", "", nil, &resp); status != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", status)
	}
	if resp.Redirect != "/login" {
		t.Fatalf("redirect = %q", resp.Redirect)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	app, registry := newTestApp(t)
	token := login(t, app)

	if status := call(t, app, http.MethodPost, "/api/p/session/logout", token, nil, nil); status != http.StatusOK {
		t.Fatalf("logout status = %d", status)
	}
	if registry.Len() != 0 {
		t.Fatalf("sessions = %d, want 0", registry.Len())
	}
	if status := call(t, app, http.MethodGet, "/api/p/state", token, nil, nil); status != http.StatusUnauthorized {
		t.Fatalf("state after logout = %d, want 401", status)
	}
}

func TestOnboardedGuard(t *testing.T) {
	app, _ := newTestApp(t)
	token := login(t, app)

	var sess dto.SessionResponse
	call(t, app, http.MethodGet, "/api/p/session", token, nil, &sess)
	if !sess.Guards.IsAuthenticated || sess.Guards.IsOnboarded || sess.Guards.Redirect != "/onboarding" {
		t.Fatalf("guards = %+v", sess.Guards)
	}

	var errResp dto.ErrorResponse
	if status := call(t, app, http.MethodGet, "/api/p/tasks", token, nil, &errResp); status != http.StatusForbidden {
		t.Fatalf("tasks before onboarding = %d, want 403", status)
	}
	if errResp.Redirect != "/onboarding" {
		t.Fatalf("redirect = %q", errResp.Redirect)
	}
}

func TestOnboardingValidation(t *testing.T) {
	app, _ := newTestApp(t)
	token := login(t, app)

	body := onboardingBody()
	body.Goals.PreferredCountries = nil
	if status := call(t, app, http.MethodPost, "/api/p/onboarding", token, body, nil); status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}

	body = onboardingBody()
	body.Budget.FundingPlan = "lottery"
	if status := call(t, app, http.MethodPost, "/api/p/onboarding", token, body, nil); status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
}

func TestApplicantJourney(t *testing.T) {
	app, _ := newTestApp(t)
	token := login(t, app)

	var onboarded dto.StateResponse
	if status := call(t, app, http.MethodPost, "/api/p/onboarding", token, onboardingBody(), &onboarded); status != http.StatusOK {
		t.Fatalf("onboarding status = %d", status)
	}
	if got := onboarded.State.CurrentStage; got != models.StageDiscoveringUniversities {
		t.Fatalf("stage = %s", got)
	}
	if got := len(onboarded.State.Tasks); got != 4 {
		t.Fatalf("initial tasks = %d, want 4", got)
	}

	var chat dto.ChatResponse
	if status := call(t, app, http.MethodPost, "/api/p/chat", token, dto.ChatRequest{Message: "Can you recommend a university?"}, &chat); status != http.StatusCreated {
		t.Fatalf("chat status = %d", status)
	}
	if chat.Intent != "universities" || len(chat.Reply.Actions) == 0 {
		t.Fatalf("reply = %+v", chat.Reply)
	}
	first, ok := chat.Reply.Actions[0].(models.ShortlistSuggestion)
	if !ok {
		t.Fatalf("first action = %T", chat.Reply.Actions[0])
	}

	var shortlisted dto.StateResponse
	path := "/api/p/chat/messages/" + chat.Reply.ID + "/actions/0"
	if status := call(t, app, http.MethodPost, path, token, nil, &shortlisted); status != http.StatusOK {
		t.Fatalf("execute status = %d", status)
	}
	if !shortlisted.Changed || !shortlisted.State.IsShortlisted(first.UniversityID) {
		t.Fatalf("shortlist = %+v", shortlisted.State.Shortlist)
	}
	if got := shortlisted.State.CurrentStage; got != models.StageFinalizingUniversities {
		t.Fatalf("stage = %s", got)
	}

	var locked dto.StateResponse
	call(t, app, http.MethodPost, "/api/p/lock/"+first.UniversityID, token, nil, &locked)
	if locked.State.Locked == nil || locked.State.CurrentStage != models.StagePreparingApplications {
		t.Fatalf("lock = %+v, stage %s", locked.State.Locked, locked.State.CurrentStage)
	}

	var again dto.StateResponse
	call(t, app, http.MethodPost, "/api/p/lock/"+first.UniversityID, token, nil, &again)
	if again.Changed || len(again.State.Tasks) != len(locked.State.Tasks) {
		t.Fatalf("relock changed = %v, tasks %d -> %d", again.Changed, len(locked.State.Tasks), len(again.State.Tasks))
	}

	var g store.Guidance
	call(t, app, http.MethodGet, "/api/p/guidance", token, nil, &g)
	if len(g.ApplicationTasks) != 4 || len(g.OtherTasks) != 4 {
		t.Fatalf("guidance = %d application, %d other", len(g.ApplicationTasks), len(g.OtherTasks))
	}

	var toggled dto.StateResponse
	call(t, app, http.MethodPost, "/api/p/tasks/"+tasks.IELTSTaskID+"/toggle", token, nil, &toggled)
	if task, _ := toggled.State.Task(tasks.IELTSTaskID); !task.Completed {
		t.Fatal("IELTS task not completed")
	}

	var dash store.Dashboard
	call(t, app, http.MethodGet, "/api/p/dashboard", token, nil, &dash)
	if dash.Tasks.Completed != 1 || dash.Tasks.Total != 8 || dash.ProfileStrength != 100 {
		t.Fatalf("dashboard = %+v", dash)
	}
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	app, _ := newTestApp(t)
	token := login(t, app)
	call(t, app, http.MethodPost, "/api/p/onboarding", token, onboardingBody(), nil)

	if status := call(t, app, http.MethodPost, "/api/p/chat", token, dto.ChatRequest{Message: "   "}, nil); status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	var history dto.ChatHistoryResponse
	call(t, app, http.MethodGet, "/api/p/chat", token, nil, &history)
	if len(history.Messages) != 1 || history.Messages[0].ID != store.WelcomeMessageID {
		t.Fatalf("history = %+v", history.Messages)
	}
}

func TestExecuteActionEnvelope(t *testing.T) {
	app, _ := newTestApp(t)
	token := login(t, app)
	call(t, app, http.MethodPost, "/api/p/onboarding", token, onboardingBody(), nil)

	env, err := models.EncodeAIAction(models.StageSuggestion{Stage: models.StageFinalizingUniversities, Text: "Move on"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	var resp dto.StateResponse
	if status := call(t, app, http.MethodPost, "/api/p/chat/actions", token, env, &resp); status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if resp.State.CurrentStage != models.StageFinalizingUniversities {
		t.Fatalf("stage = %s", resp.State.CurrentStage)
	}

	bad := models.AIActionEnvelope{Type: "delete_everything", Payload: json.RawMessage(`{}`)}
	if status := call(t, app, http.MethodPost, "/api/p/chat/actions", token, bad, nil); status != http.StatusBadRequest {
		t.Fatalf("unknown action status = %d, want 400", status)
	}
	if status := call(t, app, http.MethodPost, "/api/p/chat/messages/welcome/actions/0", token, nil, nil); status != http.StatusNotFound {
		t.Fatalf("missing action status = %d, want 404", status)
	}
}

func TestExecuteEnvelopeValidatesPayload(t *testing.T) {
	app, _ := newTestApp(t)
	token := login(t, app)
	call(t, app, http.MethodPost, "/api/p/onboarding", token, onboardingBody(), nil)

	var before dto.TaskListResponse
	call(t, app, http.MethodGet, "/api/p/tasks", token, nil, &before)

	badTask := models.AIActionEnvelope{
		Type:    models.AIAddTask,
		Payload: json.RawMessage(`{"task":{"id":"task-x","title":"","category":"bogus","priority":"urgent"}}`),
	}
	if status := call(t, app, http.MethodPost, "/api/p/chat/actions", token, badTask, nil); status != http.StatusBadRequest {
		t.Fatalf("invalid task status = %d, want 400", status)
	}
	badStage := models.AIActionEnvelope{
		Type:    models.AIUpdateStage,
		Payload: json.RawMessage(`{"stage":"graduated"}`),
	}
	if status := call(t, app, http.MethodPost, "/api/p/chat/actions", token, badStage, nil); status != http.StatusBadRequest {
		t.Fatalf("invalid stage status = %d, want 400", status)
	}

	var after dto.TaskListResponse
	call(t, app, http.MethodGet, "/api/p/tasks", token, nil, &after)
	if len(after.Tasks) != len(before.Tasks) {
		t.Fatalf("tasks = %d, want %d", len(after.Tasks), len(before.Tasks))
	}
}

func TestUniversityBrowsing(t *testing.T) {
	app, _ := newTestApp(t)

	var list dto.UniversityListResponse
	call(t, app, http.MethodGet, "/api/universities?country=UK,Canada&category=target", "", nil, &list)
	if list.Total != 2 {
		t.Fatalf("total = %d, want 2", list.Total)
	}
	for _, u := range list.Universities {
		if u.Category != models.CategoryTarget {
			t.Fatalf("%s category = %s", u.ID, u.Category)
		}
	}

	if status := call(t, app, http.MethodGet, "/api/universities/nowhere", "", nil, nil); status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
	if status := call(t, app, http.MethodGet, "/api/universities?category=moon", "", nil, nil); status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}

	token := login(t, app)
	call(t, app, http.MethodPost, "/api/p/onboarding", token, onboardingBody(), nil)
	call(t, app, http.MethodPost, "/api/p/shortlist/mit", token, nil, nil)

	var rec dto.UniversityListResponse
	call(t, app, http.MethodGet, "/api/p/universities/recommended", token, nil, &rec)
	if rec.Total != 3 {
		t.Fatalf("recommended = %d, want 3", rec.Total)
	}
	for _, u := range rec.Universities {
		if u.ID == "mit" {
			t.Fatal("shortlisted university recommended")
		}
	}
}
