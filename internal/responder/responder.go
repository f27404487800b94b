// Package responder produces the scripted counsellor replies. Matching is an
// ordered table of keyword rules over the lower-cased input; the first rule
// with a matching keyword wins.
package responder

import (
	"fmt"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/catalog"
	"github.com/ahmetcoskunkizilkaya/ai-counsellor/internal/models"
)

type Intent string

const (
	IntentProfile      Intent = "profile"
	IntentUniversities Intent = "universities"
	IntentTasks        Intent = "tasks"
	IntentHelp         Intent = "help"
	IntentFallback     Intent = "fallback"
)

const maxRecommendations = 3

// Input is everything a reply may depend on.
type Input struct {
	Text       string
	Onboarding *models.OnboardingData
	Shortlist  []models.University
	Catalog    *catalog.Catalog
	Now        time.Time
}

type Reply struct {
	Intent  Intent
	Content string
	Actions []models.AIAction
}

type rule struct {
	intent   Intent
	keywords []string
	build    func(Input) Reply
}

var rules = []rule{
	{IntentProfile, []string{"profile", "strength", "weakness"}, profileReply},
	{IntentUniversities, []string{"university", "recommend", "suggest"}, universitiesReply},
	{IntentTasks, []string{"task", "todo", "next step"}, tasksReply},
	{IntentHelp, []string{"help", "hello", "hi"}, func(Input) Reply { return Reply{Content: helpText} }},
}

// Respond maps free text to a reply. It never fails.
func Respond(in Input) Reply {
	lower := strings.ToLower(in.Text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				reply := r.build(in)
				reply.Intent = r.intent
				return reply
			}
		}
	}
	return Reply{Intent: IntentFallback, Content: fallbackText}
}

const helpText = "Hello! I'm your AI Counsellor. I can help you with:\n\n" +
	"• **Profile Analysis** - Understand your strengths and gaps\n" +
	"• **University Recommendations** - Find Dream, Target, and Safe universities\n" +
	"• **Task Management** - Get personalized next steps\n" +
	"• **Application Guidance** - Know what documents you need\n\n" +
	"What would you like help with today?"

const fallbackText = "I understand. To better assist you, could you tell me more about what you're looking for? You can ask me about:\n\n" +
	"• Your profile analysis\n" +
	"• University recommendations\n" +
	"• Next steps and tasks\n" +
	"• Application requirements"

func profileReply(in Input) Reply {
	d := in.Onboarding
	if d == nil {
		return Reply{Content: "I don't have your profile yet. Complete onboarding and I'll analyse your strengths and gaps."}
	}

	var b strings.Builder
	b.WriteString("Here's my analysis of your profile:\n\n")
	b.WriteString("**Strengths:**\n")
	fmt.Fprintf(&b, "- %s in %s\n", d.Academic.Degree, d.Academic.Major)
	fmt.Fprintf(&b, "- Targeting %s in %s\n", d.Goals.IntendedDegree, d.Goals.FieldOfStudy)
	if d.Academic.GPA != "" {
		fmt.Fprintf(&b, "- GPA: %s (Good academic standing)\n", d.Academic.GPA)
	}

	b.WriteString("\n**Areas to Improve:**\n")
	if d.Exams.IELTS == models.ExamNotStarted {
		b.WriteString("- IELTS/TOEFL not started yet - prioritize this\n")
	}
	if d.Exams.GRE == models.ExamNotStarted && d.RequiresGraduateTest() {
		b.WriteString("- GRE/GMAT preparation needed for Master's programs\n")
	}
	if d.Exams.SOP == models.SOPNotStarted {
		b.WriteString("- Statement of Purpose not started yet\n")
	}

	b.WriteString("\nWould you like me to recommend universities based on your profile?")
	return Reply{Content: b.String()}
}

func universitiesReply(in Input) Reply {
	filter := catalog.Filter{Limit: maxRecommendations}
	if in.Onboarding != nil {
		filter.Countries = in.Onboarding.Goals.PreferredCountries
		filter.Program = in.Onboarding.Goals.FieldOfStudy
	}
	var picks []models.University
	if in.Catalog != nil {
		picks = in.Catalog.Find(filter)
	}
	if len(picks) == 0 {
		return Reply{Content: "I couldn't find universities matching your preferred countries and field of study yet. Try widening your preferences in your profile."}
	}

	var b strings.Builder
	b.WriteString("Based on your profile, here are my top recommendations:\n\n")
	actions := make([]models.AIAction, 0, len(picks))
	for i, u := range picks {
		fmt.Fprintf(&b, "%d. **%s** (%s)\n", i+1, u.Name, strings.ToUpper(string(u.Category)))
		fmt.Fprintf(&b, "   - %s\n", u.WhyFit)
		fmt.Fprintf(&b, "   - Cost: $%.0fk/year | Acceptance: %s\n\n", float64(u.TotalCost)/1000, u.AcceptanceChance)
		actions = append(actions, models.ShortlistSuggestion{
			UniversityID: u.ID,
			Text:         "Add " + u.Name + " to Shortlist",
		})
	}
	return Reply{Content: b.String(), Actions: actions}
}

// Suggested task ids are distinct from generated ones so adding a suggestion
// never collides with the onboarding checklist.
const (
	SuggestedIELTSID    = "suggested-ielts"
	SuggestedSOPID      = "suggested-sop"
	SuggestedResearchID = "suggested-research"
)

func tasksReply(in Input) Reply {
	var candidates []models.Task
	if d := in.Onboarding; d != nil {
		if d.Exams.IELTS == models.ExamNotStarted {
			candidates = append(candidates, models.Task{
				ID:          SuggestedIELTSID,
				Title:       "Register for IELTS/TOEFL",
				Description: "Book your English proficiency test",
				Category:    models.TaskExam,
				Priority:    models.PriorityHigh,
				CreatedAt:   in.Now,
			})
		}
		if d.Exams.SOP == models.SOPNotStarted {
			candidates = append(candidates, models.Task{
				ID:          SuggestedSOPID,
				Title:       "Start SOP Draft",
				Description: "Begin working on your Statement of Purpose",
				Category:    models.TaskDocument,
				Priority:    models.PriorityHigh,
				CreatedAt:   in.Now,
			})
		}
	}
	if len(in.Shortlist) == 0 {
		candidates = append(candidates, models.Task{
			ID:          SuggestedResearchID,
			Title:       "Research Universities",
			Description: "Explore and shortlist universities",
			Category:    models.TaskResearch,
			Priority:    models.PriorityHigh,
			CreatedAt:   in.Now,
		})
	}
	if len(candidates) == 0 {
		return Reply{Content: "You're on track! Keep working through your checklist and ask me about universities or application requirements anytime."}
	}

	var b strings.Builder
	b.WriteString("Here are your recommended next steps:\n\n")
	actions := make([]models.AIAction, 0, len(candidates))
	for i, t := range candidates {
		fmt.Fprintf(&b, "%d. **%s** (%s)\n", i+1, t.Title, t.Category)
		fmt.Fprintf(&b, "   %s\n\n", t.Description)
		actions = append(actions, models.TaskSuggestion{Task: t, Text: "Add: " + t.Title})
	}
	return Reply{Content: b.String(), Actions: actions}
}
