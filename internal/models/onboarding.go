package models

// ExamProgress tracks English and graduate test preparation.
type ExamProgress string

const (
	ExamNotStarted ExamProgress = "not-started"
	ExamInProgress ExamProgress = "in-progress"
	ExamCompleted  ExamProgress = "completed"
)

func (p ExamProgress) Valid() bool {
	switch p {
	case ExamNotStarted, ExamInProgress, ExamCompleted:
		return true
	}
	return false
}

// SOPStatus tracks the statement of purpose.
type SOPStatus string

const (
	SOPNotStarted SOPStatus = "not-started"
	SOPDraft      SOPStatus = "draft"
	SOPReady      SOPStatus = "ready"
)

func (s SOPStatus) Valid() bool {
	switch s {
	case SOPNotStarted, SOPDraft, SOPReady:
		return true
	}
	return false
}

// FundingPlan is how the applicant expects to pay for their studies.
type FundingPlan string

const (
	FundingSelf        FundingPlan = "self-funded"
	FundingScholarship FundingPlan = "scholarship-dependent"
	FundingLoan        FundingPlan = "loan-dependent"
)

func (f FundingPlan) Valid() bool {
	switch f {
	case FundingSelf, FundingScholarship, FundingLoan:
		return true
	}
	return false
}

// IntendedDegreeBachelors is the only intended degree that skips graduate tests.
const IntendedDegreeBachelors = "Bachelor's"

type AcademicBackground struct {
	CurrentEducation string `json:"current_education"`
	Degree           string `json:"degree"`
	Major            string `json:"major"`
	GraduationYear   string `json:"graduation_year"`
	GPA              string `json:"gpa,omitempty"`
}

type StudyGoal struct {
	IntendedDegree     string   `json:"intended_degree"`
	FieldOfStudy       string   `json:"field_of_study"`
	TargetIntake       string   `json:"target_intake"`
	PreferredCountries []string `json:"preferred_countries"`
}

type Budget struct {
	Range       string      `json:"range"`
	FundingPlan FundingPlan `json:"funding_plan"`
}

type ExamStatus struct {
	IELTS ExamProgress `json:"ielts"`
	GRE   ExamProgress `json:"gre"`
	SOP   SOPStatus    `json:"sop"`
}

// OnboardingData is the four-part questionnaire submitted once per user.
type OnboardingData struct {
	Academic AcademicBackground `json:"academic"`
	Goals    StudyGoal          `json:"goals"`
	Budget   Budget             `json:"budget"`
	Exams    ExamStatus         `json:"exams"`
}

// RequiresGraduateTest reports whether the intended degree calls for GRE/GMAT.
func (d OnboardingData) RequiresGraduateTest() bool {
	return d.Goals.IntendedDegree != IntendedDegreeBachelors
}

func (d OnboardingData) Clone() OnboardingData {
	out := d
	if d.Goals.PreferredCountries != nil {
		out.Goals.PreferredCountries = append([]string(nil), d.Goals.PreferredCountries...)
	}
	return out
}

// OnboardingPatch replaces whole sub-records of OnboardingData. Nil fields are kept.
type OnboardingPatch struct {
	Academic *AcademicBackground `json:"academic,omitempty"`
	Goals    *StudyGoal          `json:"goals,omitempty"`
	Budget   *Budget             `json:"budget,omitempty"`
	Exams    *ExamStatus         `json:"exams,omitempty"`
}

func (p OnboardingPatch) Empty() bool {
	return p.Academic == nil && p.Goals == nil && p.Budget == nil && p.Exams == nil
}

// Merge returns d with every non-nil sub-record of p applied.
func (d OnboardingData) Merge(p OnboardingPatch) OnboardingData {
	out := d.Clone()
	if p.Academic != nil {
		out.Academic = *p.Academic
	}
	if p.Goals != nil {
		out.Goals = *p.Goals
		out.Goals.PreferredCountries = append([]string(nil), p.Goals.PreferredCountries...)
	}
	if p.Budget != nil {
		out.Budget = *p.Budget
	}
	if p.Exams != nil {
		out.Exams = *p.Exams
	}
	return out
}
