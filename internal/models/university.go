package models

// UniversityCategory is the precomputed reach classification of a catalog entry.
type UniversityCategory string

const (
	CategoryDream  UniversityCategory = "dream"
	CategoryTarget UniversityCategory = "target"
	CategorySafe   UniversityCategory = "safe"
)

func (c UniversityCategory) Valid() bool {
	switch c {
	case CategoryDream, CategoryTarget, CategorySafe:
		return true
	}
	return false
}

// Level is the low/medium/high scale used for risk, cost and acceptance chance.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

func (l Level) Valid() bool {
	switch l {
	case LevelLow, LevelMedium, LevelHigh:
		return true
	}
	return false
}

// University is a read-only catalog entry. Costs are yearly, in USD.
type University struct {
	ID               string             `json:"id" yaml:"id"`
	Name             string             `json:"name" yaml:"name"`
	Country          string             `json:"country" yaml:"country"`
	City             string             `json:"city" yaml:"city"`
	Ranking          int                `json:"ranking" yaml:"ranking"`
	TuitionFee       int                `json:"tuition_fee" yaml:"tuition_fee"`
	LivingCost       int                `json:"living_cost" yaml:"living_cost"`
	TotalCost        int                `json:"total_cost" yaml:"total_cost"`
	Programs         []string           `json:"programs" yaml:"programs"`
	AcceptanceRate   float64            `json:"acceptance_rate" yaml:"acceptance_rate"`
	MinGPA           float64            `json:"min_gpa" yaml:"min_gpa"`
	RequiresGRE      bool               `json:"requires_gre" yaml:"requires_gre"`
	RequiresIELTS    bool               `json:"requires_ielts" yaml:"requires_ielts"`
	Category         UniversityCategory `json:"category" yaml:"category"`
	RiskLevel        Level              `json:"risk_level" yaml:"risk_level"`
	CostLevel        Level              `json:"cost_level" yaml:"cost_level"`
	AcceptanceChance Level              `json:"acceptance_chance" yaml:"acceptance_chance"`
	WhyFit           string             `json:"why_fit" yaml:"why_fit"`
	Risks            []string           `json:"risks" yaml:"risks"`
	Image            string             `json:"image,omitempty" yaml:"image"`
}

// Location renders "City, Country".
func (u University) Location() string {
	if u.City == "" {
		return u.Country
	}
	return u.City + ", " + u.Country
}
