package models

// Stage is one of the four ordered phases of an applicant's journey.
type Stage string

const (
	StageBuildingProfile         Stage = "building-profile"
	StageDiscoveringUniversities Stage = "discovering-universities"
	StageFinalizingUniversities  Stage = "finalizing-universities"
	StagePreparingApplications   Stage = "preparing-applications"
)

// Stages lists every stage in journey order.
var Stages = []Stage{
	StageBuildingProfile,
	StageDiscoveringUniversities,
	StageFinalizingUniversities,
	StagePreparingApplications,
}

var stageLabels = map[Stage]struct{ label, description string }{
	StageBuildingProfile:         {"Building Profile", "Complete your profile"},
	StageDiscoveringUniversities: {"Discovering Universities", "Explore options"},
	StageFinalizingUniversities:  {"Finalizing Universities", "Shortlist & lock"},
	StagePreparingApplications:   {"Preparing Applications", "Apply to universities"},
}

// Valid reports whether s is one of the four known stages.
func (s Stage) Valid() bool {
	_, ok := stageLabels[s]
	return ok
}

// Index returns the position of s in Stages, or -1.
func (s Stage) Index() int {
	for i, st := range Stages {
		if st == s {
			return i
		}
	}
	return -1
}

func (s Stage) Label() string       { return stageLabels[s].label }
func (s Stage) Description() string { return stageLabels[s].description }
