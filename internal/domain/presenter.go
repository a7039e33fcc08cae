// Package domain contains pure, dependency-free domain models for the
// Research Day scoring engine.
package domain

// ResearchType classifies the kind of research being presented.
type ResearchType string

// The four fixed research categories used for award partitioning.
const (
	ResearchFoundational  ResearchType = "Foundational Research"
	ResearchTranslational ResearchType = "Translational Research"
	ResearchClinical      ResearchType = "Veterinary Clinical Research"
	ResearchPedagogy      ResearchType = "Social Sciences/Pedagogy Research"
)

// ResearchStage marks how far along a project is.
// Pedagogy-track presenters have no stage.
type ResearchStage string

const (
	StageEarly    ResearchStage = "Early"
	StageAdvanced ResearchStage = "Advanced"
)

// PresentationType determines the session format and, through
// RequiredJudges, how many judge scores a presenter needs.
type PresentationType string

const (
	PresentationOral            PresentationType = "Oral"
	PresentationPoster          PresentationType = "Poster"
	PresentationUndergradPoster PresentationType = "Undergrad Poster"
)

// RequiredJudges returns the number of judge scores a presentation of
// this type must collect before its final score is determinable.
// Undergrad posters carry three judges; everything else carries two.
func (pt PresentationType) RequiredJudges() int {
	if pt == PresentationUndergradPoster {
		return 3
	}
	return 2
}

// DepartmentOther is the catch-all department bucket. Presenters in it
// never count toward the department award.
const DepartmentOther = "Other"

// Presenter is one scored participant. Records are created at import
// time; only the judge assignment slots are mutated afterwards, by an
// admin reassignment.
type Presenter struct {
	// ID is the presentation identifier, e.g. "1B-3".
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Classification string `json:"classification"`

	// ResearchStage is empty for the pedagogy track.
	ResearchStage ResearchStage `json:"researchStage,omitempty"`
	ResearchType  ResearchType  `json:"researchType"`

	// Department is free text from the registration sheet.
	Department string `json:"department"`

	PresentationType PresentationType `json:"presentationType"`
	PresentationTime string           `json:"presentationTime"`
	Title            string           `json:"title"`

	// Judge1..Judge3 hold assigned judge names as entered on the
	// assignment sheet. Judge3 is only meaningful for undergrad
	// posters. An empty slot means unassigned.
	Judge1 string `json:"judge1,omitempty"`
	Judge2 string `json:"judge2,omitempty"`
	Judge3 string `json:"judge3,omitempty"`
}

// Name returns the presenter's display name.
func (p Presenter) Name() string {
	if p.FirstName == "" {
		return p.LastName
	}
	return p.FirstName + " " + p.LastName
}

// AssignedJudges returns the non-empty judge slots in slot order.
func (p Presenter) AssignedJudges() []string {
	out := make([]string, 0, 3)
	for _, j := range []string{p.Judge1, p.Judge2, p.Judge3} {
		if j != "" {
			out = append(out, j)
		}
	}
	return out
}

// Judge is a roster entry derived from presenter assignments.
// The ID is the normalized form of the name; matching against scores
// stays name-based at the boundary.
type Judge struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	AssignedPresenters []string `json:"assignedPresenters"`
}
