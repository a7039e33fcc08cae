package domain

// AwardCategory is a static partition of the presenter population.
// A presenter matches when the presentation type is equal and each of
// the research type / stage constraints is either empty (wildcard) or
// equal to the presenter's value.
type AwardCategory struct {
	ID   string `json:"id" yaml:"id" validate:"required"`
	Name string `json:"name" yaml:"name" validate:"required"`

	// ResearchType and ResearchStage are wildcards when empty.
	ResearchType  ResearchType  `json:"researchType,omitempty" yaml:"research_type"`
	ResearchStage ResearchStage `json:"researchStage,omitempty" yaml:"research_stage"`

	PresentationType PresentationType `json:"presentationType" yaml:"presentation_type" validate:"required"`

	// Places is how many ranks are awarded, 1st through Places.
	Places int `json:"places" yaml:"places" validate:"min=1,max=3"`
}

// CategoryWinner is one awarded rank within a category.
type CategoryWinner struct {
	Category   string    `json:"category"`
	Place      int       `json:"place"`
	Presenter  Presenter `json:"presenter"`
	FinalScore float64   `json:"finalScore"`
}

// AwardCategories is the full award structure for the event: the
// presentation-type x research-type x research-stage space, three
// places each. Oral and regular posters split by stage; pedagogy and
// undergrad categories do not.
var AwardCategories = []AwardCategory{
	{ID: "oral-found-adv", Name: "Foundational Research, Advanced Stage, Oral", ResearchType: ResearchFoundational, ResearchStage: StageAdvanced, PresentationType: PresentationOral, Places: 3},
	{ID: "oral-found-early", Name: "Foundational Research, Early Stage, Oral", ResearchType: ResearchFoundational, ResearchStage: StageEarly, PresentationType: PresentationOral, Places: 3},
	{ID: "oral-trans-adv", Name: "Translational Research, Advanced Stage, Oral", ResearchType: ResearchTranslational, ResearchStage: StageAdvanced, PresentationType: PresentationOral, Places: 3},
	{ID: "oral-trans-early", Name: "Translational Research, Early Stage, Oral", ResearchType: ResearchTranslational, ResearchStage: StageEarly, PresentationType: PresentationOral, Places: 3},
	{ID: "oral-clin-adv", Name: "Veterinary Clinical Research, Advanced Stage, Oral", ResearchType: ResearchClinical, ResearchStage: StageAdvanced, PresentationType: PresentationOral, Places: 3},
	{ID: "oral-clin-early", Name: "Veterinary Clinical Research, Early Stage, Oral", ResearchType: ResearchClinical, ResearchStage: StageEarly, PresentationType: PresentationOral, Places: 3},

	{ID: "poster-found-adv", Name: "Foundational Research, Advanced Stage, Poster", ResearchType: ResearchFoundational, ResearchStage: StageAdvanced, PresentationType: PresentationPoster, Places: 3},
	{ID: "poster-found-early", Name: "Foundational Research, Early Stage, Poster", ResearchType: ResearchFoundational, ResearchStage: StageEarly, PresentationType: PresentationPoster, Places: 3},
	{ID: "poster-trans-adv", Name: "Translational Research, Advanced Stage, Poster", ResearchType: ResearchTranslational, ResearchStage: StageAdvanced, PresentationType: PresentationPoster, Places: 3},
	{ID: "poster-trans-early", Name: "Translational Research, Early Stage, Poster", ResearchType: ResearchTranslational, ResearchStage: StageEarly, PresentationType: PresentationPoster, Places: 3},
	{ID: "poster-clin-adv", Name: "Veterinary Clinical Research, Advanced Stage, Poster", ResearchType: ResearchClinical, ResearchStage: StageAdvanced, PresentationType: PresentationPoster, Places: 3},
	{ID: "poster-clin-early", Name: "Veterinary Clinical Research, Early Stage, Poster", ResearchType: ResearchClinical, ResearchStage: StageEarly, PresentationType: PresentationPoster, Places: 3},
	{ID: "poster-ped", Name: "Pedagogy Research, Poster", ResearchType: ResearchPedagogy, PresentationType: PresentationPoster, Places: 3},

	{ID: "undergrad-found", Name: "Foundational Research, Undergrad Poster", ResearchType: ResearchFoundational, PresentationType: PresentationUndergradPoster, Places: 3},
	{ID: "undergrad-trans", Name: "Translational Research, Undergrad Poster", ResearchType: ResearchTranslational, PresentationType: PresentationUndergradPoster, Places: 3},
	{ID: "undergrad-clin", Name: "Veterinary Clinical Research, Undergrad Poster", ResearchType: ResearchClinical, PresentationType: PresentationUndergradPoster, Places: 3},
	{ID: "undergrad-ped", Name: "Pedagogy Research, Undergrad Poster", ResearchType: ResearchPedagogy, PresentationType: PresentationUndergradPoster, Places: 3},
}

// CategoryByID looks up a statically configured category.
func CategoryByID(id string) (AwardCategory, bool) {
	for _, c := range AwardCategories {
		if c.ID == id {
			return c, true
		}
	}
	return AwardCategory{}, false
}
