package questionnaire

// Vote is the three-level compliance classification of an app.
type Vote string

const (
	VoteGreen  Vote = "GREEN"
	VoteOrange Vote = "ORANGE"
	VoteRed    Vote = "RED"
)

// Section labels used to group questions for display.
const (
	SectionPersonalData = "Personal Data"
	SectionSecurity     = "Security"
	SectionTests        = "Tests and Certifications"
)

// VisibleIf hides a question unless the answer recorded for an earlier
// question equals the given value.
type VisibleIf struct {
	DependsOnQuestionID int    `json:"dependsOnQuestionId"`
	Equals              string `json:"equals"`
}

type Question struct {
	ID      int      `json:"id"`
	Section string   `json:"section"`
	Title   string   `json:"title"`
	Options []string `json:"options"`

	// Green, Orange and Red are pairwise disjoint subsets of Options. An
	// option that appears in none of them is scored red.
	Green  []string `json:"green"`
	Orange []string `json:"orange"`
	Red    []string `json:"red"`

	VisibleIf *VisibleIf `json:"visibleIf,omitempty"`

	// When set, the question additionally accepts a free-text elaboration.
	OptionalTextLabel string `json:"optionalTextLabel,omitempty"`
}

// Result is derived from a catalog and an answer set, never stored on its
// own. Recompute whenever answers change.
type Result struct {
	Vote   Vote `json:"vote"`
	Red    int  `json:"red"`
	Orange int  `json:"orange"`
	Green  int  `json:"green"`
}
