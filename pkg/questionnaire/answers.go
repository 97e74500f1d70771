package questionnaire

// Unanswered is the sentinel for a question without a selected option.
// Option labels are never empty, so the empty string is safe here.
const Unanswered = ""

// AnswerSet holds the selected option and the optional free-text
// elaboration per question, indexed by question id. Both slices always have
// catalog length.
type AnswerSet struct {
	Answers         []string
	OptionalAnswers []string
}

func NewAnswerSet(catalog Catalog) AnswerSet {
	return AnswerSet{
		Answers:         make([]string, len(catalog)),
		OptionalAnswers: make([]string, len(catalog)),
	}
}

// AnswerSetFromStored rebuilds an answer set from the persisted nullable
// arrays. Entries beyond the catalog length are dropped, missing entries
// stay unanswered, so a catalog revision does not invalidate older records.
func AnswerSetFromStored(catalog Catalog, answers []*string, optionalAnswers []*string) AnswerSet {
	set := NewAnswerSet(catalog)
	for i := range catalog {
		if i < len(answers) && answers[i] != nil {
			set.Answers[i] = *answers[i]
		}
		if i < len(optionalAnswers) && optionalAnswers[i] != nil {
			set.OptionalAnswers[i] = *optionalAnswers[i]
		}
	}
	return set
}

// StoredAnswers returns the wire/persistence form of the selected options:
// one entry per question, nil where unanswered.
func (a AnswerSet) StoredAnswers() []*string {
	stored := make([]*string, len(a.Answers))
	for i, answer := range a.Answers {
		if answer == Unanswered {
			continue
		}
		v := answer
		stored[i] = &v
	}
	return stored
}

// StoredOptionalAnswers returns the persistence form of the free-text
// answers: nil for questions without an optional text field.
func (a AnswerSet) StoredOptionalAnswers(catalog Catalog) []*string {
	stored := make([]*string, len(a.OptionalAnswers))
	for i, question := range catalog {
		if i >= len(a.OptionalAnswers) {
			break
		}
		if question.OptionalTextLabel == "" {
			continue
		}
		v := a.OptionalAnswers[i]
		stored[i] = &v
	}
	return stored
}
