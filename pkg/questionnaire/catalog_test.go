package questionnaire

import "testing"

func TestDefaultCatalogIsValid(t *testing.T) {
	if err := DefaultCatalog().Validate(); err != nil {
		t.Errorf("default catalog invalid: %s", err.Error())
	}
}

func TestCatalogValidate(t *testing.T) {
	base := func() Catalog {
		return Catalog{
			{
				ID:      0,
				Section: SectionPersonalData,
				Title:   "first",
				Options: []string{"Yes", "No"},
				Green:   []string{"Yes"},
				Red:     []string{"No"},
			},
			{
				ID:        1,
				Section:   SectionPersonalData,
				Title:     "second",
				Options:   []string{"Yes", "No"},
				Green:     []string{"Yes"},
				Red:       []string{"No"},
				VisibleIf: &VisibleIf{DependsOnQuestionID: 0, Equals: "Yes"},
			},
		}
	}

	t.Run("valid catalog", func(t *testing.T) {
		if err := base().Validate(); err != nil {
			t.Errorf("unexpected error: %s", err.Error())
		}
	})

	t.Run("non dense ids", func(t *testing.T) {
		catalog := base()
		catalog[1].ID = 5
		if err := catalog.Validate(); err == nil {
			t.Error("expected error for non dense ids")
		}
	})

	t.Run("bucket option not in options", func(t *testing.T) {
		catalog := base()
		catalog[0].Green = []string{"Maybe"}
		if err := catalog.Validate(); err == nil {
			t.Error("expected error for unknown bucket option")
		}
	})

	t.Run("overlapping buckets", func(t *testing.T) {
		catalog := base()
		catalog[0].Red = []string{"Yes"}
		if err := catalog.Validate(); err == nil {
			t.Error("expected error for overlapping buckets")
		}
	})

	t.Run("forward visibility reference", func(t *testing.T) {
		catalog := base()
		catalog[0].VisibleIf = &VisibleIf{DependsOnQuestionID: 1, Equals: "Yes"}
		if err := catalog.Validate(); err == nil {
			t.Error("expected error for forward reference")
		}
	})

	t.Run("self visibility reference", func(t *testing.T) {
		catalog := base()
		catalog[1].VisibleIf = &VisibleIf{DependsOnQuestionID: 1, Equals: "Yes"}
		if err := catalog.Validate(); err == nil {
			t.Error("expected error for self reference")
		}
	})

	t.Run("visibility value not an option", func(t *testing.T) {
		catalog := base()
		catalog[1].VisibleIf = &VisibleIf{DependsOnQuestionID: 0, Equals: "Maybe"}
		if err := catalog.Validate(); err == nil {
			t.Error("expected error for unknown visibility value")
		}
	})
}

func TestAnswerSetStoredRoundtrip(t *testing.T) {
	catalog := DefaultCatalog()

	set := NewAnswerSet(catalog)
	set.Answers[0] = "Yes"
	set.Answers[2] = "On servers inside the EU"
	set.OptionalAnswers[2] = "EU datacenter, Frankfurt"
	set.OptionalAnswers[5] = "ignored, question has no text field"

	stored := set.StoredAnswers()
	storedOptional := set.StoredOptionalAnswers(catalog)

	if stored[0] == nil || *stored[0] != "Yes" {
		t.Errorf("unexpected stored answer: %v", stored[0])
	}
	if stored[1] != nil {
		t.Error("unanswered question must be stored as nil")
	}
	if storedOptional[2] == nil || *storedOptional[2] != "EU datacenter, Frankfurt" {
		t.Errorf("unexpected stored optional answer: %v", storedOptional[2])
	}
	if storedOptional[5] != nil {
		t.Error("question without optional text field must store nil")
	}

	rebuilt := AnswerSetFromStored(catalog, stored, storedOptional)
	if rebuilt.Answers[0] != "Yes" || rebuilt.Answers[1] != Unanswered {
		t.Errorf("unexpected rebuilt answers: %v", rebuilt.Answers[:3])
	}
	if rebuilt.OptionalAnswers[2] != "EU datacenter, Frankfurt" {
		t.Errorf("unexpected rebuilt optional answers: %v", rebuilt.OptionalAnswers[:3])
	}
}

func TestAnswerSetFromStoredShorterThanCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	yes := "Yes"

	set := AnswerSetFromStored(catalog, []*string{&yes}, nil)
	if len(set.Answers) != len(catalog) {
		t.Errorf("answer set must have catalog length, got %d", len(set.Answers))
	}
	if set.Answers[0] != "Yes" {
		t.Errorf("unexpected first answer: %q", set.Answers[0])
	}
	for _, answer := range set.Answers[1:] {
		if answer != Unanswered {
			t.Errorf("expected unanswered, got %q", answer)
		}
	}
}
