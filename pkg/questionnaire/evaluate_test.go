package questionnaire

import (
	"reflect"
	"testing"
)

func singleQuestionCatalog() Catalog {
	return Catalog{
		{
			ID:      0,
			Section: SectionPersonalData,
			Title:   "Does the app collect personal data?",
			Options: []string{"Yes", "No"},
			Green:   []string{"Yes"},
			Red:     []string{"No"},
		},
	}
}

func answerSetWith(catalog Catalog, answers map[int]string) AnswerSet {
	set := NewAnswerSet(catalog)
	for id, answer := range answers {
		set.Answers[id] = answer
	}
	return set
}

func TestEvaluateSingleQuestion(t *testing.T) {
	catalog := singleQuestionCatalog()

	t.Run("unanswered counts red", func(t *testing.T) {
		result := Evaluate(catalog, NewAnswerSet(catalog))
		if result.Vote != VoteRed || result.Red != 1 {
			t.Errorf("unexpected result: %+v", result)
		}
	})

	t.Run("green answer", func(t *testing.T) {
		result := Evaluate(catalog, answerSetWith(catalog, map[int]string{0: "Yes"}))
		if result.Vote != VoteGreen || result.Green != 1 || result.Red != 0 {
			t.Errorf("unexpected result: %+v", result)
		}
	})

	t.Run("red answer", func(t *testing.T) {
		result := Evaluate(catalog, answerSetWith(catalog, map[int]string{0: "No"}))
		if result.Vote != VoteRed || result.Red != 1 {
			t.Errorf("unexpected result: %+v", result)
		}
	})
}

func TestEvaluateVisibilityCondition(t *testing.T) {
	catalog := Catalog{
		{
			ID:      0,
			Section: SectionPersonalData,
			Title:   "Does the app collect personal data?",
			Options: []string{"Yes", "No"},
			Green:   []string{"No"},
			Orange:  []string{"Yes"},
		},
		{
			ID:        1,
			Section:   SectionPersonalData,
			Title:     "Is the data shared?",
			Options:   []string{"Yes", "No"},
			Green:     []string{"No"},
			Red:       []string{"Yes"},
			VisibleIf: &VisibleIf{DependsOnQuestionID: 0, Equals: "Yes"},
		},
	}

	t.Run("hidden question is skipped even with a red answer", func(t *testing.T) {
		// Q0 answered "No", so Q1 is invisible; its stale red answer must
		// not contribute to any bucket.
		result := Evaluate(catalog, answerSetWith(catalog, map[int]string{0: "No", 1: "Yes"}))
		if result.Vote != VoteGreen {
			t.Errorf("expected GREEN, got %+v", result)
		}
		if result.Red != 0 || result.Green != 1 {
			t.Errorf("unexpected counts: %+v", result)
		}
	})

	t.Run("unanswered dependency hides the question", func(t *testing.T) {
		result := Evaluate(catalog, answerSetWith(catalog, map[int]string{1: "No"}))
		// Q0 unanswered -> red; Q1 hidden.
		if result.Red != 1 || result.Green != 0 || result.Orange != 0 {
			t.Errorf("unexpected counts: %+v", result)
		}
	})

	t.Run("visible question is scored", func(t *testing.T) {
		result := Evaluate(catalog, answerSetWith(catalog, map[int]string{0: "Yes", 1: "Yes"}))
		if result.Vote != VoteRed || result.Red != 1 || result.Orange != 1 {
			t.Errorf("unexpected result: %+v", result)
		}
	})
}

func TestEvaluateRedDominance(t *testing.T) {
	catalog := DefaultCatalog()

	set := NewAnswerSet(catalog)
	for _, question := range catalog {
		if len(question.Green) > 0 {
			set.Answers[question.ID] = question.Green[0]
		}
	}
	// All green except one visible red answer.
	set.Answers[5] = "No"

	result := Evaluate(catalog, set)
	if result.Vote != VoteRed {
		t.Errorf("a single red answer must dominate, got %+v", result)
	}
	if result.Red != 1 {
		t.Errorf("expected exactly one red, got %+v", result)
	}
}

func TestEvaluateOrangeWithoutRed(t *testing.T) {
	catalog := DefaultCatalog()

	set := NewAnswerSet(catalog)
	for _, question := range catalog {
		if len(question.Green) > 0 {
			set.Answers[question.ID] = question.Green[0]
		}
	}
	// Question 13 has an orange "No" and no red bucket.
	set.Answers[13] = "No"

	result := Evaluate(catalog, set)
	if result.Vote != VoteOrange {
		t.Errorf("expected ORANGE, got %+v", result)
	}
	if result.Red != 0 || result.Orange != 1 {
		t.Errorf("unexpected counts: %+v", result)
	}
}

func TestEvaluateAllGreen(t *testing.T) {
	catalog := DefaultCatalog()

	// "No" on question 0 is green and hides the dependent questions, the
	// remaining questions all get their green option.
	set := NewAnswerSet(catalog)
	set.Answers[0] = "No"
	for _, question := range catalog {
		if question.ID == 0 || len(question.Green) == 0 {
			continue
		}
		set.Answers[question.ID] = question.Green[0]
	}

	result := Evaluate(catalog, set)
	if result.Vote != VoteGreen {
		t.Errorf("expected GREEN, got %+v", result)
	}
	if result.Red != 0 || result.Orange != 0 {
		t.Errorf("unexpected counts: %+v", result)
	}
}

func TestEvaluateUnclassifiedAnswerCountsRed(t *testing.T) {
	catalog := Catalog{
		{
			ID:      0,
			Section: SectionSecurity,
			Title:   "Partial bucket coverage",
			Options: []string{"A", "B"},
			Green:   []string{"A"},
			// "B" deliberately not classified.
		},
	}

	result := Evaluate(catalog, answerSetWith(catalog, map[int]string{0: "B"}))
	if result.Vote != VoteRed || result.Red != 1 {
		t.Errorf("answered but unclassified option must count red, got %+v", result)
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	catalog := DefaultCatalog()
	set := answerSetWith(catalog, map[int]string{0: "Yes", 2: "On servers inside the EU", 6: "No"})

	first := Evaluate(catalog, set)
	second := Evaluate(catalog, set)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("evaluation not idempotent: %+v vs %+v", first, second)
	}
}

func TestEvaluateDefaultCatalogEmpty(t *testing.T) {
	catalog := DefaultCatalog()
	result := Evaluate(catalog, NewAnswerSet(catalog))

	if result.Vote != VoteRed {
		t.Errorf("empty questionnaire must vote RED, got %+v", result)
	}
	// Questions 1, 2, 4 and 12 are hidden while their dependencies are
	// unanswered; everything else counts red.
	expectedRed := len(catalog) - 4
	if result.Red != expectedRed {
		t.Errorf("expected %d red, got %+v", expectedRed, result)
	}
}
