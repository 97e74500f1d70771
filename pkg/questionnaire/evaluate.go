package questionnaire

import "github.com/AlbertoHugonin/privacydashboard/pkg/utils"

// Evaluate scores an answer set against the catalog and returns the vote
// with the per-bucket counts.
//
// Scoring rules:
//   - a question whose visibility condition is not met is skipped entirely,
//     even if it still holds a stale answer;
//   - an answered question counts for the first bucket (green, orange, red)
//     that contains its answer;
//   - an unanswered question, or an answer missing from all three buckets,
//     counts red;
//   - the vote is RED if any question counted red, otherwise ORANGE if any
//     counted orange, otherwise GREEN.
//
// A single red answer outweighs any number of green ones. The red default
// for unanswered and unclassified options is intentional: an incomplete
// questionnaire must not look compliant.
func Evaluate(catalog Catalog, answers AnswerSet) Result {
	result := Result{}

	for _, question := range catalog {
		if !isVisible(question, answers) {
			continue
		}

		answer := Unanswered
		if question.ID < len(answers.Answers) {
			answer = answers.Answers[question.ID]
		}

		switch {
		case answer != Unanswered && utils.ContainsString(question.Green, answer):
			result.Green++
		case answer != Unanswered && utils.ContainsString(question.Orange, answer):
			result.Orange++
		default:
			result.Red++
		}
	}

	switch {
	case result.Red > 0:
		result.Vote = VoteRed
	case result.Orange > 0:
		result.Vote = VoteOrange
	default:
		result.Vote = VoteGreen
	}
	return result
}

func isVisible(question Question, answers AnswerSet) bool {
	if question.VisibleIf == nil {
		return true
	}
	dep := question.VisibleIf.DependsOnQuestionID
	if dep < 0 || dep >= len(answers.Answers) {
		return false
	}
	// Unanswered never equals a concrete option value.
	return answers.Answers[dep] == question.VisibleIf.Equals
}
