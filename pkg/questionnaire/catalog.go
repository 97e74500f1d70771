package questionnaire

import (
	"fmt"

	"github.com/AlbertoHugonin/privacydashboard/pkg/utils"
)

// Catalog is the fixed, ordered question list. Question ids are dense and
// equal the catalog position, so answer slices can be indexed directly.
type Catalog []Question

// Validate checks the structural guarantees the evaluation depends on:
// dense ids matching catalog order, severity buckets that are pairwise
// disjoint subsets of the options, and visibility conditions referencing
// only strictly earlier questions (no cycles possible).
func (c Catalog) Validate() error {
	for i, question := range c {
		if question.ID != i {
			return fmt.Errorf("question at position %d has id %d", i, question.ID)
		}

		seen := map[string]string{}
		buckets := map[string][]string{
			"green":  question.Green,
			"orange": question.Orange,
			"red":    question.Red,
		}
		for name, bucket := range buckets {
			for _, option := range bucket {
				if !utils.ContainsString(question.Options, option) {
					return fmt.Errorf("question %d: %s bucket contains unknown option %q", i, name, option)
				}
				if other, ok := seen[option]; ok {
					return fmt.Errorf("question %d: option %q classified as both %s and %s", i, option, other, name)
				}
				seen[option] = name
			}
		}

		if question.VisibleIf != nil {
			dep := question.VisibleIf.DependsOnQuestionID
			if dep < 0 || dep >= i {
				return fmt.Errorf("question %d: visibility depends on question %d", i, dep)
			}
			if !utils.ContainsString(c[dep].Options, question.VisibleIf.Equals) {
				return fmt.Errorf("question %d: visibility condition %q is not an option of question %d", i, question.VisibleIf.Equals, dep)
			}
		}
	}
	return nil
}

// DefaultCatalog returns the GDPR compliance questionnaire presented to
// controllers and DPOs. The content is fixed at startup and never mutated.
func DefaultCatalog() Catalog {
	return Catalog{
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
			Title:     "Is the collected data limited to what is necessary for the declared purpose?",
			Options:   []string{"Yes", "No"},
			Green:     []string{"Yes"},
			Red:       []string{"No"},
			VisibleIf: &VisibleIf{DependsOnQuestionID: 0, Equals: "Yes"},
		},
		{
			ID:                2,
			Section:           SectionPersonalData,
			Title:             "Where is the personal data stored?",
			Options:           []string{"Only on the device", "On servers inside the EU", "On servers outside the EU"},
			Green:             []string{"Only on the device"},
			Orange:            []string{"On servers inside the EU"},
			Red:               []string{"On servers outside the EU"},
			VisibleIf:         &VisibleIf{DependsOnQuestionID: 0, Equals: "Yes"},
			OptionalTextLabel: "Storage provider and location",
		},
		{
			ID:                3,
			Section:           SectionPersonalData,
			Title:             "Is personal data shared with third parties?",
			Options:           []string{"No", "Yes, with consent", "Yes, without consent"},
			Green:             []string{"No"},
			Orange:            []string{"Yes, with consent"},
			Red:               []string{"Yes, without consent"},
			OptionalTextLabel: "List the third parties",
		},
		{
			ID:        4,
			Section:   SectionPersonalData,
			Title:     "How long is personal data retained?",
			Options:   []string{"Until the user deletes it", "Fixed retention period", "Indefinitely"},
			Green:     []string{"Until the user deletes it"},
			Orange:    []string{"Fixed retention period"},
			Red:       []string{"Indefinitely"},
			VisibleIf: &VisibleIf{DependsOnQuestionID: 0, Equals: "Yes"},
		},
		{
			ID:      5,
			Section: SectionPersonalData,
			Title:   "Can the user obtain a copy of their data in a portable format?",
			Options: []string{"Yes", "No"},
			Green:   []string{"Yes"},
			Red:     []string{"No"},
		},
		{
			ID:      6,
			Section: SectionSecurity,
			Title:   "Is personal data encrypted in transit?",
			Options: []string{"Yes, always", "Partially", "No"},
			Green:   []string{"Yes, always"},
			Orange:  []string{"Partially"},
			Red:     []string{"No"},
		},
		{
			ID:      7,
			Section: SectionSecurity,
			Title:   "Is personal data encrypted at rest?",
			Options: []string{"Yes, always", "Partially", "No"},
			Green:   []string{"Yes, always"},
			Orange:  []string{"Partially"},
			Red:     []string{"No"},
		},
		{
			ID:      8,
			Section: SectionSecurity,
			Title:   "Does the app enforce authentication before giving access to personal data?",
			Options: []string{"Yes, multi-factor", "Yes, password only", "No"},
			Green:   []string{"Yes, multi-factor"},
			Orange:  []string{"Yes, password only"},
			Red:     []string{"No"},
		},
		{
			ID:                9,
			Section:           SectionSecurity,
			Title:             "Has a data protection impact assessment been carried out?",
			Options:           []string{"Yes", "No"},
			Green:             []string{"Yes"},
			Red:               []string{"No"},
			OptionalTextLabel: "Summary of the assessment outcome",
		},
		{
			ID:      10,
			Section: SectionSecurity,
			Title:   "Is there a procedure to notify data breaches within 72 hours?",
			Options: []string{"Yes", "No"},
			Green:   []string{"Yes"},
			Red:     []string{"No"},
		},
		{
			ID:                11,
			Section:           SectionTests,
			Title:             "Has the app undergone an independent security audit?",
			Options:           []string{"Yes, within the last year", "Yes, more than a year ago", "No"},
			Green:             []string{"Yes, within the last year"},
			Orange:            []string{"Yes, more than a year ago"},
			Red:               []string{"No"},
			OptionalTextLabel: "Auditor and date",
		},
		{
			ID:        12,
			Section:   SectionTests,
			Title:     "Were all findings of the audit resolved?",
			Options:   []string{"Yes", "Partially", "No"},
			Green:     []string{"Yes"},
			Orange:    []string{"Partially"},
			Red:       []string{"No"},
			VisibleIf: &VisibleIf{DependsOnQuestionID: 11, Equals: "Yes, within the last year"},
		},
		{
			ID:                13,
			Section:           SectionTests,
			Title:             "Does the app hold a privacy or security certification?",
			Options:           []string{"Yes", "No"},
			Green:             []string{"Yes"},
			Orange:            []string{"No"},
			OptionalTextLabel: "Certification details",
		},
	}
}
