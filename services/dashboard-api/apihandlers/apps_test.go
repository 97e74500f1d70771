package apihandlers

import (
	"encoding/json"
	"testing"
)

func TestUpdateAppReqPartialPayloads(t *testing.T) {
	t.Run("questionnaire page payload carries no details", func(t *testing.T) {
		// the payload the questionnaire page sends on save
		body := `{"questionnaireVote":"GREEN","detailVote":["No",null],"optionalAnswers":[null,null]}`

		var req updateAppReq
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		if req.hasDetails() {
			t.Error("a questionnaire-only save must not be treated as a details update")
		}
		if !req.hasQuestionnaire() {
			t.Error("expected a questionnaire update")
		}
		if req.Name != nil {
			t.Errorf("expected no name in payload, got %q", *req.Name)
		}
	})

	t.Run("details payload carries no questionnaire", func(t *testing.T) {
		body := `{"name":"Thermo Home","description":"Smart thermostat","consenses":["temperature logging"]}`

		var req updateAppReq
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}

		if !req.hasDetails() {
			t.Error("expected a details update")
		}
		if req.hasQuestionnaire() {
			t.Error("a details-only save must not replace the stored answers")
		}
	})

	t.Run("empty payload is neither", func(t *testing.T) {
		var req updateAppReq
		if err := json.Unmarshal([]byte(`{}`), &req); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if req.hasDetails() || req.hasQuestionnaire() {
			t.Error("an empty object must not trigger any update")
		}
	})
}
