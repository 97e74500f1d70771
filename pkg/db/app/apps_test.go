package app

import "testing"

func TestAppDetailsUpdateFields(t *testing.T) {
	name := "Thermo Home"
	description := "Smart thermostat companion"

	t.Run("questionnaire-only update touches nothing", func(t *testing.T) {
		fields := appDetailsUpdateFields(nil, nil, nil)
		if len(fields) != 0 {
			t.Errorf("expected no fields, got %v", fields)
		}
	})

	t.Run("name-only update leaves consenses alone", func(t *testing.T) {
		fields := appDetailsUpdateFields(&name, nil, nil)
		if len(fields) != 1 {
			t.Fatalf("expected 1 field, got %v", fields)
		}
		if fields["name"] != name {
			t.Errorf("unexpected name field: %v", fields["name"])
		}
		if _, ok := fields["consenses"]; ok {
			t.Error("consenses must not be set by a name-only update")
		}
	})

	t.Run("full update sets all fields", func(t *testing.T) {
		consenses := []string{"temperature logging", "location"}
		fields := appDetailsUpdateFields(&name, &description, consenses)
		if len(fields) != 3 {
			t.Fatalf("expected 3 fields, got %v", fields)
		}
	})

	t.Run("empty consent list is a deliberate clear", func(t *testing.T) {
		fields := appDetailsUpdateFields(nil, nil, []string{})
		if _, ok := fields["consenses"]; !ok {
			t.Error("an empty non-nil consent list should clear the stored one")
		}
	})
}
