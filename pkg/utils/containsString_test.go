package utils

import "testing"

func TestContainsString(t *testing.T) {
	slice := []string{"SUBJECT", "CONTROLLER", "DPO"}

	if !ContainsString(slice, "DPO") {
		t.Error("expected to find DPO")
	}
	if ContainsString(slice, "dpo") {
		t.Error("matching must be case sensitive")
	}
	if ContainsString(nil, "SUBJECT") {
		t.Error("nil slice contains nothing")
	}
}
