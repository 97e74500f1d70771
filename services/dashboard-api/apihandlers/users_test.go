package apihandlers

import (
	"reflect"
	"testing"
)

func TestIntersectAppIDs(t *testing.T) {
	t.Run("no shared apps yields an empty intersection", func(t *testing.T) {
		common := intersectAppIDs([]string{"a1", "a2"}, []string{"b1", "b2"})
		if len(common) != 0 {
			t.Errorf("expected no common apps, got %v", common)
		}
	})

	t.Run("shared apps keep the order of the principal's list", func(t *testing.T) {
		common := intersectAppIDs([]string{"a3", "a1", "a2"}, []string{"a2", "a3"})
		want := []string{"a3", "a2"}
		if !reflect.DeepEqual(common, want) {
			t.Errorf("expected %v, got %v", want, common)
		}
	})

	t.Run("empty principal list shares nothing", func(t *testing.T) {
		common := intersectAppIDs([]string{}, []string{"a1"})
		if len(common) != 0 {
			t.Errorf("expected no common apps, got %v", common)
		}
	})
}
