package apihandlers

import (
	"testing"

	"github.com/AlbertoHugonin/privacydashboard/pkg/utils"

	appDB "github.com/AlbertoHugonin/privacydashboard/pkg/db/app"
)

func TestRightTypesRequiringOther(t *testing.T) {
	for _, rightType := range rightTypesRequiringOther {
		if !utils.ContainsString(knownRightTypes, rightType) {
			t.Errorf("right type %q requires the other field but is not a known type", rightType)
		}
	}

	t.Run("delete everything and portability do not require other", func(t *testing.T) {
		for _, rightType := range []string{appDB.RIGHT_TYPE_DELETE_EVERYTHING, appDB.RIGHT_TYPE_PORTABILITY} {
			if utils.ContainsString(rightTypesRequiringOther, rightType) {
				t.Errorf("right type %q should not require the other field", rightType)
			}
		}
	})
}
