package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeOf(t *testing.T) {
	tests := []struct {
		queryID string
		want    Type
	}{
		{"SF100:per:date_of_birth", Single},
		{"SF100:org:website", Single},
		{"SF100:per:title", List},
		{"SF212:org:top_members_employees", List},
		{"SF212:gpe:pos-towards", List},
		{"SF100:per:shoe_size", Invalid},
		{"SF100:per:member_of", Invalid}, // merged into per:employee_or_member_of
		{"noslotname", Invalid},
		{"", Invalid},
	}

	for _, tt := range tests {
		t.Run(tt.queryID, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeOf(tt.queryID))
		})
	}
}

func TestNameOf(t *testing.T) {
	name, ok := NameOf("SF100:per:title")
	assert.True(t, ok)
	assert.Equal(t, "per:title", name)

	_, ok = NameOf("SF100")
	assert.False(t, ok)

	_, ok = NameOf("SF100:")
	assert.False(t, ok)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "single", Single.String())
	assert.Equal(t, "list", List.String())
	assert.Equal(t, "invalid", Invalid.String())
}
