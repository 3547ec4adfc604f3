package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJudgment(t *testing.T) {
	tests := []struct {
		code string
		want Judgment
	}{
		{"C", JudgmentCorrect},
		{"R", JudgmentRedundant},
		{"I", JudgmentIgnore},
		{"X", JudgmentInexact},
		{"W", JudgmentWrong},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := ParseJudgment(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.code, got.Code())
		})
	}
}

func TestParseJudgment_Unknown(t *testing.T) {
	_, err := ParseJudgment("Z")
	assert.Error(t, err)

	_, err = ParseJudgment("")
	assert.Error(t, err)
}

func TestJudgmentPrecedence(t *testing.T) {
	// CORRECT > REDUNDANT > IGNORE > INEXACT > WRONG, strict total order.
	order := []Judgment{JudgmentCorrect, JudgmentRedundant, JudgmentIgnore, JudgmentInexact, JudgmentWrong}

	for i, stronger := range order {
		for _, weaker := range order[i+1:] {
			assert.True(t, stronger.Outranks(weaker), "%s should outrank %s", stronger, weaker)
			assert.False(t, weaker.Outranks(stronger), "%s should not outrank %s", weaker, stronger)
		}
		assert.False(t, stronger.Outranks(stronger), "%s should not outrank itself", stronger)
	}
}
