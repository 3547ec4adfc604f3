package scorer

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_WriteText(t *testing.T) {
	report := &Report{
		SlotListSource:    "responses",
		SingleValuedSlots: 2,
		ListValuedSlots:   3,
		Counts: Counts{
			Responses:   20,
			Correct:     10,
			KBRedundant: 5,
			Redundant:   1,
			Inexact:     2,
			Wrong:       2,
			Answers:     12,
			KBAnswers:   6,
		},
		Diagnostic: newMetrics(10, 12, 10, 15),
		Official:   newMetrics(15, 18, 15, 20),
		SlotTypes: map[string]SlotTypeStats{
			"per:title": {Correct: 3, Returned: 6, Judged: 5, Scores: newMetrics(3, 5, 3, 6)},
		},
	}

	var buf bytes.Buffer
	report.WriteText(&buf)
	out := buf.String()

	assert.Contains(t, out, "Slot list taken from system responses")
	assert.Contains(t, out, "Slot list includes 2 single-valued slots")
	assert.Contains(t, out, "Number of filled slots in key that are not in reference KB: 12")
	assert.Contains(t, out, "Number of filled slots in responses: 20")
	assert.Contains(t, out, "Recall: 10 / 12 = 0.8333")
	assert.Contains(t, out, "Precision: 10 / (20-5) = 0.6667")
	assert.Contains(t, out, "Recall: (10+5) / (12+6) = 0.8333")
	assert.Contains(t, out, "Precision: (10+5) / 20 = 0.7500")
	assert.Contains(t, out, "per:title")
}

func TestReport_WriteTextSlotListFile(t *testing.T) {
	report := &Report{SlotListSource: "slots.txt"}

	var buf bytes.Buffer
	report.WriteText(&buf)

	assert.Contains(t, buf.String(), "Slot list taken from file slots.txt")
}

func TestMetrics_MarshalJSON(t *testing.T) {
	t.Run("finite values pass through", func(t *testing.T) {
		out, err := json.Marshal(newMetrics(1, 2, 1, 4))
		require.NoError(t, err)
		assert.JSONEq(t, `{"recall":0.5,"precision":0.25,"f1":0.3333333333333333}`, string(out))
	})

	t.Run("non-finite values render as null", func(t *testing.T) {
		m := Metrics{Recall: math.NaN(), Precision: math.Inf(1), F1: math.NaN()}
		out, err := json.Marshal(m)
		require.NoError(t, err)
		assert.JSONEq(t, `{"recall":null,"precision":null,"f1":null}`, string(out))
	})
}

func TestReport_MarshalJSONWithEmptyRun(t *testing.T) {
	// A run with no responses and no answers produces NaN metrics;
	// the report must still encode.
	report := &Report{
		SlotListSource: "responses",
		Diagnostic:     newMetrics(0, 0, 0, 0),
		Official:       newMetrics(0, 0, 0, 0),
		SlotTypes:      map[string]SlotTypeStats{},
	}

	_, err := json.Marshal(report)
	assert.NoError(t, err)
}
