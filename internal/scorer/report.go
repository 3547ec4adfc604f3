package scorer

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
)

// Metrics is a recall/precision/F1 triple. Any component may be NaN or
// infinite when its denominator is zero; that is a valid result, and
// JSON marshalling renders non-finite values as null.
type Metrics struct {
	Recall    float64 `json:"recall"`
	Precision float64 `json:"precision"`
	F1        float64 `json:"f1"`
}

func newMetrics(recallNum, recallDen, precNum, precDen float64) Metrics {
	recall := recallNum / recallDen
	precision := precNum / precDen
	return Metrics{
		Recall:    recall,
		Precision: precision,
		F1:        2 * recall * precision / (recall + precision),
	}
}

// MarshalJSON renders non-finite components as null so reports stay
// machine-readable when a denominator was zero.
func (m Metrics) MarshalJSON() ([]byte, error) {
	finite := func(f float64) *float64 {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return &f
	}
	return json.Marshal(struct {
		Recall    *float64 `json:"recall"`
		Precision *float64 `json:"precision"`
		F1        *float64 `json:"f1"`
	}{finite(m.Recall), finite(m.Precision), finite(m.F1)})
}

// WriteText renders the summary report in the scorer's traditional
// layout: slot list provenance, key answer counts, response outcome
// counts, diagnostic and official scores with their arithmetic shown,
// then the per-slot-type table.
func (r *Report) WriteText(w io.Writer) {
	c := r.Counts

	fmt.Fprintln(w, "======== Summary Statistics ===========")
	if r.SlotListSource == "responses" {
		fmt.Fprintln(w, "Slot list taken from system responses")
	} else {
		fmt.Fprintf(w, "Slot list taken from file %s\n", r.SlotListSource)
	}
	fmt.Fprintf(w, "Slot list includes %d single-valued slots\n", r.SingleValuedSlots)
	fmt.Fprintf(w, "                  and %d list-valued slots\n", r.ListValuedSlots)

	fmt.Fprintf(w, "\nNumber of filled slots in key that are not in reference KB: %d\n", c.Answers)
	fmt.Fprintf(w, "Number of filled slots in key that are in reference KB: %d\n", c.KBAnswers)

	fmt.Fprintf(w, "\nNumber of filled slots in responses: %d\n", c.Responses)
	fmt.Fprintf(w, "\tNumber correct (not in reference KB): %d\n", c.Correct)
	fmt.Fprintf(w, "\tNumber redundant with reference KB: %d\n", c.KBRedundant)
	fmt.Fprintf(w, "\tNumber redundant with another response: %d\n", c.Redundant)
	fmt.Fprintf(w, "\tNumber inexact: %d\n", c.Inexact)
	fmt.Fprintf(w, "\tNumber incorrect / spurious: %d\n", c.Wrong)

	fmt.Fprintln(w, "\nDiagnostic scores (ignoring slot fillers in key and responses that are already in reference KB):")
	fmt.Fprintf(w, "\tRecall: %d / %d = %.4f\n", c.Correct, c.Answers, r.Diagnostic.Recall)
	fmt.Fprintf(w, "\tPrecision: %d / (%d-%d) = %.4f\n", c.Correct, c.Responses, c.KBRedundant, r.Diagnostic.Precision)
	fmt.Fprintf(w, "\tF1: %.4f\n", r.Diagnostic.F1)

	fmt.Fprintln(w, "\nOfficial scores (requiring slot fillers that are already in reference KB):")
	fmt.Fprintf(w, "\tRecall: (%d+%d) / (%d+%d) = %.4f\n", c.Correct, c.KBRedundant, c.Answers, c.KBAnswers, r.Official.Recall)
	fmt.Fprintf(w, "\tPrecision: (%d+%d) / %d = %.4f\n", c.Correct, c.KBRedundant, c.Responses, r.Official.Precision)
	fmt.Fprintf(w, "\tF1: %.4f\n", r.Official.F1)

	if len(r.SlotTypes) == 0 {
		return
	}
	fmt.Fprintln(w, "\nPer-slot-type statistics:")
	names := make([]string, 0, len(r.SlotTypes))
	for name := range r.SlotTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s := r.SlotTypes[name]
		fmt.Fprintf(w, "\t%s\tP=%.4f\tR=%.4f\tF1=%.4f\t(correct=%d returned=%d judged=%d)\n",
			name, s.Scores.Precision, s.Scores.Recall, s.Scores.F1, s.Correct, s.Returned, s.Judged)
	}
}
