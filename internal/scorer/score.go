package scorer

import (
	"fmt"
	"io"
	"sort"

	"github.com/kbptools/sfscore/internal/pkg/logger"
	"github.com/kbptools/sfscore/internal/slots"
)

// Counts are the global outcome tallies of one scoring run.
type Counts struct {
	// Responses counts non-NIL responses, including those redundant
	// with the reference KB.
	Responses int `json:"responses"`
	// Correct counts correct responses not in the reference KB.
	Correct int `json:"correct"`
	// KBRedundant counts responses redundant with the reference KB.
	KBRedundant int `json:"kb_redundant"`
	// Redundant counts responses redundant with another response in
	// the same run.
	Redundant int `json:"redundant"`
	Inexact   int `json:"inexact"`
	Wrong     int `json:"wrong"`

	// Answers counts required equivalence classes in the key that are
	// not in the reference KB; KBAnswers those that are.
	Answers   int `json:"answers"`
	KBAnswers int `json:"kb_answers"`
}

// SlotTypeStats are the per-slot-type confidence statistics consumed
// by downstream system-selection and ensembling tools.
type SlotTypeStats struct {
	Correct  int     `json:"correct"`
	Returned int     `json:"returned"`
	Judged   int     `json:"judged"`
	Scores   Metrics `json:"scores"`
}

// Report is the full result of a scoring run: counts, both metric
// pairs, and the per-slot-type table.
type Report struct {
	// SlotListSource is the slot list file path, or "responses" when
	// the scored queries were taken from the response file.
	SlotListSource string `json:"slot_list_source"`

	SingleValuedSlots int `json:"single_valued_slots"`
	ListValuedSlots   int `json:"list_valued_slots"`

	Counts Counts `json:"counts"`

	// Diagnostic excludes reference-KB-redundant fillers from both
	// the key and the responses; Official requires systems to
	// (re-)report them.
	Diagnostic Metrics `json:"diagnostic"`
	Official   Metrics `json:"official"`

	SlotTypes map[string]SlotTypeStats `json:"slot_types"`
}

// Engine scores a response set against a normalized judgment table.
type Engine struct {
	table  *Table
	policy Policy
	log    *logger.Logger
	trace  io.Writer
}

// NewEngine creates a scoring engine. trace receives one line per
// response when the policy enables tracing; it may be nil.
func NewEngine(table *Table, policy Policy, log *logger.Logger, trace io.Writer) *Engine {
	return &Engine{table: table, policy: policy, log: log, trace: trace}
}

// Score matches every response for the queries in slotIDs against the
// table and aggregates the outcome counts into the report. When
// slotIDs is nil the queries observed in the response set are scored.
// The table must be normalized before Score runs.
func (e *Engine) Score(responses *ResponseSet, slotIDs []string) (*Report, error) {
	if slotIDs == nil {
		slotIDs = responses.QueryIDs()
	} else {
		slotIDs = dedupeSorted(slotIDs)
	}

	report := &Report{
		SlotListSource: "responses",
		SlotTypes:      make(map[string]SlotTypeStats),
	}
	c := &report.Counts

	returnedBySlot := make(map[string]int)
	correctBySlot := make(map[string]int)

	for _, query := range slotIDs {
		slotType := slots.TypeOf(query)
		if slotType == slots.Invalid {
			e.log.Warn("unrecognized slot, skipping query", "query", query)
			continue
		}
		if slotType == slots.Single {
			report.SingleValuedSlots++
		} else {
			report.ListValuedSlots++
		}

		numAnswers := requiredAnswers(e.table.NumAnswers(query), slotType)
		numKBAnswers := requiredAnswers(e.table.NumKBAnswers(query), slotType)
		c.Answers += numAnswers
		c.KBAnswers += numKBAnswers

		slotName, _ := slots.NameOf(query)
		returnedBySlot[slotName] += numAnswers + numKBAnswers

		resps := responses.Get(query)
		if len(resps) == 0 {
			e.log.Warn("no system response for slot", "query", query)
			continue
		}

		// A single-valued slot given multiple responses scores none
		// of them; its required answer stays counted against recall.
		if slotType == slots.Single && len(resps) > 1 {
			e.log.Warn("multiple responses for single-valued slot, dropping all",
				"query", query, "responses", len(resps))
			continue
		}

		matcher := newQueryMatcher(e.table, e.log, query, numAnswers, numKBAnswers, len(resps))
		for _, resp := range resps {
			res, err := matcher.match(resp)
			if err != nil {
				return nil, err
			}

			switch res.outcome {
			case OutcomeCorrect:
				c.Responses++
				c.Correct++
				correctBySlot[slotName]++
			case OutcomeKBRedundant:
				c.Responses++
				c.KBRedundant++
			case OutcomeRedundant:
				c.Responses++
				c.Redundant++
				// Duplicates of a KB-redundant class still count as
				// correct in the per-slot-type confidence table.
				if res.judgment == JudgmentRedundant {
					correctBySlot[slotName]++
				}
			case OutcomeInexact:
				c.Responses++
				c.Inexact++
			case OutcomeWrong:
				c.Responses++
				c.Wrong++
			}

			if e.policy.Trace && e.trace != nil {
				fmt.Fprintf(e.trace, "%s %s %s\n", res.symbol, query, resp.TraceString())
			}
		}
	}

	report.Diagnostic = newMetrics(
		float64(c.Correct), float64(c.Answers),
		float64(c.Correct), float64(c.Responses-c.KBRedundant))
	report.Official = newMetrics(
		float64(c.Correct+c.KBRedundant), float64(c.Answers+c.KBAnswers),
		float64(c.Correct+c.KBRedundant), float64(c.Responses))

	for _, name := range slotTypeNames(correctBySlot, returnedBySlot, e.table.judgedBySlot) {
		correct := correctBySlot[name]
		returned := returnedBySlot[name]
		judged := e.table.JudgedCount(name)
		report.SlotTypes[name] = SlotTypeStats{
			Correct:  correct,
			Returned: returned,
			Judged:   judged,
			Scores: newMetrics(
				float64(correct), float64(judged),
				float64(correct), float64(returned)),
		}
	}

	return report, nil
}

// requiredAnswers converts a query's answer-class count into the
// number of required answers given its slot type: the class count for
// list slots, one for a non-empty single slot.
func requiredAnswers(classes int, slotType slots.Type) int {
	if classes == 0 {
		return 0
	}
	if slotType == slots.Single {
		return 1
	}
	return classes
}

func dedupeSorted(ids []string) []string {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func slotTypeNames(maps ...map[string]int) []string {
	set := make(map[string]struct{})
	for _, m := range maps {
		for name := range m {
			set[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
