package scorer

import (
	"github.com/kbptools/sfscore/internal/pkg/logger"
	"github.com/kbptools/sfscore/internal/slots"
)

// freshClassBase is the first id handed out for key records whose
// equivalence class column is 0. It sits far above assessor-assigned
// ids so generated classes never collide with real ones.
const freshClassBase = 1000000

// Entry is the judgment stored for one response key.
type Entry struct {
	Judgment Judgment

	// Class is the equivalence class of the filler. Until Normalize
	// runs it may be any member of the key's merged group; afterwards
	// it is the group's representative.
	Class int

	FillerOffJudgment string
	EntityOffJudgment string
	PredOffJudgment   string
}

// Table is the judgment table built from the assessment key. It owns
// the per-query answer sets, the equivalence-class merger, and the
// fresh-class generator, so a run carries no process-wide state.
type Table struct {
	policy Policy
	log    *logger.Logger

	entries map[ResponseKey]*Entry

	// answers holds, per query, the equivalence classes judged
	// CORRECT (fillers not in the reference KB); kbAnswers those
	// judged REDUNDANT (already in the reference KB).
	answers   map[string]map[int]struct{}
	kbAnswers map[string]map[int]struct{}

	merger    *classMerger
	nextClass int

	// judgedBySlot counts distinct judged keys per slot type; it is
	// the recall denominator of the per-slot-type statistics.
	judgedBySlot map[string]int
}

// NewTable creates an empty judgment table under the given policy.
func NewTable(policy Policy, log *logger.Logger) *Table {
	return &Table{
		policy:       policy,
		log:          log,
		entries:      make(map[ResponseKey]*Entry),
		answers:      make(map[string]map[int]struct{}),
		kbAnswers:    make(map[string]map[int]struct{}),
		merger:       newClassMerger(),
		nextClass:    freshClassBase,
		judgedBySlot: make(map[string]int),
	}
}

// Add ingests one judged record in file order. Records that collapse
// onto an existing key under lenient matching keep the strongest
// judgment, and the two equivalence classes are declared
// interchangeable regardless of which judgment wins.
func (t *Table) Add(rec JudgedRecord) {
	class := rec.Class
	if class == 0 {
		class = t.nextClass
		t.nextClass++
	}

	key := t.policy.NormalizeKey(rec.RawKey())

	e, ok := t.entries[key]
	if !ok {
		if name, ok := slots.NameOf(key.QueryID); ok {
			t.judgedBySlot[name]++
		}
		t.entries[key] = &Entry{
			Judgment:          rec.Judgment,
			Class:             class,
			FillerOffJudgment: rec.FillerOffJudgment,
			EntityOffJudgment: rec.EntityOffJudgment,
			PredOffJudgment:   rec.PredOffJudgment,
		}
		switch rec.Judgment {
		case JudgmentCorrect:
			t.addClass(t.answers, key.QueryID, class)
		case JudgmentRedundant:
			t.addClass(t.kbAnswers, key.QueryID, class)
		}
		return
	}

	// Lenient collision: two distinct key records normalize to the
	// same response key.
	if rec.Judgment != e.Judgment && rec.Judgment.Outranks(e.Judgment) {
		old := e.Judgment
		e.Judgment = rec.Judgment

		// The stored class follows the stronger judgment into the
		// matching answer set; it merges with the new record's class
		// below, so the new class need not be added here.
		switch old {
		case JudgmentCorrect:
			t.removeClass(t.answers, key.QueryID, e.Class)
		case JudgmentRedundant:
			t.removeClass(t.kbAnswers, key.QueryID, e.Class)
		}
		switch rec.Judgment {
		case JudgmentCorrect:
			t.addClass(t.answers, key.QueryID, e.Class)
		case JudgmentRedundant:
			t.addClass(t.kbAnswers, key.QueryID, e.Class)
		}
	}

	// Both classes survive the collision as one merged identity,
	// whichever judgment won.
	t.merger.Union(e.Class, class)
}

// Normalize rewrites every entry's class and both answer-set mappings
// to merged-group representatives. It must complete before any
// response is matched; scoring consumes only normalized classes.
// Idempotent.
func (t *Table) Normalize() {
	for _, e := range t.entries {
		e.Class = t.merger.Find(e.Class)
	}
	for _, set := range t.answers {
		t.merger.NormalizeSet(set)
	}
	for _, set := range t.kbAnswers {
		t.merger.NormalizeSet(set)
	}
}

// Lookup returns the judgment entry for a normalized response key.
func (t *Table) Lookup(key ResponseKey) (Entry, bool) {
	e, ok := t.entries[key]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Size returns the number of distinct judged keys.
func (t *Table) Size() int {
	return len(t.entries)
}

// NumAnswers returns how many equivalence classes of CORRECT fillers
// (not in the reference KB) the key holds for a query.
func (t *Table) NumAnswers(queryID string) int {
	return len(t.answers[queryID])
}

// NumKBAnswers returns how many equivalence classes of REDUNDANT
// fillers (already in the reference KB) the key holds for a query.
func (t *Table) NumKBAnswers(queryID string) int {
	return len(t.kbAnswers[queryID])
}

// JudgedCount returns the number of distinct judged keys for a slot
// type, e.g. "per:title".
func (t *Table) JudgedCount(slotName string) int {
	return t.judgedBySlot[slotName]
}

func (t *Table) addClass(sets map[string]map[int]struct{}, queryID string, class int) {
	set, ok := sets[queryID]
	if !ok {
		set = make(map[int]struct{})
		sets[queryID] = set
	}
	set[class] = struct{}{}
}

func (t *Table) removeClass(sets map[string]map[int]struct{}, queryID string, class int) {
	if set, ok := sets[queryID]; ok {
		delete(set, class)
	}
}
