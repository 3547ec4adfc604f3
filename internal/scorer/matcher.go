package scorer

import (
	"fmt"

	"github.com/kbptools/sfscore/internal/pkg/logger"
)

// Outcome classifies one submitted response against the judgment
// table.
type Outcome int

const (
	// OutcomeCorrect is a first, correct filler not in the reference KB.
	OutcomeCorrect Outcome = iota
	// OutcomeKBRedundant is a first filler already in the reference KB.
	OutcomeKBRedundant
	// OutcomeRedundant duplicates another response's equivalence class.
	OutcomeRedundant
	// OutcomeInexact is a filler judged inexact.
	OutcomeInexact
	// OutcomeWrong covers wrong, ignored, and unjudged fillers.
	OutcomeWrong
	// OutcomeMissing is a NIL response to a query with required answers.
	OutcomeMissing
	// OutcomeMissingKB is a NIL response to a query whose only required
	// answers are already in the reference KB.
	OutcomeMissingKB
	// OutcomeEmptyCorrect is a NIL response to a query with no known
	// fillers: the system correctly asserts there is nothing to find.
	OutcomeEmptyCorrect
)

// matchResult is the classification of one response plus the symbol
// printed on its trace line. The symbol distinguishes cases the
// outcome folds together (wrong via W vs ignored via I).
type matchResult struct {
	outcome  Outcome
	symbol   string
	judgment Judgment
	judged   bool
}

// queryMatcher classifies the responses submitted for one query. It
// tracks which normalized equivalence classes have already been
// counted so later duplicates score as redundant-with-other-response.
type queryMatcher struct {
	table *Table
	log   *logger.Logger

	queryID      string
	numAnswers   int
	numKBAnswers int

	// remaining mirrors the response count for the NIL warning; it is
	// zeroed after the first NIL so the warning fires once per query.
	remaining int

	seen map[int]struct{}
}

func newQueryMatcher(table *Table, log *logger.Logger, queryID string, numAnswers, numKBAnswers, numResponses int) *queryMatcher {
	return &queryMatcher{
		table:        table,
		log:          log,
		queryID:      queryID,
		numAnswers:   numAnswers,
		numKBAnswers: numKBAnswers,
		remaining:    numResponses,
		seen:         make(map[int]struct{}),
	}
}

// match classifies one response. An unjudged response is presumed
// wrong, never correct.
func (m *queryMatcher) match(resp SubmittedResponse) (matchResult, error) {
	if resp.NIL {
		if m.remaining > 1 {
			m.log.Warn("more than one response, including NIL", "query", m.queryID)
		}
		m.remaining = 0
		switch {
		case m.numAnswers > 0:
			return matchResult{outcome: OutcomeMissing, symbol: "M"}, nil
		case m.numKBAnswers > 0:
			return matchResult{outcome: OutcomeMissingKB, symbol: "m"}, nil
		default:
			return matchResult{outcome: OutcomeEmptyCorrect, symbol: "c"}, nil
		}
	}

	entry, ok := m.table.Lookup(resp.Key)
	if !ok {
		m.log.Warn("no judgment for response", "query", m.queryID, "response", resp.TraceString())
		return matchResult{outcome: OutcomeWrong, symbol: JudgmentWrong.Code(), judgment: JudgmentWrong}, nil
	}

	res := matchResult{judgment: entry.Judgment, judged: true}
	switch entry.Judgment {
	case JudgmentIgnore, JudgmentWrong:
		res.outcome = OutcomeWrong
		res.symbol = entry.Judgment.Code()
	case JudgmentInexact:
		res.outcome = OutcomeInexact
		res.symbol = entry.Judgment.Code()
	case JudgmentRedundant:
		if m.counted(entry.Class) {
			res.outcome = OutcomeRedundant
			res.symbol = "r"
		} else {
			res.outcome = OutcomeKBRedundant
			res.symbol = entry.Judgment.Code()
			m.mark(entry.Class)
		}
	case JudgmentCorrect:
		if m.counted(entry.Class) {
			res.outcome = OutcomeRedundant
			res.symbol = "r"
		} else {
			res.outcome = OutcomeCorrect
			res.symbol = entry.Judgment.Code()
			m.mark(entry.Class)
		}
	default:
		return matchResult{}, fmt.Errorf("%w: %d for query %s", ErrInvalidJudgment, entry.Judgment, m.queryID)
	}
	return res, nil
}

func (m *queryMatcher) counted(class int) bool {
	_, ok := m.seen[class]
	return ok
}

func (m *queryMatcher) mark(class int) {
	m.seen[class] = struct{}{}
}
