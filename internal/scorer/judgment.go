// Package scorer implements the TAC KBP slot-filling scorer: judgment
// table construction from an assessment key, equivalence-class
// normalization under lenient matching, response matching, and the
// diagnostic/official precision-recall metrics.
package scorer

import "fmt"

// Judgment is an assessor's verdict on a slot filler. The ordinal
// order is the precedence used to resolve conflicting judgments that
// collapse onto one key under lenient matching: a higher value always
// wins.
type Judgment int

const (
	JudgmentWrong Judgment = iota
	JudgmentInexact
	JudgmentIgnore
	JudgmentRedundant
	JudgmentCorrect
)

// ParseJudgment maps an assessment-file code (column 11) to a Judgment.
func ParseJudgment(code string) (Judgment, error) {
	switch code {
	case "C":
		return JudgmentCorrect, nil
	case "R":
		return JudgmentRedundant, nil
	case "I":
		return JudgmentIgnore, nil
	case "X":
		return JudgmentInexact, nil
	case "W":
		return JudgmentWrong, nil
	default:
		return JudgmentWrong, fmt.Errorf("unknown judgment code %q", code)
	}
}

// Code returns the single-letter assessment code.
func (j Judgment) Code() string {
	switch j {
	case JudgmentCorrect:
		return "C"
	case JudgmentRedundant:
		return "R"
	case JudgmentIgnore:
		return "I"
	case JudgmentInexact:
		return "X"
	case JudgmentWrong:
		return "W"
	default:
		return "?"
	}
}

// Outranks reports whether j takes precedence over o when two judged
// records collapse onto the same response key.
func (j Judgment) Outranks(o Judgment) bool {
	return j > o
}

func (j Judgment) String() string {
	switch j {
	case JudgmentCorrect:
		return "correct"
	case JudgmentRedundant:
		return "redundant"
	case JudgmentIgnore:
		return "ignore"
	case JudgmentInexact:
		return "inexact"
	case JudgmentWrong:
		return "wrong"
	default:
		return "unknown"
	}
}
