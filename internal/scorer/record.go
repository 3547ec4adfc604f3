package scorer

import (
	"fmt"
	"strconv"
	"strings"
)

// keyFileFields is the exact arity of an assessment key line.
const keyFileFields = 12

// JudgedRecord is one line of the assessment key: a judged slot filler
// with its provenance, offset-level judgments, overall judgment, and
// equivalence class. Immutable once parsed.
type JudgedRecord struct {
	QueryID       string
	DocID         string
	Filler        string
	FillerOffsets string
	EntityOffsets string
	PredOffsets   string

	// Offset-level judgment codes for filler, entity, and predicate
	// justification offsets (columns 8-10). Recorded as-is; the
	// overall filler judgment alone drives scoring.
	FillerOffJudgment string
	EntityOffJudgment string
	PredOffJudgment   string

	Judgment Judgment

	// Class is the assessor-assigned equivalence class; 0 means a
	// fresh globally unique class must be generated at table build.
	Class int
}

// RawKey returns the record's identifying fields before policy folding.
func (r JudgedRecord) RawKey() RawKey {
	return RawKey{
		QueryID:       r.QueryID,
		DocID:         r.DocID,
		PredOffsets:   r.PredOffsets,
		EntityOffsets: r.EntityOffsets,
		FillerOffsets: r.FillerOffsets,
		Filler:        r.Filler,
	}
}

// ParseJudgedRecord parses one tab-separated assessment key line.
// Records whose doc id is NIL (2010-era participant annotations)
// return errNILProvenance and are skipped without a warning.
func ParseJudgedRecord(line string) (JudgedRecord, error) {
	fields := strings.SplitN(strings.TrimSpace(line), "\t", keyFileFields)
	if len(fields) != keyFileFields {
		return JudgedRecord{}, fmt.Errorf("%d fields, want %d", len(fields), keyFileFields)
	}

	docID := fields[2]
	if docID == "NIL" {
		return JudgedRecord{}, errNILProvenance
	}

	judgment, err := ParseJudgment(fields[10])
	if err != nil {
		return JudgedRecord{}, err
	}

	class, err := strconv.Atoi(fields[11])
	if err != nil {
		return JudgedRecord{}, fmt.Errorf("invalid equivalence class %q", fields[11])
	}

	return JudgedRecord{
		// Commas in query ids are folded to "/" as the assessment
		// files do not use them consistently.
		QueryID:           strings.ReplaceAll(fields[1], ",", "/"),
		DocID:             docID,
		Filler:            strings.TrimSpace(fields[3]),
		FillerOffsets:     fields[4],
		EntityOffsets:     fields[5],
		PredOffsets:       fields[6],
		FillerOffJudgment: fields[7],
		EntityOffJudgment: fields[8],
		PredOffJudgment:   fields[9],
		Judgment:          judgment,
		Class:             class,
	}, nil
}
