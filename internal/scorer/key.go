package scorer

import "strings"

// Wildcard replaces a document id or offset field that the active
// policy folds away.
const Wildcard = "*"

// Policy holds the leniency flags that control how judged records and
// system responses are identified as "the same".
type Policy struct {
	// Trace emits one assessment line per system response.
	Trace bool

	// AnyDoc matches on the answer string alone: document id and all
	// justification offsets are folded to wildcards.
	AnyDoc bool

	// IgnoreOffsets keeps the document id but folds the three
	// justification offset fields to wildcards.
	IgnoreOffsets bool

	// NoCase lower-cases answer strings before matching.
	NoCase bool
}

// ResponseKey identifies a judged or submitted slot filler under the
// active policy. It is a comparable struct so it can serve directly as
// a map key; fillers may contain ":" without colliding with the
// provenance fields.
type ResponseKey struct {
	QueryID       string
	DocID         string
	PredOffsets   string
	EntityOffsets string
	FillerOffsets string
	Filler        string
}

// RawKey carries the unfolded identifying fields of a record or
// response before the policy is applied.
type RawKey struct {
	QueryID       string
	DocID         string
	PredOffsets   string
	EntityOffsets string
	FillerOffsets string
	Filler        string
}

// NormalizeKey derives the lookup key for raw under the policy. Pure
// function: two records that lenient matching should treat as the same
// response produce equal keys.
func (p Policy) NormalizeKey(raw RawKey) ResponseKey {
	key := ResponseKey(raw)

	if p.AnyDoc {
		key.DocID = Wildcard
	}
	if p.AnyDoc || p.IgnoreOffsets {
		key.PredOffsets = Wildcard
		key.EntityOffsets = Wildcard
		key.FillerOffsets = Wildcard
	}
	if p.NoCase {
		key.Filler = strings.ToLower(key.Filler)
	}

	return key
}

// TraceString renders the key the way trace lines print a response:
// the provenance fields and answer string, colon-joined, without the
// query id.
func (k ResponseKey) TraceString() string {
	return strings.Join([]string{k.DocID, k.PredOffsets, k.EntityOffsets, k.FillerOffsets, k.Filler}, ":")
}
