package scorer

import (
	"fmt"
	"sort"
	"strings"
)

// Response file lines carry 4 columns for NIL assertions and up to 10
// when a filler is asserted.
const (
	responseMinFields = 4
	responseMaxFields = 10
)

// SubmittedResponse is one line of a system's response file.
type SubmittedResponse struct {
	QueryID string
	RunID   string

	// NIL is true when the system asserts no filler is learnable for
	// the slot. NIL responses carry no key.
	NIL bool

	Key ResponseKey
}

// TraceString renders the response the way trace lines print it.
func (r SubmittedResponse) TraceString() string {
	if r.NIL {
		return "NIL"
	}
	return r.Key.TraceString()
}

// ParseResponse parses one tab-separated response line under the
// policy. The same normalization as judged records applies, so a
// response and the key record that assessed it produce equal keys.
func ParseResponse(line string, policy Policy) (SubmittedResponse, error) {
	fields := strings.SplitN(strings.TrimSpace(line), "\t", responseMaxFields)
	if len(fields) < responseMinFields || len(fields) > responseMaxFields {
		return SubmittedResponse{}, fmt.Errorf("%d fields, want %d to %d", len(fields), responseMinFields, responseMaxFields)
	}

	resp := SubmittedResponse{
		QueryID: fields[0] + ":" + fields[1],
		RunID:   fields[2],
	}

	docID := fields[3]
	if docID == "NIL" {
		resp.NIL = true
		return resp, nil
	}

	if len(fields) < 5 {
		return SubmittedResponse{}, fmt.Errorf("non-NIL response with no filler column")
	}

	raw := RawKey{
		QueryID:       resp.QueryID,
		DocID:         docID,
		PredOffsets:   Wildcard,
		EntityOffsets: Wildcard,
		FillerOffsets: Wildcard,
		Filler:        strings.TrimSpace(fields[4]),
	}

	if !policy.AnyDoc && !policy.IgnoreOffsets {
		if len(fields) < 8 {
			return SubmittedResponse{}, fmt.Errorf("non-NIL response with %d fields, want offset columns", len(fields))
		}
		raw.FillerOffsets = strings.TrimSpace(fields[5])
		raw.EntityOffsets = strings.TrimSpace(fields[6])
		raw.PredOffsets = strings.TrimSpace(fields[7])
	}

	resp.Key = policy.NormalizeKey(raw)
	return resp, nil
}

// ResponseSet collects submitted responses grouped by query id,
// preserving file order within each query.
type ResponseSet struct {
	byQuery map[string][]SubmittedResponse
}

// NewResponseSet creates an empty response set.
func NewResponseSet() *ResponseSet {
	return &ResponseSet{byQuery: make(map[string][]SubmittedResponse)}
}

// Add appends a response under its query id.
func (s *ResponseSet) Add(r SubmittedResponse) {
	s.byQuery[r.QueryID] = append(s.byQuery[r.QueryID], r)
}

// Get returns the responses submitted for a query, in file order.
func (s *ResponseSet) Get(queryID string) []SubmittedResponse {
	return s.byQuery[queryID]
}

// QueryIDs returns the sorted set of query ids with responses. This is
// the default slot list when no external one is supplied.
func (s *ResponseSet) QueryIDs() []string {
	ids := make([]string, 0, len(s.byQuery))
	for id := range s.byQuery {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of queries with at least one response.
func (s *ResponseSet) Len() int {
	return len(s.byQuery)
}
