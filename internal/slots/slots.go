// Package slots holds the fixed inventory of TAC KBP slot-filling
// slot names and their single- vs list-valued classification.
package slots

import "strings"

// Type classifies a slot by how many fillers it admits.
type Type int

const (
	// Invalid marks a slot name outside the task inventory.
	Invalid Type = iota
	// Single slots expect exactly one correct filler.
	Single
	// List slots expect a set of equivalence classes of fillers.
	List
)

func (t Type) String() string {
	switch t {
	case Single:
		return "single"
	case List:
		return "list"
	default:
		return "invalid"
	}
}

var singleValued = map[string]struct{}{
	"per:date_of_birth":                   {},
	"per:age":                             {},
	"per:country_of_birth":                {},
	"per:stateorprovince_of_birth":        {},
	"per:city_of_birth":                   {},
	"per:date_of_death":                   {},
	"per:country_of_death":                {},
	"per:stateorprovince_of_death":        {},
	"per:city_of_death":                   {},
	"per:cause_of_death":                  {},
	"per:religion":                        {},
	"org:number_of_employees_members":     {},
	"org:date_founded":                    {},
	"org:date_dissolved":                  {},
	"org:country_of_headquarters":         {},
	"org:stateorprovince_of_headquarters": {},
	"org:city_of_headquarters":            {},
	"org:website":                         {},
}

var listValued = map[string]struct{}{
	"per:alternate_names":                 {},
	"per:origin":                          {},
	"per:countries_of_residence":          {},
	"per:statesorprovinces_of_residence":  {},
	"per:cities_of_residence":             {},
	"per:schools_attended":                {},
	"per:title":                           {},
	"per:employee_or_member_of":           {},
	"per:spouse":                          {},
	"per:children":                        {},
	"per:parents":                         {},
	"per:siblings":                        {},
	"per:other_family":                    {},
	"per:charges":                         {},
	"org:alternate_names":                 {},
	"org:political_religious_affiliation": {},
	"org:top_members_employees":           {},
	"org:members":                         {},
	"org:member_of":                       {},
	"org:subsidiaries":                    {},
	"org:parents":                         {},
	"org:founded_by":                      {},
	"org:shareholders":                    {},
	"per:awards_won":                      {},
	"per:charities_supported":             {},
	"per:diseases":                        {},
	"org:products":                        {},
	"per:pos-from":                        {},
	"per:neg-from":                        {},
	"per:pos-towards":                     {},
	"per:neg-towards":                     {},
	"org:pos-from":                        {},
	"org:neg-from":                        {},
	"org:pos-towards":                     {},
	"org:neg-towards":                     {},
	"gpe:pos-from":                        {},
	"gpe:neg-from":                        {},
	"gpe:pos-towards":                     {},
	"gpe:neg-towards":                     {},
}

// NameOf extracts the slot name from a query id of the form
// "<entity_id>:<slot name>", e.g. "SF100:per:title" -> "per:title".
func NameOf(queryID string) (string, bool) {
	_, name, ok := strings.Cut(queryID, ":")
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// TypeOf classifies the slot of a query id as single- or list-valued.
// Query ids with an unknown slot name classify as Invalid.
func TypeOf(queryID string) Type {
	name, ok := NameOf(queryID)
	if !ok {
		return Invalid
	}
	return TypeOfName(name)
}

// TypeOfName classifies a bare slot name such as "per:title".
func TypeOfName(name string) Type {
	if _, ok := singleValued[name]; ok {
		return Single
	}
	if _, ok := listValued[name]; ok {
		return List
	}
	return Invalid
}
