package catalog

import (
	"regexp"
	"strings"
)

// Sentinel value that disables the category and prescription predicates.
const FilterAll = "all"

// Prescription filter values.
const (
	PrescriptionOTC = "otc"
	PrescriptionRx  = "rx"
)

// Filter describes the three browse predicates. Zero values disable the
// corresponding predicate, so an empty Filter matches everything.
type Filter struct {
	Query        string
	CategoryID   string
	Prescription string
}

// FilterMedicines returns the medicines matching every predicate of f,
// preserving the order of the input slice. The input is never mutated, so
// re-applying the same filter to the same snapshot yields the same result.
func FilterMedicines(meds []*Medicine, f Filter) []*Medicine {
	out := make([]*Medicine, 0, len(meds))
	for _, m := range meds {
		if matchesQuery(m, f.Query) && matchesCategory(m, f.CategoryID) && matchesPrescription(m, f.Prescription) {
			out = append(out, m)
		}
	}
	return out
}

// matchesQuery reports whether q is a case-insensitive substring of the
// medicine's name, description, or manufacturer. An empty query matches
// everything. Absent optional fields fail their own comparison without
// disqualifying the medicine.
func matchesQuery(m *Medicine, q string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(m.Name), q) {
		return true
	}
	if m.Description != nil && strings.Contains(strings.ToLower(*m.Description), q) {
		return true
	}
	if m.Manufacturer != nil && strings.Contains(strings.ToLower(*m.Manufacturer), q) {
		return true
	}
	return false
}

func matchesCategory(m *Medicine, categoryID string) bool {
	if categoryID == "" || categoryID == FilterAll {
		return true
	}
	return m.CategoryID.String() == categoryID
}

func matchesPrescription(m *Medicine, p string) bool {
	switch p {
	case PrescriptionOTC:
		return !m.PrescriptionRequired
	case PrescriptionRx:
		return m.PrescriptionRequired
	default:
		return true
	}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slugify derives a URL slug from a medicine name: lowercased, with every
// run of whitespace collapsed to a single hyphen.
func Slugify(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "-")
}
