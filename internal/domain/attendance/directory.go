package attendance

import (
	"strings"
	"time"
)

// GroupLatestPerEmployee reduces a multi-day record set to one record per
// employee, keeping the first record seen for each. Callers must pass records
// sorted newest-first; the function does not sort, so an unsorted input
// yields first-occurrence rather than newest. Records without an employee
// reference are dropped.
func GroupLatestPerEmployee(records []Record) map[string]Record {
	grouped := make(map[string]Record, len(records))
	for _, r := range records {
		if r.EmployeeID == "" {
			continue
		}
		if _, seen := grouped[r.EmployeeID]; seen {
			continue
		}
		grouped[r.EmployeeID] = r
	}
	return grouped
}

// Directory is the ordered form of GroupLatestPerEmployee: one record per
// employee in first-encounter order.
func Directory(records []Record) []Record {
	seen := make(map[string]struct{}, len(records))
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.EmployeeID == "" {
			continue
		}
		if _, ok := seen[r.EmployeeID]; ok {
			continue
		}
		seen[r.EmployeeID] = struct{}{}
		out = append(out, r)
	}
	return out
}

// MatchesSearch matches term case-insensitively against the employee display
// name or employee code. An empty term matches everything.
func MatchesSearch(r Record, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(r.EmployeeName), term) ||
		strings.Contains(strings.ToLower(r.EmployeeCode), term)
}

// FilterDirectory applies the search term and caution filter to grouped
// entries, combining both with logical AND.
func FilterDirectory(entries []Record, term string, caution Caution) []Record {
	out := make([]Record, 0, len(entries))
	for _, r := range entries {
		if MatchesSearch(r, term) && MatchesCaution(r, caution) {
			out = append(out, r)
		}
	}
	return out
}

// PresentOn returns the subset of records dated on the given calendar day,
// excluding records without an employee reference.
func PresentOn(records []Record, day time.Time) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.EmployeeID == "" {
			continue
		}
		if r.OnDate(day) {
			out = append(out, r)
		}
	}
	return out
}
