package data

import (
	"fmt"
	"sort"

	"risk-prediction-service/internal/domain"
)

// QualityReport summarizes table-level data issues. It never blocks a
// request; callers decide what to do with it.
type QualityReport struct {
	NullCounts map[string]int `json:"null_counts"`
	Duplicates int            `json:"duplicates"`
}

// ValidateSchema checks that every expected column is present in the frame.
// Set-difference semantics: order-independent, duplicates in the expectation
// list are ignored. The returned SchemaError lists every missing column.
func ValidateSchema(f *domain.Frame, expected []string) error {
	present := make(map[string]bool, len(f.Columns))
	for _, c := range f.Columns {
		present[c] = true
	}

	seen := make(map[string]bool, len(expected))
	var missing []string
	for _, c := range expected {
		if seen[c] {
			continue
		}
		seen[c] = true
		if !present[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &domain.SchemaError{Missing: missing}
	}
	return nil
}

// CheckDataQuality reports per-column null counts and the number of fully
// duplicated rows. Read-only; never fails.
func CheckDataQuality(f *domain.Frame) QualityReport {
	report := QualityReport{NullCounts: make(map[string]int, len(f.Columns))}
	for _, c := range f.Columns {
		report.NullCounts[c] = 0
	}

	seen := make(map[string]int)
	for _, row := range f.Rows {
		for _, c := range f.Columns {
			if v, ok := row[c]; !ok || v == nil {
				report.NullCounts[c]++
			}
		}
		key := rowKey(f.Columns, row)
		seen[key]++
		if seen[key] > 1 {
			report.Duplicates++
		}
	}
	return report
}

// ValidateRecord is the request-facing check: it returns problems instead of
// an error so the HTTP layer can shape a 400 response directly.
func ValidateRecord(record map[string]any, required []string) (bool, []string) {
	var problems []string
	seen := make(map[string]bool, len(required))
	for _, c := range required {
		if seen[c] {
			continue
		}
		seen[c] = true
		if v, ok := record[c]; !ok || v == nil {
			problems = append(problems, fmt.Sprintf("missing required field %q", c))
		}
	}
	return len(problems) == 0, problems
}

func rowKey(columns []string, row map[string]any) string {
	key := ""
	for _, c := range columns {
		v, ok := row[c]
		if !ok || v == nil {
			key += c + "=\x00;"
			continue
		}
		key += fmt.Sprintf("%s=%v;", c, v)
	}
	return key
}
