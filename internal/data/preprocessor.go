package data

import "risk-prediction-service/internal/domain"

// Preprocess returns a cleaned copy of the frame without mutating the input:
//
//  1. exact-duplicate rows are dropped (full-row equality),
//  2. missing cells in numeric columns are filled with that column's mean,
//     computed after deduplication.
//
// A column counts as numeric when at least one surviving row holds a numeric
// value in it. Missing values in non-numeric columns are left as-is;
// categorical fill is an open gap, not an oversight.
func Preprocess(f *domain.Frame) *domain.Frame {
	out := domain.NewFrame(append([]string(nil), f.Columns...))

	seen := make(map[string]bool, len(f.Rows))
	for _, row := range f.Rows {
		key := rowKey(f.Columns, row)
		if seen[key] {
			continue
		}
		seen[key] = true

		copied := make(map[string]any, len(row))
		for k, v := range row {
			copied[k] = v
		}
		out.Append(copied)
	}

	for _, c := range out.Columns {
		sum, count := 0.0, 0
		for i := range out.Rows {
			if v, ok := out.Numeric(i, c); ok {
				sum += v
				count++
			}
		}
		if count == 0 {
			continue
		}
		mean := sum / float64(count)
		for _, row := range out.Rows {
			if v, ok := row[c]; !ok || v == nil {
				row[c] = mean
			}
		}
	}

	return out
}
