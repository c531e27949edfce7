package domain

// Frame is a small in-memory table: ordered columns and one map per row.
// A cell is missing when the key is absent or the value is nil.
type Frame struct {
	Columns []string
	Rows    []map[string]any
}

func NewFrame(columns []string) *Frame {
	return &Frame{Columns: columns, Rows: []map[string]any{}}
}

// FrameFromRecord wraps a single record as a one-row frame, deriving the
// column set from the record keys.
func FrameFromRecord(record map[string]any) *Frame {
	columns := make([]string, 0, len(record))
	for k := range record {
		columns = append(columns, k)
	}
	return &Frame{Columns: columns, Rows: []map[string]any{record}}
}

func (f *Frame) Append(row map[string]any) {
	f.Rows = append(f.Rows, row)
}

// Numeric reports the cell as a float64. The second return is false for
// missing or non-numeric cells.
func (f *Frame) Numeric(row int, column string) (float64, bool) {
	v, ok := f.Rows[row][column]
	if !ok || v == nil {
		return 0, false
	}
	return toFloat(v)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
