package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"risk-prediction-service/internal/domain"
)

func TestPreprocess_DropsExactDuplicates(t *testing.T) {
	f := &domain.Frame{
		Columns: []string{"gpa", "absences"},
		Rows: []map[string]any{
			{"gpa": 3.0, "absences": 2.0},
			{"gpa": 3.0, "absences": 2.0},
			{"gpa": 2.0, "absences": 4.0},
		},
	}

	out := Preprocess(f)
	assert.Len(t, out.Rows, 2)
}

func TestPreprocess_FillsNumericMeanAfterDedup(t *testing.T) {
	f := &domain.Frame{
		Columns: []string{"gpa"},
		Rows: []map[string]any{
			{"gpa": 2.0},
			{"gpa": 2.0}, // duplicate: must not weigh into the mean
			{"gpa": 4.0},
			{"gpa": nil},
		},
	}

	out := Preprocess(f)
	require.Len(t, out.Rows, 3)
	assert.Equal(t, 3.0, out.Rows[2]["gpa"])
}

func TestPreprocess_LeavesNonNumericMissing(t *testing.T) {
	f := &domain.Frame{
		Columns: []string{"student_id", "gpa"},
		Rows: []map[string]any{
			{"student_id": "s1", "gpa": 3.0},
			{"student_id": nil, "gpa": 1.0},
		},
	}

	out := Preprocess(f)
	assert.Nil(t, out.Rows[1]["student_id"])
}

func TestPreprocess_Idempotent(t *testing.T) {
	f := &domain.Frame{
		Columns: []string{"gpa", "absences"},
		Rows: []map[string]any{
			{"gpa": 2.0, "absences": 1.0},
			{"gpa": 4.0, "absences": nil},
			{"gpa": 4.0, "absences": nil},
			{"gpa": 1.0, "absences": 7.0},
		},
	}

	once := Preprocess(f)
	twice := Preprocess(once)
	assert.Equal(t, once, twice)
}

func TestPreprocess_DoesNotMutateInput(t *testing.T) {
	f := &domain.Frame{
		Columns: []string{"gpa"},
		Rows: []map[string]any{
			{"gpa": 2.0},
			{"gpa": nil},
		},
	}

	_ = Preprocess(f)
	assert.Nil(t, f.Rows[1]["gpa"])
	assert.Len(t, f.Rows, 2)
}
