package model

import (
	"encoding/json"
	"fmt"
	"os"

	"risk-prediction-service/internal/domain"
)

// Model is the contract every estimator family satisfies. The prediction
// pipeline depends on this interface only, never on a concrete family.
type Model interface {
	// Build constructs the untrained estimator from the instance config,
	// overwriting any prior estimator. Returns the receiver for chaining.
	Build() Model

	// Train fits the estimator. Features and labels must be aligned;
	// mismatched or empty input fails with domain.ErrInvalidInput.
	Train(features [][]float64, labels []float64) error

	// Predict scores each input row. Fails with domain.ErrNotTrained on an
	// untrained instance; outputs align 1:1 with input rows.
	Predict(features [][]float64) ([]float64, error)

	// Confidence reports a per-model confidence for served predictions.
	// ok is false when the family does not supply one.
	Confidence() (value float64, ok bool)

	// Features returns the trained feature order, empty when untrained.
	Features() []string

	// Save serializes the estimator. Saving an untrained model fails with
	// domain.ErrNotTrained rather than producing a non-functional artifact.
	Save(path string) error

	Trained() bool
}

// Explainer is implemented by families that can attribute a prediction to
// individual features. The pipeline falls back to an empty explanation for
// families without it.
type Explainer interface {
	Explain(features []float64) map[string]float64
}

const familyLogistic = "logistic"

// artifact is the on-disk envelope. Family dispatches decoding so new
// estimator families can share the same file format.
type artifact struct {
	Family   string          `json:"family"`
	Features []string        `json:"features"`
	Payload  json.RawMessage `json:"payload"`
}

// Load deserializes an artifact into a new trained instance with an empty
// config.
func Load(path string) (Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact %s: %w", path, err)
	}

	var art artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("decode model artifact %s: %w", path, err)
	}

	switch art.Family {
	case familyLogistic:
		return loadLogistic(&art)
	default:
		return nil, fmt.Errorf("decode model artifact %s: unknown family %q", path, art.Family)
	}
}

// ReadFamily reads only the artifact envelope, for catalogue listings that
// should not pay for a full model load.
func ReadFamily(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read model artifact %s: %w", path, err)
	}
	var art artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return "", fmt.Errorf("decode model artifact %s: %w", path, err)
	}
	return art.Family, nil
}

func saveArtifact(path, family string, features []string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode model payload: %w", err)
	}
	data, err := json.MarshalIndent(artifact{Family: family, Features: features, Payload: raw}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode model artifact: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write model artifact %s: %w", path, err)
	}
	return nil
}

func validateTrainingInput(features [][]float64, labels []float64) error {
	if len(features) == 0 {
		return fmt.Errorf("empty training set: %w", domain.ErrInvalidInput)
	}
	if len(features) != len(labels) {
		return fmt.Errorf("features/labels misaligned (%d vs %d): %w",
			len(features), len(labels), domain.ErrInvalidInput)
	}
	return nil
}
