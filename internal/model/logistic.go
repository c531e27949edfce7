package model

import (
	"encoding/json"
	"fmt"
	"math"

	"risk-prediction-service/internal/domain"
)

// LogisticModel is a binary logistic regression fitted by batch gradient
// descent. Scores are probabilities in [0,1].
type LogisticModel struct {
	config   map[string]any
	features []string

	weights []float64
	bias    float64
	trained bool
}

type logisticPayload struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
}

// NewLogisticModel creates an untrained instance. Recognized config keys:
// "epochs" (default 200), "learning_rate" (default 0.1), "features"
// (column order for training input).
func NewLogisticModel(config map[string]any) *LogisticModel {
	if config == nil {
		config = map[string]any{}
	}
	return &LogisticModel{config: config}
}

func (m *LogisticModel) Build() Model {
	m.weights = nil
	m.bias = 0
	m.trained = false
	if names, ok := m.config["features"].([]string); ok {
		m.features = names
	}
	return m
}

func (m *LogisticModel) Train(features [][]float64, labels []float64) error {
	if err := validateTrainingInput(features, labels); err != nil {
		return err
	}

	dim := len(features[0])
	for _, row := range features {
		if len(row) != dim {
			return fmt.Errorf("ragged feature rows: %w", domain.ErrInvalidInput)
		}
	}

	epochs := m.intConfig("epochs", 200)
	rate := m.floatConfig("learning_rate", 0.1)

	m.weights = make([]float64, dim)
	m.bias = 0

	n := float64(len(features))
	for epoch := 0; epoch < epochs; epoch++ {
		gradW := make([]float64, dim)
		gradB := 0.0
		for i, row := range features {
			diff := sigmoid(dot(m.weights, row)+m.bias) - labels[i]
			for j, x := range row {
				gradW[j] += diff * x
			}
			gradB += diff
		}
		for j := range m.weights {
			m.weights[j] -= rate * gradW[j] / n
		}
		m.bias -= rate * gradB / n
	}

	m.trained = true
	return nil
}

func (m *LogisticModel) Predict(features [][]float64) ([]float64, error) {
	if !m.trained {
		return nil, domain.ErrNotTrained
	}

	out := make([]float64, len(features))
	for i, row := range features {
		if len(row) != len(m.weights) {
			return nil, fmt.Errorf("expected %d features, got %d: %w",
				len(m.weights), len(row), domain.ErrInvalidInput)
		}
		out[i] = sigmoid(dot(m.weights, row) + m.bias)
	}
	return out, nil
}

// Confidence is not supplied by this family; callers fall back to the
// serving default.
func (m *LogisticModel) Confidence() (float64, bool) {
	return 0, false
}

func (m *LogisticModel) Features() []string {
	return m.features
}

func (m *LogisticModel) Trained() bool {
	return m.trained
}

func (m *LogisticModel) Save(path string) error {
	if !m.trained {
		return fmt.Errorf("save %s: %w", path, domain.ErrNotTrained)
	}
	return saveArtifact(path, familyLogistic, m.features, logisticPayload{
		Weights: m.weights,
		Bias:    m.bias,
	})
}

// Explain attributes the score to each feature by weight * value,
// keyed by feature name.
func (m *LogisticModel) Explain(features []float64) map[string]float64 {
	out := make(map[string]float64, len(m.weights))
	for i, w := range m.weights {
		if i >= len(features) {
			break
		}
		name := fmt.Sprintf("f%d", i)
		if i < len(m.features) {
			name = m.features[i]
		}
		out[name] = w * features[i]
	}
	return out
}

func loadLogistic(art *artifact) (Model, error) {
	var payload logisticPayload
	if err := json.Unmarshal(art.Payload, &payload); err != nil {
		return nil, fmt.Errorf("decode logistic payload: %w", err)
	}
	return &LogisticModel{
		config:   map[string]any{},
		features: art.Features,
		weights:  payload.Weights,
		bias:     payload.Bias,
		trained:  true,
	}, nil
}

func (m *LogisticModel) intConfig(key string, def int) int {
	switch v := m.config[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return def
	}
}

func (m *LogisticModel) floatConfig(key string, def float64) float64 {
	switch v := m.config[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return def
	}
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func dot(w, x []float64) float64 {
	s := 0.0
	for i := range w {
		s += w[i] * x[i]
	}
	return s
}
