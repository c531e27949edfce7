package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"risk-prediction-service/internal/model"
	"risk-prediction-service/internal/registry"
)

// trainer is the offline workflow that populates the registry the serving
// path reads: train from CSV, save the artifact, register the version,
// optionally promote it to production.
func main() {
	var (
		csvPath      string
		labelColumn  string
		modelName    string
		version      string
		registryPath string
		outDir       string
		promote      bool
		epochs       int
		learningRate float64
	)

	root := &cobra.Command{
		Use:   "trainer",
		Short: "Train a risk model and register it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(csvPath, labelColumn, modelName, version, registryPath, outDir, promote, epochs, learningRate)
		},
	}

	root.Flags().StringVar(&csvPath, "csv", "", "training data CSV (header row, numeric features)")
	root.Flags().StringVar(&labelColumn, "label", "label", "label column name (0/1)")
	root.Flags().StringVar(&modelName, "name", "default", "registry model name")
	root.Flags().StringVar(&version, "version", "", "model version")
	root.Flags().StringVar(&registryPath, "registry", "models/registry.json", "registry ledger path")
	root.Flags().StringVar(&outDir, "out-dir", "models", "artifact output directory")
	root.Flags().BoolVar(&promote, "promote", false, "promote to production after registering")
	root.Flags().IntVar(&epochs, "epochs", 200, "training epochs")
	root.Flags().Float64Var(&learningRate, "rate", 0.1, "learning rate")
	_ = root.MarkFlagRequired("csv")
	_ = root.MarkFlagRequired("version")

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(csvPath, labelColumn, modelName, version, registryPath, outDir string, promote bool, epochs int, learningRate float64) error {
	featureNames, features, labels, err := readTrainingCSV(csvPath, labelColumn)
	if err != nil {
		return err
	}

	m := model.NewLogisticModel(map[string]any{
		"features":      featureNames,
		"epochs":        epochs,
		"learning_rate": learningRate,
	})
	m.Build()
	if err := m.Train(features, labels); err != nil {
		return fmt.Errorf("train: %w", err)
	}

	accuracy, err := trainingAccuracy(m, features, labels)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"model":    modelName,
		"version":  version,
		"rows":     len(features),
		"accuracy": accuracy,
	}).Info("model trained")

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create artifact dir: %w", err)
	}
	artifactPath := filepath.Join(outDir, fmt.Sprintf("%s-%s.json", modelName, version))
	if err := m.Save(artifactPath); err != nil {
		return err
	}

	reg, err := registry.New(registryPath)
	if err != nil {
		return err
	}
	metrics := map[string]float64{"accuracy": accuracy}
	if err := reg.Register(modelName, version, metrics, artifactPath); err != nil {
		return err
	}
	log.WithField("path", artifactPath).Info("model registered as experimental")

	if promote {
		if err := reg.PromoteToProduction(modelName, version); err != nil {
			return err
		}
		log.Info("model promoted to production")
	}

	return nil
}

func readTrainingCSV(path, labelColumn string) ([]string, [][]float64, []float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, nil, nil, fmt.Errorf("%s: need a header and at least one data row", path)
	}

	header := records[0]
	labelIdx := -1
	var featureNames []string
	for i, col := range header {
		if col == labelColumn {
			labelIdx = i
			continue
		}
		featureNames = append(featureNames, col)
	}
	if labelIdx < 0 {
		return nil, nil, nil, fmt.Errorf("%s: label column %q not found", path, labelColumn)
	}

	var features [][]float64
	var labels []float64
	for rowNum, row := range records[1:] {
		vec := make([]float64, 0, len(featureNames))
		for i, cell := range row {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("%s row %d column %q: %w", path, rowNum+2, header[i], err)
			}
			if i == labelIdx {
				labels = append(labels, v)
			} else {
				vec = append(vec, v)
			}
		}
		features = append(features, vec)
	}

	return featureNames, features, labels, nil
}

func trainingAccuracy(m model.Model, features [][]float64, labels []float64) (float64, error) {
	scores, err := m.Predict(features)
	if err != nil {
		return 0, err
	}
	correct := 0
	for i, score := range scores {
		predicted := 0.0
		if score >= 0.5 {
			predicted = 1.0
		}
		if predicted == labels[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(labels)), nil
}
