package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
	"math"
	"path/filepath"
	"strings"
)

const (
	KindKNNRegressor    = "knn_regressor"
	KindLinearRegressor = "linear_regressor"
)

// Artifact is the on-disk representation of a trained regressor.
type Artifact struct {
	Kind      string        `json:"kind" yaml:"kind"`
	NFeatures int           `json:"n_features,omitempty" yaml:"n_features,omitempty"`
	KNN       *KNNParams    `json:"knn,omitempty" yaml:"knn,omitempty"`
	Linear    *LinearParams `json:"linear,omitempty" yaml:"linear,omitempty"`
}

type KNNParams struct {
	NNeighbors int         `json:"n_neighbors,omitempty" yaml:"n_neighbors,omitempty"`
	Weights    string      `json:"weights,omitempty" yaml:"weights,omitempty"`
	Metric     string      `json:"metric,omitempty" yaml:"metric,omitempty"`
	Points     [][]float64 `json:"points" yaml:"points"`
	Targets    []float64   `json:"targets" yaml:"targets"`
}

type LinearParams struct {
	Coefficients []float64 `json:"coefficients" yaml:"coefficients"`
	Intercept    float64   `json:"intercept" yaml:"intercept"`
}

// DecodeArtifact picks the encoding from the file extension; anything that is
// not .yaml or .yml is read as JSON.
func DecodeArtifact(path string, data []byte) (*Artifact, error) {
	var artifact Artifact

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &artifact); err != nil {
			return nil, fmt.Errorf("malformed YAML artifact: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &artifact); err != nil {
			return nil, fmt.Errorf("malformed JSON artifact: %w", err)
		}
	}

	return &artifact, nil
}

// Build validates the artifact and returns the predictor it describes.
func (a *Artifact) Build() (Predictor, error) {
	switch a.Kind {
	case KindKNNRegressor:
		if a.KNN == nil {
			return nil, errors.New("knn_regressor artifact has no knn section")
		}
		return newKNNRegressor(*a.KNN, a.NFeatures)
	case KindLinearRegressor:
		if a.Linear == nil {
			return nil, errors.New("linear_regressor artifact has no linear section")
		}
		return newLinearRegressor(*a.Linear, a.NFeatures)
	case "":
		return nil, errors.New("artifact kind is missing")
	default:
		return nil, fmt.Errorf("unsupported artifact kind %q", a.Kind)
	}
}

func allFinite(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
