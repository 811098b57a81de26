// Package model loads regression artifacts from disk and exposes them as
// read-only prediction handles.
package model

import (
	"errors"
	"fmt"
	"math"
)

// FeatureCount is the length of every feature vector the service builds:
// latitude followed by longitude.
const FeatureCount = 2

var (
	ErrArtifactNotFound = errors.New("model artifact not found")
	ErrArtifactLoad     = errors.New("failed to load model artifact")
	ErrModelUnavailable = errors.New("model unavailable")
	ErrFeatureMismatch  = errors.New("feature vector size mismatch")
	ErrNonFinite        = errors.New("non-finite value")
)

// Predictor turns one feature vector into a scalar estimate.
type Predictor interface {
	Predict(features []float64) (float64, error)
}

// Features builds the ordered feature vector for a coordinate pair.
func Features(latitude, longitude float64) []float64 {
	return []float64{latitude, longitude}
}

func checkFeatures(features []float64, want int) error {
	if len(features) != want {
		return fmt.Errorf("%w: expected %d features, got %d", ErrFeatureMismatch, want, len(features))
	}
	for i, f := range features {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: feature %d is %v", ErrNonFinite, i, f)
		}
	}
	return nil
}

func checkResult(value float64) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: prediction is %v", ErrNonFinite, value)
	}
	return value, nil
}
