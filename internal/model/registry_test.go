package model_test

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"ulascansenturk/geo-prediction-service/internal/model"
)

type constantPredictor float64

func (c constantPredictor) Predict(features []float64) (float64, error) {
	return float64(c), nil
}

func TestFailedHandleNeverPredicts(t *testing.T) {
	h := model.NewFailedHandle("B", "knn_model_B.json", model.ErrArtifactNotFound)

	assert.False(t, h.Available())
	assert.Equal(t, "B", h.Name())
	assert.Equal(t, "knn_model_B.json", h.Path())

	_, err := h.Predict(model.Features(1, 2))
	assert.ErrorIs(t, err, model.ErrModelUnavailable)
}

func TestFailedHandleWithoutCause(t *testing.T) {
	h := model.NewFailedHandle("A", "a.json", nil)

	assert.ErrorIs(t, h.LoadErr(), model.ErrModelUnavailable)
}

func TestRegistryLookup(t *testing.T) {
	a := model.NewHandle("A", "a.json", constantPredictor(1))
	b := model.NewFailedHandle("B", "b.json", errors.New("boom"))
	shadow := model.NewHandle("A", "other.json", constantPredictor(2))

	registry := model.NewRegistry(a, b, shadow)

	got, ok := registry.Lookup("A")
	require.True(t, ok)
	assert.Same(t, a, got)

	_, ok = registry.Lookup("C")
	assert.False(t, ok)

	handles := registry.Handles()
	assert.Equal(t, []*model.Handle{a, b}, handles)

	handles[0] = nil
	assert.Equal(t, []*model.Handle{a, b}, registry.Handles())
}
