package service

import (
	"context"
	"errors"
	"fmt"
	"github.com/rs/zerolog/log"
	"ulascansenturk/geo-prediction-service/internal/db/predictionlog"
	"ulascansenturk/geo-prediction-service/internal/model"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 500
)

var (
	ErrIncompleteInput  = errors.New("incomplete input: latitude and longitude are required")
	ErrUnknownModel     = errors.New("unknown model")
	ErrModelUnavailable = model.ErrModelUnavailable
	ErrHistoryDisabled  = errors.New("prediction history is disabled")
)

// PredictionError wraps a failure raised by the model itself.
type PredictionError struct {
	Model string
	Err   error
}

func (e *PredictionError) Error() string {
	return fmt.Sprintf("model %s: prediction failed: %v", e.Model, e.Err)
}

func (e *PredictionError) Unwrap() error {
	return e.Err
}

type PredictionRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r PredictionRequest) Validate() error {
	if r.Latitude == nil || r.Longitude == nil {
		return ErrIncompleteInput
	}
	return nil
}

func (r PredictionRequest) Features() []float64 {
	return model.Features(*r.Latitude, *r.Longitude)
}

type PredictionResponse struct {
	Model      string  `json:"model"`
	Prediction float64 `json:"prediction"`
}

type ModelStatus struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	Available bool   `json:"available"`
	Error     string `json:"error,omitempty"`
}

type ModelRegistry interface {
	Lookup(name string) (*model.Handle, bool)
	Handles() []*model.Handle
}

type PredictionService interface {
	Predict(ctx context.Context, modelName string, req PredictionRequest) (PredictionResponse, error)
	Models() []ModelStatus
	History(ctx context.Context, modelName string, limit int) ([]predictionlog.PredictionLog, error)
}

type predictionService struct {
	registry ModelRegistry
	history  predictionlog.Repository
}

// NewPredictionService wires the loaded models. history may be nil, in which
// case predictions are not recorded.
func NewPredictionService(registry ModelRegistry, history predictionlog.Repository) PredictionService {
	return &predictionService{
		registry: registry,
		history:  history,
	}
}

func (s *predictionService) Predict(ctx context.Context, modelName string, req PredictionRequest) (PredictionResponse, error) {
	if err := req.Validate(); err != nil {
		return PredictionResponse{}, err
	}

	handle, ok := s.registry.Lookup(modelName)
	if !ok {
		return PredictionResponse{}, fmt.Errorf("%w: %s", ErrUnknownModel, modelName)
	}

	if !handle.Available() {
		return PredictionResponse{}, ErrModelUnavailable
	}

	value, err := invoke(handle, req.Features())
	if err != nil {
		log.Error().Err(err).Str("model", modelName).Msg("prediction failed")
		return PredictionResponse{}, &PredictionError{Model: modelName, Err: err}
	}

	if s.history != nil {
		if err := s.history.LogPrediction(ctx, modelName, *req.Latitude, *req.Longitude, value); err != nil {
			log.Warn().Err(err).Str("model", modelName).Msg("failed to record prediction")
		}
	}

	return PredictionResponse{Model: modelName, Prediction: value}, nil
}

func invoke(handle *model.Handle, features []float64) (value float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("model panicked: %v", r)
		}
	}()

	return handle.Predict(features)
}

func (s *predictionService) Models() []ModelStatus {
	handles := s.registry.Handles()
	statuses := make([]ModelStatus, 0, len(handles))

	for _, h := range handles {
		status := ModelStatus{
			Name:      h.Name(),
			Path:      h.Path(),
			Available: h.Available(),
		}
		if err := h.LoadErr(); err != nil {
			status.Error = err.Error()
		}
		statuses = append(statuses, status)
	}

	return statuses
}

func (s *predictionService) History(ctx context.Context, modelName string, limit int) ([]predictionlog.PredictionLog, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}

	if _, ok := s.registry.Lookup(modelName); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModel, modelName)
	}

	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	limit = min(limit, MaxHistoryLimit)

	return s.history.RecentPredictions(ctx, modelName, limit)
}
