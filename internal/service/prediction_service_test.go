package service_test

import (
	"context"
	"errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"testing"
	"ulascansenturk/geo-prediction-service/internal/db/predictionlog"
	"ulascansenturk/geo-prediction-service/internal/mocks"
	"ulascansenturk/geo-prediction-service/internal/model"
	"ulascansenturk/geo-prediction-service/internal/service"
)

func coords(lat, lon float64) service.PredictionRequest {
	return service.PredictionRequest{Latitude: &lat, Longitude: &lon}
}

type PredictionServiceTestSuite struct {
	suite.Suite
	modelA   *mocks.MockPredictor
	modelB   *mocks.MockPredictor
	history  *mocks.MockRepository
	registry *model.Registry
	service  service.PredictionService
	ctx      context.Context
}

func (s *PredictionServiceTestSuite) SetupTest() {
	s.modelA = mocks.NewMockPredictor(s.T())
	s.modelB = mocks.NewMockPredictor(s.T())
	s.history = mocks.NewMockRepository(s.T())
	s.registry = model.NewRegistry(
		model.NewHandle("A", "knn_model_A.json", s.modelA),
		model.NewHandle("B", "knn_model_B.json", s.modelB),
		model.NewFailedHandle("C", "knn_model_C.json", model.ErrArtifactNotFound),
	)
	s.service = service.NewPredictionService(s.registry, s.history)
	s.ctx = context.Background()
}

func (s *PredictionServiceTestSuite) TestPredictSuccess() {
	s.modelA.On("Predict", []float64{40.7, -74.0}).Return(12.5, nil)
	s.history.On("LogPrediction", mock.Anything, "A", 40.7, -74.0, 12.5).Return(nil)

	result, err := s.service.Predict(s.ctx, "A", coords(40.7, -74.0))

	s.Require().NoError(err)
	s.Equal(service.PredictionResponse{Model: "A", Prediction: 12.5}, result)
	s.modelB.AssertNotCalled(s.T(), "Predict", mock.Anything)
}

func (s *PredictionServiceTestSuite) TestPredictRoutesByModelName() {
	s.modelB.On("Predict", []float64{1, 2}).Return(-3.0, nil)
	s.history.On("LogPrediction", mock.Anything, "B", 1.0, 2.0, -3.0).Return(nil)

	result, err := s.service.Predict(s.ctx, "B", coords(1, 2))

	s.Require().NoError(err)
	s.Equal(-3.0, result.Prediction)
	s.modelA.AssertNotCalled(s.T(), "Predict", mock.Anything)
}

func (s *PredictionServiceTestSuite) TestPredictIncompleteInput() {
	lat := 40.7

	cases := map[string]service.PredictionRequest{
		"missing longitude": {Latitude: &lat},
		"missing latitude":  {Longitude: &lat},
		"missing both":      {},
	}

	for name, req := range cases {
		s.Run(name, func() {
			_, err := s.service.Predict(s.ctx, "A", req)
			s.ErrorIs(err, service.ErrIncompleteInput)
		})
	}

	s.modelA.AssertNotCalled(s.T(), "Predict", mock.Anything)
}

func (s *PredictionServiceTestSuite) TestIncompleteInputWinsOverUnavailableModel() {
	lat := 40.7

	_, err := s.service.Predict(s.ctx, "C", service.PredictionRequest{Latitude: &lat})

	s.ErrorIs(err, service.ErrIncompleteInput)
}

func (s *PredictionServiceTestSuite) TestPredictUnknownModel() {
	_, err := s.service.Predict(s.ctx, "Z", coords(1, 2))

	s.Require().ErrorIs(err, service.ErrUnknownModel)
	s.Contains(err.Error(), "Z")
}

func (s *PredictionServiceTestSuite) TestPredictUnavailableModel() {
	_, err := s.service.Predict(s.ctx, "C", coords(1, 2))

	s.ErrorIs(err, service.ErrModelUnavailable)
	s.history.AssertNotCalled(s.T(), "LogPrediction", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *PredictionServiceTestSuite) TestPredictModelFailure() {
	cause := errors.New("matrix is singular")
	s.modelA.On("Predict", []float64{1, 2}).Return(0.0, cause)

	_, err := s.service.Predict(s.ctx, "A", coords(1, 2))

	var predictionErr *service.PredictionError
	s.Require().ErrorAs(err, &predictionErr)
	s.Equal("A", predictionErr.Model)
	s.ErrorIs(err, cause)
	s.Contains(err.Error(), "matrix is singular")
	s.NotErrorIs(err, service.ErrIncompleteInput)
}

func (s *PredictionServiceTestSuite) TestPredictModelPanic() {
	s.modelA.On("Predict", []float64{1, 2}).Panic("index out of range")

	_, err := s.service.Predict(s.ctx, "A", coords(1, 2))

	var predictionErr *service.PredictionError
	s.Require().ErrorAs(err, &predictionErr)
	s.Contains(err.Error(), "index out of range")
}

func (s *PredictionServiceTestSuite) TestHistoryFailureDoesNotAffectPrediction() {
	s.modelA.On("Predict", []float64{1, 2}).Return(7.0, nil)
	s.history.On("LogPrediction", mock.Anything, "A", 1.0, 2.0, 7.0).Return(errors.New("database error"))

	result, err := s.service.Predict(s.ctx, "A", coords(1, 2))

	s.Require().NoError(err)
	s.Equal(7.0, result.Prediction)
}

func (s *PredictionServiceTestSuite) TestPredictWithoutHistory() {
	svc := service.NewPredictionService(s.registry, nil)
	s.modelA.On("Predict", []float64{1, 2}).Return(7.0, nil).Twice()

	first, err := svc.Predict(s.ctx, "A", coords(1, 2))
	s.Require().NoError(err)
	second, err := svc.Predict(s.ctx, "A", coords(1, 2))
	s.Require().NoError(err)

	s.Equal(first, second)
}

func (s *PredictionServiceTestSuite) TestModels() {
	statuses := s.service.Models()

	s.Equal([]service.ModelStatus{
		{Name: "A", Path: "knn_model_A.json", Available: true},
		{Name: "B", Path: "knn_model_B.json", Available: true},
		{Name: "C", Path: "knn_model_C.json", Available: false, Error: model.ErrArtifactNotFound.Error()},
	}, statuses)
}

func (s *PredictionServiceTestSuite) TestHistory() {
	entries := []predictionlog.PredictionLog{{ID: 1, Model: "A", Prediction: 12.5}}

	s.Run("uses the default limit", func() {
		s.history.On("RecentPredictions", mock.Anything, "A", service.DefaultHistoryLimit).Return(entries, nil).Once()

		got, err := s.service.History(s.ctx, "A", 0)
		s.Require().NoError(err)
		s.Equal(entries, got)
	})

	s.Run("caps large limits", func() {
		s.history.On("RecentPredictions", mock.Anything, "A", service.MaxHistoryLimit).Return(entries, nil).Once()

		_, err := s.service.History(s.ctx, "A", 10_000)
		s.Require().NoError(err)
	})

	s.Run("rejects unknown models", func() {
		_, err := s.service.History(s.ctx, "Z", 5)
		s.ErrorIs(err, service.ErrUnknownModel)
	})

	s.Run("is disabled without a repository", func() {
		_, err := service.NewPredictionService(s.registry, nil).History(s.ctx, "A", 5)
		s.ErrorIs(err, service.ErrHistoryDisabled)
	})
}

func TestPredictionServiceSuite(t *testing.T) {
	suite.Run(t, new(PredictionServiceTestSuite))
}
