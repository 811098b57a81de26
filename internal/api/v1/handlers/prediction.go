package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"io"
	"net/http"
	"strconv"
	"ulascansenturk/geo-prediction-service/internal/service"
)

const maxBodyBytes = 1 << 20

type PredictionHandler struct {
	predictionService service.PredictionService
	defaultModel      string
	router            *mux.Router
}

// NewPredictionHandler serves POST /predict/{model} for every configured
// model and, when defaultModel is set, POST /predict for that model alone.
func NewPredictionHandler(predictionService service.PredictionService, defaultModel string) *PredictionHandler {
	h := &PredictionHandler{
		predictionService: predictionService,
		defaultModel:      defaultModel,
	}

	r := mux.NewRouter()
	if defaultModel != "" {
		r.HandleFunc("/predict", h.Predict).Methods(http.MethodPost)
	}
	r.HandleFunc("/predict/{model}", h.PredictModel).Methods(http.MethodPost)
	r.HandleFunc("/predict/{model}/history", h.History).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, msgNotFound)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	})

	h.router = r

	return h
}

func (h *PredictionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *PredictionHandler) Predict(w http.ResponseWriter, r *http.Request) {
	h.predict(w, r, h.defaultModel)
}

func (h *PredictionHandler) PredictModel(w http.ResponseWriter, r *http.Request) {
	h.predict(w, r, mux.Vars(r)["model"])
}

func (h *PredictionHandler) predict(w http.ResponseWriter, r *http.Request, modelName string) {
	req, err := decodePredictionRequest(w, r)
	if err != nil {
		if errors.Is(err, service.ErrIncompleteInput) {
			respondWithError(w, http.StatusBadRequest, msgIncompleteInput)
			return
		}
		log.Debug().Err(err).Str("model", modelName).Msg("rejected prediction request body")
		respondWithError(w, http.StatusBadRequest, msgInvalidBody+err.Error())
		return
	}

	response, err := h.predictionService.Predict(r.Context(), modelName, req)
	if err != nil {
		h.respondWithPredictionError(w, modelName, err)
		return
	}

	respondWithJSON(w, http.StatusOK, PredictionResponse{Prediction: response.Prediction})
}

func (h *PredictionHandler) respondWithPredictionError(w http.ResponseWriter, modelName string, err error) {
	var predictionErr *service.PredictionError

	switch {
	case errors.Is(err, service.ErrIncompleteInput):
		respondWithError(w, http.StatusBadRequest, msgIncompleteInput)
	case errors.Is(err, service.ErrUnknownModel):
		respondWithError(w, http.StatusNotFound, fmt.Sprintf("Modelo '%s' no encontrado", modelName))
	case errors.Is(err, service.ErrModelUnavailable):
		respondWithError(w, http.StatusInternalServerError, msgModelUnavailable)
	case errors.As(err, &predictionErr):
		respondWithError(w, http.StatusInternalServerError, msgPredictionFailure+predictionErr.Err.Error())
	default:
		log.Error().Err(err).Str("model", modelName).Msg("unexpected prediction error")
		respondWithError(w, http.StatusInternalServerError, msgPredictionFailure+err.Error())
	}
}

var errTrailingData = errors.New("unexpected data after JSON object")

// decodePredictionRequest reads exactly the "latitude" and "longitude" keys.
// Keys are matched case-sensitively; any other member of the object is ignored.
func decodePredictionRequest(w http.ResponseWriter, r *http.Request) (service.PredictionRequest, error) {
	var req service.PredictionRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	var fields map[string]json.RawMessage
	if err := dec.Decode(&fields); err != nil {
		if errors.Is(err, io.EOF) {
			return req, service.ErrIncompleteInput
		}
		return req, err
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errTrailingData
		}
		return req, err
	}

	var err error
	if req.Latitude, err = decodeCoordinate(fields, "latitude"); err != nil {
		return req, err
	}
	if req.Longitude, err = decodeCoordinate(fields, "longitude"); err != nil {
		return req, err
	}

	return req, nil
}

func decodeCoordinate(fields map[string]json.RawMessage, key string) (*float64, error) {
	raw, ok := fields[key]
	if !ok {
		return nil, nil
	}

	var value *float64
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}

	return value, nil
}

func (h *PredictionHandler) History(w http.ResponseWriter, r *http.Request) {
	modelName := mux.Vars(r)["model"]

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondWithError(w, http.StatusBadRequest, msgInvalidLimit)
			return
		}
		limit = n
	}

	entries, err := h.predictionService.History(r.Context(), modelName, limit)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrHistoryDisabled):
			respondWithError(w, http.StatusNotFound, msgHistoryDisabled)
		case errors.Is(err, service.ErrUnknownModel):
			respondWithError(w, http.StatusNotFound, fmt.Sprintf("Modelo '%s' no encontrado", modelName))
		default:
			log.Error().Err(err).Str("model", modelName).Msg("failed to read prediction history")
			respondWithError(w, http.StatusInternalServerError, msgHistoryFailure)
		}
		return
	}

	response := HistoryResponse{Model: modelName, Predictions: make([]HistoryEntry, 0, len(entries))}
	for _, e := range entries {
		response.Predictions = append(response.Predictions, HistoryEntry{
			Latitude:   e.Latitude,
			Longitude:  e.Longitude,
			Prediction: e.Prediction,
			CreatedAt:  e.CreatedAt,
		})
	}

	respondWithJSON(w, http.StatusOK, response)
}

func (h *PredictionHandler) Health(w http.ResponseWriter, r *http.Request) {
	models := h.predictionService.Models()

	status := "ok"
	for _, m := range models {
		if !m.Available {
			status = "degraded"
			break
		}
	}

	respondWithJSON(w, http.StatusOK, HealthResponse{Status: status, Models: models})
}
