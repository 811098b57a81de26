package handlers

import (
	"time"
	"ulascansenturk/geo-prediction-service/internal/service"
)

const (
	msgModelUnavailable  = "Modelo no disponible. Revisar logs del servidor."
	msgIncompleteInput   = "Datos de entrada incompletos (requiere latitude y longitude)"
	msgInvalidBody       = "Cuerpo de la solicitud inválido: "
	msgPredictionFailure = "Error interno durante la predicción. Detalles: "
	msgHistoryDisabled   = "Historial de predicciones no habilitado"
	msgInvalidLimit      = "El parámetro 'limit' debe ser un entero positivo"
	msgHistoryFailure    = "Error al leer el historial de predicciones. Revisar logs del servidor."
	msgNotFound          = "not found"
	msgMethodNotAllowed  = "method not allowed"
)

type PredictionResponse struct {
	Prediction float64 `json:"prediction"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string                `json:"status"`
	Models []service.ModelStatus `json:"models"`
}

type HistoryEntry struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Prediction float64   `json:"prediction"`
	CreatedAt  time.Time `json:"created_at"`
}

type HistoryResponse struct {
	Model       string         `json:"model"`
	Predictions []HistoryEntry `json:"predictions"`
}
