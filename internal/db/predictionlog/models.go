package predictionlog

import (
	"time"
)

type PredictionLog struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Model      string    `json:"model" gorm:"index:idx_model;index:idx_model_created_at"`
	Latitude   float64   `json:"latitude" gorm:"column:latitude"`
	Longitude  float64   `json:"longitude" gorm:"column:longitude"`
	Prediction float64   `json:"prediction" gorm:"column:prediction"`
	CreatedAt  time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_model_created_at"`
}

func (PredictionLog) TableName() string {
	return "prediction_logs"
}
