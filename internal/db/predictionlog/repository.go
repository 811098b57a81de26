package predictionlog

import (
	"context"
	"gorm.io/gorm"
	"time"
)

type Repository interface {
	LogPrediction(ctx context.Context, model string, latitude, longitude, prediction float64) error
	RecentPredictions(ctx context.Context, model string, limit int) ([]PredictionLog, error)
}

type PredictionSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &PredictionSQLRepository{db: db}
}

func (r *PredictionSQLRepository) LogPrediction(ctx context.Context, model string, latitude, longitude, prediction float64) error {
	entry := PredictionLog{
		Model:      model,
		Latitude:   latitude,
		Longitude:  longitude,
		Prediction: prediction,
		CreatedAt:  time.Now(),
	}

	return r.db.WithContext(ctx).Create(&entry).Error
}

func (r *PredictionSQLRepository) RecentPredictions(ctx context.Context, model string, limit int) ([]PredictionLog, error) {
	var entries []PredictionLog
	err := r.db.WithContext(ctx).
		Where("model = ?", model).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
