package model

import (
	"errors"
	"fmt"
	"gonum.org/v1/gonum/mat"
	"math"
)

// LinearRegressor computes intercept + coef·x.
type LinearRegressor struct {
	coef      *mat.VecDense
	intercept float64
}

func newLinearRegressor(params LinearParams, nFeatures int) (*LinearRegressor, error) {
	if len(params.Coefficients) == 0 {
		return nil, errors.New("linear artifact has no coefficients")
	}
	if nFeatures != 0 && nFeatures != len(params.Coefficients) {
		return nil, fmt.Errorf("linear artifact has %d coefficients, expected %d", len(params.Coefficients), nFeatures)
	}
	if !allFinite(params.Coefficients) || math.IsNaN(params.Intercept) || math.IsInf(params.Intercept, 0) {
		return nil, errors.New("linear artifact contains a non-finite parameter")
	}

	coef := make([]float64, len(params.Coefficients))
	copy(coef, params.Coefficients)

	return &LinearRegressor{
		coef:      mat.NewVecDense(len(coef), coef),
		intercept: params.Intercept,
	}, nil
}

func (m *LinearRegressor) Predict(features []float64) (float64, error) {
	if err := checkFeatures(features, m.coef.Len()); err != nil {
		return 0, err
	}

	x := mat.NewVecDense(len(features), features)

	return checkResult(m.intercept + mat.Dot(m.coef, x))
}
