package model

import (
	"cmp"
	"errors"
	"fmt"
	"gonum.org/v1/gonum/floats"
	"math"
	"slices"
)

const (
	defaultNeighbors = 5

	WeightsUniform  = "uniform"
	WeightsDistance = "distance"

	MetricEuclidean = "euclidean"
	MetricManhattan = "manhattan"
	MetricHaversine = "haversine"

	earthRadiusKm = 6371.0088
)

type distanceFunc func(a, b []float64) float64

// KNNRegressor averages the targets of the k training points closest to the
// query. Ties on distance keep training order, so predictions are stable.
type KNNRegressor struct {
	points    [][]float64
	targets   []float64
	k         int
	nFeatures int
	weights   string
	distance  distanceFunc
}

type neighbor struct {
	index    int
	distance float64
}

func newKNNRegressor(params KNNParams, nFeatures int) (*KNNRegressor, error) {
	if len(params.Points) == 0 {
		return nil, errors.New("knn artifact has no training points")
	}
	if len(params.Points) != len(params.Targets) {
		return nil, fmt.Errorf("knn artifact has %d points but %d targets", len(params.Points), len(params.Targets))
	}

	if nFeatures == 0 {
		nFeatures = len(params.Points[0])
	}
	if nFeatures <= 0 {
		return nil, errors.New("knn artifact points have no features")
	}
	for i, p := range params.Points {
		if len(p) != nFeatures {
			return nil, fmt.Errorf("knn point %d has %d features, expected %d", i, len(p), nFeatures)
		}
		if !allFinite(p) {
			return nil, fmt.Errorf("knn point %d has a non-finite coordinate", i)
		}
	}
	if !allFinite(params.Targets) {
		return nil, errors.New("knn targets contain a non-finite value")
	}

	k := params.NNeighbors
	if k == 0 {
		k = min(defaultNeighbors, len(params.Points))
	}
	if k < 1 || k > len(params.Points) {
		return nil, fmt.Errorf("n_neighbors must be between 1 and %d, got %d", len(params.Points), k)
	}

	weights := params.Weights
	if weights == "" {
		weights = WeightsUniform
	}
	if weights != WeightsUniform && weights != WeightsDistance {
		return nil, fmt.Errorf("unsupported knn weights %q", weights)
	}

	var distance distanceFunc
	switch params.Metric {
	case "", MetricEuclidean:
		distance = func(a, b []float64) float64 { return floats.Distance(a, b, 2) }
	case MetricManhattan:
		distance = func(a, b []float64) float64 { return floats.Distance(a, b, 1) }
	case MetricHaversine:
		if nFeatures != FeatureCount {
			return nil, fmt.Errorf("haversine metric needs %d features, artifact has %d", FeatureCount, nFeatures)
		}
		distance = haversineKm
	default:
		return nil, fmt.Errorf("unsupported knn metric %q", params.Metric)
	}

	return &KNNRegressor{
		points:    params.Points,
		targets:   params.Targets,
		k:         k,
		nFeatures: nFeatures,
		weights:   weights,
		distance:  distance,
	}, nil
}

func (m *KNNRegressor) Predict(features []float64) (float64, error) {
	if err := checkFeatures(features, m.nFeatures); err != nil {
		return 0, err
	}

	neighbors := make([]neighbor, len(m.points))
	for i, p := range m.points {
		neighbors[i] = neighbor{index: i, distance: m.distance(features, p)}
	}
	slices.SortStableFunc(neighbors, func(a, b neighbor) int {
		return cmp.Compare(a.distance, b.distance)
	})
	neighbors = neighbors[:m.k]

	if m.weights == WeightsUniform {
		return checkResult(m.mean(neighbors))
	}

	// An exact match dominates any inverse-distance weight.
	var exact []neighbor
	for _, n := range neighbors {
		if n.distance == 0 {
			exact = append(exact, n)
		}
	}
	if len(exact) > 0 {
		return checkResult(m.mean(exact))
	}

	var weighted, total float64
	for _, n := range neighbors {
		w := 1 / n.distance
		weighted += w * m.targets[n.index]
		total += w
	}

	return checkResult(weighted / total)
}

func (m *KNNRegressor) mean(neighbors []neighbor) float64 {
	var sum float64
	for _, n := range neighbors {
		sum += m.targets[n.index]
	}
	return sum / float64(len(neighbors))
}

// haversineKm is the great-circle distance between two [lat, lon] pairs given
// in degrees.
func haversineKm(a, b []float64) float64 {
	lat1, lat2 := radians(a[0]), radians(b[0])
	dLat := lat2 - lat1
	dLon := radians(b[1] - a[1])

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
