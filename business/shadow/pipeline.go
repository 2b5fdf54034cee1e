package shadow

import (
	"fmt"
	"math"
)

// Classifier is the interchangeable probabilistic-classification strategy.
// Scoring and calibration only ever see this capability, so the underlying
// algorithm can be swapped without touching either.
type Classifier interface {
	Fit(X [][]float64, y []int) error
	PredictProba(x []float64) (float64, error)
}

// PipelineState is the flat serializable form of a fitted pipeline:
// standardizer statistics plus logistic-regression coefficients.
type PipelineState struct {
	Means   []float64 `json:"means"`
	Stddevs []float64 `json:"stddevs"`
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
	Fitted  bool      `json:"fitted"`
}

// Pipeline standardizes inputs and applies logistic regression, fit by
// batch gradient descent. Deterministic: zero-initialized weights, fixed
// epoch count, no stochastic shuffling.
type Pipeline struct {
	state PipelineState
}

var _ Classifier = (*Pipeline)(nil)

const (
	gdEpochs       = 800
	gdLearningRate = 0.1
	gdL2           = 0.01
)

func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// PipelineFromState restores a fitted pipeline from its serialized form.
func PipelineFromState(state PipelineState) *Pipeline {
	return &Pipeline{state: state}
}

func (p *Pipeline) State() PipelineState { return p.state }

func (p *Pipeline) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return fmt.Errorf("cannot fit on an empty dataset")
	}
	if len(X) != len(y) {
		return fmt.Errorf("feature/label length mismatch: %d vs %d", len(X), len(y))
	}

	dim := len(X[0])
	means, stddevs := standardizerStats(X, dim)

	scaled := make([][]float64, len(X))
	for i, row := range X {
		scaled[i] = scaleRow(row, means, stddevs)
	}

	weights := make([]float64, dim)
	bias := 0.0
	n := float64(len(scaled))

	for epoch := 0; epoch < gdEpochs; epoch++ {
		gradW := make([]float64, dim)
		gradB := 0.0

		for i, row := range scaled {
			pred := sigmoid(dotBias(row, weights, bias))
			residual := pred - float64(y[i])
			for j, v := range row {
				gradW[j] += residual * v
			}
			gradB += residual
		}

		for j := range weights {
			weights[j] -= gdLearningRate * (gradW[j]/n + gdL2*weights[j])
		}
		bias -= gdLearningRate * gradB / n
	}

	p.state = PipelineState{
		Means:   means,
		Stddevs: stddevs,
		Weights: weights,
		Bias:    bias,
		Fitted:  true,
	}
	return nil
}

func (p *Pipeline) PredictProba(x []float64) (float64, error) {
	if !p.state.Fitted {
		return 0, fmt.Errorf("pipeline is not fitted")
	}
	if len(x) != len(p.state.Weights) {
		return 0, fmt.Errorf("feature dimension mismatch: got %d, want %d", len(x), len(p.state.Weights))
	}

	scaled := scaleRow(x, p.state.Means, p.state.Stddevs)
	return sigmoid(dotBias(scaled, p.state.Weights, p.state.Bias)), nil
}

func standardizerStats(X [][]float64, dim int) (means, stddevs []float64) {
	means = make([]float64, dim)
	stddevs = make([]float64, dim)
	n := float64(len(X))

	for _, row := range X {
		for j, v := range row {
			means[j] += v
		}
	}
	for j := range means {
		means[j] /= n
	}

	for _, row := range X {
		for j, v := range row {
			d := v - means[j]
			stddevs[j] += d * d
		}
	}
	for j := range stddevs {
		stddevs[j] = math.Sqrt(stddevs[j] / n)
		// constant columns pass through unscaled
		if stddevs[j] == 0 {
			stddevs[j] = 1
		}
	}
	return means, stddevs
}

func scaleRow(row, means, stddevs []float64) []float64 {
	out := make([]float64, len(row))
	for j, v := range row {
		out[j] = (v - means[j]) / stddevs[j]
	}
	return out
}

func dotBias(x, w []float64, b float64) float64 {
	sum := b
	for i, v := range x {
		sum += v * w[i]
	}
	return sum
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
