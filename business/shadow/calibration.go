package shadow

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DefaultBrierGate is the pass threshold for the calibration CI gate.
// The boundary value itself fails: the comparison is strict.
const DefaultBrierGate = 0.35

const (
	logLossEps      = 1e-15
	reliabilityBins = 10
)

// ReliabilityBin compares the model's average predicted probability with the
// observed positive fraction in one fixed-width probability bucket.
type ReliabilityBin struct {
	Low              float64 `json:"low"`
	High             float64 `json:"high"`
	N                int     `json:"n"`
	MeanPredicted    float64 `json:"mean_predicted"`
	PositiveFraction float64 `json:"positive_fraction"`
}

// CalibrationReport is derived from an artifact and a labeled evaluation set;
// it is always recomputable and never a source of truth itself.
type CalibrationReport struct {
	ModelVersion        string           `json:"model_version"`
	NCalibrationSamples int              `json:"n_calibration_samples"`
	BrierScore          *float64         `json:"brier_score"`
	LogLoss             *float64         `json:"log_loss"`
	ReliabilityBins     []ReliabilityBin `json:"reliability_bins"`
	PassGate            bool             `json:"pass_gate"`
	GeneratedAt         time.Time        `json:"generated_at"`
	Note                string           `json:"note,omitempty"`
}

// Calibrate scores a labeled evaluation set and computes the calibration
// diagnostics. Zero labeled samples is not an error: the report carries null
// metrics, a failing gate, and a note describing the deterministic fallback
// rule used when no model signal exists.
func Calibrate(artifact *Artifact, ds Dataset) (CalibrationReport, error) {
	report := CalibrationReport{
		ModelVersion: artifact.Meta.ModelVersion,
		GeneratedAt:  time.Now(),
	}

	if ds.Len() == 0 {
		report.Note = "no labeled calibration samples; deterministic fallback rule applies: " +
			"viable iff available AND total_score >= 18"
		return report, nil
	}

	clf := artifact.Classifier()
	probs := make([]float64, ds.Len())
	for i, x := range ds.X {
		p, err := clf.PredictProba(x)
		if err != nil {
			return CalibrationReport{}, fmt.Errorf("calibration scoring: %w", err)
		}
		probs[i] = p
	}

	brier := 0.0
	logLoss := 0.0
	for i, p := range probs {
		y := float64(ds.Y[i])
		d := p - y
		brier += d * d

		clipped := math.Min(math.Max(p, logLossEps), 1-logLossEps)
		logLoss += -(y*math.Log(clipped) + (1-y)*math.Log(1-clipped))
	}
	brier /= float64(ds.Len())
	logLoss /= float64(ds.Len())

	report.NCalibrationSamples = ds.Len()
	report.BrierScore = &brier
	report.LogLoss = &logLoss
	report.ReliabilityBins = buildReliabilityBins(probs, ds.Y)
	report.PassGate = brier < DefaultBrierGate

	return report, nil
}

// buildReliabilityBins buckets predictions into fixed-width probability
// ranges; empty buckets are skipped.
func buildReliabilityBins(probs []float64, y []int) []ReliabilityBin {
	type acc struct {
		n         int
		sumP      float64
		positives int
	}
	accs := make([]acc, reliabilityBins)

	for i, p := range probs {
		bin := int(p * reliabilityBins)
		if bin >= reliabilityBins {
			bin = reliabilityBins - 1
		}
		accs[bin].n++
		accs[bin].sumP += p
		accs[bin].positives += y[i]
	}

	var bins []ReliabilityBin
	width := 1.0 / reliabilityBins
	for i, a := range accs {
		if a.n == 0 {
			continue
		}
		bins = append(bins, ReliabilityBin{
			Low:              float64(i) * width,
			High:             float64(i+1) * width,
			N:                a.n,
			MeanPredicted:    a.sumP / float64(a.n),
			PositiveFraction: float64(a.positives) / float64(a.n),
		})
	}
	return bins
}

// Render produces the human-readable calibration report.
func (r CalibrationReport) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Calibration report for model %s\n", r.ModelVersion)
	fmt.Fprintf(&b, "generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339))

	fmt.Fprintf(&b, "Samples\n")
	fmt.Fprintf(&b, "  labeled evaluation samples: %d\n\n", r.NCalibrationSamples)

	fmt.Fprintf(&b, "Metrics vs threshold\n")
	if r.BrierScore != nil {
		fmt.Fprintf(&b, "  brier_score: %.4f (gate: < %.2f)\n", *r.BrierScore, DefaultBrierGate)
	} else {
		fmt.Fprintf(&b, "  brier_score: n/a (gate: < %.2f)\n", DefaultBrierGate)
	}
	if r.LogLoss != nil {
		fmt.Fprintf(&b, "  log_loss:    %.4f\n\n", *r.LogLoss)
	} else {
		fmt.Fprintf(&b, "  log_loss:    n/a\n\n")
	}

	if len(r.ReliabilityBins) > 0 {
		fmt.Fprintf(&b, "Reliability bins\n")
		fmt.Fprintf(&b, "  %-12s %5s %10s %10s\n", "range", "n", "mean_pred", "pos_frac")
		for _, bin := range r.ReliabilityBins {
			fmt.Fprintf(&b, "  [%.1f, %.1f)   %5d %10.3f %10.3f\n",
				bin.Low, bin.High, bin.N, bin.MeanPredicted, bin.PositiveFraction)
		}
		fmt.Fprintf(&b, "\n")
	}

	if r.PassGate {
		fmt.Fprintf(&b, "Verdict: PASS: the shadow model is calibrated within the gate.\n")
	} else {
		fmt.Fprintf(&b, "Verdict: FAIL: do not rely on shadow scores for this model version.\n")
	}
	if r.Note != "" {
		fmt.Fprintf(&b, "Note: %s\n", r.Note)
	}

	return b.String()
}
