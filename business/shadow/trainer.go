package shadow

import (
	"fmt"
	"math"
	"sort"
	"time"

	"namelab/business/features"
	"namelab/pkg/logger"
)

// cross-validation is only meaningful with a handful of examples per class
const minSamplesPerClassForCV = 6

// TrainOptions control one training run.
type TrainOptions struct {
	ModelVersion string
	Seed         int64

	// optional persistence targets; empty means "do not write"
	ArtifactPath string
	MetaPath     string
}

// Train fits the shadow model on proxy-labeled historical rounds and returns
// the versioned artifact. Degenerate data (no positive or no negative
// examples) never fails: the pipeline is fit on placeholder data so scoring
// remains callable, and the metadata keeps the sample counts auditable.
func Train(pairs []ArtifactPair, opts TrainOptions) (*Artifact, error) {
	if opts.ModelVersion == "" {
		opts.ModelVersion = "v1"
	}

	ds, err := LoadProxyDataset(pairs)
	if err != nil {
		return nil, fmt.Errorf("load training data: %w", err)
	}

	nSamples := ds.Len()
	nPositive := ds.countLabel(1)
	nNegative := ds.countLabel(0)

	logger.Info("shadow model training set",
		"samples", nSamples, "positive", nPositive, "negative", nNegative)

	if nSamples < 10 {
		logger.Warn("fewer than 10 labeled samples; calibration will be limited",
			"samples", nSamples)
	}

	var cvMean, cvStddev *float64
	minClass := min(nPositive, nNegative)
	if minClass >= minSamplesPerClassForCV && nSamples >= minSamplesPerClassForCV {
		folds := min(5, minClass)
		mean, stddev := crossValidateBrier(ds, folds)
		cvMean, cvStddev = &mean, &stddev
		logger.Info("cross-validated Brier",
			"folds", folds, "mean", mean, "stddev", stddev)
	} else {
		logger.Warn("skipping cross-validation, fewer than 6 samples per class",
			"min_class", minClass)
	}

	pipeline := NewPipeline()
	if nSamples > 0 && nPositive > 0 && nNegative > 0 {
		if err := pipeline.Fit(ds.X, ds.Y); err != nil {
			return nil, fmt.Errorf("fit pipeline: %w", err)
		}
	} else {
		// placeholder fit keeps the artifact usable for scoring
		dummyX := [][]float64{
			make([]float64, features.Dim),
			make([]float64, features.Dim),
		}
		if err := pipeline.Fit(dummyX, []int{0, 1}); err != nil {
			return nil, fmt.Errorf("placeholder fit: %w", err)
		}
	}

	artifact := &Artifact{
		Pipeline: pipeline.State(),
		Meta: Metadata{
			ModelVersion:     opts.ModelVersion,
			TrainingDate:     time.Now().Format("2006-01-02"),
			NTrainingSamples: nSamples,
			NPositive:        nPositive,
			NNegative:        nNegative,
			FeatureNames:     ds.FeatureNames,
			Seed:             opts.Seed,
			CVBrierMean:      cvMean,
			CVBrierStddev:    cvStddev,
			TrainingRounds:   uniqueSorted(ds.RoundLabels),
		},
	}

	if opts.ArtifactPath != "" {
		if err := artifact.Save(opts.ArtifactPath); err != nil {
			return nil, err
		}
		logger.Info("saved model artifact", "path", opts.ArtifactPath)
	}
	if opts.MetaPath != "" {
		if err := artifact.WriteMetaFile(opts.MetaPath); err != nil {
			return nil, err
		}
		logger.Info("saved model metadata", "path", opts.MetaPath)
	}

	return artifact, nil
}

// crossValidateBrier runs deterministic k-fold CV (round-robin fold
// assignment, no shuffling) and returns the mean and population stddev of the
// per-fold Brier scores.
func crossValidateBrier(ds Dataset, folds int) (mean, stddev float64) {
	scores := make([]float64, 0, folds)

	for fold := 0; fold < folds; fold++ {
		var trainX, testX [][]float64
		var trainY, testY []int

		for i := range ds.Y {
			if i%folds == fold {
				testX = append(testX, ds.X[i])
				testY = append(testY, ds.Y[i])
			} else {
				trainX = append(trainX, ds.X[i])
				trainY = append(trainY, ds.Y[i])
			}
		}
		if len(testY) == 0 || len(trainY) == 0 {
			continue
		}

		p := NewPipeline()
		if err := p.Fit(trainX, trainY); err != nil {
			continue
		}

		sq := 0.0
		for i, x := range testX {
			prob, err := p.PredictProba(x)
			if err != nil {
				continue
			}
			d := prob - float64(testY[i])
			sq += d * d
		}
		scores = append(scores, sq/float64(len(testY)))
	}

	if len(scores) == 0 {
		return 0, 0
	}

	for _, s := range scores {
		mean += s
	}
	mean /= float64(len(scores))

	for _, s := range scores {
		d := s - mean
		stddev += d * d
	}
	stddev = math.Sqrt(stddev / float64(len(scores)))

	return mean, stddev
}

func uniqueSorted(labels []string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}
