package replay

import "namelab/business/shadow"

// SchemaGate passes iff the replay saw zero invalid events.
func SchemaGate(summary ReplaySummary) bool {
	return summary.NEventsInvalid == 0
}

// LegacyParityGate passes iff at least one valid event was replayed;
// an empty replay means the log pipeline silently broke.
func LegacyParityGate(summary ReplaySummary) bool {
	return summary.NEventsValid >= 1
}

// CalibrationGate passes iff the report's Brier score is strictly below the
// threshold. A threshold of zero or less selects the default. Null metrics
// (no calibration samples) always fail.
func CalibrationGate(report shadow.CalibrationReport, threshold float64) bool {
	if threshold <= 0 {
		threshold = shadow.DefaultBrierGate
	}
	if report.BrierScore == nil {
		return false
	}
	return *report.BrierScore < threshold
}
