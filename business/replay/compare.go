package replay

// SummaryDiff describes what changed between two replay summaries, for
// regression detection between log versions.
type SummaryDiff struct {
	EventCountDelta   int      `json:"event_count_delta"`
	InvalidEventDelta int      `json:"invalid_event_delta"`
	SchemaChanged     bool     `json:"schema_changed"`
	SchemaBefore      string   `json:"schema_before"`
	SchemaAfter       string   `json:"schema_after"`
	StagesAdded       []string `json:"stages_added"`
	StagesRemoved     []string `json:"stages_removed"`
}

// CompareSummaries diffs b against a (a is the baseline).
func CompareSummaries(a, b ReplaySummary) SummaryDiff {
	return SummaryDiff{
		EventCountDelta:   b.NEventsRead - a.NEventsRead,
		InvalidEventDelta: b.NEventsInvalid - a.NEventsInvalid,
		SchemaChanged:     a.SchemaVersion != b.SchemaVersion,
		SchemaBefore:      a.SchemaVersion,
		SchemaAfter:       b.SchemaVersion,
		StagesAdded:       setDifference(b.Stages, a.Stages),
		StagesRemoved:     setDifference(a.Stages, b.Stages),
	}
}

// setDifference returns the members of xs not present in ys, preserving the
// sorted order of xs.
func setDifference(xs, ys []string) []string {
	seen := make(map[string]struct{}, len(ys))
	for _, y := range ys {
		seen[y] = struct{}{}
	}

	var out []string
	for _, x := range xs {
		if _, ok := seen[x]; !ok {
			out = append(out, x)
		}
	}
	return out
}
