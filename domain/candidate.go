package domain

// Pattern identifies one of the five structural generation patterns a
// candidate name can be produced under.
type Pattern string

const (
	PatternA Pattern = "A"
	PatternB Pattern = "B"
	PatternC Pattern = "C"
	PatternD Pattern = "D"
	PatternE Pattern = "E"
)

// AllPatterns returns the fixed arm order used everywhere allocation,
// features, and reporting need a stable iteration order.
func AllPatterns() []Pattern {
	return []Pattern{PatternA, PatternB, PatternC, PatternD, PatternE}
}

// ParsePattern normalizes a raw pattern cell ("A", "a ", "A/B") to the first
// valid pattern letter. ok is false when no valid letter is present.
func ParsePattern(raw string) (Pattern, bool) {
	for _, ch := range raw {
		switch {
		case ch >= 'A' && ch <= 'E':
			return Pattern(ch), true
		case ch >= 'a' && ch <= 'e':
			return Pattern(ch - 32), true
		}
	}
	return "", false
}

// Candidate is one proposed name together with its human review scores.
// Immutable once scored.
type Candidate struct {
	Name       string  `json:"name"`
	Pattern    Pattern `json:"pattern"`
	ScoreD     int     `json:"score_d"`
	ScoreW     int     `json:"score_w"`
	ScoreP     int     `json:"score_p"`
	ScoreE     int     `json:"score_e"`
	ScoreI     int     `json:"score_i"`
	TotalScore int     `json:"total_score"`
}

// Availability is the registry status of a candidate name.
type Availability string

const (
	AvailabilityAvailable Availability = "available"
	AvailabilityTaken     Availability = "taken"
	AvailabilityUnknown   Availability = "unknown"
)
