package domain

// AnomalySeverity grades how urgently a flagged sheet should be
// reviewed.
type AnomalySeverity string

const (
	SeverityLow    AnomalySeverity = "low"
	SeverityMedium AnomalySeverity = "medium"
	SeverityHigh   AnomalySeverity = "high"
)

// AnomalyType identifies the statistical pattern that triggered a flag.
type AnomalyType string

const (
	// AnomalyAllFives marks a sheet of straight 5s, possible
	// rubber-stamping.
	AnomalyAllFives AnomalyType = "all-fives"

	// AnomalyAllOnes marks a sheet of straight 1s, possible data-entry
	// error or a genuine problem.
	AnomalyAllOnes AnomalyType = "all-ones"

	// AnomalyLowVariance marks a suspiciously uniform, non-neutral
	// sheet.
	AnomalyLowVariance AnomalyType = "low-variance"
)

// Anomaly is an advisory flag on a single score sheet. Anomalies are
// surfaced for manual audit and never alter scores or winners.
type Anomaly struct {
	Type        AnomalyType     `json:"type"`
	Description string          `json:"description"`
	ScoreID     string          `json:"scoreId"`
	Severity    AnomalySeverity `json:"severity"`
}
