package scanner

import "context"

// Analyzer scores résumé text the way an applicant tracking system would.
//
//go:generate mockgen -package mockscanner -source=interface.go -destination=mock/mockscanner.go *
type Analyzer interface {
	// Analyze returns the model's plain text report for resumeText.
	Analyze(ctx context.Context, resumeText string) (string, error)
}
