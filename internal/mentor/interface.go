package mentor

import "context"

// Mentor generates career guidance documents.
//
//go:generate mockgen -package mockmentor -source=interface.go -destination=mock/mockmentor.go *
type Mentor interface {
	// Roadmap plans milestones for reaching dreamRole from currentSkills.
	Roadmap(ctx context.Context, dreamRole, currentSkills string) (string, error)
	// ProjectPlan breaks a project down into phases.
	ProjectPlan(ctx context.Context, title, description string) (string, error)
}
