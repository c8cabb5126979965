package mentor

import (
	"arbeit/pkg/llm"
	"arbeit/pkg/logger"
	"arbeit/pkg/metrics"
	"arbeit/pkg/serrors"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

type mentor struct {
	generator llm.Generator
}

// Ensure mentor implements Mentor.
var _ Mentor = (*mentor)(nil)

// New creates a Mentor backed by the given text generator.
func New(generator llm.Generator) Mentor {
	return &mentor{generator: generator}
}

func (m *mentor) generate(ctx context.Context, kind, prompt string) (string, error) {
	start := time.Now()
	text, err := m.generator.Generate(ctx, prompt)
	metrics.AIRequestDuration.WithLabelValues(strings.ReplaceAll(kind, " ", "_"), metrics.Result(err)).
		Observe(time.Since(start).Seconds())
	if err != nil {
		logger.Get(ctx).Warn("could not generate "+kind, zap.Error(err))
		return "", err
	}

	return text, nil
}

func (m *mentor) Roadmap(ctx context.Context, dreamRole, currentSkills string) (string, error) {
	dreamRole = strings.TrimSpace(dreamRole)
	if dreamRole == "" {
		return "", serrors.With(serrors.ErrBadRequest, "dream role is required")
	}
	currentSkills = strings.TrimSpace(currentSkills)
	if currentSkills == "" {
		currentSkills = noExperience
	}

	return m.generate(ctx, "roadmap", fmt.Sprintf(roadmapPrompt, dreamRole, currentSkills))
}

func (m *mentor) ProjectPlan(ctx context.Context, title, description string) (string, error) {
	title, description = strings.TrimSpace(title), strings.TrimSpace(description)
	if title == "" || description == "" {
		return "", serrors.With(serrors.ErrBadRequest, "project title and description are required")
	}

	return m.generate(ctx, "project plan", fmt.Sprintf(projectPlanPrompt, title, description))
}
