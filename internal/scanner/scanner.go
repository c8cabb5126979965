package scanner

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

type analyzer struct {
	generator llm.Generator
}

// Ensure analyzer implements Analyzer.
var _ Analyzer = (*analyzer)(nil)

// New creates an Analyzer backed by the given text generator.
func New(generator llm.Generator) Analyzer {
	return &analyzer{generator: generator}
}

func (a *analyzer) Analyze(ctx context.Context, resumeText string) (string, error) {
	resumeText = strings.TrimSpace(resumeText)
	if resumeText == "" {
		return "", serrors.With(serrors.ErrBadRequest, "resume text is required")
	}

	start := time.Now()
	analysis, err := a.generator.Generate(ctx, fmt.Sprintf(analysisPrompt, resumeText))
	metrics.AIRequestDuration.WithLabelValues("ats", metrics.Result(err)).Observe(time.Since(start).Seconds())
	if err != nil {
		logger.Get(ctx).Warn("could not analyze resume", zap.Error(err))
		return "", err
	}

	return analysis, nil
}
