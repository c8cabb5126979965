// Package gemini provides an llm.Generator backed by Google Gemini through
// langchaingo.
package gemini

import (
	"arbeit/pkg/llm"
	"arbeit/pkg/logger"
	"arbeit/pkg/serrors"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
)

// DefaultModel is used when Options.Model is empty.
const DefaultModel = "gemini-2.5-flash"

// Options configures the Gemini client.
type Options struct {
	APIKey string
	Model  string
	// Timeout bounds a single generation call. Zero disables it.
	Timeout time.Duration
	// Temperature is forwarded when positive.
	Temperature float64
	// MaxTokens is forwarded when positive.
	MaxTokens int
}

// Client generates text with Gemini. It is safe for concurrent use.
type Client struct {
	model   llms.Model // nil when no API key is configured
	options Options
}

// Ensure Client conforms to the llm.Generator interface at compile time.
var _ llm.Generator = (*Client)(nil)

// New builds a Client. A missing API key does not fail construction so the
// service can boot without AI features; every Generate call then reports a
// configuration error.
func New(ctx context.Context, options Options) (*Client, error) {
	if options.Model == "" {
		options.Model = DefaultModel
	}
	if options.APIKey == "" {
		logger.Warn(ctx, "gemini api key is not configured, AI features are disabled")

		return &Client{options: options}, nil
	}

	model, err := googleai.New(ctx,
		googleai.WithAPIKey(options.APIKey),
		googleai.WithDefaultModel(options.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create gemini client: %w", err)
	}

	return &Client{model: model, options: options}, nil
}

// NewWithModel wraps an existing langchaingo model.
func NewWithModel(model llms.Model, options Options) *Client {
	return &Client{model: model, options: options}
}

// Generate sends a single prompt and returns the trimmed response text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.model == nil {
		return "", serrors.With(serrors.ErrUnavailable, llm.MsgNotConfigured)
	}

	if c.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.options.Timeout)
		defer cancel()
	}

	var callOpts []llms.CallOption
	if c.options.Temperature > 0 {
		callOpts = append(callOpts, llms.WithTemperature(c.options.Temperature))
	}
	if c.options.MaxTokens > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(c.options.MaxTokens))
	}

	start := time.Now()
	out, err := llms.GenerateFromSinglePrompt(ctx, c.model, prompt, callOpts...)
	if err != nil {
		logger.Error(ctx, "gemini generation failed",
			zap.Duration("elapsed", time.Since(start)), zap.Error(err))
		if isConfigError(err) {
			return "", serrors.Wrap(serrors.ErrUnavailable, err, llm.MsgNotConfigured)
		}

		return "", serrors.Wrap(serrors.ErrUnavailable, err, llm.MsgUnavailable)
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return "", serrors.With(serrors.ErrUnavailable, llm.MsgUnavailable)
	}

	logger.Debug(ctx, "gemini generation finished",
		zap.Duration("elapsed", time.Since(start)), zap.Int("chars", len(out)))

	return out, nil
}

// isConfigError detects upstream rejections of the credentials.
func isConfigError(err error) bool {
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "api key") || strings.Contains(msg, "api_key")
}
