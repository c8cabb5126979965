package gemini_test

import (
	"arbeit/pkg/llm"
	"arbeit/pkg/llm/gemini"
	"arbeit/pkg/logger"
	"arbeit/pkg/serrors"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

// fakeModel implements llms.Model with canned output.
type fakeModel struct {
	prompt string
	out    string
	err    error
}

func (f *fakeModel) GenerateContent(_ context.Context,
	messages []llms.MessageContent,
	_ ...llms.CallOption) (*llms.ContentResponse, error) {
	if len(messages) > 0 && len(messages[0].Parts) > 0 {
		if text, ok := messages[0].Parts[0].(llms.TextContent); ok {
			f.prompt = text.Text
		}
	}
	if f.err != nil {
		return nil, f.err
	}

	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.out}}}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

func TestClient_Generate_success(t *testing.T) {
	model := &fakeModel{out: "  OVERALL SCORE: 82/100  \n"}
	c := gemini.NewWithModel(model, gemini.Options{Temperature: 0.2})

	out, err := c.Generate(context.Background(), "analyze this")
	require.NoError(t, err)
	require.Equal(t, "OVERALL SCORE: 82/100", out)
	require.Equal(t, "analyze this", model.prompt)
}

func TestClient_Generate_notConfigured(t *testing.T) {
	c, err := gemini.New(context.Background(), gemini.Options{})
	require.NoError(t, err)

	_, err = c.Generate(context.Background(), "hi")
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.Equal(t, llm.MsgNotConfigured, serrors.MessageOf(err))
}

func TestClient_Generate_errors(t *testing.T) {
	tests := []struct {
		name    string
		model   *fakeModel
		message string
	}{
		{
			name:    "invalid api key",
			model:   &fakeModel{err: errors.New("googleapi: Error 400: API key not valid")},
			message: llm.MsgNotConfigured,
		},
		{
			name:    "upstream failure",
			model:   &fakeModel{err: errors.New("503 overloaded")},
			message: llm.MsgUnavailable,
		},
		{
			name:    "empty output",
			model:   &fakeModel{out: "   "},
			message: llm.MsgUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := gemini.NewWithModel(tt.model, gemini.Options{})
			_, err := c.Generate(context.Background(), "prompt")
			require.ErrorIs(t, err, serrors.ErrUnavailable)
			require.Equal(t, tt.message, serrors.MessageOf(err))
		})
	}
}
