package intent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
	"go.uber.org/zap"

	"calagent/internal/config"
)

const (
	model       = "gpt-4o-mini"
	temperature = 0.2

	systemPrompt = "You are a Google Calendar assistant. " +
		"Analyze the user's message and return a JSON with keys: " +
		"action ('create' or 'get'), event_title, event_description, start_date, end_date. " +
		"Date format: ISO8601. If retrieving, include start_date and end_date range."
)

// Interpreter turns a free-text scheduling request into an Intent.
type Interpreter interface {
	Interpret(ctx context.Context, message string) (Intent, error)
}

// New returns the live OpenAI interpreter, or the mock one when cfg.Mock is set.
func New(cfg *config.Config, logger *zap.Logger) (Interpreter, error) {
	if cfg.Mock {
		return &MockInterpreter{logger: logger, now: time.Now}, nil
	}
	client, err := openai.New(
		openai.WithModel(model),
		openai.WithToken(cfg.OpenAIAPIKey),
	)
	if err != nil {
		return nil, fmt.Errorf("initialize openai client: %w", err)
	}
	return &OpenAIInterpreter{client: client, logger: logger}, nil
}

// OpenAIInterpreter extracts the intent with a single chat completion.
type OpenAIInterpreter struct {
	client *openai.LLM
	logger *zap.Logger
}

func (i *OpenAIInterpreter) Interpret(ctx context.Context, message string) (Intent, error) {
	i.logger.Debug("interpreting user message", zap.String("model", model))

	messages := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(schema.ChatMessageTypeHuman, message),
	}

	resp, err := i.client.GenerateContent(ctx, messages,
		llms.WithModel(model),
		llms.WithTemperature(temperature),
	)
	if err != nil {
		return Intent{}, fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Intent{}, fmt.Errorf("empty response from model")
	}

	return Decode(resp.Choices[0].Content), nil
}

// MockInterpreter applies a fixed heuristic instead of calling the model:
// messages mentioning create/add become a canned create intent one day out,
// everything else becomes a get intent spanning the next 24 hours.
type MockInterpreter struct {
	logger *zap.Logger
	now    func() time.Time
}

func (m *MockInterpreter) Interpret(_ context.Context, message string) (Intent, error) {
	m.logger.Info("interpreting user message", zap.Bool("mock", true))

	now := m.now()
	lower := strings.ToLower(message)
	if strings.Contains(lower, "create") || strings.Contains(lower, "add") {
		return Intent{
			Action:           ActionCreate,
			EventTitle:       "Team Meeting",
			EventDescription: "Discuss ongoing projects",
			StartDate:        now.Add(24*time.Hour + 10*time.Hour).Format(time.RFC3339),
			EndDate:          now.Add(24*time.Hour + 11*time.Hour).Format(time.RFC3339),
		}, nil
	}

	return Intent{
		Action:    ActionGet,
		StartDate: now.Format(time.RFC3339),
		EndDate:   now.Add(24 * time.Hour).Format(time.RFC3339),
	}, nil
}
