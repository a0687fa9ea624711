package agent

import (
	"context"

	"go.uber.org/zap"

	"calagent/internal/calendar"
	"calagent/internal/intent"
	"calagent/internal/reply"
)

// Agent runs the single-shot pipeline: interpret the message, perform the one
// calendar action it names, format the answer. It holds no state between runs.
type Agent struct {
	interpreter intent.Interpreter
	calendar    calendar.Client
	logger      *zap.Logger
}

func New(interpreter intent.Interpreter, cal calendar.Client, logger *zap.Logger) *Agent {
	return &Agent{interpreter: interpreter, calendar: cal, logger: logger}
}

func (a *Agent) Run(ctx context.Context, message string) (string, error) {
	a.logger.Info("received message", zap.String("message", message))

	in, err := a.interpreter.Interpret(ctx, message)
	if err != nil {
		return "", err
	}

	switch in.Action {
	case intent.ActionCreate:
		title := in.EventTitle
		if title == "" {
			title = "Untitled Event"
		}
		created, err := a.calendar.CreateEvent(ctx, calendar.EventInput{
			Title:       title,
			Description: in.EventDescription,
			Start:       in.StartDate,
			End:         in.EndDate,
		})
		if err != nil {
			return "", err
		}
		return reply.Created(title, created), nil

	case intent.ActionGet:
		events, err := a.calendar.ListEvents(ctx, in.StartDate, in.EndDate)
		if err != nil {
			return "", err
		}
		return reply.Events(events, in.StartDate), nil

	default:
		return reply.Greeting, nil
	}
}
