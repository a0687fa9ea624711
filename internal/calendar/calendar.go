package calendar

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"calagent/internal/config"
)

// EventInput describes the event to create. Start and End are ISO-8601 strings
// as produced by the interpreter.
type EventInput struct {
	Title       string
	Description string
	Start       string
	End         string
}

// Client is the two-operation calendar surface the agent needs.
type Client interface {
	CreateEvent(ctx context.Context, in EventInput) (*gcal.Event, error)
	ListEvents(ctx context.Context, start, end string) ([]*gcal.Event, error)
}

// New returns the live Google Calendar client, or the mock one when cfg.Mock
// is set.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Client, error) {
	if cfg.Mock {
		return &MockClient{logger: logger}, nil
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.GoogleAPIToken})
	svc, err := gcal.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	return &GoogleClient{
		svc:        svc,
		calendarID: cfg.CalendarID,
		timezone:   cfg.Timezone,
		logger:     logger,
	}, nil
}

// GoogleClient talks to the Google Calendar v3 API with a bearer token.
type GoogleClient struct {
	svc        *gcal.Service
	calendarID string
	timezone   string
	logger     *zap.Logger
}

func (c *GoogleClient) CreateEvent(ctx context.Context, in EventInput) (*gcal.Event, error) {
	ev := &gcal.Event{
		Summary:     in.Title,
		Description: in.Description,
		Start:       &gcal.EventDateTime{DateTime: in.Start, TimeZone: c.timezone},
		End:         &gcal.EventDateTime{DateTime: in.End, TimeZone: c.timezone},
	}

	created, err := c.svc.Events.Insert(c.calendarID, ev).Context(ctx).Do()
	if err != nil {
		return nil, apiError("google calendar api error", err)
	}
	c.logger.Info("event created", zap.String("title", in.Title), zap.String("link", created.HtmlLink))
	return created, nil
}

func (c *GoogleClient) ListEvents(ctx context.Context, start, end string) ([]*gcal.Event, error) {
	resp, err := c.svc.Events.List(c.calendarID).
		TimeMin(start).
		TimeMax(end).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, apiError("failed to retrieve events", err)
	}
	return resp.Items, nil
}

// apiError surfaces the provider's response body when present; the run has no
// retry tier, so the body is the only diagnostic the user gets.
func apiError(msg string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Body != "" {
		return fmt.Errorf("%s: %s", msg, gerr.Body)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
