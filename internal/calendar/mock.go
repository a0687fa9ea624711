package calendar

import (
	"context"

	"go.uber.org/zap"
	gcal "google.golang.org/api/calendar/v3"
)

// MockEventLink is the placeholder link returned for mock creations.
const MockEventLink = "https://calendar.google.com/mock/event"

// MockClient fabricates calendar responses when credentials are absent. Every
// method is deterministic and performs no network I/O.
type MockClient struct {
	logger *zap.Logger
}

func (m *MockClient) CreateEvent(_ context.Context, in EventInput) (*gcal.Event, error) {
	m.logger.Info("creating event",
		zap.Bool("mock", true),
		zap.String("title", in.Title),
		zap.String("start", in.Start),
		zap.String("end", in.End))

	return &gcal.Event{
		Summary:     in.Title,
		Description: in.Description,
		Status:      "mocked",
		HtmlLink:    MockEventLink,
	}, nil
}

func (m *MockClient) ListEvents(_ context.Context, start, end string) ([]*gcal.Event, error) {
	m.logger.Info("retrieving events",
		zap.Bool("mock", true),
		zap.String("start", start),
		zap.String("end", end))

	return []*gcal.Event{
		{
			Summary: "Mock Meeting with Team",
			Start:   &gcal.EventDateTime{DateTime: start},
			End:     &gcal.EventDateTime{DateTime: end},
		},
		{
			Summary: "Demo Call",
			Start:   &gcal.EventDateTime{DateTime: start},
			End:     &gcal.EventDateTime{DateTime: end},
		},
	}, nil
}
