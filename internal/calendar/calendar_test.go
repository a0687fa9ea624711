package calendar

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestMockClientCreateEvent(t *testing.T) {
	m := &MockClient{logger: zap.NewNop()}

	ev, err := m.CreateEvent(context.Background(), EventInput{
		Title:       "Team Meeting",
		Description: "Discuss ongoing projects",
		Start:       "2026-09-01T10:00:00Z",
		End:         "2026-09-01T11:00:00Z",
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if ev.Status != "mocked" {
		t.Errorf("status = %q, want %q", ev.Status, "mocked")
	}
	if ev.HtmlLink != MockEventLink {
		t.Errorf("link = %q, want %q", ev.HtmlLink, MockEventLink)
	}
	if ev.Summary != "Team Meeting" {
		t.Errorf("summary = %q, want %q", ev.Summary, "Team Meeting")
	}
}

func TestMockClientListEvents(t *testing.T) {
	m := &MockClient{logger: zap.NewNop()}
	start, end := "2026-09-01T00:00:00Z", "2026-09-02T00:00:00Z"

	events, err := m.ListEvents(context.Background(), start, end)
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}

	wantSummaries := []string{"Mock Meeting with Team", "Demo Call"}
	for i, ev := range events {
		if ev.Summary != wantSummaries[i] {
			t.Errorf("events[%d].Summary = %q, want %q", i, ev.Summary, wantSummaries[i])
		}
		if ev.Start == nil || ev.Start.DateTime != start {
			t.Errorf("events[%d] does not echo range start %q: %+v", i, start, ev.Start)
		}
		if ev.End == nil || ev.End.DateTime != end {
			t.Errorf("events[%d] does not echo range end %q: %+v", i, end, ev.End)
		}
	}
}
