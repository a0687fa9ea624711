// Package reply renders calendar results as the assistant's text answers.
// Every function here is a pure mapping; the strings are the program's
// output contract.
package reply

import (
	"fmt"
	"strings"

	gcal "google.golang.org/api/calendar/v3"
)

const (
	// NoEvents is returned verbatim for an empty listing.
	NoEvents = "No events found in that range."

	// Greeting answers anything the interpreter could not map to an action.
	Greeting = "Hello! I can help you manage your Google Calendar — ask me to create or check events."

	eventsHeader = "📅 Here are your events:"
)

// Created formats the confirmation for a newly created event. The link line
// is omitted when the provider returned none.
func Created(title string, ev *gcal.Event) string {
	msg := fmt.Sprintf("✅ Event '%s' created successfully!", title)
	if ev != nil && ev.HtmlLink != "" {
		msg += "\n" + ev.HtmlLink
	}
	return msg
}

// Events formats a listing, one bullet per event in input order. rangeStart
// fills in for events that carry no start time of their own.
func Events(events []*gcal.Event, rangeStart string) string {
	if len(events) == 0 {
		return NoEvents
	}

	var b strings.Builder
	b.WriteString(eventsHeader + "\n")
	for _, ev := range events {
		summary := ev.Summary
		if summary == "" {
			summary = "Untitled"
		}
		start := rangeStart
		if ev.Start != nil && ev.Start.DateTime != "" {
			start = ev.Start.DateTime
		}
		fmt.Fprintf(&b, "- %s (%s)\n", summary, start)
	}
	return b.String()
}
