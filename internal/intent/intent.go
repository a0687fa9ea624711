package intent

import (
	"encoding/json"
	"regexp"
)

// Actions the agent knows how to perform. Any other value (including the zero
// string) is unrecognized and answered with the greeting.
const (
	ActionCreate = "create"
	ActionGet    = "get"
)

// Intent is the structured result of interpreting a user message. Dates are
// ISO-8601 strings as requested from the model.
type Intent struct {
	Action           string `json:"action"`
	EventTitle       string `json:"event_title"`
	EventDescription string `json:"event_description"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
}

var jsonObject = regexp.MustCompile(`(?s)\{.*\}`)

// Decode parses model output into an Intent. It tries the whole text first,
// then the first brace-delimited substring. Output that still fails to parse
// yields a zero Intent, never an error.
func Decode(text string) Intent {
	var in Intent
	if err := json.Unmarshal([]byte(text), &in); err == nil {
		return in
	}
	if m := jsonObject.FindString(text); m != "" {
		var fallback Intent
		if err := json.Unmarshal([]byte(m), &fallback); err == nil {
			return fallback
		}
	}
	return Intent{}
}
