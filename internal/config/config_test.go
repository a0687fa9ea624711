package config

import "testing"

func TestLoadMockDerivation(t *testing.T) {
	tests := []struct {
		name     string
		openai   string
		google   string
		calendar string
		wantMock bool
	}{
		{"all credentials present", "sk-test", "ya29.token", "primary", false},
		{"missing openai key", "", "ya29.token", "primary", true},
		{"missing google token", "sk-test", "", "primary", true},
		{"missing calendar id", "sk-test", "ya29.token", "", true},
		{"nothing configured", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("OPENAI_API_KEY", tt.openai)
			t.Setenv("GOOGLE_API_TOKEN", tt.google)
			t.Setenv("CALENDAR_ID", tt.calendar)

			cfg := Load()
			if cfg.Mock != tt.wantMock {
				t.Errorf("Load(): Mock = %v, want %v", cfg.Mock, tt.wantMock)
			}
		})
	}
}

func TestLoadTimezone(t *testing.T) {
	t.Setenv("TIMEZONE", "")
	if got := Load().Timezone; got != "Europe/Paris" {
		t.Errorf("default timezone = %q, want %q", got, "Europe/Paris")
	}

	t.Setenv("TIMEZONE", "America/New_York")
	if got := Load().Timezone; got != "America/New_York" {
		t.Errorf("timezone = %q, want %q", got, "America/New_York")
	}
}
