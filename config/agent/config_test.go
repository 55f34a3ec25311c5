package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("AIRTABLE_API_KEY", "key")
	t.Setenv("AIRTABLE_BASE_ID", "base")
	t.Setenv("AIRTABLE_TABLE", "Backlog")
	t.Setenv("MY_NAME", "Dana")
	t.Setenv("MY_EMAIL", "dana@example.com")

	cfg := MustLoad()

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, "Backlog", cfg.Airtable.Table)
	assert.Equal(t, "Dana", cfg.Operator.Name)
	assert.Equal(t, "dana@example.com", cfg.Operator.Email)
}

func TestOfflineGatedByModelCredentialOnly(t *testing.T) {
	// Every other credential present: the missing model key alone forces
	// offline, and offline disables every live collaborator.
	cfg := &Config{
		Fireflies: FirefliesConfig{APIKey: "ff"},
		Airtable:  AirtableConfig{APIKey: "at", BaseID: "base", Table: "Tasks"},
		Gmail:     GmailConfig{OAuthBearer: "bearer"},
		Calendar:  CalendarConfig{APIToken: "tok", CalendarID: "primary"},
	}

	require.True(t, cfg.Offline())
	assert.False(t, cfg.OpenAILive())
	assert.False(t, cfg.FirefliesLive())
	assert.False(t, cfg.AirtableLive())
	assert.False(t, cfg.GmailLive())
	assert.False(t, cfg.CalendarLive())
}

func TestPerCollaboratorCapabilities(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want map[string]bool
	}{
		{
			name: "model key only",
			cfg:  Config{OpenAI: OpenAIConfig{APIKey: "sk"}},
			want: map[string]bool{"fireflies": false, "airtable": false, "gmail": false, "calendar": false},
		},
		{
			name: "model plus fireflies",
			cfg: Config{
				OpenAI:    OpenAIConfig{APIKey: "sk"},
				Fireflies: FirefliesConfig{APIKey: "ff"},
			},
			want: map[string]bool{"fireflies": true, "airtable": false, "gmail": false, "calendar": false},
		},
		{
			name: "airtable needs base id",
			cfg: Config{
				OpenAI:   OpenAIConfig{APIKey: "sk"},
				Airtable: AirtableConfig{APIKey: "at", Table: "Tasks"},
			},
			want: map[string]bool{"fireflies": false, "airtable": false, "gmail": false, "calendar": false},
		},
		{
			name: "calendar needs token and id",
			cfg: Config{
				OpenAI:   OpenAIConfig{APIKey: "sk"},
				Calendar: CalendarConfig{APIToken: "tok", CalendarID: "primary"},
			},
			want: map[string]bool{"fireflies": false, "airtable": false, "gmail": false, "calendar": true},
		},
		{
			name: "everything live",
			cfg: Config{
				OpenAI:    OpenAIConfig{APIKey: "sk"},
				Fireflies: FirefliesConfig{APIKey: "ff"},
				Airtable:  AirtableConfig{APIKey: "at", BaseID: "base", Table: "Tasks"},
				Gmail:     GmailConfig{OAuthBearer: "bearer"},
				Calendar:  CalendarConfig{APIToken: "tok", CalendarID: "primary"},
			},
			want: map[string]bool{"fireflies": true, "airtable": true, "gmail": true, "calendar": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.False(t, tt.cfg.Offline())
			assert.Equal(t, tt.want["fireflies"], tt.cfg.FirefliesLive(), "fireflies")
			assert.Equal(t, tt.want["airtable"], tt.cfg.AirtableLive(), "airtable")
			assert.Equal(t, tt.want["gmail"], tt.cfg.GmailLive(), "gmail")
			assert.Equal(t, tt.want["calendar"], tt.cfg.CalendarLive(), "calendar")
		})
	}
}
