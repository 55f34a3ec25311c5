package config

import "github.com/ilyakaznacheev/cleanenv"

type Config struct {
	Port int `env:"PORT" env-default:"8080"`

	Fireflies FirefliesConfig
	OpenAI    OpenAIConfig
	Airtable  AirtableConfig
	Gmail     GmailConfig
	Calendar  CalendarConfig
	Operator  OperatorConfig
}

type FirefliesConfig struct {
	APIKey string `env:"FIREFLIES_API_KEY"`
}

type OpenAIConfig struct {
	APIKey string `env:"OPENAI_API_KEY"`
	Model  string `env:"OPENAI_MODEL" env-default:"gpt-4o-mini"`
}

type AirtableConfig struct {
	APIKey string `env:"AIRTABLE_API_KEY"`
	BaseID string `env:"AIRTABLE_BASE_ID"`
	Table  string `env:"AIRTABLE_TABLE" env-default:"Tasks"`
}

type GmailConfig struct {
	OAuthBearer string `env:"GMAIL_OAUTH_BEARER"`
}

type CalendarConfig struct {
	APIToken   string `env:"GOOGLE_API_TOKEN"`
	CalendarID string `env:"GOOGLE_CALENDAR_ID"`
}

// OperatorConfig identifies the agent's own user, used to distinguish the
// operator's tasks from other participants'.
type OperatorConfig struct {
	Name  string `env:"MY_NAME"`
	Email string `env:"MY_EMAIL"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("failed to read environment variables: " + err.Error())
	}
	return &cfg
}

// Offline reports whether the agent runs entirely on synthetic fixtures.
// The language-model credential alone gates the global mode; the remaining
// collaborators additionally check their own credentials below.
func (c *Config) Offline() bool {
	return c.OpenAI.APIKey == ""
}

func (c *Config) OpenAILive() bool {
	return !c.Offline()
}

func (c *Config) FirefliesLive() bool {
	return !c.Offline() && c.Fireflies.APIKey != ""
}

func (c *Config) AirtableLive() bool {
	return !c.Offline() && c.Airtable.APIKey != "" && c.Airtable.BaseID != "" && c.Airtable.Table != ""
}

func (c *Config) GmailLive() bool {
	return !c.Offline() && c.Gmail.OAuthBearer != ""
}

func (c *Config) CalendarLive() bool {
	return !c.Offline() && c.Calendar.APIToken != "" && c.Calendar.CalendarID != ""
}
