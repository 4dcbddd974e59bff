// Package config loads the reporter configuration from the environment.
package config

import (
	"errors"
	"os"
)

const (
	DefaultAsanaBaseUrl  = "https://app.asana.com/api/1.0"
	DefaultSlackPostUrl  = "https://slack.com/api/chat.postMessage"
	DefaultTeamName      = "Engagement"
	DefaultPriorityField = "Priority"
	DefaultDBPath        = "./reporter.db"
)

// Config is populated once at startup. AsanaToken and SectionId are required
// before any network call; the Slack fields are required only by the publish
// step and are checked there.
type Config struct {
	AsanaBaseUrl  string // ASANA_BASE_URL, defaults to the production API
	AsanaToken    string // ASANA_ACCESS_TOKEN, required
	SectionId     string // ASANA_SECTION_ID, required
	TeamName      string // ASANA_TEAM_NAME, defaults to "Engagement"
	PriorityField string // ASANA_PRIORITY_FIELD, defaults to "Priority"

	SlackChannelId string // SLACK_CHANNEL_ID
	SlackToken     string // SLACK_BOT_TOKEN
	SlackPostUrl   string // SLACK_API_URL, defaults to chat.postMessage

	// DBPath is where run history is kept. REPORTER_DB_PATH; set it to an
	// empty string to disable history.
	DBPath string
}

func Load() (*Config, error) {
	cfg := &Config{
		AsanaBaseUrl:   getenv("ASANA_BASE_URL", DefaultAsanaBaseUrl),
		AsanaToken:     os.Getenv("ASANA_ACCESS_TOKEN"),
		SectionId:      os.Getenv("ASANA_SECTION_ID"),
		TeamName:       getenv("ASANA_TEAM_NAME", DefaultTeamName),
		PriorityField:  getenv("ASANA_PRIORITY_FIELD", DefaultPriorityField),
		SlackChannelId: os.Getenv("SLACK_CHANNEL_ID"),
		SlackToken:     os.Getenv("SLACK_BOT_TOKEN"),
		SlackPostUrl:   getenv("SLACK_API_URL", DefaultSlackPostUrl),
		DBPath:         getenv("REPORTER_DB_PATH", DefaultDBPath),
	}

	if cfg.AsanaToken == "" {
		return nil, errors.New("ASANA_ACCESS_TOKEN is required in environment variables")
	}
	if cfg.SectionId == "" {
		return nil, errors.New("ASANA_SECTION_ID is required in environment variables")
	}

	return cfg, nil
}

// SlackConfigured reports whether the publish step has what it needs.
func (c *Config) SlackConfigured() bool {
	return c.SlackToken != "" && c.SlackChannelId != ""
}

// getenv returns the variable's value, or fallback when it is unset. An
// explicitly empty value is kept, which is how REPORTER_DB_PATH opts out.
func getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
