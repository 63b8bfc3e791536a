package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"news_curator/internal/domain"
)

const apiKeyEnv = "GEMINI_API_KEY"

type Config struct {
	Database DatabaseConfig      `yaml:"database"`
	Feeds    []domain.FeedSource `yaml:"feeds"`
	Fetch    FetchConfig         `yaml:"fetch"`
	AI       AIConfig            `yaml:"ai"`
	Ranking  RankingConfig       `yaml:"ranking"`
	Persona  PersonaConfig       `yaml:"persona"`
	State    StateConfig         `yaml:"state"`
	RabbitMQ RabbitMQConfig      `yaml:"rabbitmq"`
	Server   ServerConfig        `yaml:"server"`
	Refresh  RefreshConfig       `yaml:"refresh"`
	Tagging  TaggingConfig       `yaml:"tagging"`
	LogLevel string              `yaml:"log_level"`
}

type DatabaseConfig struct {
	Driver   string `yaml:"driver"` // postgres or sqlite
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
	Path     string `yaml:"path"` // sqlite file
}

// DSN returns the connection string for the configured driver.
func (d DatabaseConfig) DSN() string {
	if d.Driver == "sqlite" {
		return d.Path
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type FetchConfig struct {
	Timeout      time.Duration `yaml:"timeout"`
	Retry        RetryConfig   `yaml:"retry"`
	HostInterval time.Duration `yaml:"host_interval"`
	MaxBodyBytes int64         `yaml:"max_body_bytes"`
}

type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

// AIConfig configures the Gemini client. An empty APIKey disables every
// AI call.
type AIConfig struct {
	APIKey  string        `yaml:"api_key"`
	Model   string        `yaml:"model"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

func (a AIConfig) Enabled() bool {
	return a.APIKey != ""
}

type RankingConfig struct {
	RuleTier int  `yaml:"rule_tier"`
	AITier   int  `yaml:"ai_tier"`
	AIWindow int  `yaml:"ai_window"`
	MinScore *int `yaml:"min_score"`
}

type PersonaConfig struct {
	Every   int `yaml:"every"`
	History int `yaml:"history"`
}

type StateConfig struct {
	Dir string `yaml:"dir"`
}

// RabbitMQConfig is optional; events are published only when URL is set.
type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

func (r RabbitMQConfig) Enabled() bool {
	return r.URL != ""
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type RefreshConfig struct {
	Interval time.Duration `yaml:"interval"`
	Timeout  time.Duration `yaml:"timeout"`
}

type TaggingConfig struct {
	Rules []TagRule `yaml:"rules"`
}

// TagRule adds a category matched by whole-word keywords.
type TagRule struct {
	Category domain.Category `yaml:"category"`
	Keywords []string        `yaml:"keywords"`
}

// Load reads the YAML file at path with ${VAR} expansion. An empty path
// yields the defaults. A .env file in the working directory is loaded first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		expanded := os.ExpandEnv(string(data))

		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.Driver == "postgres" {
		if c.Database.Host == "" {
			c.Database.Host = "localhost"
		}
		if c.Database.Port == 0 {
			c.Database.Port = 5432
		}
		if c.Database.SSLMode == "" {
			c.Database.SSLMode = "disable"
		}
	}
	if c.State.Dir == "" {
		c.State.Dir = "data"
	}
	if c.Database.Path == "" {
		c.Database.Path = c.State.Dir + "/articles.db"
	}
	if len(c.Feeds) == 0 {
		c.Feeds = DefaultFeeds()
	}
	for i := range c.Feeds {
		c.Feeds[i].Category = domain.ParseCategory(string(c.Feeds[i].Category))
		if c.Feeds[i].Category == "" {
			c.Feeds[i].Category = domain.CategoryGeneral
		}
	}
	if c.Fetch.Timeout == 0 {
		c.Fetch.Timeout = 15 * time.Second
	}
	if c.Fetch.Retry.MaxAttempts == 0 {
		c.Fetch.Retry.MaxAttempts = 3
	}
	if c.Fetch.Retry.InitialBackoff == 0 {
		c.Fetch.Retry.InitialBackoff = 1 * time.Second
	}
	if c.Fetch.Retry.MaxBackoff == 0 {
		c.Fetch.Retry.MaxBackoff = 10 * time.Second
	}
	if c.Fetch.HostInterval == 0 {
		c.Fetch.HostInterval = 500 * time.Millisecond
	}
	if c.Fetch.MaxBodyBytes == 0 {
		c.Fetch.MaxBodyBytes = 10 << 20
	}
	if c.AI.APIKey == "" {
		c.AI.APIKey = os.Getenv(apiKeyEnv)
	}
	if c.AI.Model == "" {
		c.AI.Model = "gemini-2.0-flash"
	}
	if c.AI.Timeout == 0 {
		c.AI.Timeout = 20 * time.Second
	}
	if c.Ranking.RuleTier == 0 {
		c.Ranking.RuleTier = 3
	}
	if c.Ranking.AITier == 0 {
		c.Ranking.AITier = 4
	}
	if c.Ranking.AIWindow == 0 {
		c.Ranking.AIWindow = 20
	}
	if c.Ranking.MinScore == nil {
		minScore := -10
		c.Ranking.MinScore = &minScore
	}
	if c.Persona.Every == 0 {
		c.Persona.Every = 3
	}
	if c.Persona.History == 0 {
		c.Persona.History = 20
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "news_curator"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "events"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "curator_events"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Refresh.Interval == 0 {
		c.Refresh.Interval = 30 * time.Minute
	}
	if c.Refresh.Timeout == 0 {
		c.Refresh.Timeout = 5 * time.Minute
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("database.driver must be postgres or sqlite, got %q", c.Database.Driver)
	}
	for i, f := range c.Feeds {
		if strings.TrimSpace(f.URL) == "" {
			return fmt.Errorf("feeds[%d]: url is required", i)
		}
	}
	for i, r := range c.Tagging.Rules {
		if r.Category == "" || len(r.Keywords) == 0 {
			return fmt.Errorf("tagging.rules[%d]: category and keywords are required", i)
		}
	}
	return nil
}
