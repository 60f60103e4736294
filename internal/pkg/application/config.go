package application

import (
	"fmt"
	"io"
	"time"

	yaml "gopkg.in/yaml.v2"
)

type Mode string

const (
	// ModePrimary is the decision making mode. Triggers are accepted and the
	// audit log is cleaned.
	ModePrimary Mode = "primary"
	// ModeSecondary serves the user and admin api only.
	ModeSecondary Mode = "secondary"
)

const (
	DefaultKeepLog       = 86400
	DefaultCleanInterval = 60
	DefaultEmailField    = "email"
	DefaultCallback      = "@x_alarmer_notify"
	DefaultLogLimit      = 100
)

type SubscriberConfig struct {
	Endpoint string `yaml:"endpoint"`
}

type Notification struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Type        string             `yaml:"type"`
	Subscribers []SubscriberConfig `yaml:"subscribers"`
}

type EventsConfig struct {
	Notifications []Notification `yaml:"notifications"`
}

type ControllerConfig struct {
	URL          string `yaml:"url"`
	Target       string `yaml:"target"`
	TokenURL     string `yaml:"tokenURL"`
	ClientID     string `yaml:"clientID"`
	ClientSecret string `yaml:"clientSecret"`
	APIKey       string `yaml:"apiKey"`
	Callback     string `yaml:"callback"`
	Timeout      int    `yaml:"timeout"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

type MailConfig struct {
	Provider     string     `yaml:"provider"`
	Fallback     []string   `yaml:"fallback"`
	From         string     `yaml:"from"`
	SMTP         SMTPConfig `yaml:"smtp"`
	SESRegion    string     `yaml:"sesRegion"`
	ResendAPIKey string     `yaml:"resendAPIKey"`
}

type AMQPConfig struct {
	URL   string `yaml:"url"`
	Queue string `yaml:"queue"`
}

type RedisConfig struct {
	Addr string `yaml:"addr"`
	TTL  int    `yaml:"ttl"`
}

// Config is built once at startup and handed to every component constructor.
// Nothing mutates it after Validate has returned.
type Config struct {
	Mode               Mode             `yaml:"mode"`
	SystemName         string           `yaml:"systemName"`
	KeepLog            int              `yaml:"keepLog"`
	CleanInterval      int              `yaml:"cleanInterval"`
	UserInfoEmailField string           `yaml:"userInfoEmailField"`
	Controller         ControllerConfig `yaml:"controller"`
	Mail               MailConfig       `yaml:"mail"`
	Events             EventsConfig     `yaml:"events"`
	AMQP               AMQPConfig       `yaml:"amqp"`
	Redis              RedisConfig      `yaml:"redis"`
}

func DefaultConfig() Config {
	return Config{
		Mode:               ModePrimary,
		SystemName:         "alarmer",
		KeepLog:            DefaultKeepLog,
		CleanInterval:      DefaultCleanInterval,
		UserInfoEmailField: DefaultEmailField,
		Controller: ControllerConfig{
			Callback: DefaultCallback,
			Timeout:  10,
		},
		Mail: MailConfig{
			Provider: "smtp",
			From:     "alarmer@localhost",
			SMTP: SMTPConfig{
				Host: "localhost",
				Port: "25",
			},
		},
		AMQP: AMQPConfig{
			Queue: "alarmer.trigger",
		},
		Redis: RedisConfig{
			TTL: 300,
		},
	}
}

// LoadConfiguration reads a yaml document on top of the defaults
func LoadConfiguration(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Mode == "" {
		c.Mode = ModePrimary
	}
	if c.Mode != ModePrimary && c.Mode != ModeSecondary {
		return fmt.Errorf("%w: unsupported mode %q", ErrInvalidArgument, c.Mode)
	}
	if c.KeepLog <= 0 {
		c.KeepLog = DefaultKeepLog
	}
	if c.CleanInterval <= 0 {
		c.CleanInterval = DefaultCleanInterval
	}
	if c.UserInfoEmailField == "" {
		c.UserInfoEmailField = DefaultEmailField
	}
	if c.Controller.Callback == "" {
		c.Controller.Callback = DefaultCallback
	}
	return nil
}

func (c Config) Primary() bool {
	return c.Mode == ModePrimary
}

func (c Config) Retention() time.Duration {
	return time.Duration(c.KeepLog) * time.Second
}

func (c Config) CleanerInterval() time.Duration {
	return time.Duration(c.CleanInterval) * time.Second
}
