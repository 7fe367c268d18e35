package main

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/typewriter"
)

// Config is read from the environment (and .env via godotenv).
type Config struct {
	Port             string        `env:"PORT" envDefault:"8080"`
	DatabasePath     string        `env:"DATABASE_PATH" envDefault:"folio.db"`
	ContentPath      string        `env:"CONTENT_PATH"`
	AdminUsername    string        `env:"ADMIN_USERNAME"`
	AdminPassword    string        `env:"ADMIN_PASSWORD"`
	VisitorRetention time.Duration `env:"VISITOR_RETENTION" envDefault:"8760h"`
	BusinessTimezone string        `env:"BUSINESS_TIMEZONE" envDefault:"Europe/Prague"`

	// ContactEmail receives contact form mail. Empty means the
	// portfolio owner's address.
	ContactEmail string `env:"TO_EMAIL"`

	SMTP       SMTPConfig       `envPrefix:"SMTP_"`
	Typewriter TypewriterConfig `envPrefix:"TYPEWRITER_"`
}

type SMTPConfig struct {
	Host string `env:"HOST" envDefault:"smtp.gmail.com"`
	Port string `env:"PORT" envDefault:"587"`
	User string `env:"USER"`
	Pass string `env:"PASS"`
}

// TypewriterConfig holds the hero banner's speeds.
type TypewriterConfig struct {
	Loop        bool          `env:"LOOP" envDefault:"true"`
	TypeSpeed   time.Duration `env:"TYPE_SPEED" envDefault:"80ms"`
	DeleteSpeed time.Duration `env:"DELETE_SPEED" envDefault:"50ms"`
	DelaySpeed  time.Duration `env:"DELAY_SPEED" envDefault:"2s"`
}

func (c TypewriterConfig) engineConfig(words []string) typewriter.Config {
	return typewriter.Config{
		Words:       words,
		Loop:        c.Loop,
		TypeSpeed:   c.TypeSpeed,
		DeleteSpeed: c.DeleteSpeed,
		DelaySpeed:  c.DelaySpeed,
	}
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	// Default credentials for development (set them in production)
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = "admin"
		if gin.Mode() == gin.DebugMode {
			log.Println("WARNING: Using default admin username. Set ADMIN_USERNAME environment variable.")
		}
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin123"
		if gin.Mode() == gin.DebugMode {
			log.Println("WARNING: Using default admin password. Set ADMIN_PASSWORD environment variable.")
		}
	}
	return cfg, nil
}

func (c Config) location() *time.Location {
	loc, err := time.LoadLocation(c.BusinessTimezone)
	if err != nil {
		log.Printf("Unknown BUSINESS_TIMEZONE %q, using UTC: %v", c.BusinessTimezone, err)
		return time.UTC
	}
	return loc
}
