package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/xxxsen/common/logger"
)

type Config struct {
	Mode          string           `json:"mode"`
	Port          int              `json:"port"`
	MongoURI      string           `json:"mongo_uri"`
	MongoDatabase string           `json:"mongo_database"`
	JWTSecret     string           `json:"jwt_secret"`
	JWTTTLHours   int              `json:"jwt_ttl_hours"`
	CORSAllowlist []string         `json:"cors_allowlist"`
	LogConfig     logger.LogConfig `json:"log_config"`
	Mail          MailConfig       `json:"mail"`
}

type MailConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	From     string `json:"from"`
}

// envOverrides are the recognized environment options; anything set here
// wins over the config file.
type envOverrides struct {
	MongoURI     string `env:"MONGODB_URI"`
	MongoURIAlt  string `env:"MONGO_URI"`
	JWTSecret    string `env:"JWT_SECRET"`
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM"`
}

// Load reads the JSON config at path (path may be empty to run on
// environment and defaults alone) and applies env overrides and defaults.
// It does not demand a JWT secret; commands that serve requests check
// that themselves.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()
		if err := json.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("decode config: %w", err)
		}
	}

	overrides, err := env.ParseAs[envOverrides]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if overrides.MongoURI != "" {
		cfg.MongoURI = overrides.MongoURI
	} else if cfg.MongoURI == "" && overrides.MongoURIAlt != "" {
		cfg.MongoURI = overrides.MongoURIAlt
	}
	if overrides.JWTSecret != "" {
		cfg.JWTSecret = overrides.JWTSecret
	}
	if overrides.SMTPHost != "" {
		cfg.Mail.Host = overrides.SMTPHost
	}
	if overrides.SMTPPort != 0 {
		cfg.Mail.Port = overrides.SMTPPort
	}
	if overrides.SMTPUsername != "" {
		cfg.Mail.Username = overrides.SMTPUsername
	}
	if overrides.SMTPPassword != "" {
		cfg.Mail.Password = overrides.SMTPPassword
	}
	if overrides.SMTPFrom != "" {
		cfg.Mail.From = overrides.SMTPFrom
	}

	if cfg.Mode == "" {
		cfg.Mode = "release"
	}
	if cfg.Mode != "release" && cfg.Mode != "debug" {
		return nil, fmt.Errorf("mode must be release or debug")
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = "printbooth"
	}
	if cfg.JWTTTLHours == 0 {
		cfg.JWTTTLHours = 72
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	return &cfg, nil
}
