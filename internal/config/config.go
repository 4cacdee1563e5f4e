// Package config provides configuration management for the draft toolbox.
package config

import (
	"fmt"

	"github.com/yourusername/ff-toolbox/internal/models"
)

// Config represents the complete application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	Rankings RankingsConfig `mapstructure:"rankings" validate:"required"`
	League   LeagueConfig   `mapstructure:"league" validate:"required"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Feed     FeedConfig     `mapstructure:"feed"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// DatabaseConfig represents database connection configuration
type DatabaseConfig struct {
	Host               string `mapstructure:"host"`
	Port               int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Name               string `mapstructure:"name"`
	User               string `mapstructure:"user"`
	Password           string `mapstructure:"password"`
	SSLMode            string `mapstructure:"ssl_mode" validate:"omitempty,oneof=disable require verify-full"`
	MaxConnections     int    `mapstructure:"max_connections"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections"`
}

// RankingsConfig represents rankings ingestion configuration
type RankingsConfig struct {
	Distribution    string                 `mapstructure:"distribution" validate:"required,distribution"`
	Sources         []RankingsSourceConfig `mapstructure:"sources" validate:"required,min=1,dive"`
	RefreshSchedule string                 `mapstructure:"refresh_schedule"`
	CacheTTLSeconds int                    `mapstructure:"cache_ttl_seconds" validate:"gte=0"`
}

// RankingsSourceConfig represents a single rankings source
type RankingsSourceConfig struct {
	Name           string   `mapstructure:"name" validate:"required"`
	BaseURL        string   `mapstructure:"base_url" validate:"omitempty,url"`
	APIKey         string   `mapstructure:"api_key"`
	Positions      []string `mapstructure:"positions" validate:"required,min=1,dive,position"`
	Season         int      `mapstructure:"season" validate:"required,gt=0"`
	RateLimit      float64  `mapstructure:"rate_limit" validate:"gte=0"`
	TimeoutSeconds int      `mapstructure:"timeout_seconds" validate:"gte=0"`
}

// LeagueConfig represents league setup configuration
type LeagueConfig struct {
	Teams        int                    `mapstructure:"teams" validate:"required,gt=1"`
	Rounds       int                    `mapstructure:"rounds" validate:"required,gt=0"`
	RosterLimits map[string]int         `mapstructure:"roster_limits" validate:"required,min=1"`
	Scoring      models.ScoringSettings `mapstructure:"scoring"`
}

// MetricsConfig represents metrics exposure configuration
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
}

// FeedConfig represents the live draft feed configuration
type FeedConfig struct {
	URL              string `mapstructure:"url" validate:"omitempty,url"`
	ReconnectSeconds int    `mapstructure:"reconnect_seconds" validate:"gte=0"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetDatabaseDSN returns a PostgreSQL DSN string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// RosterSpotLimits converts the configured roster limits into model roster spots
func (c *LeagueConfig) RosterSpotLimits() map[models.RosterSpot]int {
	limits := make(map[models.RosterSpot]int, len(c.RosterLimits))
	for spot, limit := range c.RosterLimits {
		limits[models.RosterSpot(spot)] = limit
	}
	return limits
}
