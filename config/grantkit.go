package config

import (
	"fmt"
	"time"

	"github.com/skillsenselab/grantkit/claims"
	"github.com/skillsenselab/grantkit/privilege"
)

// Config is the ready-made configuration for a grantkit-backed service.
type Config struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Store         StoreConfig         `yaml:"store" mapstructure:"store"`
	Claims        claims.Config       `yaml:"claims" mapstructure:"claims"`
	Observability ObservabilityConfig `yaml:"observability" mapstructure:"observability"`
}

// ApplyDefaults applies defaults to every section.
func (c *Config) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	c.Claims.ApplyDefaults()
	c.Observability.ApplyDefaults()
}

// Validate validates every section.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Store.Validate(); err != nil {
		return fmt.Errorf("config.store: %w", err)
	}
	// Claims are optional: a service that never issues JWTs needs no secret.
	if c.Claims.Secret != "" {
		if err := c.Claims.Validate(); err != nil {
			return fmt.Errorf("config.claims: %w", err)
		}
	}
	return nil
}

// StoreConfig seeds the in-memory privilege store. Production
// deployments replace the store with their own RecordSource and leave
// this empty.
type StoreConfig struct {
	Seed []SeedRecord `yaml:"seed" mapstructure:"seed"`
}

// Validate validates every seed row.
func (c *StoreConfig) Validate() error {
	for i, row := range c.Seed {
		if err := row.Record().Validate(); err != nil {
			return fmt.Errorf("seed[%d]: %w", i, err)
		}
	}
	return nil
}

// Records converts the seed rows into privilege records.
func (c *StoreConfig) Records() []privilege.Record {
	records := make([]privilege.Record, len(c.Seed))
	for i, row := range c.Seed {
		records[i] = row.Record()
	}
	return records
}

// SeedRecord is one privilege row in YAML form.
type SeedRecord struct {
	PrincipalID string `yaml:"principal_id" mapstructure:"principal_id"`
	Domain      string `yaml:"domain" mapstructure:"domain"`
	Area        string `yaml:"area" mapstructure:"area"`
	Level       string `yaml:"level" mapstructure:"level"`
	Context     string `yaml:"context" mapstructure:"context"`
}

// Record converts the row to a privilege record.
func (r SeedRecord) Record() privilege.Record {
	return privilege.Record{
		PrincipalID: r.PrincipalID,
		Domain:      privilege.Domain(r.Domain),
		Area:        r.Area,
		Level:       privilege.AccessLevel(r.Level),
		Context:     r.Context,
	}
}

// ObservabilityConfig configures OTLP export.
type ObservabilityConfig struct {
	Enabled    bool          `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string        `yaml:"endpoint" mapstructure:"endpoint"`
	Insecure   bool          `yaml:"insecure" mapstructure:"insecure"`
	SampleRate float64       `yaml:"sample_rate" mapstructure:"sample_rate"`
	Interval   time.Duration `yaml:"interval" mapstructure:"interval"`
}

// ApplyDefaults applies development defaults.
func (c *ObservabilityConfig) ApplyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = "localhost:4318"
	}
	if c.SampleRate == 0 {
		c.SampleRate = 1.0
	}
	if c.Interval == 0 {
		c.Interval = 15 * time.Second
	}
}
