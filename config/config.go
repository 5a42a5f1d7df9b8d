package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// Default listener settings
	defaultListenAddr = ":8080"

	// Default snapshot settings
	defaultSnapshotMaxCount = 30

	// Default monitoring settings
	defaultMetricsPrefix = "school_activities"
	defaultJobName       = "activities"

	// Default logging settings
	defaultLogLevel  = "info"
	defaultLogFormat = "json"
	defaultLogOutput = "stdout"
)

// Config represents the complete service configuration
type Config struct {
	Listener   ListenerConfig   `yaml:"listener"`
	Seed       SeedConfig       `yaml:"seed"`
	Capacity   CapacityConfig   `yaml:"capacity"`
	Snapshot   SnapshotConfig   `yaml:"snapshot"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ListenerConfig holds HTTP server listener settings
type ListenerConfig struct {
	// Addr is the listen address, defaults to :8080
	Addr string `yaml:"addr"`
	// CertFile and KeyFile enable TLS when both are set.
	// The certificate is reloaded when the files change on disk.
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// SeedConfig locates the static activity catalog loaded at startup
type SeedConfig struct {
	// Path to the YAML file mapping activity names to their records
	Path string `yaml:"path"`
}

// CapacityConfig controls enforcement of per-activity signup limits
type CapacityConfig struct {
	// Enforce rejects signups to activities that have reached
	// max_participants. Off by default.
	Enforce bool `yaml:"enforce"`
}

// SnapshotConfig controls periodic roster snapshots
type SnapshotConfig struct {
	// Dir is the directory snapshot files are written to.
	// Snapshots are disabled when empty.
	Dir string `yaml:"dir"`
	// Schedule is a standard 5-field cron expression
	Schedule string `yaml:"schedule"`
	// MaxCount is the number of snapshot files retained.
	// 0 means the default of 30; -1 retains all snapshots.
	MaxCount int `yaml:"max_count"`
}

// MonitoringConfig holds metrics settings
type MonitoringConfig struct {
	// VictoriaMetricsURL enables remote-write push mode when set.
	// When empty, metrics are exposed for scraping at /metrics.
	VictoriaMetricsURL string `yaml:"victoriametrics_url"`
	MetricsPrefix      string `yaml:"metrics_prefix"`
	JobName            string `yaml:"jobname"`
}

// LoggingConfig defines logging behavior settings
type LoggingConfig struct {
	Level     string `yaml:"level"`
	Format    string `yaml:"format"`
	Output    string `yaml:"output"`
	AddSource bool   `yaml:"add_source"`
}

// Validate performs basic validation on the configuration
func (c *Config) Validate() error {
	if c.Seed.Path == "" {
		return fmt.Errorf("seed path is required")
	}
	if (c.Listener.CertFile == "") != (c.Listener.KeyFile == "") {
		return fmt.Errorf("cert_file and key_file must be set together")
	}
	if c.Snapshot.Schedule != "" && c.Snapshot.Dir == "" {
		return fmt.Errorf("snapshot schedule requires a snapshot dir")
	}
	if c.Snapshot.MaxCount < -1 {
		return fmt.Errorf("snapshot max_count must be -1 (unlimited), 0 (default), or positive")
	}
	return nil
}

// SetDefaults sets reasonable default values for optional fields
func (c *Config) SetDefaults() {
	if c.Listener.Addr == "" {
		c.Listener.Addr = defaultListenAddr
	}
	if c.Snapshot.MaxCount == 0 {
		c.Snapshot.MaxCount = defaultSnapshotMaxCount
	}
	if c.Monitoring.MetricsPrefix == "" {
		c.Monitoring.MetricsPrefix = defaultMetricsPrefix
	}
	if c.Monitoring.JobName == "" {
		c.Monitoring.JobName = defaultJobName
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if c.Logging.Output == "" {
		c.Logging.Output = defaultLogOutput
	}
}

// LoadConfig reads the YAML config file at the given path and returns a Config struct
func LoadConfig(path string) (Config, error) {
	var cfg Config
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
