// Package config loads the importer configuration file (config.json).
package config

import (
	"fmt"

	"github.com/Programie/LoxoneStats2InfluxDB/internal/influx"
	"github.com/Programie/LoxoneStats2InfluxDB/internal/stats"
	"github.com/Programie/LoxoneStats2InfluxDB/pkg/miniserver"

	"github.com/spf13/viper"
)

type Config struct {
	Miniserver miniserver.Config             `mapstructure:"miniserver"`
	InfluxDB   influx.Config                 `mapstructure:"influxdb"`
	StatsMap   map[string]stats.MappingEntry `mapstructure:"stats_map"`
}

// Load reads and validates the configuration file. Any missing required
// field is reported before any network activity happens.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	if err := cfg.validate(v); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate(v *viper.Viper) error {
	if !v.IsSet("miniserver") {
		return fmt.Errorf("miniserver not configured")
	}
	if !v.IsSet("influxdb") {
		return fmt.Errorf("influxdb not configured")
	}
	if !v.IsSet("stats_map") {
		return fmt.Errorf("stats map not configured")
	}

	if c.Miniserver.Host == "" {
		return fmt.Errorf("miniserver.host is required")
	}
	if c.Miniserver.Username == "" {
		return fmt.Errorf("miniserver.username is required")
	}
	if c.Miniserver.Password == "" {
		return fmt.Errorf("miniserver.password is required")
	}

	if c.InfluxDB.Host == "" {
		return fmt.Errorf("influxdb.host is required")
	}
	if c.InfluxDB.Port == 0 {
		return fmt.Errorf("influxdb.port is required")
	}
	if c.InfluxDB.Username == "" {
		return fmt.Errorf("influxdb.username is required")
	}
	if c.InfluxDB.Password == "" {
		return fmt.Errorf("influxdb.password is required")
	}
	if c.InfluxDB.Database == "" {
		return fmt.Errorf("influxdb.database is required")
	}

	for id, entry := range c.StatsMap {
		if entry.Measurement == "" {
			return fmt.Errorf("stats_map.%s.measurement is required", id)
		}
	}

	return nil
}
