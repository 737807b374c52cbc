// Package config loads application configuration from file and environment
// and initializes the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/walksafe/seedgen/internal/geo"
)

// Config holds the full application configuration.
type Config struct {
	Area     AreaConfig     `yaml:"area" mapstructure:"area"`
	Generate GenerateConfig `yaml:"generate" mapstructure:"generate"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// AreaConfig defines the coverage disk all generated points fall in.
type AreaConfig struct {
	Name      string  `yaml:"name" mapstructure:"name"`
	CenterLat float64 `yaml:"center_lat" mapstructure:"center_lat"`
	CenterLon float64 `yaml:"center_lon" mapstructure:"center_lon"`
	RadiusKm  float64 `yaml:"radius_km" mapstructure:"radius_km"`
}

// GenerateConfig tunes record synthesis.
type GenerateConfig struct {
	JitterSpread      float64 `yaml:"jitter_spread" mapstructure:"jitter_spread"`
	MaxJitterAttempts int     `yaml:"max_jitter_attempts" mapstructure:"max_jitter_attempts"`
	ProfilesPath      string  `yaml:"profiles_path" mapstructure:"profiles_path"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port           int     `yaml:"port" mapstructure:"port"`
	RateLimitRPS   float64 `yaml:"rate_limit_rps" mapstructure:"rate_limit_rps"`
	RateLimitBurst int     `yaml:"rate_limit_burst" mapstructure:"rate_limit_burst"`
	MaxCount       int     `yaml:"max_count" mapstructure:"max_count"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("SEEDGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults: the Delray Beach pilot area the safety model was trained on.
	v.SetDefault("area.name", "delray_beach")
	v.SetDefault("area.center_lat", 26.4615)
	v.SetDefault("area.center_lon", -80.0728)
	v.SetDefault("area.radius_km", 3.0)
	v.SetDefault("generate.jitter_spread", 0.008)
	v.SetDefault("generate.max_jitter_attempts", 10)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.rate_limit_rps", 5)
	v.SetDefault("server.rate_limit_burst", 10)
	v.SetDefault("server.max_count", 100000)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate fails fast on configuration that would produce garbage output.
func (c *Config) Validate() error {
	if _, err := c.CoverageArea(); err != nil {
		return err
	}
	if c.Generate.JitterSpread <= 0 {
		return eris.Errorf("config: jitter spread %v must be positive", c.Generate.JitterSpread)
	}
	if c.Generate.MaxJitterAttempts < 1 {
		return eris.Errorf("config: max jitter attempts %d must be at least 1", c.Generate.MaxJitterAttempts)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return eris.Errorf("config: port %d out of range", c.Server.Port)
	}
	return nil
}

// CoverageArea builds the configured coverage disk.
func (c *Config) CoverageArea() (geo.CoverageArea, error) {
	return geo.NewCoverageArea(c.Area.Name, c.Area.CenterLat, c.Area.CenterLon, c.Area.RadiusKm)
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
