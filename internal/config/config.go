// Package config loads rocker settings from defaults, a TOML file, dotenv
// files and ROCKER_ environment variables.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key when read from the environment.
const EnvPrefix = "ROCKER"

// Keys understood by Load.
const (
	KeyHost            = "host"
	KeyCredentialsFile = "credentials_file"
	KeyLogLevel        = "log_level"
	KeyTimeout         = "timeout"
	KeyDockerBinary    = "docker_binary"
	KeyOutput          = "output"
)

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// OutputFormats lists the accepted values of the output key.
var OutputFormats = []string{OutputTable, OutputJSON, OutputYAML}

type Config struct {
	// Host is the default registry URL offered by login.
	Host            string        `mapstructure:"host"`
	CredentialsFile string        `mapstructure:"credentials_file"`
	LogLevel        string        `mapstructure:"log_level"`
	Timeout         time.Duration `mapstructure:"timeout"`
	DockerBinary    string        `mapstructure:"docker_binary"`
	Output          string        `mapstructure:"output"`
}

// LoadOptions points Load at explicit files.
type LoadOptions struct {
	// ConfigFile must exist when set. Otherwise rocker.toml is searched in
	// ~/.rocker and the user config directory, and may be absent.
	ConfigFile string
	// EnvFile is a dotenv file loaded before environment variables are read.
	// Variables already set in the environment win.
	EnvFile string
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyHost, "")
	v.SetDefault(KeyCredentialsFile, "")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyTimeout, time.Duration(0))
	v.SetDefault(KeyDockerBinary, "docker")
	v.SetDefault(KeyOutput, OutputTable)
}

// Load reads the configuration into v and decodes it. Flags bound to v
// before Load take precedence over every other source.
func Load(v *viper.Viper, opts LoadOptions) (*Config, error) {
	if opts.EnvFile != "" {
		path, err := homedir.Expand(opts.EnvFile)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve env file: %w", err)
		}
		if err := godotenv.Load(path); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", path, err)
		}
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, opts.ConfigFile); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the decoded values.
func (c *Config) Validate() error {
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	if !slices.Contains(OutputFormats, c.Output) {
		return fmt.Errorf("output must be one of: %s", strings.Join(OutputFormats, ", "))
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative: %s", c.Timeout)
	}
	if c.DockerBinary == "" {
		return fmt.Errorf("docker_binary cannot be empty")
	}
	return nil
}

func readConfigFile(v *viper.Viper, configFile string) error {
	if configFile != "" {
		path, err := homedir.Expand(configFile)
		if err != nil {
			return fmt.Errorf("failed to resolve config file: %w", err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName("rocker")
	v.SetConfigType("toml")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".rocker"))
		v.AddConfigPath(filepath.Join(home, ".config", "rocker"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}
