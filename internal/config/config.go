package config

import (
	"errors"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const Version = "v1.0.0"

const (
	fileName  = ".projectgen"
	fileType  = "yaml"
	envPrefix = "PROJECTGEN"
)

// Config holds the user settings. The same keys are used in the config file
// and, upper-cased, in PROJECTGEN_* variables.
type Config struct {
	Locale        string `mapstructure:"locale" yaml:"locale"`
	TestOutputDir string `mapstructure:"test_output_dir" yaml:"test_output_dir"`
	Preview       bool   `mapstructure:"preview" yaml:"preview"`
	TUI           bool   `mapstructure:"tui" yaml:"tui"`
}

// Load reads ~/.projectgen.yaml, PROJECTGEN_* environment variables and, when
// flags is not nil, any of its flags named like a config key. Flags win over
// the environment, which wins over the file. A missing file is not an error.
func Load(flags *pflag.FlagSet) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return LoadFrom(home, flags)
}

// LoadFrom is Load with an explicit directory to look for the config file in.
func LoadFrom(dir string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if dir != "" {
		v.AddConfigPath(dir)
	}
	v.SetConfigName(fileName)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("locale", "en")
	v.SetDefault("test_output_dir", "test_output")
	v.SetDefault("preview", false)
	v.SetDefault("tui", false)

	if flags != nil {
		for _, key := range []string{"locale", "preview", "tui"} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
