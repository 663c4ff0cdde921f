package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Settings is the file/environment-backed run configuration. Command flags
// override these values; resolution order is flag > SSA_* env > .ssa.yaml >
// default.
type Settings struct {
	Format     string        `mapstructure:"format"`
	TopN       int           `mapstructure:"top_n"`
	Predicate  string        `mapstructure:"predicate"`
	NoColor    bool          `mapstructure:"no_color"`
	Timeout    time.Duration `mapstructure:"timeout"`
	AnalyzeBin string        `mapstructure:"analyze_bin"`
	FailOn     string        `mapstructure:"fail_on"`
	Verbose    bool          `mapstructure:"verbose"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("format", "text")
	// zero means no cap; ranking only happens on an explicit top-n request
	v.SetDefault("top_n", 0)
	v.SetDefault("predicate", "")
	v.SetDefault("no_color", false)
	v.SetDefault("timeout", "30s")
	v.SetDefault("analyze_bin", "systemd-analyze")
	v.SetDefault("fail_on", "")
	v.SetDefault("verbose", false)
}

// Load resolves settings from defaults, an optional .ssa.yaml and SSA_*
// environment variables. A non-empty path pins the config file and must be
// readable; otherwise the working directory and $HOME are searched and a
// missing file is not an error.
func Load(path string) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".ssa")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix("SSA")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return settings, nil
}
