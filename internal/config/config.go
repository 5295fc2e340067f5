package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/ruslamp94/legal-traffic-light/internal/zone"
)

// Config holds everything tunable at runtime: the zone thresholds and
// review deadlines, the analyzer text cap, and the optional history
// database. Values come from defaults, then an optional config file,
// then LTL_* environment variables, in that order.
type Config struct {
	MaxTextLen  int    `mapstructure:"max_text_len"`
	DatabaseURL string `mapstructure:"database_url"`

	Thresholds struct {
		GreenTypicalMax      float64 `mapstructure:"green_typical_max"`
		GreenNonTypicalMax   float64 `mapstructure:"green_non_typical_max"`
		YellowMax            float64 `mapstructure:"yellow_max"`
		TenderRed            float64 `mapstructure:"tender_red"`
		SingleSupplierYellow float64 `mapstructure:"single_supplier_yellow"`
		ControlYears         int     `mapstructure:"control_years"`
	} `mapstructure:"thresholds"`

	Deadlines struct {
		Standard int `mapstructure:"standard"`
		Extended int `mapstructure:"extended"`
		Urgent   int `mapstructure:"urgent"`
	} `mapstructure:"deadlines"`
}

// Load reads the configuration. path names an explicit config file;
// when empty, a config.yaml in the working directory is used if
// present, and a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("LTL")
	// Nested keys map to underscored variables: thresholds.yellow_max
	// becomes LTL_THRESHOLDS_YELLOW_MAX.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	t := zone.DefaultThresholds()
	d := zone.DefaultDeadlines()

	v.SetDefault("max_text_len", 1_000_000)
	v.SetDefault("database_url", "")

	v.SetDefault("thresholds.green_typical_max", t.GreenTypicalMax)
	v.SetDefault("thresholds.green_non_typical_max", t.GreenNonTypicalMax)
	v.SetDefault("thresholds.yellow_max", t.YellowMax)
	v.SetDefault("thresholds.tender_red", t.TenderRed)
	v.SetDefault("thresholds.single_supplier_yellow", t.SingleSupplierYellow)
	v.SetDefault("thresholds.control_years", t.ControlYears)

	v.SetDefault("deadlines.standard", d.Standard)
	v.SetDefault("deadlines.extended", d.Extended)
	v.SetDefault("deadlines.urgent", d.Urgent)
}

// ZoneThresholds converts the configured amounts into the classifier's
// threshold set.
func (c *Config) ZoneThresholds() zone.Thresholds {
	return zone.Thresholds{
		GreenTypicalMax:      c.Thresholds.GreenTypicalMax,
		GreenNonTypicalMax:   c.Thresholds.GreenNonTypicalMax,
		YellowMax:            c.Thresholds.YellowMax,
		TenderRed:            c.Thresholds.TenderRed,
		SingleSupplierYellow: c.Thresholds.SingleSupplierYellow,
		ControlYears:         c.Thresholds.ControlYears,
	}
}

// ZoneDeadlines converts the configured review terms into the
// classifier's deadline set.
func (c *Config) ZoneDeadlines() zone.Deadlines {
	return zone.Deadlines{
		Standard: c.Deadlines.Standard,
		Extended: c.Deadlines.Extended,
		Urgent:   c.Deadlines.Urgent,
	}
}
