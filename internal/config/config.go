// Package config provides configuration management for iconaudit using Viper.
package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/engine"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/errors"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/fix"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/paths"
	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/rules"
)

// EnvPrefix prefixes environment overrides, e.g. ICONAUDIT_FIX_ENABLED.
const EnvPrefix = "ICONAUDIT"

// Config represents the top-level configuration structure.
type Config struct {
	AllowedFiles     []string    `mapstructure:"allowed_files" yaml:"allowed_files"`
	AllowedPages     []string    `mapstructure:"allowed_pages" yaml:"allowed_pages"`
	SkipContextCheck bool        `mapstructure:"skip_context_check" yaml:"skip_context_check"`
	Colors           ColorConfig `mapstructure:"colors" yaml:"colors"`
	Fix              FixConfig   `mapstructure:"fix" yaml:"fix"`
	Rules            RulesConfig `mapstructure:"rules" yaml:"rules"`
}

// ColorConfig lists the disallowed colors that auto-fix maps to black or white.
type ColorConfig struct {
	MapToBlack []string `mapstructure:"map_to_black" yaml:"map_to_black"`
	MapToWhite []string `mapstructure:"map_to_white" yaml:"map_to_white"`
}

// FixConfig controls auto-remediation.
type FixConfig struct {
	Enabled               bool    `mapstructure:"enabled" yaml:"enabled"`
	LayerName             string  `mapstructure:"layer_name" yaml:"layer_name"`
	Width                 float64 `mapstructure:"width" yaml:"width"`
	Height                float64 `mapstructure:"height" yaml:"height"`
	OptimisticLayerCredit bool    `mapstructure:"optimistic_layer_credit" yaml:"optimistic_layer_credit"`
	MaxDepth              int     `mapstructure:"max_depth" yaml:"max_depth"`
}

// RulesConfig parameterizes the built-in rules.
type RulesConfig struct {
	NamePattern  string `mapstructure:"name_pattern" yaml:"name_pattern"`
	VariantCount int    `mapstructure:"variant_count" yaml:"variant_count"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName(paths.ConfigFileName)
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	table := fix.DefaultConvertTable()
	viper.SetDefault("allowed_files", engine.DefaultAllowedFiles())
	viper.SetDefault("allowed_pages", engine.DefaultAllowedPages())
	viper.SetDefault("skip_context_check", false)
	viper.SetDefault("colors.map_to_black", table[fix.TargetBlack])
	viper.SetDefault("colors.map_to_white", table[fix.TargetWhite])
	viper.SetDefault("fix.enabled", true)
	viper.SetDefault("fix.layer_name", fix.DefaultLayerName)
	viper.SetDefault("fix.width", fix.DefaultWidth)
	viper.SetDefault("fix.height", fix.DefaultHeight)
	viper.SetDefault("fix.optimistic_layer_credit", false)
	viper.SetDefault("fix.max_depth", fix.DefaultMaxDepth)
	viper.SetDefault("rules.name_pattern", rules.DefaultNamePattern)
	viper.SetDefault("rules.variant_count", fix.DefaultVariants)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file exists.
func Load(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "config file not found at %s", path), errors.ErrNotFound)
		}
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Mark(errors.Wrap(err, "reading config file"), errors.ErrInvalidConfig)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "unmarshaling config"), errors.ErrInvalidConfig)
	}

	return &cfg, nil
}

// Used returns the path of the config file that was read, if any.
func Used() string {
	return viper.ConfigFileUsed()
}

// ConvertTable returns the color table for the auto-fixer.
func (c *Config) ConvertTable() fix.ConvertTable {
	return fix.ConvertTable{
		fix.TargetBlack: c.Colors.MapToBlack,
		fix.TargetWhite: c.Colors.MapToWhite,
	}
}

// FixOptions returns the classifier options.
func (c *Config) FixOptions() fix.Options {
	return fix.Options{
		Convert:               c.ConvertTable(),
		LayerName:             c.Fix.LayerName,
		Width:                 c.Fix.Width,
		Height:                c.Fix.Height,
		Variants:              c.Rules.VariantCount,
		MaxDepth:              c.Fix.MaxDepth,
		OptimisticLayerCredit: c.Fix.OptimisticLayerCredit,
	}
}

// RulesConfig returns the built-in rule parameters.
func (c *Config) RulesConfig() rules.Config {
	return rules.Config{
		NamePattern: c.Rules.NamePattern,
		Variants:    c.Rules.VariantCount,
		LayerName:   c.Fix.LayerName,
		Width:       c.Fix.Width,
		Height:      c.Fix.Height,
	}
}

// Guard returns the context guard, or nil when the check is disabled.
func (c *Config) Guard() *engine.Guard {
	if c.SkipContextCheck {
		return nil
	}
	return &engine.Guard{Files: c.AllowedFiles, Pages: c.AllowedPages}
}
