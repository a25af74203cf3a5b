// Package config loads sftnews settings from flags, environment variables
// and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jmylchreest/sftnews/pkg/cleaner/sftnews"
	"github.com/jmylchreest/sftnews/pkg/dataset"
	"github.com/jmylchreest/sftnews/pkg/ingest"
	"github.com/jmylchreest/sftnews/pkg/outlier"
)

// EnvPrefix prefixes every environment variable, e.g. SFTNEWS_SEED.
const EnvPrefix = "SFTNEWS"

// FileName is the config file looked up in $HOME and the working directory.
const FileName = ".sftnews"

// StatsConfig holds the quantiles used for tail reports and threshold suggestions.
type StatsConfig struct {
	LeftQuantile  float64 `mapstructure:"left_quantile" validate:"gte=0,lte=1"`
	RightQuantile float64 `mapstructure:"right_quantile" validate:"gte=0,lte=1,gtefield=LeftQuantile"`
}

// Config is the resolved configuration for a run.
type Config struct {
	Input  string `mapstructure:"input"`
	Output string `mapstructure:"output"`
	Format string `mapstructure:"format" validate:"omitempty,oneof=csv json jsonl yaml yml"`

	Seed int64 `mapstructure:"seed"`
	// PhraseSeed makes phrase choice reproducible. Zero leaves it unseeded.
	PhraseSeed int64  `mapstructure:"phrase_seed"`
	Vocabulary string `mapstructure:"vocabulary"`

	Manifest      bool   `mapstructure:"manifest"`
	MaxOutputSize string `mapstructure:"max_output_size"`

	Threshold outlier.Threshold `mapstructure:"threshold"`
	Cleaner   sftnews.Config    `mapstructure:"cleaner"`
	Ingest    ingest.Config     `mapstructure:"ingest"`
	Stats     StatsConfig       `mapstructure:"stats"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	th := outlier.DefaultThreshold()
	cl := sftnews.DefaultConfig()
	in := ingest.DefaultConfig()

	v.SetDefault("format", "")
	v.SetDefault("seed", dataset.DefaultSeed)
	v.SetDefault("phrase_seed", 0)
	v.SetDefault("vocabulary", "")
	v.SetDefault("manifest", false)
	v.SetDefault("max_output_size", "")

	v.SetDefault("threshold.min_title_words", th.MinTitleWords)
	v.SetDefault("threshold.max_title_words", th.MaxTitleWords)
	v.SetDefault("threshold.min_content_words", th.MinContentWords)
	v.SetDefault("threshold.max_content_words", th.MaxContentWords)

	v.SetDefault("cleaner.invalid_title_words", cl.InvalidTitleWords)
	v.SetDefault("cleaner.characters_to_remove", cl.CharactersToRemove)
	v.SetDefault("cleaner.strip_html", cl.StripHTML)

	v.SetDefault("ingest.title_selector", in.TitleSelector)
	v.SetDefault("ingest.content_selector", in.ContentSelector)
	v.SetDefault("ingest.readability_fallback", in.ReadabilityFallback)

	v.SetDefault("stats.left_quantile", 0.05)
	v.SetDefault("stats.right_quantile", 0.95)
}

// Setup points v at the config file and environment. An explicit cfgFile
// must exist; the default locations are optional.
func Setup(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

var validate = validator.New()

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks bounds, quantiles and sizes.
func (c *Config) Validate() error {
	if err := c.Threshold.Validate(); err != nil {
		return err
	}
	if err := c.Cleaner.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.MaxOutputBytes(); err != nil {
		return err
	}
	return nil
}

// MaxOutputBytes parses MaxOutputSize ("50MB", "1.5 GiB"). Zero means no limit.
func (c *Config) MaxOutputBytes() (uint64, error) {
	if strings.TrimSpace(c.MaxOutputSize) == "" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(c.MaxOutputSize)
	if err != nil {
		return 0, fmt.Errorf("invalid max_output_size %q: %w", c.MaxOutputSize, err)
	}
	return n, nil
}

// CleanerConfig returns the cleaning rules for a run. Configured marker words
// and artifact sequences extend the built-in lists rather than replace them.
func (c *Config) CleanerConfig() *sftnews.Config {
	base := sftnews.DefaultConfig()
	if c.Cleaner.StripHTML {
		base = sftnews.PresetMarkup()
	}
	return base.Merge(&c.Cleaner)
}

// GeneratorOptions returns the dataset options implied by the config.
func (c *Config) GeneratorOptions() ([]dataset.Option, error) {
	opts := []dataset.Option{dataset.WithSeed(c.Seed)}
	if c.PhraseSeed != 0 {
		opts = append(opts, dataset.WithPhraseSeed(c.PhraseSeed))
	}
	if c.Vocabulary != "" {
		vocab, err := dataset.LoadVocabulary(c.Vocabulary)
		if err != nil {
			return nil, err
		}
		opts = append(opts, dataset.WithVocabulary(vocab))
	}
	return opts, nil
}
