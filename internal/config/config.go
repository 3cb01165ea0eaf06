package config

import (
	"path/filepath"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/lvseq/internal/logger"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key.
const EnvPrefix = "LVSEQ"

// Config holds all configuration for the command line.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Match holds defaults for distance, similarity and reconcile.
	Match MatchConfig `mapstructure:"match"`
	// Align holds defaults for the align command.
	Align AlignConfig `mapstructure:"align"`
}

// MatchConfig configures string matching.
type MatchConfig struct {
	// Algorithm names the similarity metric (see editdistance.ParseAlgorithm).
	Algorithm string `mapstructure:"algorithm" default:"levenshtein"`
	// Threshold is the minimum similarity for two lines to match.
	Threshold float64 `mapstructure:"threshold" default:"0.8"`
	// MaxDistance, when >= 0, matches by edit distance instead of similarity.
	MaxDistance int `mapstructure:"max_distance" default:"-1"`
	// IgnoreCase lower-cases both sides before comparing.
	IgnoreCase bool `mapstructure:"ignore_case" default:"false"`
}

// AlignConfig configures dynamic time warping.
type AlignConfig struct {
	// Window is the Sakoe–Chiba band; -1 disables it.
	Window int `mapstructure:"window" default:"-1"`
	// Penalty is the slope penalty for non-diagonal steps.
	Penalty float64 `mapstructure:"penalty" default:"0"`
}

// LoadConfig loads configuration from environment variables and a .env
// file in dir, if present.
func LoadConfig(dir string) (*Config, error) {
	// Ignore error if file doesn't exist
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. LVSEQ_LOG_LEVEL -> log.level)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// bindValues walks the struct and registers every `mapstructure` key with
// its `default` tag so AutomaticEnv can resolve it.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}
