// Package config loads prepcoach settings from defaults, an optional YAML
// file, a .env file and PREPCOACH_* environment variables, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/prepcoach/internal/assessment"
	"github.com/abhisek/prepcoach/internal/coach"
	"github.com/abhisek/prepcoach/internal/llm"
	"github.com/abhisek/prepcoach/internal/logging"
	"github.com/abhisek/prepcoach/internal/roadmap"
)

// EnvPrefix prefixes every environment override, e.g.
// PREPCOACH_ROADMAP_SPRINT_WEEKS.
const EnvPrefix = "PREPCOACH"

// Config is the full application configuration.
type Config struct {
	// DBPath empty means the default under the data directory.
	DBPath string `mapstructure:"db_path"`
	Locale string `mapstructure:"locale" validate:"omitempty,oneof=en it"`

	// Curriculum is an optional path replacing the embedded curriculum.
	Curriculum string `mapstructure:"curriculum"`

	Log     logging.Options          `mapstructure:"log"`
	Scoring assessment.ScoringConfig `mapstructure:"scoring"`
	Roadmap roadmap.Config           `mapstructure:"roadmap"`
	LLM     llm.Config               `mapstructure:"llm"`
	Coach   coach.Config             `mapstructure:"coach"`

	// AutoDiscover picks an LLM provider from ANTHROPIC_API_KEY and
	// friends when llm.provider is "none".
	AutoDiscover bool `mapstructure:"auto_discover"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`

	settings map[string]any
}

// Options controls where Load looks.
type Options struct {
	// ConfigFile is an explicit path; it must exist.
	ConfigFile string
	// SearchPaths are directories searched for prepcoach.yaml when
	// ConfigFile is empty. Defaults to the user config dir and ".".
	SearchPaths []string
	// EnvFiles are loaded with godotenv; missing files are skipped.
	// Defaults to ".env".
	EnvFiles []string
	// Overrides are dotted keys set last, above env and file. Command
	// line flags land here.
	Overrides map[string]any
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Locale:  "en",
		Log:     logging.DefaultOptions(),
		Scoring: assessment.DefaultScoringConfig(),
		Roadmap: roadmap.DefaultConfig(),
		LLM:     llm.DefaultConfig(),
		Coach:   coach.DefaultConfig(),
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load resolves the configuration.
func Load(opts Options) (*Config, error) {
	envFiles := opts.EnvFiles
	if envFiles == nil {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		// Existing variables win over the file.
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.SetConfigName("prepcoach")
		v.SetConfigType("yaml")
		paths := opts.SearchPaths
		if paths == nil {
			paths = defaultSearchPaths()
		}
		for _, p := range paths {
			v.AddConfigPath(p)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	for k, val := range opts.Overrides {
		v.Set(k, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if cfg.AutoDiscover && cfg.LLM.Discover() {
		v.Set("llm.provider", cfg.LLM.Provider)
		v.Set("llm."+cfg.LLM.Provider+".api_key", cfg.LLM.Selected().APIKey)
	}
	cfg.settings = v.AllSettings()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints and the LLM credentials.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q (%v)", keyFor(fe.Namespace()), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid config:\n  %s", strings.Join(msgs, "\n  "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := c.LLM.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Settings returns the resolved key tree with API keys masked, for
// display.
func (c *Config) Settings() map[string]any {
	return redact(c.settings)
}

func redact(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch val := v.(type) {
		case map[string]any:
			out[k] = redact(val)
		case string:
			if strings.HasSuffix(k, "api_key") && val != "" {
				val = "********"
			}
			out[k] = val
		default:
			out[k] = v
		}
	}
	return out
}

// keyFor turns "Config.Roadmap.SprintWeeks" into "Roadmap.SprintWeeks".
func keyFor(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func defaultSearchPaths() []string {
	var paths []string
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "prepcoach"))
	}
	return append(paths, ".")
}

// setDefaults registers every key so AutomaticEnv can override it; viper
// only consults the environment for keys it knows about.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("db_path", d.DBPath)
	v.SetDefault("locale", d.Locale)
	v.SetDefault("curriculum", d.Curriculum)
	v.SetDefault("auto_discover", d.AutoDiscover)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age_days", d.Log.MaxAgeDays)
	v.SetDefault("log.compress", d.Log.Compress)
	v.SetDefault("log.console_level", d.Log.ConsoleLevel)

	v.SetDefault("scoring.default_self_score", d.Scoring.DefaultSelfScore)
	v.SetDefault("scoring.weak_below", d.Scoring.WeakBelow)
	v.SetDefault("scoring.strong_from", d.Scoring.StrongFrom)

	r := d.Roadmap
	v.SetDefault("roadmap.sprint_weeks", r.SprintWeeks)
	v.SetDefault("roadmap.checkpoint_every", r.CheckpointEvery)
	v.SetDefault("roadmap.mock_test_questions", r.MockTestQuestions)
	v.SetDefault("roadmap.overload_ceiling", r.OverloadCeiling)
	v.SetDefault("roadmap.low_below", r.LowBelow)
	v.SetDefault("roadmap.high_above", r.HighAbove)
	v.SetDefault("roadmap.comfortable_up_to", r.ComfortableUpTo)
	v.SetDefault("roadmap.feasible_tolerance", r.FeasibleTolerance)
	strategies := make([]string, len(r.Strategies))
	for i, s := range r.Strategies {
		strategies[i] = string(s)
	}
	v.SetDefault("roadmap.strategies", strategies)

	l := d.LLM
	v.SetDefault("llm.provider", l.Provider)
	for name, p := range map[string]llm.ProviderConfig{
		"anthropic":  l.Anthropic,
		"openai":     l.OpenAI,
		"openrouter": l.OpenRouter,
		"gemini":     l.Gemini,
	} {
		v.SetDefault("llm."+name+".api_key", p.APIKey)
		v.SetDefault("llm."+name+".model", p.Model)
		v.SetDefault("llm."+name+".base_url", p.BaseURL)
	}
	v.SetDefault("llm.retry.max_attempts", l.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", l.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", l.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", l.Retry.Multiplier)
	v.SetDefault("llm.rate_limit.per_minute", l.RateLimit.PerMinute)
	v.SetDefault("llm.rate_limit.burst", l.RateLimit.Burst)
	v.SetDefault("llm.timeout", l.Timeout)

	v.SetDefault("coach.max_tokens", d.Coach.MaxTokens)
	v.SetDefault("coach.temperature", d.Coach.Temperature)
	v.SetDefault("coach.max_tips", d.Coach.MaxTips)
}
