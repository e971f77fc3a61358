package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/prepcoach/internal/llm"
	"github.com/abhisek/prepcoach/internal/roadmap"
)

// isolated returns Options that ignore the user's config dir and .env.
func isolated(t *testing.T) Options {
	t.Helper()
	return Options{SearchPaths: []string{t.TempDir()}, EnvFiles: []string{}}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(isolated(t))
	require.NoError(t, err)

	d := Default()
	assert.Equal(t, d.Scoring, cfg.Scoring)
	assert.Equal(t, d.Roadmap, cfg.Roadmap)
	assert.Equal(t, llm.ProviderNone, cfg.LLM.Provider)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "en", cfg.Locale)
	assert.Empty(t, cfg.File)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeFile(t, "prepcoach.yaml", `
locale: it
scoring:
  weak_below: 35
roadmap:
  sprint_weeks: 3
  strategies: [priority]
llm:
  provider: openai
  openai:
    api_key: from-file
  timeout: 45s
`)
	t.Setenv("PREPCOACH_ROADMAP_SPRINT_WEEKS", "4")
	t.Setenv("PREPCOACH_LLM_OPENAI_MODEL", "gpt-4.1-mini")

	cfg, err := Load(Options{ConfigFile: path, EnvFiles: []string{}})
	require.NoError(t, err)

	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "it", cfg.Locale)
	assert.Equal(t, 35, cfg.Scoring.WeakBelow)
	assert.Equal(t, 70, cfg.Scoring.StrongFrom, "unset keys keep defaults")
	assert.Equal(t, 4, cfg.Roadmap.SprintWeeks, "env beats file")
	assert.Equal(t, []roadmap.Strategy{roadmap.StrategyPriority}, cfg.Roadmap.Strategies)
	assert.Equal(t, "from-file", cfg.LLM.OpenAI.APIKey)
	assert.Equal(t, "gpt-4.1-mini", cfg.LLM.OpenAI.Model)
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)
}

func TestLoad_SearchPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prepcoach.yaml"), []byte("roadmap:\n  mock_test_questions: 90\n"), 0o644))

	cfg, err := Load(Options{SearchPaths: []string{dir}, EnvFiles: []string{}})
	require.NoError(t, err)
	assert.Equal(t, 90, cfg.Roadmap.MockTestQuestions)
	assert.Equal(t, filepath.Join(dir, "prepcoach.yaml"), cfg.File)
}

func TestLoad_DotEnv(t *testing.T) {
	const key = "PREPCOACH_SCORING_DEFAULT_SELF_SCORE"
	t.Setenv(key, "")
	os.Unsetenv(key)
	envFile := writeFile(t, ".env", key+"=2\n")

	opts := isolated(t)
	opts.EnvFiles = []string{envFile, filepath.Join(t.TempDir(), "missing.env")}
	cfg, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Scoring.DefaultSelfScore)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"thresholds inverted", "scoring:\n  weak_below: 80\n  strong_from: 60\n", "Scoring.StrongFrom"},
		{"self score out of range", "scoring:\n  default_self_score: 9\n", "Scoring.DefaultSelfScore"},
		{"unknown strategy", "roadmap:\n  strategies: [fastest]\n", "Roadmap.Strategies"},
		{"unknown provider", "llm:\n  provider: cohere\n", "LLM.Provider"},
		{"missing api key", "llm:\n  provider: anthropic\n", "PREPCOACH_LLM_ANTHROPIC_API_KEY"},
		{"bad locale", "locale: fr\n", "Locale"},
		{"bad log level", "log:\n  level: loud\n", "Log.Level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "prepcoach.yaml", tt.yaml)
			_, err := Load(Options{ConfigFile: path, EnvFiles: []string{}})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(Options{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml"), EnvFiles: []string{}})
	require.Error(t, err)
}

func TestLoad_AutoDiscover(t *testing.T) {
	for _, k := range []string{"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load(isolated(t))
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderNone, cfg.LLM.Provider, "discovery is opt-in")

	t.Setenv("PREPCOACH_AUTO_DISCOVER", "true")
	cfg, err = Load(isolated(t))
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, "sk-test", cfg.LLM.OpenAI.APIKey)
}

func TestLoad_OverridesWin(t *testing.T) {
	t.Setenv("PREPCOACH_LOCALE", "it")
	opts := isolated(t)
	opts.Overrides = map[string]any{"locale": "en", "db_path": "/tmp/x.db"}

	cfg, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
}

func TestSettings_RedactsKeys(t *testing.T) {
	t.Setenv("PREPCOACH_LLM_PROVIDER", "anthropic")
	t.Setenv("PREPCOACH_LLM_ANTHROPIC_API_KEY", "sk-secret")

	cfg, err := Load(isolated(t))
	require.NoError(t, err)

	llmTree, ok := cfg.Settings()["llm"].(map[string]any)
	require.True(t, ok)
	anth, ok := llmTree["anthropic"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "********", anth["api_key"])
	assert.Equal(t, "claude-haiku", anth["model"])

	openai := llmTree["openai"].(map[string]any)
	assert.Equal(t, "", openai["api_key"], "empty keys stay empty")
	assert.Equal(t, "sk-secret", cfg.LLM.Anthropic.APIKey, "config itself is untouched")
}
