package coach

// Config holds note generation settings.
type Config struct {
	MaxTokens   int     `mapstructure:"max_tokens" validate:"gte=0"`
	Temperature float64 `mapstructure:"temperature" validate:"gte=0,lte=1"`
	// MaxTips bounds FocusTips in the schema.
	MaxTips int `mapstructure:"max_tips" validate:"gte=1,lte=8"`
}

func DefaultConfig() Config {
	return Config{
		MaxTokens:   600,
		Temperature: 0.4,
		MaxTips:     4,
	}
}
