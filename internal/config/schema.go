package config

// Config is the top-level dealwatch configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server" yaml:"server"`
	UI     UIConfig     `mapstructure:"ui" yaml:"ui"`
}

// ServerConfig holds price-service connection settings.
type ServerConfig struct {
	BaseURL        string `mapstructure:"base_url" yaml:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// UIConfig holds display preferences.
type UIConfig struct {
	Currency string `mapstructure:"currency" yaml:"currency"`
}

// CurrencySymbol returns the configured currency symbol, defaulting to "$".
func (c *Config) CurrencySymbol() string {
	if c.UI.Currency == "" {
		return "$"
	}
	return c.UI.Currency
}
