package configs

// Config holds all configuration for the application.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics" validate:"required"`
	Cache   CacheConfig   `mapstructure:"cache" validate:"required"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// MetricsConfig holds the reporting parameters consumed by the metrics processor.
type MetricsConfig struct {
	TimeZone                  string `mapstructure:"time_zone" validate:"required"`                        // IANA zone name, e.g. Australia/Sydney
	StartDate                 string `mapstructure:"start_date" validate:"required,datetime=2006-01-02"`   // earliest valid date for performance records
	ConsentAbandonmentSeconds int    `mapstructure:"consent_abandonment_seconds" validate:"required,min=1"`
	AuthCodeValiditySeconds   int    `mapstructure:"auth_code_validity_seconds" validate:"required,min=1"`
}

// CacheConfig holds historic report cache configuration.
type CacheConfig struct {
	ExpiryMinutes int `mapstructure:"expiry_minutes" validate:"required,min=1"`
}
