package app

import "time"

// Config contains all runtime configuration loaded from environment variables.
type Config struct {
	HTTPAddr string
	LogLevel string

	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	MaxHeaderBytes    int

	// RedisAddr, when set, switches the banned-token store to the Redis
	// backend. Empty means in-memory (the default deployment shape).
	RedisAddr string
}

// LoadConfig loads Config from environment variables with defaults.
func LoadConfig() Config {
	return Config{
		HTTPAddr: EnvString("AUTHD_HTTP_ADDR", "0.0.0.0:3000"),
		LogLevel: EnvString("AUTHD_LOG_LEVEL", "info"),

		ReadHeaderTimeout: EnvDuration("AUTHD_HTTP_READ_HEADER_TIMEOUT", 5*time.Second),
		ReadTimeout:       EnvDuration("AUTHD_HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:      EnvDuration("AUTHD_HTTP_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:       EnvDuration("AUTHD_HTTP_IDLE_TIMEOUT", 60*time.Second),

		MaxHeaderBytes: EnvInt("AUTHD_HTTP_MAX_HEADER_BYTES", 1<<20),

		RedisAddr: EnvString("AUTHD_REDIS_ADDR", ""),
	}
}
