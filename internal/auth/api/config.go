package api

import (
	"net/http"
	"os"
	"strconv"
	"strings"
)

// Config controls HTTP-layer behavior: body limits and session cookie attributes.
type Config struct {
	MaxBodyBytes int64

	CookiePath     string
	CookieDomain   string
	CookieSecure   bool
	CookieSameSite http.SameSite
}

// LoadConfigFromEnv loads API config from environment variables with safe defaults.
//
// The session cookie ships with {HttpOnly, Secure, SameSite=Lax, Path=/}
// unless overridden.
func LoadConfigFromEnv() Config {
	return Config{
		MaxBodyBytes:   envInt64("AUTHD_MAX_BODY_BYTES", 1<<20), // 1 MiB
		CookiePath:     envString("AUTHD_COOKIE_PATH", "/"),
		CookieDomain:   envString("AUTHD_COOKIE_DOMAIN", ""),
		CookieSecure:   envBool("AUTHD_COOKIE_SECURE", true),
		CookieSameSite: parseSameSite(envString("AUTHD_COOKIE_SAMESITE", "lax")),
	}
}

func parseSameSite(v string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "strict":
		return http.SameSiteStrictMode
	case "lax":
		return http.SameSiteLaxMode
	case "none":
		return http.SameSiteNoneMode
	case "default":
		return http.SameSiteDefaultMode
	default:
		return http.SameSiteLaxMode
	}
}

func envString(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func envBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func envInt64(key string, def int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
