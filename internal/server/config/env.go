package config

import (
	"os"
	"time"
)

// parseEnv overlays configuration from environment variables:
//
//	ADDRESS        HTTP bind address (e.g. ":3000")
//	DATABASE_DSN   PostgreSQL DSN
//	JWT_SECRET     HMAC secret for signing tokens
//	TOKEN_VALIDITY token lifetime as a Go duration (e.g. "168h")
//
// Unset variables leave the current values untouched. An unparsable
// TOKEN_VALIDITY is ignored rather than aborting startup.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
}
