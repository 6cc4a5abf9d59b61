package config

import "time"

var JWTSecret []byte
var JWTExpiration time.Duration

func init() {
	JWTSecret = []byte(GetEnv("JWT_SECRET", "dev-only-secret-change-in-production"))

	JWTExpiration = 24 * time.Hour
	if raw := GetEnv("JWT_EXPIRATION", ""); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			JWTExpiration = d
		}
	}
}
