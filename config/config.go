package config

import "os"

// GetEnv reads an environment variable, falling back to def when unset.
func GetEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// MustGetEnv reads an environment variable and panics when unset. Used for
// credentials that have no sensible default.
func MustGetEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic("required environment variable not set: " + key)
	}
	return v
}
