package config

import "os"

// Environment variables read by the binaries.
const (
	EnvConfigPath = "AIRHOCKEY_CONFIG" // Optional YAML file overlaying the defaults
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// FromEnv loads the config file named by AIRHOCKEY_CONFIG, or returns the
// defaults when the variable is unset or empty.
func FromEnv() (Config, error) {
	path := GetEnv(EnvConfigPath, "")
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
