package config

import (
	"os"
	"strconv"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// getEnvBool parses a boolean environment variable, keeping fallback when
// the variable is unset or malformed.
func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}

// applyEnv lets deployment environments override the values that differ
// per host without shipping a config file (container images, systemd units).
func applyEnv(cfg *Config) {
	cfg.SSH.Host = GetEnv("SSH_HOST", cfg.SSH.Host)
	cfg.SSH.Port = GetEnv("SSH_PORT", cfg.SSH.Port)
	cfg.SSH.HostKeyPath = GetEnv("SSH_HOST_KEY", cfg.SSH.HostKeyPath)
	cfg.Logging.Level = GetEnv("SKYSHOOTER_LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.File = GetEnv("SKYSHOOTER_LOG_FILE", cfg.Logging.File)
	cfg.Audio.Enabled = getEnvBool("SKYSHOOTER_AUDIO", cfg.Audio.Enabled)
}
