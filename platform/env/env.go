package env

import (
	"os"

	"go.uber.org/zap"
)

// OrDefault return the result of searching an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	value := os.Getenv(env)
	if value == "" {
		log.Infow("env", "var", env, "using default", def)
		return def
	}
	return value
}

// Must return the result of searching an env var, panics if the env var is empty
func Must(log *zap.SugaredLogger, env string) string {
	value := os.Getenv(env)
	if value == "" {
		log.Panicf("missing required env var %s", env)
	}
	return value
}
