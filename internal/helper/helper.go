package helper

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

const envPrefix = "ENV:"

// ResolveEnv replaces a value of the form "ENV:NAME" with the content of the
// environment variable NAME. Any other value is returned unchanged.
func ResolveEnv(in string) string {
	if strings.HasPrefix(in, envPrefix) {
		return os.Getenv(in[len(envPrefix):])
	}
	return in
}

func SetDefaultStringIfEmpty(value, defaultValue, field, probe string) string {
	if len(value) == 0 {
		log.WithFields(log.Fields{"kind": "probe", "name": probe, "field": field}).
			Debugf("no value specified or env variable not found, assuming default %q", defaultValue)
		return defaultValue
	}
	return value
}

// EnvOrDefault reads an environment variable and falls back to defaultValue
// when it is unset or empty.
func EnvOrDefault(name, defaultValue string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return defaultValue
}
