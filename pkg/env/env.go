// Package env reads configuration values from the process environment.
package env

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// ConfigurationError reports a required environment variable that is
// unset or empty. It is always propagated to the caller.
type ConfigurationError struct {
	Name string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("required environment variable %q is not set", e.Name)
}

type Accessor struct {
	GetEnv func(string) string
}

func NewAccessor() *Accessor {
	return &Accessor{
		GetEnv: os.Getenv,
	}
}

// Require returns the value of the named variable. An unset or empty
// value is a *ConfigurationError; Require never substitutes a default.
func (a *Accessor) Require(name string) (string, error) {
	value := a.GetEnv(name)
	if value == "" {
		log.Error().Str("env", name).Msg("required env variable is missing")
		return "", &ConfigurationError{Name: name}
	}
	return value, nil
}

// Optional returns the value of the named variable, or fallback when it
// is unset or empty.
func (a *Accessor) Optional(name string, fallback string) string {
	if value := a.GetEnv(name); value != "" {
		return value
	}
	return fallback
}
