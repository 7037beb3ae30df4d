// License: GPLv3 Copyright: 2026, The lsicons Authors

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills the fields of target that carry env struct tags from the
// environment. Fields whose variables are unset are left untouched, so
// values from config files survive.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseEnvFrom is ParseEnv using the supplied variables instead of the
// process environment.
func ParseEnvFrom(target any, environ map[string]string) error {
	if err := env.ParseWithOptions(target, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
