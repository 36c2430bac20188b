package config

import (
	"fmt"

	"github.com/colog-labs/colog/internal/reasoner"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Format != "tptp" && c.Format != "ladr" {
		return fmt.Errorf("invalid format %q: must be tptp or ladr", c.Format)
	}
	for _, def := range c.Reasoners {
		if def.Name == "" {
			return fmt.Errorf("reasoner definition is missing a name")
		}
		if def.Exec == "" {
			return fmt.Errorf("reasoner %s has no executable configured", def.Name)
		}
		if def.Format != "tptp" && def.Format != "ladr" {
			return fmt.Errorf("reasoner %s has invalid format %q: must be tptp or ladr", def.Name, def.Format)
		}
		if def.Kind != reasoner.Prover && def.Kind != reasoner.ModelFinder {
			return fmt.Errorf("reasoner %s has invalid kind %q: must be prover or model-finder", def.Name, def.Kind)
		}
	}
	return nil
}
