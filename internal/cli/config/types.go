// Package config loads colog configuration from defaults, a project
// config file, COLOG_* environment variables, and command-line flags, in
// ascending order of precedence.
package config

import "github.com/colog-labs/colog/internal/reasoner"

// Config is the effective configuration of one colog invocation.
type Config struct {
	// OutputDir receives translation and reasoner output files.
	OutputDir string `koanf:"output_dir"`
	// Format is the default translation format: tptp or ladr.
	Format string `koanf:"format"`
	// Base is the local directory substituted into import URIs.
	Base string `koanf:"base"`
	// Sub is the URI prefix that Base replaces.
	Sub string `koanf:"sub"`
	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
	// Reasoners is the battery run by the prove command.
	Reasoners []reasoner.Definition `koanf:"reasoners"`
}

// Defaults used when neither file, environment, nor flags provide a value.
const (
	DefaultOutputDir = "out"
	DefaultFormat    = "tptp"
	DefaultBase      = "."
)
