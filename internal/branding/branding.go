// Package branding provides compile-time identity values for the registry
// builder: the CLI name, the product name written into generated item
// descriptions, and the prefix used for environment overrides.
//
// Values come from the embedded branding.yaml. Hard defaults apply to any
// key the file leaves empty.
package branding

import (
	_ "embed"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	ProductName string `yaml:"product_name"`
	EnvPrefix   string `yaml:"env_prefix"`
	ConfigName  string `yaml:"config_name"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:     "build-registry",
			DisplayName: "Better Auth UI Registry",
			Description: "Build the better-auth-ui component registry",
			ProductName: "better-auth-ui",
			EnvPrefix:   "REGISTRY",
			ConfigName:  "registry",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "build-registry").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable tool name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short tool description.
func Description() string { load(); return defaults.Description }

// ProductName returns the name used in generated item descriptions
// (e.g., "better-auth-ui").
func ProductName() string { load(); return defaults.ProductName }

// EnvPrefix returns the environment variable prefix (e.g., "REGISTRY").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ConfigName returns the config file base name looked up in the project root.
func ConfigName() string { load(); return defaults.ConfigName }
