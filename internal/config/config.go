package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/better-auth-ui/registry/internal/branding"
	"github.com/spf13/viper"
)

const fileType = "yaml"

// Config keys.
const (
	KeySrcDir             = "src_dir"
	KeyRegistryDir        = "registry_dir"
	KeyCatalog            = "catalog"
	KeyExtensions         = "extensions"
	KeyRoots              = "roots"
	KeyExtraDependencies  = "dependencies.extra"
	KeyDependencyVersions = "dependencies.versions"
)

// Default layout values.
var (
	DefaultSrcDir      = "src"
	DefaultRegistryDir = "registry"
	DefaultCatalog     = "registry.json"
	DefaultExtensions  = []string{".ts", ".tsx"}
	DefaultRoots       = []string{"components", "hooks", "lib", "types"}
)

// Config is the resolved layout of a registry build. All paths are absolute.
type Config struct {
	ProjectRoot string
	SrcDir      string
	RegistryDir string
	CatalogPath string
	Extensions  []string
	Roots       []string

	// ExtraDependencies are package names recognized in addition to the
	// built-in table.
	ExtraDependencies []string
	// DependencyVersions pins external dependencies to a version constraint,
	// rendered as "name@constraint" in the catalog.
	DependencyVersions map[string]string

	// File is the config file that was read, empty when none exists.
	File string
}

// FilePath returns the config file path for a project root
// (<root>/registry.yaml).
func FilePath(projectRoot string) string {
	return filepath.Join(projectRoot, branding.ConfigName()+"."+fileType)
}

// Load reads registry.yaml (if present) from projectRoot, applies
// environment overrides, and returns the validated layout.
func Load(projectRoot string) (*Config, error) {
	root, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("resolving project root %s: %w", projectRoot, err)
	}

	v := viper.New()
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeySrcDir, DefaultSrcDir)
	v.SetDefault(KeyRegistryDir, DefaultRegistryDir)
	v.SetDefault(KeyCatalog, DefaultCatalog)
	v.SetDefault(KeyExtensions, DefaultExtensions)
	v.SetDefault(KeyRoots, DefaultRoots)

	// Only the explicit file name is used so that a registry.json next to it
	// is never mistaken for configuration.
	file := FilePath(root)
	if _, err := os.Stat(file); err == nil {
		v.SetConfigFile(file)
		v.SetConfigType(fileType)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", file, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("checking config %s: %w", file, err)
	}

	cfg := &Config{
		ProjectRoot:        root,
		SrcDir:             resolve(root, v.GetString(KeySrcDir)),
		RegistryDir:        resolve(root, v.GetString(KeyRegistryDir)),
		CatalogPath:        resolve(root, v.GetString(KeyCatalog)),
		Extensions:         v.GetStringSlice(KeyExtensions),
		Roots:              v.GetStringSlice(KeyRoots),
		ExtraDependencies:  v.GetStringSlice(KeyExtraDependencies),
		DependencyVersions: v.GetStringMapString(KeyDependencyVersions),
		File:               v.ConfigFileUsed(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the layout is usable.
func (c *Config) Validate() error {
	if len(c.Extensions) == 0 {
		return fmt.Errorf("config: %s must list at least one extension", KeyExtensions)
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("config: extension %q must start with '.'", ext)
		}
	}
	if len(c.Roots) == 0 {
		return fmt.Errorf("config: %s must list at least one source root", KeyRoots)
	}
	for name, constraint := range c.DependencyVersions {
		if _, err := semver.NewConstraint(constraint); err != nil {
			return fmt.Errorf("config: version for %s: %w", name, err)
		}
	}
	return nil
}

// resolve makes p absolute relative to root.
func resolve(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}
