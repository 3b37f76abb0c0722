package cli

import (
	"fmt"

	"github.com/better-auth-ui/registry/internal/branding"
	"github.com/better-auth-ui/registry/internal/config"
	"github.com/better-auth-ui/registry/internal/deps"
	"github.com/better-auth-ui/registry/internal/registry"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// projectRoot is the directory the layout is resolved from.
var projectRoot = "."

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scans src/components, src/hooks, src/lib and src/types,
adds an item to registry.json for every file not yet cataloged, and copies
those files into registry/. Items already in registry.json are never changed.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBuild,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	res, err := newBuilder(cmd, cfg).Run()
	if err != nil {
		return err
	}

	registry.PrintSummary(cmd.OutOrStdout(), res)
	return nil
}

// loadConfig resolves the project configuration and reports the config file
// when one was read.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(projectRoot)
	if err != nil {
		return nil, err
	}
	if cfg.File != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "⚙️  Using config %s\n", cfg.File)
	}
	return cfg, nil
}

// layoutFromConfig converts the resolved configuration into a build layout.
func layoutFromConfig(cfg *config.Config) registry.Layout {
	return registry.Layout{
		ProjectRoot: cfg.ProjectRoot,
		SrcDir:      cfg.SrcDir,
		RegistryDir: cfg.RegistryDir,
		CatalogPath: cfg.CatalogPath,
		Roots:       cfg.Roots,
		Extensions:  cfg.Extensions,
	}
}

func newBuilder(cmd *cobra.Command, cfg *config.Config) *registry.Builder {
	return registry.NewBuilder(layoutFromConfig(cfg),
		registry.WithExtractor(deps.NewPatternExtractor(cfg.ExtraDependencies...)),
		registry.WithProduct(branding.ProductName()),
		registry.WithVersions(cfg.DependencyVersions),
		registry.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()),
	)
}
