package cli

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/better-auth-ui/registry/internal/registry"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the registry whenever sources change",
	Long: `Run a full build, then run it again each time a source file is created,
written, or renamed. Every rebuild is a complete, additive build. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", registry.DefaultDebounce, "Quiet period before a rebuild starts")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	b := newBuilder(cmd, cfg)
	build := func() {
		res, err := b.Run()
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "❌ Error building registry: %v\n", err)
			return
		}
		registry.PrintSummary(cmd.OutOrStdout(), res)
	}

	w, err := registry.NewWatcher(layoutFromConfig(cfg), watchDebounce, build)
	if err != nil {
		return fmt.Errorf("watching %s: %w", cfg.SrcDir, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	build()
	fmt.Fprintf(cmd.OutOrStdout(), "\n👀 Watching %s for changes...\n", cfg.SrcDir)
	return w.Run(ctx)
}
