// Package cli implements the posefig command tree.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"posefig/internal/config"
	"posefig/internal/figure"
)

// RootOptions holds global flags and the settings every command shares.
type RootOptions struct {
	ConfigFile string
	Verbose    bool

	// Config is loaded from ConfigFile before any command runs. Commands
	// apply their own flags with Config.Resolve.
	Config config.Config
	Logger *slog.Logger
}

// NewRootCommand creates the root command for the posefig CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "posefig",
		Short: "posefig - stick-figure pose illustrations",
		Long: `Render the stick-figure drawings of a pose catalog.

Each registered pose name maps to a small line drawing; names without a
drawing render a "No Image" placeholder.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			opts.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			if opts.ConfigFile == "" {
				return nil
			}
			cfg, err := config.Load(opts.ConfigFile)
			if err != nil {
				return WrapExitError(ExitCommandError, "loading config", err)
			}
			opts.Config = cfg
			opts.Logger.Debug("config loaded", "path", opts.ConfigFile, "base_dir", cfg.BaseDir)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "path to a JSON config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewRenderCommand(opts))
	cmd.AddCommand(NewBatchCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewSheetCommand(opts))
	cmd.AddCommand(NewVerifyCommand(opts))
	cmd.AddCommand(NewTraceCommand(opts))

	return cmd
}

// resolve applies flags to the loaded config and validates the result.
func (o *RootOptions) resolve(flags config.Flags) (config.Config, error) {
	cfg := o.Config
	cfg.Resolve(flags)
	if err := cfg.Validate(); err != nil {
		return cfg, WrapExitError(ExitCommandError, "invalid settings", err)
	}
	return cfg, nil
}

func (o *RootOptions) renderer(cfg config.Config) *figure.Renderer {
	return figure.NewRenderer(nil, cfg.ScaleMode())
}

// renderFlags registers the size and scale flags shared by drawing commands.
func renderFlags(cmd *cobra.Command, f *config.Flags) {
	cmd.Flags().IntVar(&f.Width, "width", 0, "surface width in pixels (default 120)")
	cmd.Flags().IntVar(&f.Height, "height", 0, "surface height in pixels (default 110)")
	cmd.Flags().StringVar(&f.Scale, "scale", "", "scale mode: clip or fit (default clip)")
}
