package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"posefig/internal/config"
	"posefig/internal/record"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Flags config.Flags
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace NAME",
		Short: "Print the drawing operations for a pose",
		Long: `Render a pose against a recording surface and print one line per
drawing operation: clears, strokes, discs, rectangles and text.

Examples:
  posefig trace 下犬式
  posefig trace 樹式 --width 300 --height 300 --scale fit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(cmd, opts, args[0])
		},
	}

	renderFlags(cmd, &opts.Flags)

	return cmd
}

func runTrace(cmd *cobra.Command, opts *TraceOptions, name string) error {
	cfg, err := opts.resolve(opts.Flags)
	if err != nil {
		return err
	}
	rec := record.New(cfg.Width, cfg.Height)
	if !opts.renderer(cfg).Render(rec, name) {
		opts.Logger.Debug("no drawing for pose", "name", name)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), rec.String())
	return err
}
