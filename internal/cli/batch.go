package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"posefig/internal/batch"
	"posefig/internal/catalog"
	"posefig/internal/config"
)

// BatchOptions holds flags for the batch command.
type BatchOptions struct {
	*RootOptions
	Flags config.Flags
	Limit int
	IDs   []int
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BatchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "batch [CATALOG]",
		Short: "Render every pose of a catalog",
		Long: `Render each record of a YAML or JSON catalog to <output>/<id>.<format>
and write manifest.json next to the images.

The catalog comes from the argument or the config file's "catalog".

Examples:
  posefig batch poses.yaml -o renders
  posefig batch poses.yaml --format png --workers 4 --supersample 2
  posefig --config posefig.json batch --id 3 --id 7`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Flags.Catalog = args[0]
			}
			return runBatch(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Flags.OutputDir, "output", "o", "", "output directory (default renders)")
	cmd.Flags().StringVar(&opts.Flags.Format, "format", "", "image format: png or webp (default webp)")
	cmd.Flags().IntVar(&opts.Flags.Workers, "workers", 0, "number of worker goroutines (default NumCPU)")
	cmd.Flags().IntVar(&opts.Flags.Supersample, "supersample", 0, "supersampling factor (default 1)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "render only the first N records")
	cmd.Flags().IntSliceVar(&opts.IDs, "id", nil, "render only these record ids")
	renderFlags(cmd, &opts.Flags)

	return cmd
}

func runBatch(cmd *cobra.Command, opts *BatchOptions) error {
	cfg, err := opts.resolve(opts.Flags)
	if err != nil {
		return err
	}
	if cfg.Catalog == "" {
		return NewExitError(ExitCommandError, "no catalog: pass CATALOG or set \"catalog\" in the config file")
	}

	poses, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return WrapExitError(ExitCommandError, "loading catalog", err)
	}
	poses = selectPoses(poses, opts.IDs, opts.Limit)
	if len(poses) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No poses to render.")
		return nil
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := opts.Logger
	log.Info("batch starting", "poses", len(poses), "workers", cfg.Workers, "format", cfg.Format, "output", cfg.OutputDir)
	start := time.Now()

	bcfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		Format:      cfg.RasterFormat(),
		Renderer:    opts.renderer(cfg),
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Logger:      log,
	}
	results := batch.Run(ctx, bcfg, poses)

	var failed []batch.Result
	illustrated := 0
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
		} else if r.Illustrated {
			illustrated++
		}
	}
	log.Info("batch done",
		"rendered", len(results)-len(failed),
		"total", len(results),
		"illustrated", illustrated,
		"elapsed", time.Since(start).Round(time.Millisecond))

	for _, r := range failed[:min(len(failed), 20)] {
		log.Error("render failed", "id", r.ID, "name", r.Name, "error", r.Error)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return WrapExitError(ExitCommandError, "creating output directory", err)
	}
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, batch.NewManifest(bcfg, poses, results)); err != nil {
		log.Warn("manifest write failed", "error", err)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Manifest: %s\n", manifestPath)
	}

	if len(failed) > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d poses failed", len(failed), len(results)))
	}
	return nil
}

// selectPoses keeps records whose id is listed (all when ids is empty),
// then the first limit of those (all when limit <= 0).
func selectPoses(poses []catalog.Pose, ids []int, limit int) []catalog.Pose {
	if len(ids) > 0 {
		var kept []catalog.Pose
		for _, p := range poses {
			if slices.Contains(ids, p.ID) {
				kept = append(kept, p)
			}
		}
		poses = kept
	}
	if limit > 0 && limit < len(poses) {
		poses = poses[:limit]
	}
	return poses
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
