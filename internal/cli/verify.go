package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"posefig/internal/config"
	"posefig/internal/figure"
	"posefig/internal/postprocess"
	"posefig/internal/raster"
	"posefig/internal/refimage"
)

// alignFill is the share of the canvas aligned content is scaled to.
const alignFill = 0.9

// VerifyOptions holds flags for the verify command.
type VerifyOptions struct {
	*RootOptions
	Tolerance   uint8
	MaxMismatch float64
	Align       bool
	Mirror      bool
	Flags       config.Flags
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VerifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "verify [NAME] REF",
		Short: "Compare renders with reference images",
		Long: `Render a pose at the size of a reference image (PNG, JPEG, TGA or WebP)
and count pixels whose colour differs by more than --tolerance. The check
fails when the mismatched share exceeds --max-mismatch.

With a single directory argument, every reference in it is checked; the
file name without extension is the pose name.

Examples:
  posefig verify 下犬式 refs/dog.png
  posefig verify refs/ --tolerance 48 --max-mismatch 0.02 --align`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, opts, args)
		},
	}

	cmd.Flags().Uint8Var(&opts.Tolerance, "tolerance", 32, "per-channel difference ignored")
	cmd.Flags().Float64Var(&opts.MaxMismatch, "max-mismatch", 0.01, "largest passing share of mismatched pixels")
	cmd.Flags().BoolVar(&opts.Align, "align", false, "crop and centre both images on their content first")
	cmd.Flags().BoolVar(&opts.Mirror, "mirror", false, "also accept a left-right mirrored reference")
	cmd.Flags().IntVar(&opts.Flags.Supersample, "supersample", 0, "supersampling factor (default 1)")
	cmd.Flags().StringVar(&opts.Flags.Scale, "scale", "", "scale mode: clip or fit (default clip)")

	return cmd
}

func runVerify(cmd *cobra.Command, opts *VerifyOptions, args []string) error {
	cfg, err := opts.resolve(opts.Flags)
	if err != nil {
		return err
	}

	refPath := args[len(args)-1]
	var idx *refimage.Index
	if len(args) == 2 {
		info, err := os.Stat(refPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "reading references", err)
		}
		if info.IsDir() {
			return NewExitError(ExitCommandError, "REF must be a file when NAME is given")
		}
		idx = refimage.Single(args[0], refPath)
	} else if idx, err = refimage.ScanOrFile(refPath); err != nil {
		return WrapExitError(ExitCommandError, "reading references", err)
	}
	names := idx.Names()
	if len(names) == 0 {
		return NewExitError(ExitCommandError, "no reference images found")
	}

	r := opts.renderer(cfg)
	out := cmd.OutOrStdout()
	failed := 0
	for _, name := range names {
		path, _ := idx.Resolve(name)
		d, err := opts.check(r, cfg, name, path)
		if err != nil {
			return WrapExitError(ExitCommandError, "verify "+name, err)
		}
		status := "ok"
		if d.Ratio() > opts.MaxMismatch {
			status = "FAIL"
			failed++
		}
		fmt.Fprintf(out, "%-4s %s: %s\n", status, name, d)
	}

	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d references differ", failed, len(names)))
	}
	return nil
}

func (o *VerifyOptions) check(r *figure.Renderer, cfg config.Config, name, path string) (refimage.Diff, error) {
	ref, err := refimage.Load(path)
	if err != nil {
		return refimage.Diff{}, err
	}
	w, h := ref.Bounds().Dx(), ref.Bounds().Dy()
	img, ok := raster.RenderPose(r, name, raster.Options{Width: w, Height: h, Supersample: cfg.Supersample})
	if !ok {
		o.Logger.Warn("no drawing for pose, comparing placeholder", "name", name)
	}

	got := postprocess.Flatten(img, refimage.Background)
	want := postprocess.Flatten(ref, refimage.Background)
	if o.Align {
		got = postprocess.CropAndCenter(got, refimage.Background, w, h, alignFill)
		want = postprocess.CropAndCenter(want, refimage.Background, w, h, alignFill)
	}

	d, err := refimage.Compare(got, want, o.Tolerance)
	if err != nil || !o.Mirror {
		return d, err
	}
	md, err := refimage.Compare(got, postprocess.FlipHorizontal(want), o.Tolerance)
	if err != nil {
		return d, err
	}
	if md.Mismatched < d.Mismatched {
		o.Logger.Debug("mirrored reference matches better", "name", name)
		return md, nil
	}
	return d, nil
}
