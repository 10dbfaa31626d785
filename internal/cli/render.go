package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"posefig/internal/config"
	"posefig/internal/pdfsheet"
	"posefig/internal/raster"
	"posefig/internal/vecsvg"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Output string
	Flags  config.Flags
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render NAME",
		Short: "Render one pose to an image file",
		Long: `Render the drawing for a pose name.

The output format follows the file extension: .png and .webp are raster
images, .svg is a vector drawing and .pdf a single-page document.

Examples:
  posefig render 下犬式 -o dog.png
  posefig render 樹式 -o tree.svg --width 300 --height 300 --scale fit
  posefig render 戰士二 -o warrior.webp --supersample 4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (.png, .webp, .svg or .pdf)")
	cmd.Flags().IntVar(&opts.Flags.Supersample, "supersample", 0, "raster supersampling factor (default 1)")
	renderFlags(cmd, &opts.Flags)
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runRender(cmd *cobra.Command, opts *RenderOptions, name string) error {
	cfg, err := opts.resolve(opts.Flags)
	if err != nil {
		return err
	}
	r := opts.renderer(cfg)

	var ok bool
	switch ext := strings.ToLower(filepath.Ext(opts.Output)); ext {
	case ".png", ".webp":
		format, _ := raster.FormatFromPath(opts.Output)
		img, drawn := raster.RenderPose(r, name, raster.Options{
			Width:       cfg.Width,
			Height:      cfg.Height,
			Supersample: cfg.Supersample,
		})
		ok = drawn
		err = raster.WriteFile(opts.Output, img, format)
	case ".svg":
		doc := vecsvg.New(cfg.Width, cfg.Height)
		ok = r.Render(doc, name)
		err = writeFile(opts.Output, doc.Bytes())
	case ".pdf":
		err = createWith(opts.Output, func(f *os.File) error {
			var werr error
			ok, werr = pdfsheet.WriteFigure(f, r, name, cfg.Width, cfg.Height)
			return werr
		})
	default:
		return NewExitError(ExitCommandError, fmt.Sprintf("unsupported output extension %q", ext))
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "render "+name, err)
	}

	if !ok {
		opts.Logger.Warn("no drawing for pose, wrote placeholder", "name", name)
	}
	opts.Logger.Info("rendered", "name", name, "output", opts.Output, "width", cfg.Width, "height", cfg.Height, "scale", cfg.Scale)
	return nil
}

func writeFile(path string, data []byte) error {
	return createWith(path, func(f *os.File) error {
		_, err := f.Write(data)
		return err
	})
}

// createWith creates path and its parent directories and hands the file
// to write.
func createWith(path string, write func(*os.File) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return write(f)
}
