package cli

import (
	"github.com/spf13/cobra"

	"posefig/internal/catalog"
	"posefig/internal/config"
	"posefig/internal/pdfsheet"
)

// SheetOptions holds flags for the sheet command.
type SheetOptions struct {
	*RootOptions
	Output  string
	Columns int
	Rows    int
	Title   string
	Flags   config.Flags
}

// NewSheetCommand creates the sheet command.
func NewSheetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SheetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sheet [CATALOG]",
		Short: "Export a PDF contact sheet of a catalog",
		Long: `Lay every catalog record out on A4 pages: its drawing, names, category
and cues in sequence order.

Chinese text needs a TrueType font with CJK coverage (--font); without one
only Latin text is printed.

Examples:
  posefig sheet poses.yaml -o sheet.pdf --font NotoSansTC-Regular.ttf
  posefig sheet poses.yaml -o sheet.pdf --columns 4 --rows 5`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Flags.Catalog = args[0]
			}
			return runSheet(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "sheet.pdf", "output PDF file")
	cmd.Flags().StringVar(&opts.Flags.FontFile, "font", "", "TrueType font for Chinese text")
	cmd.Flags().IntVar(&opts.Columns, "columns", 3, "cells per row")
	cmd.Flags().IntVar(&opts.Rows, "rows", 3, "rows per page")
	cmd.Flags().StringVar(&opts.Title, "title", "", "document title")
	renderFlags(cmd, &opts.Flags)

	return cmd
}

func runSheet(cmd *cobra.Command, opts *SheetOptions) error {
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

	err = pdfsheet.WriteFile(opts.Output, poses, opts.renderer(cfg), pdfsheet.Options{
		FontFile: cfg.FontFile,
		Columns:  opts.Columns,
		Rows:     opts.Rows,
		Width:    cfg.Width,
		Height:   cfg.Height,
		Title:    opts.Title,
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "writing sheet", err)
	}
	opts.Logger.Info("sheet written", "output", opts.Output, "poses", len(poses), "font", cfg.FontFile != "")
	return nil
}
