package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"posefig/internal/catalog"
	"posefig/internal/config"
	"posefig/internal/skeleton"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Catalog string
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pose names that have a drawing",
		Long: `List the registered pose names in Traditional Chinese collation order.

With --catalog, list the catalog's records instead and mark which of them
have a drawing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Catalog, "catalog", "", "catalog file to check against the registered drawings")

	return cmd
}

// SortNames sorts pose names in place with Traditional Chinese collation.
func SortNames(names []string) {
	collate.New(language.TraditionalChinese).SortStrings(names)
}

func runList(cmd *cobra.Command, opts *ListOptions) error {
	out := cmd.OutOrStdout()
	reg := skeleton.Default()

	cfg, err := opts.resolve(config.Flags{Catalog: opts.Catalog})
	if err != nil {
		return err
	}
	if cfg.Catalog == "" {
		names := reg.Names()
		SortNames(names)
		for _, n := range names {
			fmt.Fprintln(out, n)
		}
		return nil
	}

	poses, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return WrapExitError(ExitCommandError, "loading catalog", err)
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tENGLISH\tCATEGORY\tDRAWING")
	drawn := 0
	for _, p := range poses {
		mark := "-"
		if _, ok := reg.Lookup(p.NameZH); ok {
			mark = "yes"
			drawn++
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", strconv.Itoa(p.ID), p.NameZH, p.NameEN, p.CategoryLabel(), mark)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%d of %d poses have a drawing\n", drawn, len(poses))
	return nil
}
