package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Lixing-Zhang/nova-site/internal/catalog"
	"github.com/Lixing-Zhang/nova-site/internal/menu"
	"github.com/spf13/cobra"
)

func newMenuCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Print the dishes shown for a menu category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printMenu(cmd.OutOrStdout(), category)
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", menu.AllCategory, "category to list")

	return cmd
}

func printMenu(out io.Writer, category string) error {
	entries, err := catalog.Load()
	if err != nil {
		return err
	}
	if !menu.HasCategory(entries, category) {
		return fmt.Errorf("unknown category %q (have %v)", category, menu.AvailableCategories(entries))
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, e := range menu.VisibleItems(entries, category) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Category, menu.FormatPrice(e.Price))
	}
	return tw.Flush()
}
