package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/assetnamer/internal/display"
	"github.com/backmassage/assetnamer/internal/naming"
)

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List naming categories by group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, line := range display.FormatCategories(naming.Categories()) {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
