package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/assetnamer/internal/display"
	"github.com/backmassage/assetnamer/internal/lexicon"
	"github.com/backmassage/assetnamer/internal/term"
)

func newLexiconCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "lexicon [domain]",
		Short:     "Show dictionary codes (technology, product, scene, platform)",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"technology", "product", "scene", "platform"},
		RunE: func(cmd *cobra.Command, args []string) error {
			domains := lexicon.Domains
			if len(args) == 1 {
				d, err := lexicon.ParseDomain(args[0])
				if err != nil {
					return err
				}
				domains = []lexicon.Domain{d}
			}

			out := cmd.OutOrStdout()
			for i, d := range domains {
				opts, err := a.lex.Options(d)
				if err != nil {
					return err
				}
				if len(domains) > 1 {
					if i > 0 {
						fmt.Fprintln(out)
					}
					fmt.Fprintln(out, term.Paint(term.Bold, string(d)))
				}
				for _, line := range display.FormatOptions(opts) {
					fmt.Fprintln(out, line)
				}
			}
			return nil
		},
	}
}
