// Command assetnamer generates standardized asset filenames for the
// production, social, stock, AI and audio libraries.
//
// Usage:
//
//	assetnamer generate --category ihp --date 2024-03-05 --tech CAM --product FOU ...
//	assetnamer categories
//	assetnamer lexicon [technology|product|scene|platform]
//	assetnamer batch <manifest.yaml> [--apply] [--force] [--dedupe]
//	assetnamer version
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/backmassage/assetnamer/internal/config"
	"github.com/backmassage/assetnamer/internal/lexicon"
	"github.com/backmassage/assetnamer/internal/logging"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// app carries the state shared by every subcommand once setup has run.
type app struct {
	cfg config.Config
	log *logging.Logger
	lex *lexicon.Lexicon
}

func run(args []string, stdout, stderr io.Writer) int {
	a := &app{}
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "assetnamer: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "assetnamer",
		Short: "Deterministic filenames for production and social media assets",
		Long: "assetnamer turns a handful of fields (date, codes, talent, keywords)\n" +
			"into the naming convention of each asset library.",
		Version:           fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}
	config.DefineGlobalFlags(root.PersistentFlags())

	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newCategoriesCmd())
	root.AddCommand(newLexiconCmd(a))
	root.AddCommand(newBatchCmd(a))
	root.AddCommand(newVersionCmd())
	return root
}

// setup loads configuration (file, environment, flags), opens the logger
// and reads the dictionaries. Until the logger exists errors are returned
// to run, which prints them to stderr.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	fs := cmd.Flags()
	cfgFile, _ := fs.GetString("config")
	v, err := config.NewViper(cfgFile)
	if err != nil {
		return err
	}
	if err := config.BindFlags(v, fs); err != nil {
		return err
	}
	cfg, err := config.Load(v, fs)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logging.NewLogger(&a.cfg)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	a.log = log
	if used := v.ConfigFileUsed(); used != "" {
		a.log.Debug("Config file: %s", used)
	}

	lex, err := lexicon.LoadFile(a.cfg.LexiconFile)
	if err != nil {
		return err
	}
	a.lex = lex
	if a.cfg.LexiconFile != "" {
		a.log.Debug("Lexicon overrides: %s", a.cfg.LexiconFile)
	}
	return nil
}

func (a *app) close() {
	if a.log != nil {
		a.log.Close()
	}
}
