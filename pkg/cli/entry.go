// Package cli wires the proof engine to the command line. The only
// subcommand is find, which searches for a term inhabiting a type
// given in the surface syntax.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/pwalrus/stoch-coc/internal/config"
	"github.com/pwalrus/stoch-coc/internal/deflib"
	"github.com/pwalrus/stoch-coc/internal/judgement"
	"github.com/pwalrus/stoch-coc/internal/parser"
	"github.com/pwalrus/stoch-coc/internal/proof"
	"github.com/pwalrus/stoch-coc/internal/search"
	"github.com/pwalrus/stoch-coc/internal/term"
)

type findOptions struct {
	flagderiv bool
	defsFile  string
	verbose   bool
}

// makeFakeContext closes over the free variables of a goal type by
// declaring each of them at ⋆, preserving first-occurrence order.
func makeFakeContext(ex term.CCExpression) []judgement.Statement {
	var out []judgement.Statement
	for _, name := range term.FreeVar(ex) {
		out = append(out, judgement.Statement{
			Subject: term.Var{Name: name},
			Type:    term.Star{},
		})
	}
	return out
}

func loadDefs(path string) ([]judgement.Definition, error) {
	if path == "" {
		if _, err := os.Stat(config.DefaultDefsFile); err != nil {
			return nil, nil
		}
		path = config.DefaultDefsFile
	}
	return deflib.Load(path)
}

func runFind(opts findOptions, expr string, out, errOut *os.File) error {
	level := hclog.Error
	if opts.verbose {
		level = hclog.Debug
	}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "stoch-coc",
		Level:  level,
		Output: errOut,
	}).With("run", uuid.NewString())

	defs, err := loadDefs(opts.defsFile)
	if err != nil {
		return err
	}
	goalType, err := parser.Parse(expr)
	if err != nil {
		return fmt.Errorf("failed to parse: (%s)", expr)
	}
	ctx := makeFakeContext(goalType)

	prf, err := search.FindTerm(goalType, ctx, defs, logger)
	if err != nil {
		return err
	}
	if opts.flagderiv {
		rendered, err := proof.FlagderivOutput(*prf)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, rendered)
		return nil
	}
	fmt.Fprintln(out, prf.Lines[len(prf.Lines)-1].ToLatex())
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "stoch-coc",
		Short:         "Proof search for a calculus of constructions",
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	opts := findOptions{}
	findCmd := &cobra.Command{
		Use:   "find <latex-type>",
		Short: "Find a term inhabiting the given type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(opts, args[0], os.Stdout, os.Stderr)
		},
	}
	findCmd.Flags().BoolVar(&opts.flagderiv, "flagderiv", false, "use flagderiv for proof typesetting")
	findCmd.Flags().StringVar(&opts.defsFile, "defs", "", "definitions library file (YAML)")
	findCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log search progress")
	root.AddCommand(findCmd)
	return root
}

// Run executes the CLI and returns the process exit code. Diagnostics
// go to stderr, coloured when it is a terminal.
func Run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		if isatty.IsTerminal(os.Stderr.Fd()) {
			color.New(color.FgRed).Fprintln(os.Stderr, err.Error())
		} else {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		return 1
	}
	return 0
}
