// Package cmd implements the brnstm CLI: a cobra command tree wrapping
// the lexer, parser, and evaluator, grounded on go-dws's cmd/dwscript/cmd.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	verbose bool
	dumpAST bool
)

var rootCmd = &cobra.Command{
	Use:   "brnstm [file]",
	Short: "brnstm interpreter",
	Long: `brnstm is a tree-walking interpreter for the brnstm scripting
language: a small dynamically-typed language with lists, strings,
user-defined functions and classes, list comprehensions, destructuring
assignment, and a module import mechanism.

Running a bare file is shorthand for 'brnstm run <file>':

  brnstm script.brn
  brnstm run script.brn
  brnstm run -e 'println(1 + 2)'`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("either provide a file path or use 'run -e' for inline code")
		}
		return runScript(args[0], "")
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST before evaluating")
}
