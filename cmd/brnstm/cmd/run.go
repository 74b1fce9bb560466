package cmd

import (
	"fmt"
	"os"

	"github.com/brnstm-lang/brnstm/internal/errors"
	"github.com/brnstm-lang/brnstm/internal/eval"
	"github.com/brnstm-lang/brnstm/internal/lexer"
	"github.com/brnstm-lang/brnstm/internal/module"
	"github.com/brnstm-lang/brnstm/internal/parser"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a brnstm file or expression",
	Long: `Execute a brnstm program from a file or inline expression.

Examples:
  # Run a script file
  brnstm run script.brn

  # Evaluate an inline expression
  brnstm run -e 'println(1 + 2)'

  # Run with the parsed AST dumped first
  brnstm run --dump-ast script.brn

Inline expressions run with -e have no origin file and no module
loader, so any 'import' in them fails — import's origin file is defined in terms of
the CLI's file argument (spec.md §4.5).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if evalExpr != "" {
			return runInline(evalExpr)
		}
		if len(args) != 1 {
			return fmt.Errorf("either provide a file path or use -e for inline code")
		}
		return runScript(args[0], "")
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
}

// runScript reads filename, parses it, and evaluates it with a module
// loader rooted at the file's own directory. A non-empty inline carries
// source text that did not come from filename (unused here; see
// runInline) — the parameter exists so root.go's bare-file shorthand can
// share this function.
func runScript(filename, _ string) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return evaluate(string(content), filename, filename)
}

// runInline evaluates source with no backing file. import is unsupported
// in this mode since spec.md §4.5 defines the origin file from argv[1].
func runInline(source string) error {
	return evaluate(source, "<eval>", "")
}

func evaluate(source, filename, originFile string) error {
	l := lexer.New(source)
	p := parser.New(l)
	program, err := p.ParseProgram()
	if err != nil {
		return reportError(err, source, filename)
	}

	if dumpAST {
		fmt.Println("AST:")
		fmt.Println(program.String())
		fmt.Println()
	}

	var loader eval.ModuleLoader
	if originFile != "" {
		l, err := module.NewFromOrigin(originFile)
		if err != nil {
			return fmt.Errorf("failed to resolve module search path: %w", err)
		}
		loader = l
	}

	interp := eval.New(os.Stdout, loader)
	env := eval.NewGlobalEnvironment()

	if verbose {
		fmt.Fprintf(os.Stderr, "running %s\n", filename)
	}

	if err := interp.Run(env, program, false); err != nil {
		return reportError(err, source, filename)
	}
	return nil
}

func reportError(err error, source, filename string) error {
	if evalErr, ok := err.(*errors.EvalError); ok {
		evalErr.WithSource(source, filename)
		fmt.Fprintln(os.Stderr, evalErr.Format(true))
		return fmt.Errorf("execution failed")
	}
	fmt.Fprintln(os.Stderr, err)
	return fmt.Errorf("execution failed")
}
