// Package eval implements the tree-walking evaluator: it turns a parsed
// Program into output and environment mutations, and drives user-defined
// function and class/method dispatch.
package eval

import (
	"io"

	"github.com/brnstm-lang/brnstm/internal/ast"
	"github.com/brnstm-lang/brnstm/internal/environment"
)

// ModuleLoader resolves an import path to a parsed Program. internal/module
// implements this; eval only depends on the interface so the two packages
// don't form an import cycle.
type ModuleLoader interface {
	Load(path string) (*ast.Program, error)
}

// Interpreter holds the pieces of evaluator state that outlive any single
// call: where built-in output goes, and how `import` resolves paths.
type Interpreter struct {
	Out    io.Writer
	Loader ModuleLoader
}

// New creates an Interpreter writing built-in output to out.
func New(out io.Writer, loader ModuleLoader) *Interpreter {
	return &Interpreter{Out: out, Loader: loader}
}

// NewGlobalEnvironment creates an Environment with print, println, range
// and range_step installed.
func NewGlobalEnvironment() *environment.Environment {
	env := environment.New()
	installBuiltins(env)
	return env
}

// Run evaluates a top-level Program against env. importing is false for
// the program the CLI was invoked on; an imported file's statements are
// evaluated by evalImport with importing set to true.
func (interp *Interpreter) Run(env *environment.Environment, program *ast.Program, importing bool) error {
	return interp.evalStatements(env, program.Statements, importing)
}

func (interp *Interpreter) evalStatements(env *environment.Environment, stmts []ast.Statement, importing bool) error {
	for _, s := range stmts {
		if err := interp.evalStatement(env, s, importing); err != nil {
			return err
		}
	}
	return nil
}
