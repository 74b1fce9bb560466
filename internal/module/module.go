// Package module implements the interpreter's import resolution policy
// (spec.md §4.5): given an import path and the CLI's entry file, it
// locates, reads, and parses the referenced source into a Program.
//
// This is a direct, renamed-env-var port of the resolution algorithm in
// the original Rust implementation's eval.rs::eval_statement Import arm
// (see DESIGN.md and SPEC_FULL.md §12): a leading-dot path is relative to
// the origin file's parent directory, a path containing '/' is read
// literally, and a bare name is tried next to the origin file first and
// then across each BRNSTM_LIB directory in order.
package module

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/brnstm-lang/brnstm/internal/ast"
	"github.com/brnstm-lang/brnstm/internal/errors"
	"github.com/brnstm-lang/brnstm/internal/lexer"
	"github.com/brnstm-lang/brnstm/internal/parser"
)

// Loader implements eval.ModuleLoader.
type Loader struct {
	OriginDir string   // parent directory of the CLI's entry file
	LibPath   []string // BRNSTM_LIB, split on ':'; nil if unset
}

// NewFromOrigin builds a Loader rooted at originFile's parent directory —
// the "origin file" spec.md §4.5 defines from argv[1]. A leading '.' in
// originFile is first substituted with the current working directory,
// matching spec.md's rule for resolving the origin file itself.
func NewFromOrigin(originFile string) (*Loader, error) {
	if strings.HasPrefix(originFile, ".") {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		originFile = substituteLeadingDot(originFile, wd)
	}

	var libPath []string
	if lib := os.Getenv("BRNSTM_LIB"); lib != "" {
		libPath = strings.Split(lib, ":")
	}

	return &Loader{OriginDir: filepath.Dir(originFile), LibPath: libPath}, nil
}

// Load resolves path per spec.md §4.5's three cases, reads and parses
// whichever candidate opens successfully. Failure to open any candidate
// is an ImportError carrying the last attempted path, per spec.md §4.5.
func (l *Loader) Load(path string) (*ast.Program, error) {
	candidates := l.candidates(path)

	var lastErr error
	var lastPath string
	for _, candidate := range candidates {
		src, err := os.ReadFile(candidate)
		if err != nil {
			lastErr = err
			lastPath = candidate
			continue
		}
		return parseSource(string(src), candidate)
	}

	return nil, errors.New(errors.ImportError, "cannot locate '%s' (last tried %s): %s", path, lastPath, lastErr)
}

// candidates lists the files Load should try, in spec.md §4.5 order. A
// relative or literal import has exactly one candidate; a bare name has
// one candidate next to the origin file, then one per BRNSTM_LIB entry.
func (l *Loader) candidates(path string) []string {
	switch {
	case strings.HasPrefix(path, "."):
		return []string{substituteLeadingDot(path, l.OriginDir)}
	case strings.Contains(path, "/"):
		return []string{path}
	default:
		out := make([]string, 0, 1+len(l.LibPath))
		out = append(out, filepath.Join(l.OriginDir, path))
		for _, dir := range l.LibPath {
			out = append(out, filepath.Join(dir, path))
		}
		return out
	}
}

// substituteLeadingDot replaces the leading '.' of p with base, joining
// the two with a path separator unless p's remainder already supplies
// one (e.g. "./foo.brn" -> base + "/foo.brn", ".foo.brn" -> base + "/foo.brn").
func substituteLeadingDot(p, base string) string {
	rest := p[1:]
	if rest != "" && !strings.HasPrefix(rest, string(filepath.Separator)) && !strings.HasPrefix(rest, "/") {
		rest = string(filepath.Separator) + rest
	}
	return base + rest
}

func parseSource(src, file string) (*ast.Program, error) {
	lx := lexer.New(src)
	p := parser.New(lx)
	program, err := p.ParseProgram()
	if err != nil {
		if evalErr, ok := err.(*errors.EvalError); ok {
			return nil, evalErr.WithSource(src, file)
		}
		return nil, err
	}
	return program, nil
}
