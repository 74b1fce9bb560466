package parser

import (
	"testing"

	"github.com/brnstm-lang/brnstm/internal/ast"
	"github.com/brnstm-lang/brnstm/internal/lexer"
)

func parseExpr(t *testing.T, src string) ast.Expression {
	t.Helper()
	p := New(lexer.New(src))
	expr, err := p.parseExpression()
	if err != nil {
		t.Fatalf("parseExpression(%q) error: %v", src, err)
	}
	return expr
}

func TestParsePrecedence(t *testing.T) {
	expr := parseExpr(t, "1 + 2 * 3")
	op, ok := expr.(*ast.OperationExpression)
	if !ok {
		t.Fatalf("got %T, want *ast.OperationExpression", expr)
	}
	if op.Operator != ast.Plus {
		t.Fatalf("top operator = %v, want Plus", op.Operator)
	}
	rhs, ok := op.RHS.(*ast.OperationExpression)
	if !ok || rhs.Operator != ast.Times {
		t.Fatalf("rhs = %v, want a Times operation", op.RHS)
	}
}

func TestParseComparisonBindsLowerThanSum(t *testing.T) {
	expr := parseExpr(t, "1 + 2 < 4")
	op, ok := expr.(*ast.OperationExpression)
	if !ok || op.Operator != ast.LessThan {
		t.Fatalf("got %v, want top-level LessThan", expr)
	}
	if _, ok := op.LHS.(*ast.OperationExpression); !ok {
		t.Fatalf("lhs = %v, want a Plus operation", op.LHS)
	}
}

func TestParseGroupedExpression(t *testing.T) {
	expr := parseExpr(t, "(1 + 2) * 3")
	op, ok := expr.(*ast.OperationExpression)
	if !ok || op.Operator != ast.Times {
		t.Fatalf("got %v, want top-level Times", expr)
	}
	if _, ok := op.LHS.(*ast.OperationExpression); !ok {
		t.Fatalf("lhs = %v, want a grouped Plus operation", op.LHS)
	}
}

func TestParseCallExpression(t *testing.T) {
	expr := parseExpr(t, "foo(1, 2)")
	call, ok := expr.(*ast.CallExpression)
	if !ok {
		t.Fatalf("got %T, want *ast.CallExpression", expr)
	}
	if call.Function != "foo" || len(call.Args) != 2 {
		t.Fatalf("got %+v", call)
	}
}

func TestParseObjectCreationByCapitalization(t *testing.T) {
	expr := parseExpr(t, "Point(1, 2)")
	oc, ok := expr.(*ast.ObjectCreationExpression)
	if !ok {
		t.Fatalf("got %T, want *ast.ObjectCreationExpression", expr)
	}
	if oc.ClassName != "Point" || len(oc.Args) != 2 {
		t.Fatalf("got %+v", oc)
	}
}

func TestParseIndexExpression(t *testing.T) {
	expr := parseExpr(t, "xs[0]")
	idx, ok := expr.(*ast.IndexExpression)
	if !ok || idx.Name != "xs" {
		t.Fatalf("got %v, want IndexExpression(xs)", expr)
	}
}

func TestParseFieldAccessAndMethodCall(t *testing.T) {
	fa := parseExpr(t, "p.x")
	field, ok := fa.(*ast.FieldAccessExpression)
	if !ok || field.Receiver != "p" || field.Field != "x" {
		t.Fatalf("got %v, want FieldAccessExpression(p.x)", fa)
	}

	mc := parseExpr(t, "p.move(1, 2)")
	method, ok := mc.(*ast.MethodCallExpression)
	if !ok || method.Receiver != "p" || method.Method != "move" || len(method.Args) != 2 {
		t.Fatalf("got %v, want MethodCallExpression(p.move(1,2))", mc)
	}
}

func TestParseCompoundAssignmentExpression(t *testing.T) {
	expr := parseExpr(t, "x += 1")
	pe, ok := expr.(*ast.PrefixExpression)
	if !ok || pe.Name != "x" || pe.Operator != ast.Plus {
		t.Fatalf("got %v, want PrefixExpression(x += 1)", expr)
	}
}

func TestParseListLiteralWithSpread(t *testing.T) {
	expr := parseExpr(t, "[1, *xs, 3]")
	list, ok := expr.(*ast.ListExpression)
	if !ok || len(list.Items) != 3 {
		t.Fatalf("got %v, want a 3-item ListExpression", expr)
	}
	if !list.Items[1].IsSpread {
		t.Fatalf("middle item should be marked IsSpread")
	}
}

func TestParseComprehension(t *testing.T) {
	expr := parseExpr(t, "[x for x in xs]")
	comp, ok := expr.(*ast.ComprehensionExpression)
	if !ok || comp.Var != "x" {
		t.Fatalf("got %v, want ComprehensionExpression", expr)
	}
}

func TestParseEmptyList(t *testing.T) {
	expr := parseExpr(t, "[]")
	list, ok := expr.(*ast.ListExpression)
	if !ok || len(list.Items) != 0 {
		t.Fatalf("got %v, want empty ListExpression", expr)
	}
}

func TestParseClassDefWithExtendsInitFieldsAndMethods(t *testing.T) {
	src := `class Point extends Shape {
		x = 0
		private y
		init(x, y) {
			this.x = x
		}
		dist() {
			return this.x
		}
	}`
	expr := parseExpr(t, src)
	cd, ok := expr.(*ast.ClassDefExpression)
	if !ok {
		t.Fatalf("got %T, want *ast.ClassDefExpression", expr)
	}
	if cd.Class.Name != "Point" || cd.Class.ParentClass != "Shape" {
		t.Fatalf("got %+v", cd.Class)
	}
	if len(cd.Class.Fields) != 2 || !cd.Class.Fields[1].IsPrivate {
		t.Fatalf("fields = %+v", cd.Class.Fields)
	}
	if cd.Class.Init == nil || len(cd.Class.Init.Parameters) != 2 {
		t.Fatalf("init = %+v", cd.Class.Init)
	}
	if len(cd.Class.Methods) != 1 || cd.Class.Methods[0].Name != "dist" {
		t.Fatalf("methods = %+v", cd.Class.Methods)
	}
}

func TestParseClassDuplicateInitErrors(t *testing.T) {
	p := New(lexer.New(`class A { init() {} init() {} }`))
	if _, err := p.parseExpression(); err == nil {
		t.Fatal("expected error for duplicate init")
	}
}

func TestParseUnexpectedTokenErrors(t *testing.T) {
	p := New(lexer.New(`+`))
	if _, err := p.parseExpression(); err == nil {
		t.Fatal("expected error for unexpected leading token")
	}
}
