package eval

import (
	"github.com/brnstm-lang/brnstm/internal/ast"
	"github.com/brnstm-lang/brnstm/internal/environment"
	"github.com/brnstm-lang/brnstm/internal/errors"
	"github.com/brnstm-lang/brnstm/internal/lexer"
	"github.com/brnstm-lang/brnstm/internal/value"
)

// superInstanceMarker records, in a subclass init's local environment,
// the parent instance super(args) produced — instantiate reads it back
// after the init body finishes to install the "super" field (see
// evalSuperConstructorCall). Its `$`-prefix can never collide with a
// real identifier.
const superInstanceMarker = "$superInstance"

// isReservedName reports whether name cannot be used as a class, field,
// or method name: either a lexer keyword, or "_", the discard
// identifier — reserved the same way "this"/"super" are, even though
// the lexer itself still lexes it as a plain IDENT (it must, so it can
// keep working as a normal identifier everywhere else, e.g. as a
// destructuring target).
func isReservedName(name string) bool {
	return name == "_" || lexer.LookupIdent(name) != lexer.IDENT
}

func (interp *Interpreter) evalClassDef(env *environment.Environment, e *ast.ClassDefExpression) (value.Value, error) {
	uc := e.Class
	if isReservedName(uc.Name) {
		return nil, errors.NewAt(errors.KeywordError, e.Pos(), "'%s' is a reserved word and cannot name a class", uc.Name)
	}

	fields := make(map[string]*value.Field, len(uc.Fields))
	for _, fd := range uc.Fields {
		if isReservedName(fd.Name) {
			return nil, errors.NewAt(errors.KeywordError, e.Pos(), "'%s' is a reserved word and cannot name a field", fd.Name)
		}
		def := value.Value(value.Null{})
		if fd.Default != nil {
			v, err := interp.evalExpression(env, fd.Default, false)
			if err != nil {
				return nil, err
			}
			def = v
		}
		fields[fd.Name] = &value.Field{IsPrivate: fd.IsPrivate, Value: def}
	}

	methods := make(map[string]ast.ClassMethodDecl, len(uc.Methods))
	for _, m := range uc.Methods {
		if isReservedName(m.Name) {
			return nil, errors.NewAt(errors.KeywordError, e.Pos(), "'%s' is a reserved word and cannot name a method", m.Name)
		}
		methods[m.Name] = m
	}

	proto := value.Object{
		ClassName:   uc.Name,
		Fields:      fields,
		Init:        uc.Init,
		Methods:     methods,
		ParentClass: uc.ParentClass,
	}
	env.Set(uc.Name, proto)
	return proto, nil
}

func (interp *Interpreter) evalObjectCreation(env *environment.Environment, e *ast.ObjectCreationExpression, importing bool) (value.Value, error) {
	target, ok := env.Get(e.ClassName)
	if !ok {
		return nil, errors.NewAt(errors.NameError, e.Pos(), "'%s' is not defined", e.ClassName)
	}
	proto, ok := target.(value.Object)
	if !ok {
		return nil, errors.NewAt(errors.TypeError, e.Pos(), "'%s' is not a class", e.ClassName)
	}
	args, err := interp.evalExpressions(env, e.Args, importing)
	if err != nil {
		return nil, err
	}
	return interp.instantiate(env, proto, args, importing)
}

// instantiate runs proto's constructor and assembles the resulting
// instance. A class with no init ignores any constructor arguments and
// is built straight from its field defaults — there is no init to
// reject a wrong arity against. A class with an init runs the body in a
// fresh environment (not a clone of the caller's — init bodies only see
// built-ins, the parent class binding under `super`, the constructor's
// own parameters, and the declared field defaults) and then reads each
// declared field's final value back out of that environment by name.
func (interp *Interpreter) instantiate(env *environment.Environment, proto value.Object, args []value.Value, importing bool) (value.Object, error) {
	fields := proto.CloneFields()

	if proto.Init == nil {
		return value.Object{
			ClassName:   proto.ClassName,
			Fields:      fields,
			Init:        nil,
			Methods:     proto.Methods,
			ParentClass: proto.ParentClass,
		}, nil
	}

	if len(args) != len(proto.Init.Parameters) {
		return value.Object{}, errors.New(errors.ArityError, "'%s' init expects %d argument(s), got %d", proto.ClassName, len(proto.Init.Parameters), len(args))
	}

	local := environment.New()
	installBuiltins(local)

	if proto.ParentClass != "" {
		parentTarget, ok := env.Get(proto.ParentClass)
		if !ok {
			return value.Object{}, errors.New(errors.NameError, "'%s' is not defined", proto.ParentClass)
		}
		parentProto, ok := parentTarget.(value.Object)
		if !ok {
			return value.Object{}, errors.New(errors.TypeError, "'%s' is not a class", proto.ParentClass)
		}
		local.Set("super", parentProto)
	}

	for i, p := range proto.Init.Parameters {
		local.Set(p, args[i])
	}
	for name, f := range fields {
		local.Set(name, f.Value)
	}

	if err := interp.evalStatements(local, proto.Init.Body, importing); err != nil {
		return value.Object{}, err
	}

	out := make(map[string]*value.Field, len(fields))
	for name, f := range fields {
		v, _ := local.Get(name)
		out[name] = &value.Field{IsPrivate: f.IsPrivate, Value: v}
	}

	if marker, ok := local.Get(superInstanceMarker); ok {
		if parentInstance, ok := marker.(value.Object); ok {
			for name, f := range parentInstance.Fields {
				v, ok := local.Get(name)
				if !ok {
					v = f.Value
				}
				out[name] = &value.Field{IsPrivate: f.IsPrivate, Value: v}
			}
			out["super"] = &value.Field{IsPrivate: true, Value: parentInstance}
		}
	}

	return value.Object{
		ClassName:   proto.ClassName,
		Fields:      out,
		Init:        proto.Init,
		Methods:     proto.Methods,
		ParentClass: proto.ParentClass,
	}, nil
}

// evalSuperConstructorCall implements `super(args)` inside a subclass's
// init: env is the subclass init's own local environment (evalCall
// passes the environment it was given straight through), so instantiating
// the parent here and recording it under superInstanceMarker lets
// instantiate find it once the init body finishes. A subclass whose init
// never calls super only ever sees its own declared fields — the parent
// is simply never instantiated.
func (interp *Interpreter) evalSuperConstructorCall(env *environment.Environment, parentProto value.Object, args []value.Value, importing bool) (value.Value, error) {
	parentInstance, err := interp.instantiate(env, parentProto, args, importing)
	if err != nil {
		return nil, err
	}
	env.Set(superInstanceMarker, parentInstance)
	return value.Null{}, nil
}

// evalFieldAccess requires e.Receiver to already be bound to an Object —
// true for "this" only inside a method body (instantiate's init
// environment never binds "this"), for "super" only once a subclass
// constructor has chained to its parent, and for any plain variable
// holding an instance.
func (interp *Interpreter) evalFieldAccess(env *environment.Environment, e *ast.FieldAccessExpression) (value.Value, error) {
	recv, ok := env.Get(e.Receiver)
	if !ok {
		return nil, errors.NewAt(errors.NameError, e.Pos(), "'%s' is not defined", e.Receiver)
	}
	obj, ok := recv.(value.Object)
	if !ok {
		return nil, errors.NewAt(errors.TypeError, e.Pos(), "'%s' is not an object", e.Receiver)
	}
	field, ok := obj.Fields[e.Field]
	if !ok {
		return nil, errors.NewAt(errors.NameError, e.Pos(), "'%s' has no field '%s'", e.Receiver, e.Field)
	}
	if field.IsPrivate && e.Receiver != "this" {
		return nil, errors.NewAt(errors.TypeError, e.Pos(), "'%s' is a private field", e.Field)
	}
	return field.Value, nil
}

// evalMethodCall resolves Method directly on Receiver's own class — there
// is no automatic walk up ParentClass for a method the receiver's class
// never declared. A purely-inherited, non-overridden method is only
// reachable through an explicit super.method(...) call, which works for
// free here: "super" is just another Object-valued binding (a private
// field flattened into the caller's local environment, see instantiate),
// so Receiver == "super" takes the same path as any other receiver name.
func (interp *Interpreter) evalMethodCall(env *environment.Environment, e *ast.MethodCallExpression, importing bool) (value.Value, error) {
	recv, ok := env.Get(e.Receiver)
	if !ok {
		return nil, errors.NewAt(errors.NameError, e.Pos(), "'%s' is not defined", e.Receiver)
	}
	obj, ok := recv.(value.Object)
	if !ok {
		return nil, errors.NewAt(errors.TypeError, e.Pos(), "'%s' is not an object", e.Receiver)
	}
	method, ok := obj.Methods[e.Method]
	if !ok {
		return nil, errors.NewAt(errors.NameError, e.Pos(), "'%s' has no method '%s'", obj.ClassName, e.Method)
	}
	if method.IsPrivate && e.Receiver != "this" {
		return nil, errors.NewAt(errors.TypeError, e.Pos(), "'%s' is a private method", e.Method)
	}

	args, err := interp.evalExpressions(env, e.Args, importing)
	if err != nil {
		return nil, err
	}
	if len(args) != len(method.Parameters) {
		return nil, errors.NewAt(errors.ArityError, e.Pos(), "'%s' expects %d argument(s), got %d", e.Method, len(method.Parameters), len(args))
	}

	local := environment.New()
	installBuiltins(local)
	local.Set("this", obj)
	for i, p := range method.Parameters {
		local.Set(p, args[i])
	}
	for name, f := range obj.Fields {
		local.Set(name, f.Value)
	}

	if err := interp.evalStatements(local, method.Body, importing); err != nil {
		return nil, err
	}
	if method.Return == nil {
		return value.Null{}, nil
	}
	return interp.evalExpression(local, method.Return, importing)
}
