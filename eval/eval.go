package eval

// Implements the actual evaluator for the language.

import "lambda/parser"

// DefaultMaxDepth is the number of nested closure calls allowed when no
// other limit is given.
const DefaultMaxDepth = 1000

// MaxDepthLimit is the highest call depth a Context accepts. Deeper
// recursion would overflow the goroutine stack before the guard fired.
const MaxDepthLimit = 100000

// Context evaluates nodes. It carries no bindings of its own, only the
// bookkeeping for the recursion guard, so one Context may be reused for
// any number of evaluations. It is not safe for concurrent use.
type Context struct {
	maxDepth int
	depth    int // closure calls currently in flight
}

// NewContext returns a Context allowing maxDepth nested calls. A
// non-positive maxDepth selects DefaultMaxDepth, and one above
// MaxDepthLimit is clamped to it.
func NewContext(maxDepth int) *Context {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	} else if maxDepth > MaxDepthLimit {
		maxDepth = MaxDepthLimit
	}
	return &Context{maxDepth: maxDepth}
}

// MaxDepth returns the call depth limit.
func (ctx *Context) MaxDepth() int { return ctx.maxDepth }

// Eval evaluates node against env with a fresh Context.
func Eval(node parser.Node, env *Environment) (Value, error) {
	return NewContext(DefaultMaxDepth).Eval(node, env)
}

func (ctx *Context) Eval(node parser.Node, env *Environment) (Value, error) {
	switch node := node.(type) {
	case *parser.NumberLiteral:
		return Integer(node.Value), nil
	case *parser.BooleanLiteral:
		return Boolean(node.Value), nil
	case *parser.Identifier:
		return env.Lookup(node.Name)
	case *parser.BinaryOp:
		// Both operands are always evaluated, && and || included.
		left, err := ctx.Eval(node.Left, env)
		if err != nil {
			return nil, err
		}
		right, err := ctx.Eval(node.Right, env)
		if err != nil {
			return nil, err
		}
		return evalBinary(node.Operator, left, right)
	case *parser.UnaryOp:
		operand, err := ctx.Eval(node.Operand, env)
		if err != nil {
			return nil, err
		}
		return evalUnary(node.Operator, operand)
	case *parser.Lambda:
		return &Closure{Params: node.Params, Body: node.Body, Env: env}, nil
	case *parser.FunctionDef:
		// Bound before returning, in the same scope the closure captures,
		// so the body can refer to the function by name.
		fn := &Closure{Name: node.Name, Params: node.Params, Body: node.Body, Env: env}
		env.Define(node.Name, fn)
		return fn, nil
	case *parser.FunctionCall:
		return ctx.evalCall(node, env)
	case *parser.Conditional:
		cond, err := ctx.Eval(node.Condition, env)
		if err != nil {
			return nil, err
		}
		b, ok := cond.(Boolean)
		if !ok {
			return nil, typeMismatch("if", cond)
		}
		if b {
			return ctx.Eval(node.Then, env)
		}
		return ctx.Eval(node.Else, env)
	}
	return nil, newError(InternalError, "cannot evaluate node %T", node)
}

func (ctx *Context) evalCall(node *parser.FunctionCall, env *Environment) (Value, error) {
	callee, err := ctx.Eval(node.Callee, env)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(*Closure)
	if !ok {
		return nil, newError(NotCallable, "%s value %s is not callable", callee.Kind(), callee)
	}
	args := make([]Value, 0, len(node.Args))
	for _, arg := range node.Args {
		v, err := ctx.Eval(arg, env)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return ctx.Apply(fn, args...)
}

// Apply calls fn with args in a new scope enclosed by the scope fn was
// created in, not the caller's.
func (ctx *Context) Apply(fn *Closure, args ...Value) (Value, error) {
	if len(args) != len(fn.Params) {
		return nil, arityError(fn, len(args))
	}
	if ctx.depth >= ctx.maxDepth {
		return nil, newError(RecursionLimitExceeded, "maximum call depth of %d exceeded", ctx.maxDepth)
	}
	ctx.depth++
	defer func() { ctx.depth-- }()

	scope := NewEnvironment(fn.Env)
	for i, param := range fn.Params {
		scope.Define(param, args[i])
	}
	return ctx.Eval(fn.Body, scope)
}

// =========
// Operators
// =========

func evalBinary(op string, left Value, right Value) (Value, error) {
	switch op {
	case "+", "-", "*", "/", "%":
		l, lok := left.(Integer)
		r, rok := right.(Integer)
		if !lok || !rok {
			return nil, typeMismatch(op, left, right)
		}
		return evalArith(op, l, r)
	case "&&", "||":
		l, lok := left.(Boolean)
		r, rok := right.(Boolean)
		if !lok || !rok {
			return nil, typeMismatch(op, left, right)
		}
		if op == "&&" {
			return l && r, nil
		}
		return l || r, nil
	case "==", "!=", "<", ">", "<=", ">=":
		return evalCompare(op, left, right)
	}
	return nil, newError(InternalError, "unknown binary operator %s", op)
}

// evalArith uses Go's integer semantics: / truncates toward zero and %
// takes the sign of the dividend.
func evalArith(op string, l, r Integer) (Value, error) {
	switch op {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/":
		if r == 0 {
			return nil, newError(DivisionByZero, "division by zero")
		}
		return l / r, nil
	case "%":
		if r == 0 {
			return nil, newError(DivisionByZero, "integer modulo by zero")
		}
		return l % r, nil
	}
	return nil, newError(InternalError, "unknown arithmetic operator %s", op)
}

func evalCompare(op string, left, right Value) (Value, error) {
	var cmp int
	switch l := left.(type) {
	case Integer:
		r, ok := right.(Integer)
		if !ok {
			return nil, typeMismatch(op, left, right)
		}
		cmp = compareInts(int64(l), int64(r))
	case Boolean:
		r, ok := right.(Boolean)
		if !ok {
			return nil, typeMismatch(op, left, right)
		}
		cmp = compareInts(boolToInt(bool(l)), boolToInt(bool(r)))
	default:
		return nil, typeMismatch(op, left, right)
	}
	switch op {
	case "==":
		return Boolean(cmp == 0), nil
	case "!=":
		return Boolean(cmp != 0), nil
	case "<":
		return Boolean(cmp < 0), nil
	case ">":
		return Boolean(cmp > 0), nil
	case "<=":
		return Boolean(cmp <= 0), nil
	case ">=":
		return Boolean(cmp >= 0), nil
	}
	return nil, newError(InternalError, "unknown comparison operator %s", op)
}

func evalUnary(op string, operand Value) (Value, error) {
	if op != "!" {
		return nil, newError(InternalError, "unknown unary operator %s", op)
	}
	b, ok := operand.(Boolean)
	if !ok {
		return nil, typeMismatch(op, operand)
	}
	return !b, nil
}

// =====
// Utils
// =====

func compareInts(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// boolToInt orders False before True.
func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
