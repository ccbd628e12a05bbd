package eval

import (
	"errors"
	"fmt"
)

//go:generate stringer -type=ErrorKind

type ErrorKind uint8

const (
	_ = ErrorKind(iota)
	NameError
	TypeMismatch
	ArityError
	DivisionByZero
	NotCallable
	RecursionLimitExceeded
	// InternalError means the evaluator met a node it does not know.
	InternalError
)

// Error is a runtime failure. It aborts the evaluation in progress; no
// partial result is produced.
type Error struct {
	Kind    ErrorKind
	Message string

	Name     string      // NameError
	Operator string      // TypeMismatch
	Operands []ValueKind // TypeMismatch
	Expected int         // ArityError
	Actual   int         // ArityError
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Message) }

// Is matches any *Error of the same kind, so errors.Is(err, &Error{Kind: k})
// works through wrapping.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of the runtime error in err's chain, or zero if
// there is none.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func nameError(name string) *Error {
	return &Error{
		Kind:    NameError,
		Message: fmt.Sprintf("name '%s' is not defined", name),
		Name:    name,
	}
}

func typeMismatch(op string, operands ...Value) *Error {
	kinds := make([]ValueKind, len(operands))
	for i, v := range operands {
		kinds[i] = v.Kind()
	}
	msg := fmt.Sprintf("unsupported operand kind for %s: %s", op, kinds[0])
	if len(kinds) == 2 {
		msg = fmt.Sprintf("unsupported operand kinds for %s: %s and %s", op, kinds[0], kinds[1])
	}
	return &Error{
		Kind:     TypeMismatch,
		Message:  msg,
		Operator: op,
		Operands: kinds,
	}
}

func arityError(fn *Closure, actual int) *Error {
	return &Error{
		Kind:     ArityError,
		Message:  fmt.Sprintf("%s expected %d arguments but got %d", fn, len(fn.Params), actual),
		Expected: len(fn.Params),
		Actual:   actual,
	}
}

func newError(kind ErrorKind, s string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(s, args...)}
}
