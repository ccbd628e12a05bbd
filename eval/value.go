package eval

import (
	"bytes"
	"strconv"
	"strings"

	"lambda/parser"
)

type ValueKind uint8

const (
	_ = ValueKind(iota)
	VT_INTEGER
	VT_BOOLEAN
	VT_CLOSURE
)

func (k ValueKind) String() string {
	switch k {
	case VT_INTEGER:
		return "Integer"
	case VT_BOOLEAN:
		return "Boolean"
	case VT_CLOSURE:
		return "Closure"
	}
	return "ValueKind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a runtime result: exactly one of Integer, Boolean or *Closure.
// Nothing is ever coerced from one kind to another.
type Value interface {
	Kind() ValueKind
	String() string
}

type Integer int64
type Boolean bool

// Closure pairs a function body with the environment it was created in.
// The body belongs to the AST; the environment may be shared with other
// closures created in the same scope.
type Closure struct {
	Name   string // empty for lambdas
	Params []string
	Body   parser.Node
	Env    *Environment
}

func (Integer) Kind() ValueKind  { return VT_INTEGER }
func (Boolean) Kind() ValueKind  { return VT_BOOLEAN }
func (*Closure) Kind() ValueKind { return VT_CLOSURE }

func (v Integer) String() string { return strconv.FormatInt(int64(v), 10) }

// String renders booleans the way they are written in source.
func (v Boolean) String() string {
	if v {
		return "True"
	}
	return "False"
}

func (c *Closure) String() string {
	var buf bytes.Buffer
	if c.Name == "" {
		buf.WriteString("<lambda")
		if len(c.Params) > 0 {
			buf.WriteString(" ")
			buf.WriteString(strings.Join(c.Params, ", "))
		}
	} else {
		buf.WriteString("<function ")
		buf.WriteString(c.Name)
		buf.WriteString("(")
		buf.WriteString(strings.Join(c.Params, ", "))
		buf.WriteString(")")
	}
	buf.WriteString(">")
	return buf.String()
}
