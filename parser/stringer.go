package parser

import (
	"bytes"
	"strconv"
	"strings"
)

// Every binary and unary node is fully parenthesised, so String() makes
// the shape of the tree visible.

func (node *NumberLiteral) String() string { return strconv.FormatInt(node.Value, 10) }
func (node *Identifier) String() string    { return node.Name }

func (node *BooleanLiteral) String() string {
	if node.Value {
		return "True"
	}
	return "False"
}

func (node *BinaryOp) String() string {
	var buf bytes.Buffer
	buf.WriteString("(")
	buf.WriteString(node.Left.String())
	buf.WriteString(" ")
	buf.WriteString(node.Operator)
	buf.WriteString(" ")
	buf.WriteString(node.Right.String())
	buf.WriteString(")")
	return buf.String()
}

func (node *UnaryOp) String() string {
	var buf bytes.Buffer
	buf.WriteString("(")
	buf.WriteString(node.Operator)
	buf.WriteString(node.Operand.String())
	buf.WriteString(")")
	return buf.String()
}

func (node *Lambda) String() string {
	var buf bytes.Buffer
	buf.WriteString("(lambda")
	if len(node.Params) > 0 {
		buf.WriteString(" ")
		buf.WriteString(strings.Join(node.Params, ", "))
	}
	buf.WriteString(": ")
	buf.WriteString(node.Body.String())
	buf.WriteString(")")
	return buf.String()
}

func (node *FunctionCall) String() string {
	var buf bytes.Buffer
	buf.WriteString(node.Callee.String())
	buf.WriteString("(")
	for i, arg := range node.Args {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(arg.String())
	}
	buf.WriteString(")")
	return buf.String()
}

func (node *FunctionDef) String() string {
	var buf bytes.Buffer
	buf.WriteString("def ")
	buf.WriteString(node.Name)
	buf.WriteString("(")
	buf.WriteString(strings.Join(node.Params, ", "))
	buf.WriteString("): ")
	buf.WriteString(node.Body.String())
	return buf.String()
}

func (node *Conditional) String() string {
	var buf bytes.Buffer
	buf.WriteString("(if ")
	buf.WriteString(node.Condition.String())
	buf.WriteString(": ")
	buf.WriteString(node.Then.String())
	buf.WriteString(" else: ")
	buf.WriteString(node.Else.String())
	buf.WriteString(")")
	return buf.String()
}
