package parser

// Node is one of the AST variants below. The set is closed: node() is
// unexported so that no other package can add a variant.
type Node interface {
	String() string
	node()
}

type (
	NumberLiteral struct {
		Value int64
	}

	BooleanLiteral struct {
		Value bool
	}

	Identifier struct {
		Name string
	}

	// BinaryOp covers the arithmetic, comparison and logical operators.
	BinaryOp struct {
		Left     Node
		Operator string
		Right    Node
	}

	UnaryOp struct {
		Operator string
		Operand  Node
	}

	Lambda struct {
		Params []string
		Body   Node
	}

	FunctionCall struct {
		Callee Node
		Args   []Node
	}

	FunctionDef struct {
		Name   string
		Params []string
		Body   Node
	}

	Conditional struct {
		Condition Node
		Then      Node
		Else      Node
	}
)

func (*NumberLiteral) node()  {}
func (*BooleanLiteral) node() {}
func (*Identifier) node()     {}
func (*BinaryOp) node()       {}
func (*UnaryOp) node()        {}
func (*Lambda) node()         {}
func (*FunctionCall) node()   {}
func (*FunctionDef) node()    {}
func (*Conditional) node()    {}
