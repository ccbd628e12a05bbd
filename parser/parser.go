package parser

import (
	"fmt"

	"lambda/lexer"
)

// MaxNesting bounds how deeply factors may nest, e.g. "((((1))))" or
// "!!!!x", so that hostile input fails with a SyntaxError instead of
// exhausting the goroutine stack.
const MaxNesting = 1000

type Parser struct {
	filename string
	tokens   []lexer.Token
	curr     int // how many we have consumed.
	depth    int // factors currently being parsed
}

// ====
// init
// ====

func New(fn string, tokens []lexer.Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != lexer.EOF {
		eof := lexer.Token{Kind: lexer.EOF}
		if len(tokens) > 0 {
			last := tokens[len(tokens)-1]
			eof.Offset = last.Offset + len(last.Lexeme)
			eof.Line = last.Line
			eof.Column = last.Column + len(last.Lexeme)
		}
		tokens = append(tokens[:len(tokens):len(tokens)], eof)
	}
	return &Parser{
		filename: fn,
		tokens:   tokens,
		curr:     0,
	}
}

// Parse parses exactly one statement out of tokens.
func Parse(tokens []lexer.Token) (Node, error) {
	return New("", tokens).Parse()
}

// =====
// utils
// =====

// consume consumes one token
func (p *Parser) consume() lexer.Token {
	if !p.isAtEnd() {
		p.curr++
	}
	return p.previous()
}

// previous returns the most recently consumed token
func (p *Parser) previous() lexer.Token { return p.tokens[p.curr-1] }

// peek returns the token to be consumed
func (p *Parser) peek() lexer.Token { return p.tokens[p.curr] }

// isAtEnd returns true if the current token is an EOF token
func (p *Parser) isAtEnd() bool { return p.peek().Kind == lexer.EOF }

// check returns if the peek token matches the given kind and lexemes
func (p *Parser) check(kind lexer.TokenKind, lexemes ...string) bool {
	return p.peek().Is(kind, lexemes...)
}

// match consumes the token if it matches
func (p *Parser) match(kind lexer.TokenKind, lexemes ...string) bool {
	if p.check(kind, lexemes...) {
		p.consume()
		return true
	}
	return false
}

// ===========
// entry point
// ===========
//
//   statement   → functionDef | expression
//   functionDef → "def" IDENT "(" params? ")" ":" expression
//   expression  → term ( ( ARITH_OP | COMPARE_OP | LOGICAL_OP ) term )*
//   term        → factor ( ( "*" | "/" | "%" ) factor )*
//   factor      → NUMBER | BOOLEAN
//               | IDENT call*
//               | "(" expression ")" call*
//               | "!" factor
//               | "lambda" params? ":" expression
//               | "if" expression ":" expression "else" ":" expression
//   call        → "(" ( expression ( "," expression )* )? ")"
//   params      → IDENT ( "," IDENT )*
//
// There are only two precedence tiers: "*", "/" and "%" bind tighter
// than everything else, and "+", "-", comparisons and "&&"/"||" all
// share one left-associative tier.

func (p *Parser) Parse() (node Node, err error) {
	defer func() {
		if rv := recover(); rv != nil {
			if e, ok := rv.(*SyntaxError); ok {
				node = nil
				err = e
				return
			}
			panic(rv)
		}
	}()
	node = p.statement()
	if !p.isAtEnd() {
		p.error("end of input")
	}
	return node, nil
}

func (p *Parser) statement() Node {
	if p.check(lexer.KEYWORD, "def") {
		return p.functionDef()
	}
	return p.expression()
}

func (p *Parser) functionDef() Node {
	p.consume() // the 'def' token
	name := p.expect("function name", lexer.IDENTIFIER)
	p.expect("(", lexer.LEFT_PAREN)
	var params []string
	if p.check(lexer.IDENTIFIER) {
		params = p.params()
	}
	p.expect(")", lexer.RIGHT_PAREN)
	p.expect(":", lexer.COLON)
	body := p.expression()
	return &FunctionDef{Name: name.Lexeme, Params: params, Body: body}
}

func (p *Parser) params() []string {
	params := []string{p.expect("parameter name", lexer.IDENTIFIER).Lexeme}
	for p.match(lexer.COMMA) {
		params = append(params, p.expect("parameter name", lexer.IDENTIFIER).Lexeme)
	}
	return params
}

// ==================
// expression parsing
// ==================

func (p *Parser) expression() Node {
	expr := p.term()
	for p.check(lexer.ARITH_OP) || p.check(lexer.COMPARE_OP) || p.check(lexer.LOGICAL_OP) {
		op := p.consume()
		expr = &BinaryOp{Left: expr, Operator: op.Lexeme, Right: p.term()}
	}
	return expr
}

func (p *Parser) term() Node {
	expr := p.factor()
	for p.check(lexer.ARITH_OP, "*", "/", "%") {
		op := p.consume()
		expr = &BinaryOp{Left: expr, Operator: op.Lexeme, Right: p.factor()}
	}
	return expr
}

func (p *Parser) factor() Node {
	// every recursive production passes through here
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > MaxNesting {
		p.error(fmt.Sprintf("at most %d nested expressions", MaxNesting))
	}

	tok := p.peek()
	switch {
	case tok.Kind == lexer.NUMBER:
		n, ok := tok.Literal.(int64)
		if !ok {
			p.error("number literal")
		}
		p.consume()
		return &NumberLiteral{Value: n}
	case tok.Kind == lexer.BOOLEAN:
		b, ok := tok.Literal.(bool)
		if !ok {
			p.error("boolean literal")
		}
		p.consume()
		return &BooleanLiteral{Value: b}
	case tok.Kind == lexer.IDENTIFIER:
		p.consume()
		return p.calls(&Identifier{Name: tok.Lexeme})
	case tok.Kind == lexer.LEFT_PAREN:
		p.consume()
		expr := p.expression()
		p.expect(")", lexer.RIGHT_PAREN)
		return p.calls(expr)
	case tok.Kind == lexer.NOT:
		p.consume()
		return &UnaryOp{Operator: tok.Lexeme, Operand: p.factor()}
	case tok.Is(lexer.KEYWORD, "lambda"):
		return p.lambda()
	case tok.Is(lexer.KEYWORD, "if"):
		return p.conditional()
	}
	p.error("expression")
	return nil
}

func (p *Parser) lambda() Node {
	p.consume() // the 'lambda' token
	var params []string
	if p.check(lexer.IDENTIFIER) {
		params = p.params()
	}
	p.expect(":", lexer.COLON)
	return &Lambda{Params: params, Body: p.expression()}
}

func (p *Parser) conditional() Node {
	p.consume() // the 'if' token
	cond := p.expression()
	p.expect(":", lexer.COLON)
	then := p.expression()
	p.expect("else", lexer.KEYWORD, "else")
	p.expect(":", lexer.COLON)
	return &Conditional{Condition: cond, Then: then, Else: p.expression()}
}

// calls wraps callee in one FunctionCall per argument list that follows,
// so f(x)(y) becomes ((f(x))(y)).
func (p *Parser) calls(callee Node) Node {
	for p.match(lexer.LEFT_PAREN) {
		args := []Node{}
		if !p.check(lexer.RIGHT_PAREN) {
			args = append(args, p.expression())
			for p.match(lexer.COMMA) {
				args = append(args, p.expression())
			}
		}
		p.expect(")", lexer.RIGHT_PAREN)
		callee = &FunctionCall{Callee: callee, Args: args}
	}
	return callee
}
