package parser

import (
	"fmt"

	"lambda/lexer"
)

// SyntaxError is the first structural mismatch met by the parser. We use
// it internally as a panic value to unwind out of the descent; Parse
// recovers it and hands it back as an ordinary error.
type SyntaxError struct {
	Filename string
	Expected string
	Found    lexer.Token
}

func (e *SyntaxError) Error() string { return e.String() }
func (e *SyntaxError) String() string {
	return fmt.Sprintf("%s:%d:%d: expected %s, found %s",
		e.Filename, e.Found.Line, e.Found.Column, e.Expected, e.Found)
}

// Offset is the byte offset of the offending token.
func (e *SyntaxError) Offset() int { return e.Found.Offset }

func (p *Parser) error(expected string) {
	panic(&SyntaxError{
		Filename: p.filename,
		Expected: expected,
		Found:    p.peek(),
	})
}

// expect consumes a token of the given kind (and lexeme, if given) or
// fails with expected as the description.
func (p *Parser) expect(expected string, kind lexer.TokenKind, lexemes ...string) lexer.Token {
	if !p.check(kind, lexemes...) {
		p.error(expected)
	}
	return p.consume()
}
