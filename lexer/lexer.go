package lexer

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

//go:generate stringer -type=TokenKind

type TokenKind uint8

const (
	_ = TokenKind(iota)
	// literals
	NUMBER
	BOOLEAN
	// lambda, if, else, def
	KEYWORD
	IDENTIFIER
	// operators
	ARITH_OP   // + - * / %
	COMPARE_OP // == != < > <= >=
	LOGICAL_OP // && ||
	NOT        // !
	// punctuation
	LEFT_PAREN
	RIGHT_PAREN
	COMMA
	COLON
	// meta
	EOF
)

var keywords = map[string]bool{
	"lambda": true,
	"if":     true,
	"else":   true,
	"def":    true,
}

var booleans = map[string]bool{
	"True":  true,
	"False": false,
}

type Token struct {
	Kind    TokenKind
	Lexeme  string
	Literal interface{} // int64 for NUMBER, bool for BOOLEAN
	Offset  int         // byte offset into the source
	Line    int
	Column  int // in runes
}

func (t Token) String() string {
	if t.Kind == EOF {
		return "end of input"
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Lexeme)
}

// Is reports whether the token is of the given kind and, if lexemes are
// given, whether its lexeme is one of them.
func (t Token) Is(kind TokenKind, lexemes ...string) bool {
	if t.Kind != kind {
		return false
	}
	if len(lexemes) == 0 {
		return true
	}
	for _, s := range lexemes {
		if t.Lexeme == s {
			return true
		}
	}
	return false
}

// Error is a lexing failure. Scanning stops at the first one.
type Error struct {
	Filename string
	Char     rune
	Offset   int
	Line     int
	Column   int
	Message  string
}

func (e *Error) Error() string { return e.String() }
func (e *Error) String() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Line, e.Column, e.Message)
}

type Lexer struct {
	Filename string  // filename
	source   string  // the complete source code
	Tokens   []Token // list of tokens produced
	current  int     // where are we in the input?
	line     int     // line and column positions
	column   int     // NB: column position is in terms of runes
	start    int     // the first char of the lexeme being scanned
	startLn  int     // starting line number
	startCol int     // starting col number
	err      *Error  // the first error, which stops scanning
}

func New(filename string, source string) *Lexer {
	return &Lexer{
		Filename: filename,
		source:   source,
		Tokens:   []Token{},
		line:     1,
		column:   1,
		startLn:  1,
		startCol: 1,
	}
}

// Tokenize scans source in one go, returning either every token
// (terminated by EOF) or the first lexing error.
func Tokenize(source string) ([]Token, error) {
	return New("", source).ScanTokens()
}

// utils

// isAtEnd lets us know if we've reached the end of the input.
func (l *Lexer) isAtEnd() bool { return l.current >= len(l.source) }

// advance consumes one rune and returns the consumed rune.
// current is incremented by the width of the returned rune.
func (l *Lexer) advance() rune {
	r, w := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += w
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

// peek is the same as advance, but does not advance .current.
func (l *Lexer) peek() rune {
	if l.err != nil || l.isAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.current:])
	return r
}

func (l *Lexer) match(ch rune) bool {
	if l.peek() != ch {
		return false
	}
	l.advance()
	return true
}

// public api, actual lexing

func (l *Lexer) ScanTokens() ([]Token, error) {
	for l.err == nil && !l.isAtEnd() {
		l.start = l.current
		l.scanToken()
	}
	if l.err != nil {
		return nil, l.err
	}
	l.Tokens = append(l.Tokens, Token{
		Kind:   EOF,
		Offset: l.current,
		Line:   l.line,
		Column: l.column,
	})
	return l.Tokens, nil
}

func (l *Lexer) scanToken() {
	ch := l.advance()
	switch ch {
	// Ignore whitespace
	case ' ', '\t', '\r', '\n':
		for isWhiteSpace(l.peek()) {
			l.advance()
		}
		l.ignore()
	case '#':
		for l.peek() != '\n' && !l.isAtEnd() {
			l.advance()
		}
		l.ignore()
	case '(':
		l.emit(LEFT_PAREN)
	case ')':
		l.emit(RIGHT_PAREN)
	case ',':
		l.emit(COMMA)
	case ':':
		l.emit(COLON)
	case '+', '-', '*', '/', '%':
		l.emit(ARITH_OP)
	case '!':
		if l.match('=') {
			l.emit(COMPARE_OP)
		} else {
			l.emit(NOT)
		}
	case '=':
		if l.match('=') {
			l.emit(COMPARE_OP)
		} else {
			l.errorAt(ch, "unexpected character %q", ch)
		}
	case '<', '>':
		l.match('=')
		l.emit(COMPARE_OP)
	case '&':
		if l.match('&') {
			l.emit(LOGICAL_OP)
		} else {
			l.errorAt(ch, "unexpected character %q", ch)
		}
	case '|':
		if l.match('|') {
			l.emit(LOGICAL_OP)
		} else {
			l.errorAt(ch, "unexpected character %q", ch)
		}
	default:
		if isDigit(ch) {
			l.lexNumber()
		} else if isAlpha(ch) {
			l.lexIdentifier()
		} else if ch == utf8.RuneError {
			l.errorAt(ch, "invalid utf8 input at byte %d", l.start)
		} else {
			l.errorAt(ch, "unexpected character %q", ch)
		}
	}
}

// lexIdentifier scans a whole word before deciding between boolean,
// keyword and identifier, so that e.g. "lambda1" stays an identifier.
func (l *Lexer) lexIdentifier() {
	for isIdentifier(l.peek()) {
		l.advance()
	}
	word := l.source[l.start:l.current]
	if b, ok := booleans[word]; ok {
		l.emitLiteral(BOOLEAN, b)
	} else if keywords[word] {
		l.emit(KEYWORD)
	} else {
		l.emit(IDENTIFIER)
	}
}

func (l *Lexer) lexNumber() {
	// match a run of digits
	for isDigit(l.peek()) {
		l.advance()
	}
	num, err := strconv.ParseInt(l.source[l.start:l.current], 10, 64)
	if err != nil {
		l.errorAt(rune(l.source[l.start]), "integer literal %s out of range", l.source[l.start:l.current])
		return
	}
	l.emitLiteral(NUMBER, num)
}

// ignore ignores the currently scanned lexeme
func (l *Lexer) ignore() {
	l.start = l.current
	l.startLn = l.line
	l.startCol = l.column
}

func (l *Lexer) emit(kind TokenKind) { l.emitLiteral(kind, nil) }
func (l *Lexer) emitLiteral(kind TokenKind, lit interface{}) {
	l.Tokens = append(l.Tokens, Token{
		Kind:    kind,
		Lexeme:  l.source[l.start:l.current],
		Literal: lit,
		Offset:  l.start,
		Line:    l.startLn,
		Column:  l.startCol,
	})
	l.ignore()
}

// errorAt records an error located at the start of the current lexeme.
func (l *Lexer) errorAt(ch rune, s string, args ...interface{}) {
	l.err = &Error{
		Filename: l.Filename,
		Char:     ch,
		Offset:   l.start,
		Line:     l.startLn,
		Column:   l.startCol,
		Message:  fmt.Sprintf(s, args...),
	}
}

func isWhiteSpace(ch rune) bool { return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' }
func isIdentifier(ch rune) bool { return isAlpha(ch) || isDigit(ch) }
func isAlpha(ch rune) bool      { return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') }
func isDigit(ch rune) bool      { return '0' <= ch && ch <= '9' }
