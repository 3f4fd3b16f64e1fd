// Package lexer breaks ZPM source text into the pieces the parser works on:
// whitespace-separated fields of a single statement, and the individual
// statements of a loop body.
package lexer

import "unicode/utf8"

const eof rune = -1

type lexer struct {
	input string   // The input string to lex
	start int      // The start of the current item in input
	pos   int      // The pos of the cursor in input
	width int      // Width of the last rune lexed
	out   []string // Items lexed so far
}

func newLexer(input string) *lexer {
	return &lexer{input: input}
}

func (l *lexer) run(state lexFn) []string {
	for state != nil {
		state = state(l)
	}
	return l.out
}

func (l *lexer) emit() {
	l.out = append(l.out, l.input[l.start:l.pos])
	l.start = l.pos
}

func (l *lexer) ignore() {
	l.start = l.pos
}

func (l *lexer) next() rune {
	var r rune

	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, l.width = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width
	return r
}

func (l *lexer) backup() {
	l.pos -= l.width
}

// Fields splits s around each run of whitespace.  Leading and trailing
// whitespace never produces empty fields.
func Fields(s string) []string {
	return newLexer(s).run(lexSpace)
}

// SplitStatements splits the body of a loop into its statements.  A statement
// ends after each ‘;’ that is not enclosed in double quotes; the semicolon
// stays with the statement it terminates.  Trailing empty statements are
// dropped, but an empty body still yields a single empty statement.
func SplitStatements(s string) []string {
	xs := newLexer(s).run(lexStmt)
	if len(xs) == 0 {
		return []string{""}
	}
	return xs
}
