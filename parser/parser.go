// Package parser turns a single line of ZPM into a statement.
package parser

import (
	"strings"

	"git.sr.ht/~mango/zpm/ast"
	"git.sr.ht/~mango/zpm/lexer"
)

const (
	kwFor    = "FOR"
	kwEndFor = "ENDFOR"
	kwPrint  = "PRINT"

	// Every assignment is terminated by a space followed by a semicolon
	terminator = " ;"
)

// Parse classifies line by its first token and parses it as a loop, a print
// or an assignment.  Loop bodies are left unparsed.
func Parse(line string) (ast.Stmt, error) {
	line = strings.TrimSpace(line)

	// No valid statement has fewer than two tokens
	toks := lexer.Fields(line)
	if len(toks) < 2 {
		return nil, errTooShort{line, 2}
	}

	switch toks[0] {
	case kwFor:
		return parseLoop(toks)
	case kwPrint:
		return ast.Print{Name: toks[1]}, nil
	}
	return parseAssign(line)
}
