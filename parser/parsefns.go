package parser

import (
	"regexp"
	"strconv"
	"strings"

	"git.sr.ht/~mango/zpm/ast"
	"git.sr.ht/~mango/zpm/lexer"
)

// Decimals match but are rejected when converted to an integer
var numeric = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

func parseLoop(toks []string) (ast.Stmt, error) {
	n, err := parseInt(toks[1])
	if err != nil {
		return nil, err
	}
	if len(toks) < 3 || toks[len(toks)-1] != kwEndFor {
		return nil, errExpected{"‘" + kwEndFor + "’", toks[len(toks)-1]}
	}

	return ast.Loop{
		Count: n,
		Body:  strings.Join(toks[2:len(toks)-1], " "),
	}, nil
}

func parseAssign(line string) (ast.Stmt, error) {
	if !strings.HasSuffix(line, terminator) {
		return nil, errExpected{"‘;’ separated by a space", line}
	}

	toks := lexer.Fields(line)
	if len(toks) < 3 {
		return nil, errTooShort{line, 3}
	}

	op, ok := ast.LookupOp(toks[1])
	if !ok {
		return nil, errExpected{"assignment operator", toks[1]}
	}

	// The operand may be a string literal containing whitespace, so take
	// everything between the operator and the terminator
	i := len(toks[0])
	i += strings.Index(line[i:], toks[1]) + len(toks[1])
	j := strings.LastIndex(line, terminator)

	v, err := parseOperand(strings.TrimSpace(line[i:j]))
	if err != nil {
		return nil, err
	}
	return ast.Assign{Name: toks[0], Op: op, Operand: v}, nil
}

func parseOperand(s string) (ast.Operand, error) {
	switch {
	case len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"':
		return ast.Text(s[1 : len(s)-1]), nil
	case numeric.MatchString(s):
		n, err := parseInt(s)
		if err != nil {
			return nil, err
		}
		return ast.Int(n), nil
	}
	return ast.Ref(s), nil
}

func parseInt(s string) (int, error) {
	if !numeric.MatchString(s) {
		return 0, errNumber(s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errNumber(s)
	}
	return n, nil
}
