package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.sr.ht/~mango/zpm/ast"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		line string
		want ast.Stmt
	}{
		{"PRINT x", ast.Print{Name: "x"}},
		{"  PRINT   x  ", ast.Print{Name: "x"}},
		{"PRINT x y", ast.Print{Name: "x"}},
		{"x = 5 ;", ast.Assign{Name: "x", Op: ast.OpSet, Operand: ast.Int(5)}},
		{"x = -12 ;", ast.Assign{Name: "x", Op: ast.OpSet, Operand: ast.Int(-12)}},
		{"x += y ;", ast.Assign{Name: "x", Op: ast.OpAdd, Operand: ast.Ref("y")}},
		{"x -= 1 ;", ast.Assign{Name: "x", Op: ast.OpSub, Operand: ast.Int(1)}},
		{"x *= 2 ;", ast.Assign{Name: "x", Op: ast.OpMul, Operand: ast.Int(2)}},
		{`s = "hello   world" ;`, ast.Assign{Name: "s", Op: ast.OpSet, Operand: ast.Text("hello   world")}},
		{`s = "" ;`, ast.Assign{Name: "s", Op: ast.OpSet, Operand: ast.Text("")}},
		{`s = "a;b" ;`, ast.Assign{Name: "s", Op: ast.OpSet, Operand: ast.Text("a;b")}},
		{`s = "x = y" ;`, ast.Assign{Name: "s", Op: ast.OpSet, Operand: ast.Text("x = y")}},
		{`s = " ;`, ast.Assign{Name: "s", Op: ast.OpSet, Operand: ast.Ref(`"`)}},
		{"x = ;", ast.Assign{Name: "x", Op: ast.OpSet, Operand: ast.Ref("")}},
		{"a=b = 1 ;", ast.Assign{Name: "a=b", Op: ast.OpSet, Operand: ast.Int(1)}},
		{"FOR 3 PRINT x ; ENDFOR", ast.Loop{Count: 3, Body: "PRINT x ;"}},
		{"FOR 0 ENDFOR", ast.Loop{Count: 0, Body: ""}},
		{"FOR -2 PRINT x ENDFOR", ast.Loop{Count: -2, Body: "PRINT x"}},
		{`FOR 1  s  =  "a;b"  ; PRINT s ; ENDFOR`,
			ast.Loop{Count: 1, Body: `s = "a;b" ; PRINT s ;`}},
	}
	for _, tc := range testCases {
		t.Run(tc.line, func(t *testing.T) {
			got, err := Parse(tc.line)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []string{
		"",
		"PRINT",
		"x",
		"x = 5",
		"x = 5;",
		"x ;",
		"x == 5 ;",
		"x /= 5 ;",
		"x = 1.5 ;",
		"x = 99999999999999999999 ;",
		"FOR x PRINT x ENDFOR",
		"FOR 2.5 PRINT x ENDFOR",
		"FOR 3 PRINT x",
		"FOR 3",
		"FOR ENDFOR",
	}
	for _, line := range testCases {
		t.Run(line, func(t *testing.T) {
			_, err := Parse(line)
			require.Error(t, err)
			require.ErrorIs(t, err, ErrSyntax)
		})
	}
}
