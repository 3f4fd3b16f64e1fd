package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	s := "¢ȠʗǱɓǇϴ¤Ίϑ'щƎcɛǩΟȏɁƅ"
	l := newLexer(s)

	for _, x := range []rune(s) {
		require.Equal(t, x, l.next())
	}
	require.Equal(t, eof, l.next())
}

func TestFields(t *testing.T) {
	testCases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   \t ", nil},
		{"single", []string{"single"}},
		{"PRINT x", []string{"PRINT", "x"}},
		{"  x   +=\t3  ;  ", []string{"x", "+=", "3", ";"}},
		{`s = "a   b" ;`, []string{"s", "=", `"a`, `b"`, ";"}},
		{"FOR 3 PRINT x ENDFOR", []string{"FOR", "3", "PRINT", "x", "ENDFOR"}},
		{"ǅemo = \"ƒ\" ;", []string{"ǅemo", "=", `"ƒ"`, ";"}},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			require.Equal(t, tc.want, Fields(tc.in))
		})
	}
}

func TestSplitStatements(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{""}},
		{"single without semicolon", "PRINT x", []string{"PRINT x"}},
		{"keeps delimiter", "x = 0 ; x += 1 ; PRINT x ;",
			[]string{"x = 0 ;", " x += 1 ;", " PRINT x ;"}},
		{"quoted semicolon", `s = "a;b" ; PRINT s ;`,
			[]string{`s = "a;b" ;`, " PRINT s ;"}},
		{"trailing text", "x = 1 ; PRINT x",
			[]string{"x = 1 ;", " PRINT x"}},
		{"empty statement", "x = 1 ; ;",
			[]string{"x = 1 ;", " ;"}},
		{"unterminated quote", `a = 1 ; b = "x ; y ;`,
			[]string{"a = 1 ;", ` b = "x ; y ;`}},
		{"nested loop splits apart", "FOR 2 PRINT x ; ENDFOR ;",
			[]string{"FOR 2 PRINT x ;", " ENDFOR ;"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, SplitStatements(tc.in))
		})
	}
}
