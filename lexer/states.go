package lexer

import "unicode"

type lexFn func(*lexer) lexFn

func lexSpace(l *lexer) lexFn {
	for {
		switch r := l.next(); {
		case r == eof:
			return nil
		case !unicode.IsSpace(r):
			l.backup()
			l.ignore()
			return lexField
		}
	}
}

func lexField(l *lexer) lexFn {
	for {
		if r := l.next(); r == eof || unicode.IsSpace(r) {
			if r != eof {
				l.backup()
			}
			l.emit()
			return lexSpace
		}
	}
}

func lexStmt(l *lexer) lexFn {
	for {
		switch l.next() {
		case eof:
			if l.pos > l.start {
				l.emit()
			}
			return nil
		case '"':
			return lexQuoted
		case ';':
			l.emit()
		}
	}
}

// An unterminated quote swallows the rest of the body into one statement
func lexQuoted(l *lexer) lexFn {
	for {
		switch l.next() {
		case eof:
			l.emit()
			return nil
		case '"':
			return lexStmt
		}
	}
}
