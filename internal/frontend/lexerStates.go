package frontend

import "ylc/internal/token"

// reservedWords maps YL keywords to their token kind. Indexed the same
// way the teacher's rw table is (by word), though the teacher indexes
// by length-then-linear-scan; a plain map is clearer for YL's small,
// fixed keyword set and the lookup is not on any hot path.
var reservedWords = map[string]token.Kind{
	"fn":     token.Fn,
	"number": token.Number,
	"void":   token.Void,
	"var":    token.Var,
	"let":    token.Let,
	"if":     token.If,
	"else":   token.Else,
	"while":  token.While,
	"return": token.Return,
}

// lexGlobal is the default lexer state.
func lexGlobal(l *lexer) stateFunc {
	for {
		r := l.next()
		switch {
		case isAlpha(r):
			return lexWord
		case isDigit(r):
			return lexNumber
		case r == '\n':
			l.ignore()
			l.line++
			l.startOnLine = 1
		case isSpace(r):
			l.ignore()
		case r == '\'':
			return lexString
		case r == '/' && l.peek() == '/':
			for c := l.next(); c != '\n' && c != eof; c = l.next() {
			}
			l.backup()
			l.ignore()
		case r == '(':
			l.emit(token.LParen)
		case r == ')':
			l.emit(token.RParen)
		case r == '{':
			l.emit(token.LBrace)
		case r == '}':
			l.emit(token.RBrace)
		case r == ':':
			l.emit(token.Colon)
		case r == ';':
			l.emit(token.Semi)
		case r == ',':
			l.emit(token.Comma)
		case r == '+':
			l.emit(token.Plus)
		case r == '-':
			l.emit(token.Minus)
		case r == '*':
			l.emit(token.Star)
		case r == '/':
			l.emit(token.Slash)
		case r == '!' && l.accept("="):
			l.emit(token.BangEqual)
		case r == '!':
			l.emit(token.Bang)
		case r == '=' && l.accept("="):
			l.emit(token.EqualEqual)
		case r == '=':
			l.emit(token.Equal)
		case r == '<':
			l.emit(token.Less)
		case r == '>':
			l.emit(token.Greater)
		case r == '&' && l.accept("&"):
			l.emit(token.AmpAmp)
		case r == '|' && l.accept("|"):
			l.emit(token.PipePipe)
		case r == eof:
			l.emit(token.EOF)
			return nil
		default:
			return l.errorf("unexpected character %q at %s", r, l.loc())
		}
	}
}

// lexWord scans an identifier or keyword.
func lexWord(l *lexer) stateFunc {
	for {
		r := l.next()
		if !isAlpha(r) && !isDigit(r) {
			l.backup()
			word := l.input[l.start:l.pos]
			if kind, ok := reservedWords[word]; ok {
				l.emit(kind)
			} else {
				l.emit(token.Identifier)
			}
			return lexGlobal
		}
	}
}

// lexNumber scans [0-9]+ . [0-9]+ - the decimal point and fractional
// digits are mandatory (spec.md §6); a bare integer is a lexical
// error, unlike the teacher's VSL grammar which accepts it.
func lexNumber(l *lexer) stateFunc {
	r := l.next()
	for isDigit(r) {
		r = l.next()
	}
	if r != '.' {
		l.backup()
		return l.errorf("malformed number literal %q at %s: missing fractional part",
			l.input[l.start:l.pos], l.loc())
	}
	r = l.next()
	if !isDigit(r) {
		return l.errorf("malformed number literal %q at %s: expected digit after '.'",
			l.input[l.start:l.pos], l.loc())
	}
	for isDigit(r) {
		r = l.next()
	}
	l.backup()
	l.emit(token.NumberLiteral)
	return lexGlobal
}

// lexString scans a '...' delimited string literal. There is no escape
// processing, per spec.md §6.
func lexString(l *lexer) stateFunc {
	l.ignore()
	for {
		r := l.next()
		if r == eof {
			return l.errorf("unclosed string literal at %s", l.loc())
		}
		if r == '\'' {
			l.backup()
			l.emit(token.StringLiteral)
			l.next()
			l.ignore()
			return lexGlobal
		}
	}
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\f' || r == '\r' || r == '\v'
}
