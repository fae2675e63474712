// Package frontend turns YL source text into a parsed ast.FunctionDecl
// forest. The lexer is adapted from Rob Pike's "Lexical Scanning in Go"
// talk design the teacher repository itself credits: a state machine of
// stateFunc values run on a goroutine, emitting token.Items on a
// channel that Tokenize drains into a slice; the parser then walks that
// slice, so it never runs concurrently with the lexer. The parser in
// this package is hand-written recursive descent rather than a
// goyacc-generated table: no parser.y grammar file was available to
// regenerate from, and YL's grammar is small enough that hand-written
// descent is the idiomatic choice in its own right (see DESIGN.md).
package frontend

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"ylc/internal/token"
)

// stateFunc defines the lexer's current state; returning nil stops the
// state machine.
type stateFunc func(*lexer) stateFunc

// lexer traverses a source stream rune by rune and emits token.Items.
type lexer struct {
	file        string
	input       string
	start       int
	pos         int
	width       int
	line        int
	startOnLine int
	state       stateFunc
	items       chan token.Item
}

const eof = 0

// newLexer constructs a lexer ready to run. The caller must invoke run
// on a goroutine before draining items.
func newLexer(file, src string) *lexer {
	return &lexer{
		file:        file,
		input:       src,
		line:        1,
		startOnLine: 1,
		state:       lexGlobal,
		items:       make(chan token.Item, 2),
	}
}

// run drives the state machine to completion, closing items when done.
func (l *lexer) run() {
	defer close(l.items)
	for state := l.state; state != nil; {
		state = state(l)
	}
}

func (l *lexer) loc() token.Location {
	return token.Location{File: l.file, Line: l.line, Col: l.startOnLine}
}

// emit sends an item of kind k covering the pending lexeme.
func (l *lexer) emit(k token.Kind) {
	l.items <- token.Item{
		Kind: k,
		Val:  l.input[l.start:l.pos],
		Loc:  l.loc(),
	}
	l.startOnLine += len(l.input[l.start:l.pos])
	l.start = l.pos
}

// errorf sends a token.Error item and stops the lexer.
func (l *lexer) errorf(format string, args ...interface{}) stateFunc {
	l.items <- token.Item{
		Kind: token.Error,
		Val:  fmt.Sprintf(format, args...),
		Loc:  l.loc(),
	}
	return nil
}

func (l *lexer) next() (r rune) {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, l.width = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width
	return r
}

func (l *lexer) ignore() {
	l.startOnLine += len(l.input[l.start:l.pos])
	l.start = l.pos
}

func (l *lexer) backup() {
	if l.pos > l.start {
		l.pos -= l.width
	}
}

func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *lexer) accept(valid string) bool {
	if strings.IndexRune(valid, l.next()) >= 0 {
		return true
	}
	l.backup()
	return false
}

// Lex drains and returns the next item from the running lexer.
func (l *lexer) Lex() token.Item {
	return <-l.items
}

// Tokenize lexes the whole of src and returns its items in order,
// including the trailing EOF item. It stops and returns an error on
// the first token.Error item.
func Tokenize(file, src string) ([]token.Item, error) {
	l := newLexer(file, src)
	go l.run()

	var items []token.Item
	for {
		it := l.Lex()
		if it.Kind == token.Error {
			return items, fmt.Errorf("%s: %s", it.Loc, it.Val)
		}
		items = append(items, it)
		if it.Kind == token.EOF {
			return items, nil
		}
	}
}
