// Tests the lexer by verifying that a small sample of YL source is
// tokenized into the expected item sequence, the same way the
// teacher's TestLexer checks a sample VSL file against a hand-written
// expectation slice.
package frontend

import (
	"testing"

	"ylc/internal/token"
)

func TestTokenizeBasic(t *testing.T) {
	src := "fn add(a: number, b: number): number {\n  return a + b;\n}\n"

	items, err := Tokenize("test.yl", src)
	if err != nil {
		t.Fatalf("Tokenize returned error: %s", err)
	}

	exp := []token.Kind{
		token.Fn, token.Identifier, token.LParen,
		token.Identifier, token.Colon, token.Number, token.Comma,
		token.Identifier, token.Colon, token.Number, token.RParen,
		token.Colon, token.Number, token.LBrace,
		token.Return, token.Identifier, token.Plus, token.Identifier, token.Semi,
		token.RBrace, token.EOF,
	}

	if len(items) != len(exp) {
		t.Fatalf("got %d items, want %d: %v", len(items), len(exp), items)
	}
	for i, k := range exp {
		if items[i].Kind != k {
			t.Errorf("item %d: got kind %s, want %s", i, items[i].Kind, k)
		}
	}
}

func TestTokenizeStringAndNumber(t *testing.T) {
	items, err := Tokenize("test.yl", "println('hi') 3.5")
	if err != nil {
		t.Fatalf("Tokenize returned error: %s", err)
	}

	if items[0].Kind != token.Identifier || items[0].Val != "println" {
		t.Errorf("got %v, want identifier \"println\"", items[0])
	}
	if items[2].Kind != token.StringLiteral || items[2].Val != "hi" {
		t.Errorf("got %v, want string literal \"hi\"", items[2])
	}
	if items[4].Kind != token.NumberLiteral || items[4].Val != "3.5" {
		t.Errorf("got %v, want number literal \"3.5\"", items[4])
	}
}

func TestTokenizeMalformedNumber(t *testing.T) {
	if _, err := Tokenize("test.yl", "42;"); err == nil {
		t.Fatal("expected an error tokenizing a bare integer, got nil")
	}
}

func TestTokenizeUnclosedString(t *testing.T) {
	if _, err := Tokenize("test.yl", "'unterminated"); err == nil {
		t.Fatal("expected an error tokenizing an unclosed string, got nil")
	}
}

func TestTokenizeLineComment(t *testing.T) {
	items, err := Tokenize("test.yl", "// a comment\nvar\n")
	if err != nil {
		t.Fatalf("Tokenize returned error: %s", err)
	}
	if items[0].Kind != token.Var {
		t.Errorf("got %v, want the 'var' keyword past the comment", items[0])
	}
}
