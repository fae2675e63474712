package sema

import (
	"testing"

	"ylc/internal/resolved"
)

func TestScopesShadowing(t *testing.T) {
	var s Scopes
	leaveOuter := s.Enter()

	if !s.InsertCurrent("x", resolved.Handle(1)) {
		t.Fatal("expected first insertion of \"x\" to succeed")
	}

	leaveInner := s.Enter()
	if !s.InsertCurrent("x", resolved.Handle(2)) {
		t.Fatal("expected shadowing insertion in a nested scope to succeed")
	}

	h, depth, ok := s.Lookup("x")
	if !ok || h != resolved.Handle(2) || depth != 0 {
		t.Fatalf("got (%v, %d, %v), want (2, 0, true)", h, depth, ok)
	}

	leaveInner()

	h, depth, ok = s.Lookup("x")
	if !ok || h != resolved.Handle(1) || depth != 0 {
		t.Fatalf("after leaving inner scope: got (%v, %d, %v), want (1, 0, true)", h, depth, ok)
	}

	leaveOuter()
	if _, _, ok := s.Lookup("x"); ok {
		t.Fatal("expected lookup to fail once every scope has been left")
	}
}

func TestScopesRedeclarationRejected(t *testing.T) {
	var s Scopes
	leave := s.Enter()
	defer leave()

	if !s.InsertCurrent("x", resolved.Handle(1)) {
		t.Fatal("expected first insertion to succeed")
	}
	if s.InsertCurrent("x", resolved.Handle(2)) {
		t.Fatal("expected redeclaration in the same frame to fail")
	}
}

func TestScopesUnbalancedLeavePanics(t *testing.T) {
	var s Scopes
	leave1 := s.Enter()
	_ = s.Enter()

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected leaving frames out of order to panic")
		}
	}()
	leave1()
}
