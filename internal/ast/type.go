// Package ast defines the parsed tree handed to Sema: the unresolved,
// unchecked shape the frontend parser produces. Expression and
// statement categories are a closed sum (spec.md §9's "tagged variants
// instead of class hierarchy" note); Go has no sum types, so each
// category is a sealed interface with an unexported marker method,
// implemented by exactly the structs declared alongside it.
package ast

import "fmt"

// TypeKind differentiates the type variants of the language.
type TypeKind int

const (
	KindNumber TypeKind = iota
	KindVoid
	KindCustom

	// KindString is not a general expression type: it is produced only
	// for a StringLiteral resolved as a println argument (spec.md §1,
	// §6: "string literals used only as arguments to a built-in
	// println"). No declaration, parameter, variable, return type or
	// operator ever carries KindString - see DESIGN.md's open-question
	// entry on println's string overload.
	KindString
)

// Type is a tagged value: Custom carries a Name, the others do not.
// Only Number and Void are valid for declarations, parameters, and
// general expressions post-resolution; Custom is a parser artifact
// Sema always rejects; String appears solely on a resolved
// StringLiteral passed to println.
type Type struct {
	Kind TypeKind
	Name string // populated only for KindCustom
}

// NumberType is the builtin `number` type.
func NumberType() Type { return Type{Kind: KindNumber, Name: "number"} }

// VoidType is the builtin `void` type.
func VoidType() Type { return Type{Kind: KindVoid, Name: "void"} }

// StringType is the pseudo-type of a string literal println argument.
func StringType() Type { return Type{Kind: KindString, Name: "string"} }

// CustomType wraps a parser-level type name that is not a builtin.
func CustomType(name string) Type { return Type{Kind: KindCustom, Name: name} }

// String renders the type for diagnostics.
func (t Type) String() string {
	switch t.Kind {
	case KindNumber:
		return "number"
	case KindVoid:
		return "void"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("%q", t.Name)
	}
}
