package resolved

// Handle is a stable, non-owning reference to a Decl stored in an
// Arena. Using integer handles instead of raw pointers or shared
// ownership is the arena approach spec.md §9 recommends over a
// pointer/weak-ref scheme: handles are copyable, serializable and
// introduce no ownership cycles between a ResolvedDeclRefExpr and the
// declaration it binds to.
type Handle int

// Arena owns every Decl produced during resolution. The Sema driver
// owns the Arena; reference expressions only ever hold a Handle into
// it, never a *Decl.
type Arena struct {
	decls []Decl
}

// Add stores d and returns its stable handle.
func (a *Arena) Add(d Decl) Handle {
	a.decls = append(a.decls, d)
	return Handle(len(a.decls) - 1)
}

// Get dereferences a handle. Panics on an out-of-range handle, which
// would indicate a Sema bug (a handle minted by one Arena used against
// another, or corruption of the forest) rather than a recoverable
// compile error.
func (a *Arena) Get(h Handle) Decl {
	return a.decls[h]
}

// Len returns the number of decls stored in a.
func (a *Arena) Len() int {
	return len(a.decls)
}
