package sema

import "ylc/internal/resolved"

// entry binds a name to the Handle of the Decl it resolves to within
// one scope frame.
type entry struct {
	name   string
	handle resolved.Handle
}

// Scopes is the stack of lexical scope frames described in spec.md
// §4.3: innermost-first lookup, redeclaration rejected only within the
// top frame, same name in an outer frame shadows silently. This is a
// purpose-built stack of lists rather than the teacher's generic
// linked-list util.Stack, because every frame here is itself a list of
// declarations (spec.md's own wording), not a single arbitrary value -
// a slice of slices says that directly.
type Scopes struct {
	frames [][]entry
}

// Enter opens a new scope frame and returns a function that closes it.
// Callers are expected to `defer leave()` immediately, which is the Go
// idiom for the original's ScopeRAII guard (spec.md §5: "scoped
// acquisition with guaranteed release on all exit paths").
func (s *Scopes) Enter() (leave func()) {
	s.frames = append(s.frames, nil)
	depth := len(s.frames)
	return func() {
		if len(s.frames) != depth {
			panic("sema: unbalanced scope Enter/leave")
		}
		s.frames = s.frames[:depth-1]
	}
}

// InsertCurrent inserts name/handle into the top frame. It reports
// false (Redeclaration, spec.md §4.3) if name already exists in the
// top frame; a name shadowing an outer frame's entry is always
// accepted.
func (s *Scopes) InsertCurrent(name string, h resolved.Handle) bool {
	top := len(s.frames) - 1
	for _, e := range s.frames[top] {
		if e.name == name {
			return false
		}
	}
	s.frames[top] = append(s.frames[top], entry{name: name, handle: h})
	return true
}

// Lookup searches frames innermost-first. depth == 0 means the name
// was found in the top frame.
func (s *Scopes) Lookup(name string) (h resolved.Handle, depth int, ok bool) {
	for d := 0; d < len(s.frames); d++ {
		frame := s.frames[len(s.frames)-1-d]
		for _, e := range frame {
			if e.name == name {
				return e.handle, d, true
			}
		}
	}
	return 0, -1, false
}
