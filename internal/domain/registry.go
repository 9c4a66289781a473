package domain

import (
	"fmt"

	"github.com/mole-works/mend/internal/cst"
)

// Registry maps CST node types to ordered lists of fixers. Registration
// order is priority order: more specific fixers should be registered before
// general fallbacks. A registry is populated once at startup and is
// read-only during analysis, which makes it safe to share across workers.
type Registry struct {
	fixers map[string][]Fixer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{fixers: make(map[string][]Fixer)}
}

// Register appends fixer to the list for its node type. It returns false
// without modifying state when an equal fixer is already registered, so
// double registration is a recoverable outcome rather than a fault.
func (r *Registry) Register(fixer Fixer) bool {
	nodeType := fixer.NodeType()

	for _, existing := range r.fixers[nodeType] {
		if existing == fixer {
			return false
		}
	}

	r.fixers[nodeType] = append(r.fixers[nodeType], fixer)

	return true
}

// Lookup resolves the node type at the cursor and returns the first
// registered fixer whose CanFix claims the node, or nil when the cursor is
// empty, the type is unregistered, or no fixer applies.
//
// A panicking CanFix is treated as "does not apply": the fixer is skipped,
// scanning continues with the next one, and a diagnostic describing the
// failure is returned so the caller can surface it.
func (r *Registry) Lookup(tree cst.Tree, cursor cst.Cursor, src []byte) (Fixer, []string) {
	node := cursor.Node()
	if node == nil {
		return nil, nil
	}

	var warnings []string

	for _, fixer := range r.fixers[node.Type()] {
		applies, err := safeCanFix(fixer, tree, cursor, src)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("fixer for %q failed on byte %d: %v",
				node.Type(), node.StartByte(), err))
			continue
		}

		if applies {
			return fixer, warnings
		}
	}

	return nil, warnings
}

// Count returns the number of fixers registered for nodeType.
func (r *Registry) Count(nodeType string) int {
	return len(r.fixers[nodeType])
}

// Reset clears all registrations. It exists for test isolation only.
func (r *Registry) Reset() {
	r.fixers = make(map[string][]Fixer)
}

func safeCanFix(fixer Fixer, tree cst.Tree, cursor cst.Cursor, src []byte) (applies bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			applies = false
			err = fmt.Errorf("panic in CanFix: %v", rec)
		}
	}()

	return fixer.CanFix(tree, cursor, src), nil
}
