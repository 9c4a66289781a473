package fixers

import (
	"slices"

	"github.com/mole-works/mend/internal/domain"
)

// Named extends Fixer with a stable name used for CLI listing and for the
// disabled_fixers configuration key.
type Named interface {
	domain.Fixer
	Name() string
}

// All returns the built-in fixers in priority order: within a node type,
// earlier entries are tried first, so specific shapes precede fallbacks.
func All() []Named {
	return []Named{
		NewCallChainDecl(),
		NewMacroCallStatement(),
		NewMissingSemicolon(),
	}
}

// RegisterDefaults registers every built-in fixer not named in disabled and
// returns how many were registered.
func RegisterDefaults(registry *domain.Registry, disabled ...string) int {
	registered := 0

	for _, fixer := range All() {
		if slices.Contains(disabled, fixer.Name()) {
			continue
		}

		if registry.Register(fixer) {
			registered++
		}
	}

	return registered
}
