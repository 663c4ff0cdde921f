package commands

import (
	"fmt"
	"strings"

	"github.com/NotAShelf/ssa/pkg/models/domain"
)

// ExitCodeError signals a non-zero exit code without being a runtime error.
type ExitCodeError struct {
	Code int
}

func (e ExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// anyAtOrAbove reports whether any record's predicate is at least as unsafe
// as the threshold. Evaluated over the full set, so a display filter cannot
// mask a gating failure.
func anyAtOrAbove(reports []domain.ServiceReport, threshold domain.Predicate) bool {
	for _, r := range reports {
		if r.Predicate >= threshold {
			return true
		}
	}
	return false
}

// parsePredicateName parses a user-supplied predicate spelling. Unlike the
// report parser, flag values are accepted case-insensitively.
func parsePredicateName(name string) (domain.Predicate, error) {
	return domain.ParsePredicate(strings.ToUpper(strings.TrimSpace(name)))
}
