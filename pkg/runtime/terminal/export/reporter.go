package export

import (
	"github.com/NotAShelf/ssa/pkg/models/domain"
	"github.com/fatih/color"
)

// Reporter renders one finished analysis to an output writer. Implementations
// are selected once per invocation and called exactly once.
type Reporter interface {
	Handle(analysis *domain.Analysis) error
}

// predicateColors is the fixed category palette, keyed by the enum so the
// mapping stays total and independent of any filter choice.
var predicateColors = map[domain.Predicate]*color.Color{
	domain.PredicateOK:      color.New(color.FgGreen),
	domain.PredicateMedium:  color.New(color.FgYellow),
	domain.PredicateExposed: color.New(color.FgHiYellow),
	domain.PredicateUnsafe:  color.New(color.FgRed),
}

func predicateColor(p domain.Predicate) *color.Color {
	if c, ok := predicateColors[p]; ok {
		return c
	}
	return color.New(color.Reset)
}
