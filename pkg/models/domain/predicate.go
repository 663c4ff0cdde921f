package domain

import "fmt"

// Predicate is the coarse safety classification systemd-analyze assigns to a
// unit, ordered from safest to least safe. The ordering is significant: it is
// what --fail-on thresholds and the presenter's color table key on.
type Predicate int

const (
	PredicateOK Predicate = iota
	PredicateMedium
	PredicateExposed
	PredicateUnsafe
)

func (p Predicate) String() string {
	switch p {
	case PredicateOK:
		return "OK"
	case PredicateMedium:
		return "MEDIUM"
	case PredicateExposed:
		return "EXPOSED"
	case PredicateUnsafe:
		return "UNSAFE"
	default:
		return fmt.Sprintf("Predicate(%d)", int(p))
	}
}

// ParsePredicate maps the upstream spelling to a Predicate.
func ParsePredicate(s string) (Predicate, error) {
	switch s {
	case "OK":
		return PredicateOK, nil
	case "MEDIUM":
		return PredicateMedium, nil
	case "EXPOSED":
		return PredicateExposed, nil
	case "UNSAFE":
		return PredicateUnsafe, nil
	default:
		return 0, fmt.Errorf("unknown predicate %q", s)
	}
}

// Predicates returns all known predicates in safety order.
func Predicates() []Predicate {
	return []Predicate{PredicateOK, PredicateMedium, PredicateExposed, PredicateUnsafe}
}
