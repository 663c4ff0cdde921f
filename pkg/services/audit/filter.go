package audit

import (
	"sort"

	"github.com/NotAShelf/ssa/pkg/models/domain"
)

// FilterByPredicate returns the records whose predicate equals p, in their
// original order. The source slice is never modified. An empty result is a
// legitimate outcome, not an error.
func FilterByPredicate(reports []domain.ServiceReport, p domain.Predicate) []domain.ServiceReport {
	res := make([]domain.ServiceReport, 0, len(reports))
	for _, r := range reports {
		if r.Predicate == p {
			res = append(res, r)
		}
	}
	return res
}

// TopN ranks records by exposure, worst first, and keeps the first n. Equal
// exposures keep their original relative order. n <= 0 or n >= len(reports)
// returns the whole set ranked. Operates on a copy; the source slice is never
// reordered.
func TopN(reports []domain.ServiceReport, n int) []domain.ServiceReport {
	ranked := make([]domain.ServiceReport, len(reports))
	copy(ranked, reports)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Exposure > ranked[j].Exposure
	})
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
