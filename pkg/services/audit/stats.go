package audit

import "github.com/NotAShelf/ssa/pkg/models/domain"

// HappinessScore maps an exposure level onto the 0-5 happiness scale: zero
// exposure scores a full 5.0 and ExposureMax scores 0. Out-of-range input is
// clamped to the scale bounds.
func HappinessScore(exposure float64) float64 {
	score := domain.HappinessMax * (domain.ExposureMax - exposure) / domain.ExposureMax
	if score < 0 {
		return 0
	}
	if score > domain.HappinessMax {
		return domain.HappinessMax
	}
	return score
}

// ComputeStats derives the corpus-wide means. Callers run it once over the
// full record set before any filtering, so the summary never shifts with the
// display selection. An empty set yields zero means and Count 0.
func ComputeStats(reports []domain.ServiceReport) domain.AggregateStats {
	stats := domain.AggregateStats{Count: len(reports)}
	if stats.Count == 0 {
		return stats
	}

	var exposureSum, happinessSum float64
	for _, r := range reports {
		exposureSum += r.Exposure
		happinessSum += HappinessScore(r.Exposure)
	}
	stats.MeanExposure = exposureSum / float64(stats.Count)
	stats.MeanHappiness = happinessSum / float64(stats.Count)
	return stats
}
