package assessment

import "sort"

// WeakestDomains returns up to n results sorted by ascending score, ties
// broken by the fixed domain order. n <= 0 returns all results.
func WeakestDomains(results []DomainResult, n int) []DomainResult {
	out := make([]DomainResult, len(results))
	copy(out, results)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score < out[j].Score
		}
		return out[i].Domain.index() < out[j].Domain.index()
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// StudyPlan orders results by priority: weak before moderate before strong,
// then by ascending score, then by domain order. It only reorders.
func StudyPlan(results []DomainResult) []DomainResult {
	out := make([]DomainResult, len(results))
	copy(out, results)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Level.Rank() != b.Level.Rank() {
			return a.Level.Rank() < b.Level.Rank()
		}
		if a.Score != b.Score {
			return a.Score < b.Score
		}
		return a.Domain.index() < b.Domain.index()
	})
	return out
}
