package mapreduce

import "sort"

// TopN returns the n highest-count entries of counts, sorted by count
// descending. Ties fall in whatever order map iteration produced; callers
// must not depend on tie order. If counts has fewer than n entries, all
// of them are returned.
func TopN(counts map[string]int, n int) []WordCount {
	if n < 0 {
		n = 0
	}

	ranked := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		ranked = append(ranked, WordCount{Word: word, Count: count})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
