// Package stopwords filters common function words out of rankings.
package stopwords

import "strings"

// commonWords are high-frequency function words that dominate any
// top-N ranking of English prose. Extend as needed.
var commonWords = map[string]struct{}{
	"a": {}, "about": {}, "after": {}, "again": {}, "against": {},
	"all": {}, "am": {}, "an": {}, "and": {}, "any": {}, "are": {},
	"as": {}, "at": {},

	"be": {}, "because": {}, "been": {}, "before": {}, "being": {},
	"below": {}, "between": {}, "both": {}, "but": {}, "by": {},

	"can": {}, "could": {},

	"did": {}, "do": {}, "does": {}, "doing": {}, "down": {}, "during": {},

	"each": {}, "few": {}, "for": {}, "from": {}, "further": {},

	"had": {}, "has": {}, "have": {}, "having": {}, "he": {}, "her": {},
	"here": {}, "hers": {}, "herself": {}, "him": {}, "himself": {},
	"his": {}, "how": {},

	"i": {}, "if": {}, "in": {}, "into": {}, "is": {}, "it": {},
	"its": {}, "itself": {},

	"just": {}, "me": {}, "more": {}, "most": {}, "my": {}, "myself": {},

	"no": {}, "nor": {}, "not": {}, "now": {},

	"of": {}, "off": {}, "on": {}, "once": {}, "only": {}, "or": {},
	"other": {}, "our": {}, "ours": {}, "ourselves": {}, "out": {},
	"over": {}, "own": {},

	"said": {}, "same": {}, "she": {}, "should": {}, "so": {}, "some": {},
	"such": {},

	"than": {}, "that": {}, "the": {}, "their": {}, "theirs": {},
	"them": {}, "themselves": {}, "then": {}, "there": {}, "these": {},
	"they": {}, "this": {}, "those": {}, "through": {}, "to": {},
	"too": {},

	"under": {}, "until": {}, "up": {}, "upon": {},

	"very": {}, "was": {}, "we": {}, "were": {}, "what": {}, "when": {},
	"where": {}, "which": {}, "while": {}, "who": {}, "whom": {},
	"why": {}, "will": {}, "with": {}, "would": {},

	"you": {}, "your": {}, "yours": {}, "yourself": {}, "yourselves": {},
}

// IsStopword reports whether word is a common function word.
func IsStopword(word string) bool {
	_, exists := commonWords[strings.ToLower(word)]
	return exists
}

// Filter returns a copy of counts without stopword keys. The input map
// is left untouched so pipeline invariants on it still hold.
func Filter(counts map[string]int) map[string]int {
	filtered := make(map[string]int, len(counts))
	for word, count := range counts {
		if IsStopword(word) {
			continue
		}
		filtered[word] = count
	}
	return filtered
}
