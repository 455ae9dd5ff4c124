package mapreduce

import (
	"runtime"
	"strings"
	"sync"

	"github.com/dtnitsch/wordplot/pkg/tokenizer"
)

// Pair is one mapped (word, count) tuple emitted by the map stage.
type Pair struct {
	Word  string
	Count int
}

// WordCount is the final total for a single word after reduction.
type WordCount struct {
	Word  string
	Count int
}

// MapWord lowercases a token and pairs it with a count of one.
// Pure and stateless: invocations are safe to run concurrently in any
// order with no shared state.
func MapWord(token string) Pair {
	return Pair{Word: strings.ToLower(token), Count: 1}
}

// Shuffle groups mapped pairs by word into a word -> counts mapping.
// One sequential pass; the grouping map is the only shared structure in
// the pipeline and is never touched concurrently.
func Shuffle(pairs []Pair) map[string][]int {
	grouped := make(map[string][]int)
	for _, p := range pairs {
		grouped[p.Word] = append(grouped[p.Word], p.Count)
	}
	return grouped
}

// ReduceGroup sums the counts collected under one word. Like MapWord it
// is pure, so distinct groups can be reduced concurrently.
func ReduceGroup(word string, counts []int) WordCount {
	total := 0
	for _, c := range counts {
		total += c
	}
	return WordCount{Word: word, Count: total}
}

// Pipeline executes the map/shuffle/reduce word count over bounded worker
// pools. The map and reduce phases each open their own pool and block
// until every item in the phase completes; the shuffle runs
// single-threaded between them.
type Pipeline struct {
	Workers int
}

// NewPipeline returns a Pipeline with the given pool size. A size of zero
// or less falls back to runtime.NumCPU().
func NewPipeline(workers int) *Pipeline {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pipeline{Workers: workers}
}

// Run counts word frequencies in text. The returned map is owned by the
// caller; the pipeline keeps no reference to it. Empty text yields an
// empty map. Run cannot fail: every stage is a pure in-memory transform.
func (p *Pipeline) Run(text string) map[string]int {
	tokens := tokenizer.Tokenize(text)
	mapped := p.mapPhase(tokens)
	grouped := Shuffle(mapped)
	return p.reducePhase(grouped)
}

// mapPhase dispatches one MapWord invocation per token to the worker pool
// and collects all pairs before returning (the shuffle barrier).
func (p *Pipeline) mapPhase(tokens []string) []Pair {
	if len(tokens) == 0 {
		return nil
	}

	var wg sync.WaitGroup
	jobs := make(chan string, len(tokens))
	results := make(chan Pair, len(tokens))

	for w := 0; w < p.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for token := range jobs {
				results <- MapWord(token)
			}
		}()
	}

	for _, token := range tokens {
		jobs <- token
	}
	close(jobs)

	wg.Wait()
	close(results)

	mapped := make([]Pair, 0, len(tokens))
	for pair := range results {
		mapped = append(mapped, pair)
	}
	return mapped
}

// reducePhase dispatches one ReduceGroup invocation per distinct word and
// collects the totals into the result map before returning.
func (p *Pipeline) reducePhase(grouped map[string][]int) map[string]int {
	counts := make(map[string]int, len(grouped))
	if len(grouped) == 0 {
		return counts
	}

	type group struct {
		word   string
		counts []int
	}

	var wg sync.WaitGroup
	jobs := make(chan group, len(grouped))
	results := make(chan WordCount, len(grouped))

	for w := 0; w < p.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for g := range jobs {
				results <- ReduceGroup(g.word, g.counts)
			}
		}()
	}

	for word, c := range grouped {
		jobs <- group{word: word, counts: c}
	}
	close(jobs)

	wg.Wait()
	close(results)

	for wc := range results {
		counts[wc.Word] = wc.Count
	}
	return counts
}
