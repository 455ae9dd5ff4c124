package mapreduce

import "testing"

func TestTopN(t *testing.T) {
	counts := map[string]int{
		"the": 10, "cat": 7, "sat": 3, "ran": 1, "mat": 5,
	}

	ranked := TopN(counts, 3)

	if len(ranked) != 3 {
		t.Fatalf("TopN() returned %d entries, want 3", len(ranked))
	}

	wantWords := []string{"the", "cat", "mat"}
	for i, want := range wantWords {
		if ranked[i].Word != want {
			t.Errorf("ranked[%d].Word = %q, want %q", i, ranked[i].Word, want)
		}
		if ranked[i].Count != counts[want] {
			t.Errorf("ranked[%d].Count = %d, want %d", i, ranked[i].Count, counts[want])
		}
	}
}

func TestTopNSortedDescending(t *testing.T) {
	counts := map[string]int{"a": 2, "b": 9, "c": 4, "d": 4, "e": 1}

	ranked := TopN(counts, 5)

	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].Count < ranked[i].Count {
			t.Errorf("ranked not descending at %d: %v", i, ranked)
		}
	}
}

func TestTopNFewerEntriesThanN(t *testing.T) {
	counts := map[string]int{"only": 1, "two": 2}

	ranked := TopN(counts, 10)

	if len(ranked) != 2 {
		t.Errorf("TopN() returned %d entries, want 2", len(ranked))
	}
}

func TestTopNTiesEachReturned(t *testing.T) {
	// "the" and "cat" tie at 2; both must appear with count 2, in
	// either order.
	counts := map[string]int{"the": 2, "cat": 2, "sat": 1, "ran": 1}

	ranked := TopN(counts, 2)

	if len(ranked) != 2 {
		t.Fatalf("TopN() returned %d entries, want 2", len(ranked))
	}
	for _, wc := range ranked {
		if wc.Count != 2 {
			t.Errorf("TopN() entry %v, want count 2", wc)
		}
	}
	if ranked[0].Word == ranked[1].Word {
		t.Errorf("TopN() repeated word %q", ranked[0].Word)
	}
}

func TestTopNEdge(t *testing.T) {
	if got := TopN(map[string]int{}, 5); len(got) != 0 {
		t.Errorf("TopN(empty, 5) = %v, want empty", got)
	}
	if got := TopN(map[string]int{"a": 1}, 0); len(got) != 0 {
		t.Errorf("TopN(_, 0) = %v, want empty", got)
	}
	if got := TopN(map[string]int{"a": 1}, -1); len(got) != 0 {
		t.Errorf("TopN(_, -1) = %v, want empty", got)
	}
}
