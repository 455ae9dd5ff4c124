package stopwords

import "testing"

func TestIsStopword(t *testing.T) {
	for _, word := range []string{"the", "The", "AND", "of"} {
		if !IsStopword(word) {
			t.Errorf("IsStopword(%q) = false, want true", word)
		}
	}
	for _, word := range []string{"cat", "winston", "telescreen", ""} {
		if IsStopword(word) {
			t.Errorf("IsStopword(%q) = true, want false", word)
		}
	}
}

func TestFilter(t *testing.T) {
	counts := map[string]int{"the": 10, "cat": 7, "and": 5, "sat": 3}

	filtered := Filter(counts)

	if len(filtered) != 2 {
		t.Errorf("Filter() kept %d entries, want 2: %v", len(filtered), filtered)
	}
	if filtered["cat"] != 7 || filtered["sat"] != 3 {
		t.Errorf("Filter() = %v, want cat:7 sat:3", filtered)
	}

	// Original map must be unchanged.
	if len(counts) != 4 || counts["the"] != 10 {
		t.Errorf("Filter() mutated its input: %v", counts)
	}
}
