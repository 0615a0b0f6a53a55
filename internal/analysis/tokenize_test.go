package analysis_test

import (
	"testing"

	"wordfreq/internal/analysis"
)

func TestTokenizeAndCount(t *testing.T) {
	counts, order, total := analysis.TokenizeAndCount("python is great python is fun python programming", 2)

	if total != 8 {
		t.Fatalf("expected 8 retained tokens, got %d", total)
	}
	if len(counts) != 5 {
		t.Fatalf("expected 5 unique tokens, got %d", len(counts))
	}
	if counts["python"] != 3 {
		t.Fatalf("expected python counted 3 times, got %d", counts["python"])
	}
	if len(order) != 5 || order[0] != "python" {
		t.Fatalf("unexpected encounter order: %v", order)
	}
}

func TestTokenizeAndCountMinLengthFilter(t *testing.T) {
	counts, _, total := analysis.TokenizeAndCount("a big python is a great programming language", 4)

	if total != 4 {
		t.Fatalf("expected 4 retained tokens, got %d", total)
	}
	for _, short := range []string{"a", "big", "is"} {
		if _, ok := counts[short]; ok {
			t.Fatalf("token %q should not survive min_length=4", short)
		}
	}
	for _, long := range []string{"python", "great", "programming", "language"} {
		if counts[long] != 1 {
			t.Fatalf("expected %q counted once, got %d", long, counts[long])
		}
	}
}

func TestTokenizeAndCountEmptyStream(t *testing.T) {
	counts, order, total := analysis.TokenizeAndCount("a b c is it", 10)
	if total != 0 {
		t.Fatalf("expected total 0, got %d", total)
	}
	if len(counts) != 0 {
		t.Fatalf("expected empty counts, got %v", counts)
	}
	if order != nil {
		t.Fatalf("expected nil order, got %v", order)
	}
}

func TestTokenizeAndCountRuneLength(t *testing.T) {
	// Length is measured in runes, not bytes.
	counts, _, total := analysis.TokenizeAndCount("über ok", 4)
	if total != 1 {
		t.Fatalf("expected only the four-rune token retained, got total %d", total)
	}
	if counts["über"] != 1 {
		t.Fatalf("expected über retained, got %v", counts)
	}
}
