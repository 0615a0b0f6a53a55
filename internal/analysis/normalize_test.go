package analysis_test

import (
	"testing"

	"wordfreq/internal/analysis"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"basic punctuation", "Hello, World! How are you?", "hello world how are you"},
		{"contractions collapse", "Python's great... isn't it? Yes! (definitely)", "pythons great isnt it yes definitely"},
		{"digits preserved", "Python3 is AWESOME!!!", "python3 is awesome"},
		{"underscores preserved", "snake_case stays", "snake_case stays"},
		{"empty input", "", ""},
		{"whitespace preserved", "a  b\t\nc", "a  b\t\nc"},
		{"symbols only", "!!! ??? ...", "  "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := analysis.Normalize(tc.input); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	input := "The QUICK brown fox (again): the quick brown fox!"
	first := analysis.Normalize(input)
	second := analysis.Normalize(input)
	if first != second {
		t.Fatalf("Normalize is not deterministic: %q vs %q", first, second)
	}
}
