package strings

import "testing"

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"   ", ""},
		{"one", "one"},
		{"  two  words  ", "two words"},
		{"tabs\tand\nnewlines", "tabs and newlines"},
	}

	for _, tt := range tests {
		if got := NormalizeWhitespace(tt.input); got != tt.want {
			t.Errorf("NormalizeWhitespace(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeNewlines(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"a\r\nb", "a\nb"},
		{"a\rb", "a\nb"},
		{"a\nb", "a\nb"},
	}

	for _, tt := range tests {
		if got := NormalizeNewlines(tt.input); got != tt.want {
			t.Errorf("NormalizeNewlines(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTrimTrailingNewlines(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a\n", "a"},
		{"a\r\n\r\n", "a"},
		{"a", "a"},
		{"\n", ""},
	}

	for _, tt := range tests {
		if got := TrimTrailingNewlines(tt.input); got != tt.want {
			t.Errorf("TrimTrailingNewlines(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
