package common

import "testing"

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean URL untouched", "https://example.com/book.txt", "https://example.com/book.txt"},
		{"surrounding whitespace", "  https://example.com \n", "https://example.com"},
		{"trailing comma", "https://example.com,", "https://example.com"},
		{"markdown link", "[the book](https://example.com/book.txt)", "https://example.com/book.txt"},
		{"wrapping parens", "(https://example.com)", "https://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeURL(tt.in); got != tt.want {
				t.Errorf("SanitizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	valid := []string{
		"https://example.com",
		"http://example.com/path/to/file.txt",
		"https://gutenberg.net.au/ebooks01/0100021.txt",
	}
	for _, url := range valid {
		if !ValidateURL(url) {
			t.Errorf("ValidateURL(%q) = false, want true", url)
		}
	}

	invalid := []string{
		"",
		"ftp://example.com",
		"example.com",
		"https://example.com/a b.txt",
	}
	for _, url := range invalid {
		if ValidateURL(url) {
			t.Errorf("ValidateURL(%q) = true, want false", url)
		}
	}
}
