package langtag

import "testing"

func TestValid(t *testing.T) {
	tests := []struct {
		code     string
		expected bool
	}{
		{"en", true},
		{"ja", true},
		{"pt-BR", true},
		{"zh-Hans", true},
		{"en-us", true}, // parses, canonicalization is separate
		{"", false},
		{"not a tag", false},
		{"a", false},
		{"!!", false},
	}

	for _, tt := range tests {
		if got := Valid(tt.code); got != tt.expected {
			t.Errorf("Valid(%q) = %v, want %v", tt.code, got, tt.expected)
		}
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"en", "en"},
		{"en-us", "en-US"},
		{"PT-br", "pt-BR"},
		{"not a tag", "not a tag"}, // unparseable codes pass through
	}

	for _, tt := range tests {
		if got := Canonical(tt.code); got != tt.expected {
			t.Errorf("Canonical(%q) = %q, want %q", tt.code, got, tt.expected)
		}
	}
}
