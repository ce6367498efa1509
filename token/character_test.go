package token

import "testing"

func TestIsAlpha(t *testing.T) {
	tests := []struct {
		ch   byte
		want bool
	}{
		{'a', true}, {'z', true}, {'A', true}, {'Z', true},
		{'0', false}, {'_', false}, {' ', false},
	}
	for _, tt := range tests {
		if got := IsAlpha(tt.ch); got != tt.want {
			t.Errorf("IsAlpha(%q) = %v, want %v", tt.ch, got, tt.want)
		}
	}
}

func TestIsDigit(t *testing.T) {
	tests := []struct {
		ch   byte
		want bool
	}{
		{'0', true}, {'9', true}, {'a', false}, {'-', false},
	}
	for _, tt := range tests {
		if got := IsDigit(tt.ch); got != tt.want {
			t.Errorf("IsDigit(%q) = %v, want %v", tt.ch, got, tt.want)
		}
	}
}

func TestIsWhitespace(t *testing.T) {
	tests := []struct {
		ch   byte
		want bool
	}{
		{' ', true}, {'\t', true}, {'\r', true}, {'\n', true},
		{'a', false}, {0, false},
	}
	for _, tt := range tests {
		if got := IsWhitespace(tt.ch); got != tt.want {
			t.Errorf("IsWhitespace(%q) = %v, want %v", tt.ch, got, tt.want)
		}
	}
}

func TestIsEscapedChar(t *testing.T) {
	tests := []struct {
		ch   byte
		want bool
	}{
		{'n', true}, {'r', true}, {'t', true}, {'"', true},
		{'\\', false}, {'x', false},
	}
	for _, tt := range tests {
		if got := IsEscapedChar(tt.ch); got != tt.want {
			t.Errorf("IsEscapedChar(%q) = %v, want %v", tt.ch, got, tt.want)
		}
	}
}

func TestIsEndOfLine(t *testing.T) {
	tests := []struct {
		ch   byte
		want bool
	}{
		{'\n', true}, {'\r', true}, {0, true}, {'a', false},
	}
	for _, tt := range tests {
		if got := IsEndOfLine(tt.ch); got != tt.want {
			t.Errorf("IsEndOfLine(%q) = %v, want %v", tt.ch, got, tt.want)
		}
	}
}
