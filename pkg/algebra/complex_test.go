package algebra

import (
	"errors"
	"math"
	"testing"
)

const tolerance = 1e-9

func complexEquals(a, b Complex) bool {
	return math.Abs(a.Real()-b.Real()) < tolerance && math.Abs(a.Imag()-b.Imag()) < tolerance
}

func TestComplex_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		result   Complex
		expected Complex
	}{
		{
			name:     "Add",
			result:   NewComplex(1, 2).Add(NewComplex(3, -4)),
			expected: NewComplex(4, -2),
		},
		{
			name:     "Sub",
			result:   NewComplex(1, 2).Sub(NewComplex(3, -4)),
			expected: NewComplex(-2, 6),
		},
		{
			name:     "Mul",
			result:   NewComplex(1, 1).Mul(NewComplex(1, 1)),
			expected: NewComplex(0, 2),
		},
		{
			name:     "Negate",
			result:   NewComplex(1, -2).Negate(),
			expected: NewComplex(-1, 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !complexEquals(tt.result, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}
}

func TestComplex_Div(t *testing.T) {
	result, err := NewComplex(2, 0).Div(NewComplex(1, 1))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !complexEquals(result, NewComplex(1, -1)) {
		t.Errorf("Expected 1-i, got %v", result)
	}

	if _, err := One.Div(Zero); !errors.Is(err, ErrZeroDivisor) {
		t.Errorf("Expected ErrZeroDivisor, got %v", err)
	}
}

func TestComplex_Power(t *testing.T) {
	result, err := NewComplex(1, 1).Power(2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !complexEquals(result, NewComplex(0, 2)) {
		t.Errorf("Expected 2i, got %v", result)
	}

	result, err = NewComplex(3, -2).Power(0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !complexEquals(result, One) {
		t.Errorf("Expected 1, got %v", result)
	}

	if _, err := One.Power(-1); !errors.Is(err, ErrNegativeExponent) {
		t.Errorf("Expected ErrNegativeExponent, got %v", err)
	}
}

func TestComplex_Roots(t *testing.T) {
	roots, err := NewComplex(16, 0).Roots(4)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(roots) != 4 {
		t.Fatalf("Expected 4 roots, got %d", len(roots))
	}

	// the stored angle of 16 is atan2(0,16)+π = π, so the roots sit at
	// magnitude 2 and angles (π+2πk)/4
	for k, root := range roots {
		angle := (math.Pi + 2*math.Pi*float64(k)) / 4
		expected := FromPolar(2, angle)
		if !complexEquals(root, expected) {
			t.Errorf("Root %d: expected %v, got %v", k, expected, root)
		}
	}

	if _, err := One.Roots(-2); !errors.Is(err, ErrNegativeExponent) {
		t.Errorf("Expected ErrNegativeExponent, got %v", err)
	}
}

func TestParseComplex_RoundTrip(t *testing.T) {
	inputs := []string{"3.51", "-3.17", "-i2.71", "i", "1", "-2.71 - i3.15", "2 + i"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			parsed, err := ParseComplex(input)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got := parsed.String(); got != input {
				t.Errorf("Expected %q after formatting, got %q", input, got)
			}
		})
	}
}

func TestParseComplex_Values(t *testing.T) {
	tests := []struct {
		input    string
		expected Complex
	}{
		{"3.51", NewComplex(3.51, 0)},
		{"-3.17", NewComplex(-3.17, 0)},
		{"-i2.71", NewComplex(0, -2.71)},
		{"i", NewComplex(0, 1)},
		{"-i", NewComplex(0, -1)},
		{"1", NewComplex(1, 0)},
		{"-2.71 - i3.15", NewComplex(-2.71, -3.15)},
		{"2 + i", NewComplex(2, 1)},
		{"2+i", NewComplex(2, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			parsed, err := ParseComplex(tt.input)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !complexEquals(parsed, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, parsed)
			}
		})
	}
}

func TestParseComplex_Malformed(t *testing.T) {
	inputs := []string{"", "done", "2 +", "3.5 + 2", "i + 2", "2i", "--1"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseComplex(input); err == nil {
				t.Errorf("Expected parse error for %q", input)
			}
		})
	}
}

func TestComplex_ZeroString(t *testing.T) {
	if got := Zero.String(); got != "0" {
		t.Errorf("Expected \"0\", got %q", got)
	}
}
