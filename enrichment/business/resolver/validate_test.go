package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
		valid    bool
	}{
		{
			name:     "mobile_with_country_code",
			input:    "+5511999887766",
			expected: "+5511999887766",
			valid:    true,
		},
		{
			name:     "mobile_without_country_code",
			input:    "11999887766",
			expected: "+5511999887766",
			valid:    true,
		},
		{
			name:     "formatted_national",
			input:    "(11) 99988-7766",
			expected: "+5511999887766",
			valid:    true,
		},
		{
			name:  "too_short",
			input: "1199",
			valid: false,
		},
		{
			name:  "not_a_number",
			input: "call me maybe",
			valid: false,
		},
		{
			name:  "empty",
			input: "",
			valid: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			normalized, ok := NormalizePhone(tc.input)
			assert.Equal(t, tc.valid, ok)
			if tc.valid {
				assert.Equal(t, tc.expected, normalized)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
		valid    bool
	}{
		{
			name:     "plain_address",
			input:    "maria@example.com",
			expected: "maria@example.com",
			valid:    true,
		},
		{
			name:     "uppercase_and_padding_normalized",
			input:    "  Maria.Silva@Example.COM ",
			expected: "maria.silva@example.com",
			valid:    true,
		},
		{
			name:  "too_short",
			input: "a@b",
			valid: false,
		},
		{
			name:  "missing_at",
			input: "maria.example.com",
			valid: false,
		},
		{
			name:  "missing_dot",
			input: "maria@examplecom",
			valid: false,
		},
		{
			name:  "throwaway_nines",
			input: "maria999999@example.com",
			valid: false,
		},
		{
			name:  "throwaway_ones",
			input: "111111@example.com",
			valid: false,
		},
		{
			name:  "throwaway_zeros",
			input: "test000000@example.com",
			valid: false,
		},
		{
			name:  "throwaway_sequence",
			input: "user123456789@example.com",
			valid: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			normalized, ok := NormalizeEmail(tc.input)
			assert.Equal(t, tc.valid, ok)
			if tc.valid {
				assert.Equal(t, tc.expected, normalized)
			}
		})
	}
}
