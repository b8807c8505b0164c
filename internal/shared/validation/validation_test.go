package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "simple address", input: "a@b.co", want: true},
		{name: "plus and dots in local part", input: "first.last+tag@example.com", want: true},
		{name: "missing at sign", input: "not-an-email", want: false},
		{name: "empty string", input: "", want: false},
		{name: "whitespace only", input: "   ", want: false},
		{name: "missing domain", input: "user@", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.input))
		})
	}
}

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "letters and digits", input: "abc123", want: true},
		{name: "no digit", input: "abcdef", want: false},
		{name: "no letter", input: "123456", want: false},
		{name: "too short", input: "ab1", want: false},
		{name: "empty", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPassword(tt.input))
		})
	}
}

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("alice"))
	assert.True(t, IsValidUsername("bob42"))
	assert.True(t, IsValidUsername("abc"))
	assert.True(t, IsValidUsername(strings.Repeat("a", 20)))

	assert.False(t, IsValidUsername("ab"))
	assert.False(t, IsValidUsername(strings.Repeat("a", 21)))
	assert.False(t, IsValidUsername("with space"))
	assert.False(t, IsValidUsername("dash-ed"))
	assert.False(t, IsValidUsername(""))
}

func TestIsValidText(t *testing.T) {
	assert.True(t, IsValidText("hello", 1, 10))
	assert.True(t, IsValidText("  padded  ", 1, 6))
	assert.False(t, IsValidText("", 1, 10))
	assert.False(t, IsValidText("   ", 1, 10))
	assert.False(t, IsValidText("too long for the limit", 1, 5))
	assert.False(t, IsValidText("x", 2, 10))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("0123456789"))
	assert.False(t, IsValidPhone("123456789"))
	assert.False(t, IsValidPhone("01234567890"))
	assert.False(t, IsValidPhone("01234 6789"))
	assert.False(t, IsValidPhone(""))
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "trimmed", SanitizeInput("  trimmed  "))
	assert.Equal(t, "", SanitizeInput(""))
	assert.Equal(t, "", SanitizeInput("   "))
}
