package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCode(t *testing.T) {
	valid := []string{"abc", "abc123", "a_b-c", "ABC_def-123", "aaaaaaaaaaaaaaaaaaaa"}
	for _, code := range valid {
		assert.True(t, ValidCode(code), "expected %q to be valid", code)
	}

	invalid := []string{"", "ab", "aaaaaaaaaaaaaaaaaaaaa", "has space", "semi;colon", "slash/y", "üñîcødé"}
	for _, code := range invalid {
		assert.False(t, ValidCode(code), "expected %q to be invalid", code)
	}
}

func TestValidCode_ReservedWords(t *testing.T) {
	// Reserved route names are rejected in any letter case, even though they
	// match the charset and length rules.
	reserved := []string{"create", "login", "delete", "pause", "resume", "details", "reset", "refresh", "validate", "health", "CREATE", "Login", "DeTaIlS"}
	for _, code := range reserved {
		assert.False(t, ValidCode(code), "expected reserved %q to be invalid", code)
	}
}

func TestValidPassword(t *testing.T) {
	assert.True(t, ValidPassword(""))
	assert.True(t, ValidPassword("abc"))
	assert.True(t, ValidPassword("hunter2"))
	assert.True(t, ValidPassword("aaaaaaaaaaaaaaaaaaaa"))

	assert.False(t, ValidPassword("ab"))
	assert.False(t, ValidPassword("aaaaaaaaaaaaaaaaaaaaa"))
}

func TestFormatURL(t *testing.T) {
	cases := map[string]string{
		"example.com":          "https://example.com",
		"  example.com  ":      "https://example.com",
		"http://example.com":   "http://example.com",
		"https://example.com":  "https://example.com",
		"www.example.com/path": "https://www.example.com/path",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatURL(in))
	}
}

func TestIsBlacklisted(t *testing.T) {
	blacklist := []string{"malware.bad", "spam"}

	assert.True(t, IsBlacklisted("https://malware.bad/login", blacklist))
	// Substring containment, not domain matching
	assert.True(t, IsBlacklisted("https://notspammy.example.com", blacklist))
	assert.False(t, IsBlacklisted("https://example.com", blacklist))
	assert.False(t, IsBlacklisted("https://example.com", nil))
}
