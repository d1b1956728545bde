package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAge(t *testing.T) {
	tests := []struct {
		input string
		age   int
		issue AgeIssue
	}{
		{"10", 10, AgeOK},
		{" 6 ", 6, AgeOK},
		{"18", 18, AgeOK},
		{"5", 0, AgeOutOfRange},
		{"19", 0, AgeOutOfRange},
		{"200", 0, AgeOutOfRange},
		{"-3", 0, AgeOutOfRange},
		{"abc", 0, AgeNotANumber},
		{"10 лет", 0, AgeNotANumber},
		{"", 0, AgeNotANumber},
		{"7.5", 0, AgeNotANumber},
	}

	for _, tt := range tests {
		age, issue := ParseAge(tt.input)
		assert.Equal(t, tt.issue, issue, "input %q", tt.input)
		assert.Equal(t, tt.age, age, "input %q", tt.input)
	}
}

func TestValidPhone(t *testing.T) {
	valid := []string{
		"+79161234567",
		"89161234567",
		"+7 916 123 45 67",
		"8-916-123-45-67",
		" +79161234567 ",
	}
	for _, p := range valid {
		assert.True(t, ValidPhone(p), "expected %q to be valid", p)
	}

	invalid := []string{
		"123456",
		"9161234567",
		"+7916123456",
		"+791612345678",
		"телефон",
		"",
	}
	for _, p := range invalid {
		assert.False(t, ValidPhone(p), "expected %q to be invalid", p)
	}
}
