package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"bob", "Bob"},
		{"Bob", "Bob"},
		{"BOB", "BOB"},
		{"  оля  ", "Оля"},
		{"іван", "Іван"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeName(tt.in), "NormalizeName(%q)", tt.in)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"12", 12, false},
		{" 7 ", 7, false},
		{"0", 0, false},
		{"12abc", 12, false}, // parsing truncates at the first non-digit
		{"12.50", 12, false},
		{"abc", 0, true},
		{"-5", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseAmount(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParseAmount(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseAmount(%q)", tt.in)
	}
}

func TestParseExpenseLine(t *testing.T) {
	name, amount, err := parseExpenseLine("bob 40")
	require.NoError(t, err)
	assert.Equal(t, "Bob", name)
	assert.Equal(t, int64(40), amount)

	_, _, err = parseExpenseLine("bob")
	assert.ErrorIs(t, err, errBadFormat)

	_, _, err = parseExpenseLine("bob 40 zakuska")
	assert.ErrorIs(t, err, errBadFormat)

	_, _, err = parseExpenseLine("bob abc")
	assert.ErrorIs(t, err, errBadAmount)

	_, _, err = parseExpenseLine("bob -40")
	assert.ErrorIs(t, err, errNegative)

	_, _, err = parseExpenseLine("")
	assert.ErrorIs(t, err, errBadFormat)
}

func TestYesNo(t *testing.T) {
	assert.True(t, isYes("так"))
	assert.True(t, isYes("Так"))
	assert.True(t, isYes("ТАК"))
	assert.True(t, isNo("Ні"))
	assert.False(t, isYes("ні"))
	assert.False(t, isYes("мабуть"))
}
