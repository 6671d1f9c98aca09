package session

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	errBadFormat = errors.New("expected two tokens: name and amount")
	errBadAmount = errors.New("amount is not a valid number")
	errNegative  = errors.New("amount must not be negative")
)

// NormalizeName uppercases the first rune and leaves the rest unchanged, so
// "bob" and "Bob" collapse to the same key while "BOB" stays distinct. This
// is a display convention to merge casual spelling variants, not full case
// folding.
func NormalizeName(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// ParseAmount parses a non-negative whole amount of hryvnias. Parsing stops
// at the first non-digit, so "12abc" yields 12; input without a leading
// digit is rejected, as is a minus sign.
func ParseAmount(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "-") {
		return 0, errNegative
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, errBadAmount
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, errBadAmount
	}
	return n, nil
}

// parseExpenseLine splits an "Ім'я Сума" line into a normalized name and an
// amount. Any failure rejects the whole line; nothing is mutated on error.
func parseExpenseLine(line string) (string, int64, error) {
	tokens := strings.Fields(strings.TrimSpace(line))
	if len(tokens) != 2 {
		return "", 0, errBadFormat
	}
	amount, err := ParseAmount(tokens[1])
	if err != nil {
		return "", 0, err
	}
	return NormalizeName(tokens[0]), amount, nil
}

func isYes(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), "так")
}

func isNo(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), "ні")
}
