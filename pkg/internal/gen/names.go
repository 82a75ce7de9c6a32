package gen

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
)

// initialisms are words rendered in upper case in Go identifiers.
var initialisms = map[string]bool{
	"api":  true,
	"dc":   true,
	"html": true,
	"id":   true,
	"ip":   true,
	"json": true,
	"sms":  true,
	"uri":  true,
	"url":  true,
}

// splitWords splits a camelCase or snake_case TL identifier into words.
func splitWords(s string) []string {
	var words []string
	for _, part := range strings.Split(s, "_") {
		runes := []rune(part)
		start := 0
		for i := 1; i < len(runes); i++ {
			if !unicode.IsUpper(runes[i]) {
				continue
			}
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				words = append(words, string(runes[start:i]))
				start = i
			}
		}
		if start < len(runes) {
			words = append(words, string(runes[start:]))
		}
	}
	return words
}

// goName converts TL identifier to exported Go identifier.
func goName(s string) string {
	var b strings.Builder
	for _, word := range splitWords(s) {
		lower := strings.ToLower(word)
		if initialisms[lower] {
			b.WriteString(strings.ToUpper(lower))
			continue
		}
		b.WriteString(inflect.Capitalize(word))
	}
	return b.String()
}

// fileName converts TL identifier to snake_case file name part.
func fileName(s string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, "_")
}

// lowerFirst lowercases the first letter.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// receiverName picks a receiver that does not clash with the coder argument "b".
func receiverName(goName string) string {
	r := lowerFirst(goName)[:1]
	if r == "b" {
		return "o"
	}
	return r
}
