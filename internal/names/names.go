// Package names converts between wire keys, SQL identifiers and Go names.
package names

import (
	"strings"
	"unicode"
)

var initialisms = map[string]bool{
	"api":  true,
	"html": true,
	"http": true,
	"id":   true,
	"json": true,
	"sql":  true,
	"uri":  true,
	"url":  true,
	"uuid": true,
}

// Go returns the exported Go name of a snake_case, kebab-case or camelCase
// identifier, for example `UserID` for `user_id`.
func Go(s string) string {
	var sb strings.Builder

	for _, word := range words(s) {
		lower := strings.ToLower(word)
		if initialisms[lower] {
			sb.WriteString(strings.ToUpper(lower))
			continue
		}

		sb.WriteString(strings.ToUpper(word[0:1]))
		sb.WriteString(word[1:])
	}

	name := sb.String()
	if name == "" || unicode.IsDigit(rune(name[0])) {
		name = "X" + name
	}

	return name
}

// Snake returns the snake_case form of a Go name, for example `http_server`
// for `HTTPServer`.
func Snake(s string) string {
	runes := []rune(s)

	var sb strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && !unicode.IsUpper(runes[i-1])
			nextLower := i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if prevLower || nextLower {
				sb.WriteByte('_')
			}

			r = unicode.ToLower(r)
		}

		sb.WriteRune(r)
	}

	return sb.String()
}

func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
