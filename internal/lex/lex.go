// Package lex implements the line grammar of .env files:
//
//	[export ]KEY=VALUE
//
// KEY matches [a-zA-Z_][a-zA-Z0-9_]* and VALUE is the rest of the line.
package lex

import "strings"

// exportToken is the optional leading token of a declaration.
const exportToken = "export "

// ParseLine splits a declaration line into its key and value.
// The line is split on the first '='. The left side, after removing one
// leading "export " token, must be a complete identifier. The value is the
// remainder of the line with one pair of fully wrapping quotes removed.
// ok is false for lines that are not declarations.
func ParseLine(line string) (key, value string, ok bool) {
	idx := strings.IndexByte(line, '=')
	if idx < 0 {
		return "", "", false
	}

	key = line[:idx]
	if !IsIdentifier(key) {
		// "export" alone is a valid identifier, so only strip the token
		// when the plain form did not match.
		trimmed, found := strings.CutPrefix(key, exportToken)
		if !found || !IsIdentifier(trimmed) {
			return "", "", false
		}
		key = trimmed
	}

	return key, Unquote(line[idx+1:]), true
}

// IsIdentifier reports whether s matches [a-zA-Z_][a-zA-Z0-9_]*.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '_', ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z':
		case ch >= '0' && ch <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// Unquote removes one pair of matching single or double quotes wrapping
// the whole of s. The inner text is returned verbatim: there are no escape
// sequences, so 'it''s' becomes it''s.
func Unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first == last && (first == '\'' || first == '"') {
		return s[1 : len(s)-1]
	}
	return s
}

// Quote wraps s in double quotes. Unquote(Quote(s)) == s for every s
// that contains no line terminator.
func Quote(s string) string {
	return `"` + s + `"`
}
