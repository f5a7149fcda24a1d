package normalize

import "strings"

// ToLowerDotPath normalizes a .env key to a lowercase dot-separated path.
// Double underscores (__) are treated as level separators and converted to dots.
// Single underscores within a level are preserved.
// Examples:
//   - "FOO__BAR" → "foo.bar"
//   - "DB_MAX_CONNECTIONS" → "db_max_connections"
//   - "API__RATE_LIMIT" → "api.rate_limit"
func ToLowerDotPath(key string) string {
	return strings.ToLower(strings.ReplaceAll(key, "__", "."))
}

// TrimPrefix strips prefix from key, ignoring case unless caseSensitive is set.
// ok is false when key does not start with prefix or nothing remains after it.
func TrimPrefix(key, prefix string, caseSensitive bool) (rest string, ok bool) {
	if prefix == "" {
		return key, key != ""
	}
	if len(key) <= len(prefix) {
		return "", false
	}

	head := key[:len(prefix)]
	if caseSensitive {
		ok = head == prefix
	} else {
		ok = strings.EqualFold(head, prefix)
	}
	if !ok {
		return "", false
	}
	return key[len(prefix):], true
}
