package memory

import "strings"

// stopwords are query tokens too common to discriminate on.
var stopwords = map[string]bool{
	"what": true, "when": true, "where": true, "that": true,
	"this": true, "with": true, "from": true, "about": true,
	"have": true, "your": true,
}

// queryTokens extracts the significant lowercase tokens of a query.
func queryTokens(query string) []string {
	fields := strings.FieldsFunc(strings.ToLower(query), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	var out []string
	for _, f := range fields {
		if len(f) > 3 && !stopwords[f] {
			out = append(out, f)
		}
	}
	return out
}

// Matches reports whether any significant query token occurs in the text.
// A query with no significant tokens matches nothing. Other adapters that
// filter client side reuse this predicate so ranking stays consistent.
func Matches(query, text string) bool {
	lowered := strings.ToLower(text)
	for _, token := range queryTokens(query) {
		if strings.Contains(lowered, token) {
			return true
		}
	}
	return false
}
