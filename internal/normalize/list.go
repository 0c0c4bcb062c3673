package normalize

import "strings"

// SplitList splits a delimited free-text list into lowercase, trimmed
// tokens. ";" takes precedence over "," when both occur; empty tokens
// are dropped. Order of first occurrence is kept, repeats are not.
func SplitList(s string) []string {
	delimiter := ","
	if strings.Contains(s, ";") {
		delimiter = ";"
	}
	seen := make(map[string]bool)
	var tokens []string
	for _, part := range strings.Split(s, delimiter) {
		token := strings.ToLower(strings.TrimSpace(part))
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		tokens = append(tokens, token)
	}
	return tokens
}
