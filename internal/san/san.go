// Package san provides normalization of annotated SAN move lists.
package san

import "strings"

// Tokens splits a raw space-separated move list into clean SAN tokens.
// Trailing check (+) and mate (#) decorations are stripped; they are
// presentational and carry no information needed to resolve the move.
// All other token content is preserved, no token is dropped, and order
// is maintained. An empty or all-whitespace input yields no tokens.
func Tokens(moves string) []string {
	if moves == "" {
		return nil
	}

	fields := strings.Fields(moves)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, strings.TrimRight(f, "+#"))
	}
	return tokens
}
