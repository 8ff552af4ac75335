package utils

import (
	"strings"

	"github.com/samber/lo"
)

// MergeClasses joins class tokens with a single space. Empty and
// whitespace-only tokens are dropped, and each token is trimmed.
func MergeClasses(tokens ...string) string {
	trimmed := lo.Map(tokens, func(token string, _ int) string {
		return strings.TrimSpace(token)
	})
	return strings.Join(lo.Compact(trimmed), " ")
}

// ClassIf returns token when cond holds and "" otherwise, for use with
// MergeClasses.
func ClassIf(cond bool, token string) string {
	if cond {
		return token
	}
	return ""
}
