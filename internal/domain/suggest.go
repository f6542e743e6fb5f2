package domain

import (
	"github.com/sahilm/fuzzy"
)

// maxSuggestions caps "did you mean" lists
const maxSuggestions = 3

// Suggest returns the candidates that fuzzily match name, best first
func Suggest(name string, candidates []string) []string {
	matches := fuzzy.Find(name, candidates)
	var out []string
	for i, m := range matches {
		if i == maxSuggestions {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
