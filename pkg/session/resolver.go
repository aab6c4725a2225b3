package session

import "strings"

// Candidate is the value one source offered for the session identifier.
// Found is false when the source had no value at all.
type Candidate struct {
	Source string
	Value  string
	Found  bool
}

// Resolve picks the effective identifier from candidates ordered by ascending
// priority. Every found, non-blank value overwrites the running result; blank
// or missing values leave it untouched. It reports false when nothing qualified.
func Resolve(candidates ...Candidate) (string, bool) {
	var result string
	for _, c := range candidates {
		if c.Found && strings.TrimSpace(c.Value) != "" {
			result = c.Value
		}
	}
	return result, result != ""
}
