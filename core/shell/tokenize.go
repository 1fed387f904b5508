package shell

import "strings"

// Tokenize splits a command line into an argument vector on runs of
// whitespace.
//
// This is deliberately simpler than POSIX token recognition
// (https://pubs.opengroup.org/onlinepubs/9699919799/utilities/V3_chap02.html):
// there is no quoting, escaping or expansion, so every whitespace
// separated field becomes exactly one argument. An empty or blank line
// yields an empty vector.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// TrimBackground reports whether the argument vector requests background
// execution and returns the vector without the trailing "&" marker.
//
// Only the final token is consulted; a "&" anywhere else is passed through
// as a literal argument. This runs before redirection parsing so a
// trailing "&" is never mistaken for a redirection target.
func TrimBackground(argv []string) ([]string, bool) {
	if n := len(argv); n > 0 && argv[n-1] == "&" {
		return argv[:n-1], true
	}
	return argv, false
}
