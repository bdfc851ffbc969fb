// File: tokenizer.go
// Title: Command Line Tokenizer
// Description: Splits a raw command line into tokens. Spaces separate
//              tokens, single or double quotes group them and backslashes
//              escape the following character. Malformed quoting never
//              fails; an unterminated opening quote is taken literally.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-04
// Modified: 2025-08-04
//
// Change History:
// - 2025-08-04 v0.1.0: Initial implementation

package tokenizer

// Tokenize splits raw into tokens.
//
// A quote opens a region only at the start of the input or after a separating
// space, and closes only on the same quote at the end of the input or before a
// space. Anywhere else it is an ordinary character. A quote or space preceded
// by an odd number of backslashes is literal. A quoted empty region yields an
// empty token. Escapes are removed once the token is complete, so `\"` becomes
// `"` and `\\` becomes `\`.
func Tokenize(raw string) []string {
	input := []rune(raw)
	literal := make(map[int]bool)

	for {
		tokens, open := scan(input, literal)
		if open < 0 {
			return tokens
		}
		// Retry with the unmatched quote as plain text. Everything left of it
		// scans identically, so only the remainder changes.
		literal[open] = true
	}
}

// scan runs one pass over input. It returns the index of an opening quote
// that was never closed, or -1 with the tokens.
func scan(input []rune, literal map[int]bool) ([]string, int) {
	var (
		tokens  []string
		current []rune
		started bool
		quote   rune
		openAt  = -1
	)

	flush := func() {
		if started {
			tokens = append(tokens, unescape(current))
		}
		current = current[:0]
		started = false
	}

	last := len(input) - 1

	for i, r := range input {
		if quote != 0 {
			if r == quote && !escaped(input, i) && (i == last || input[i+1] == ' ') {
				quote = 0
				continue
			}
			current = append(current, r)
			continue
		}

		switch {
		case r == ' ' && !escaped(input, i):
			flush()
		case isQuote(r) && !literal[i] && opens(input, i):
			quote = r
			openAt = i
			started = true
		default:
			current = append(current, r)
			started = true
		}
	}

	if quote != 0 {
		return nil, openAt
	}

	flush()
	return tokens, -1
}

func isQuote(r rune) bool {
	return r == '"' || r == '\''
}

func opens(input []rune, i int) bool {
	if i == 0 {
		return true
	}
	return input[i-1] == ' ' && !escaped(input, i-1)
}

// escaped reports whether input[i] follows an odd run of backslashes
func escaped(input []rune, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && input[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

func unescape(token []rune) string {
	out := make([]rune, 0, len(token))
	for i := 0; i < len(token); i++ {
		if token[i] == '\\' && i+1 < len(token) {
			i++
		}
		out = append(out, token[i])
	}
	return string(out)
}
