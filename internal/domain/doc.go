// Package domain contains the word rules for fiveword.
//
// This package is the innermost layer. It has no dependencies on file
// handles, configuration or logging and contains only the pure string
// rules applied to each line of a word list.
//
// # Rules
//
//   - [Accept]: a candidate is exactly five codepoints, all Unicode letters
//   - [Transform]: ı becomes I, i becomes İ, then a generic uppercase pass
//   - [Normalize]: trim, accept and transform a raw line in one call
//
// Every rule returns a new string; nothing is mutated in place.
package domain
