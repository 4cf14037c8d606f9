/*
File    : golox/lexer/number.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "strconv"

// parseFloat converts a lexeme already validated by scanNumber (digits,
// optionally one '.' followed by more digits) into its float64 value. The
// lexeme is guaranteed well-formed by construction, so a parse failure here
// would indicate a scanner bug, not bad input.
func parseFloat(text string) float64 {
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		panic("lexer: malformed number lexeme " + text)
	}
	return n
}
