/*
File    : golox/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLexer_SingleCharacterTokens(t *testing.T) {
	toks := New(`(){},.-+;*!=====<<=>>=/`).Tokens()
	assert.Equal(t, []Kind{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, COMMA, DOT, MINUS,
		PLUS, SEMICOLON, STAR, BANG_EQUAL, EQUAL_EQUAL, EQUAL_EQUAL, LESS,
		LESS_EQUAL, GREATER, GREATER_EQUAL, SLASH,
	}, kinds(toks))
}

func TestLexer_NumberDotBoundary(t *testing.T) {
	toks := New(`123.456`).Tokens()
	assert.Len(t, toks, 1)
	assert.Equal(t, NUMBER, toks[0].Kind)
	assert.Equal(t, 123.456, toks[0].Number)

	toks = New(`123.`).Tokens()
	assert.Equal(t, []Kind{NUMBER, DOT}, kinds(toks))
	assert.Equal(t, 123.0, toks[0].Number)

	toks = New(`.456`).Tokens()
	assert.Equal(t, []Kind{DOT, NUMBER}, kinds(toks))
	assert.Equal(t, 456.0, toks[1].Number)
}

func TestLexer_LineCommentNeverObservable(t *testing.T) {
	toks := New("1 // a comment\n2").Tokens()
	assert.Equal(t, []Kind{NUMBER, NUMBER}, kinds(toks))
	for _, tok := range toks {
		assert.NotEqual(t, COMMENT, tok.Kind)
	}
}

func TestLexer_LineCommentTerminatedByEOF(t *testing.T) {
	toks := New("1 // trailing, no newline").Tokens()
	assert.Equal(t, []Kind{NUMBER}, kinds(toks))
}

func TestLexer_UnterminatedString(t *testing.T) {
	toks := New(`"abc`).Tokens()
	assert.Len(t, toks, 1)
	assert.Equal(t, UNTERMINATED, toks[0].Kind)
}

func TestLexer_KeywordsAndIdentifiers(t *testing.T) {
	toks := New(`let x and y`).Tokens()
	assert.Equal(t, []Kind{LET, IDENT, AND, IDENT}, kinds(toks))
	assert.Equal(t, "x", toks[1].Text)
	assert.Equal(t, "y", toks[3].Text)
}

func TestLexer_StringLiteralNoEscapes(t *testing.T) {
	toks := New(`"hello, world"`).Tokens()
	assert.Equal(t, []Kind{STRING}, kinds(toks))
	assert.Equal(t, "hello, world", toks[0].Text)
}

func TestLexer_UnexpectedCharacter(t *testing.T) {
	toks := New(`@`).Tokens()
	assert.Equal(t, []Kind{UNEXPECTED}, kinds(toks))
	assert.Equal(t, "@", toks[0].Text)
}

func TestLexer_LocationsTrackRowCol(t *testing.T) {
	toks := New("let x = 1;\nprint x;").Tokens()
	// "print" begins the second line, column 0.
	var printTok Token
	for _, tok := range toks {
		if tok.Kind == PRINT {
			printTok = tok
		}
	}
	assert.Equal(t, 1, printTok.Loc.Row)
	assert.Equal(t, 0, printTok.Loc.Col)
}

func TestLexer_EmptyInputYieldsNoTokens(t *testing.T) {
	assert.Empty(t, New("").Tokens())
	assert.Equal(t, EOF, New("").Next().Kind)
}
