package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/foprover/pkg/prover"
)

func lexAll(t *testing.T, src string) []Token {
	t.Helper()
	l := NewLexer(src)
	var toks []Token
	for {
		tok, err := l.Next()
		require.NoError(t, err)
		toks = append(toks, tok)
		if tok.Kind == TokEOF {
			return toks
		}
	}
}

func kinds(toks []Token) []TokenKind {
	out := make([]TokenKind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLexSymbolicConnectives(t *testing.T) {
	toks := lexAll(t, "A & B | C ^ D -> E <- F <-> G")
	assert.Equal(t, []TokenKind{
		TokIdent, TokAnd, TokIdent, TokOr, TokIdent, TokXor, TokIdent,
		TokImplies, TokIdent, TokImpliedBy, TokIdent, TokIff, TokIdent, TokEOF,
	}, kinds(toks))
}

func TestLexWordFormConnectives(t *testing.T) {
	toks := lexAll(t, "A and B or C xor D")
	assert.Equal(t, []TokenKind{
		TokIdent, TokAnd, TokIdent, TokOr, TokIdent, TokXor, TokIdent, TokEOF,
	}, kinds(toks))
}

func TestLexTurnstileAndComma(t *testing.T) {
	toks := lexAll(t, "P(a, b) |- Q(a)")
	assert.Equal(t, []TokenKind{
		TokIdent, TokLParen, TokIdent, TokComma, TokIdent, TokRParen,
		TokTurnstile, TokIdent, TokLParen, TokIdent, TokRParen, TokEOF,
	}, kinds(toks))
}

func TestLexEqualityAndDisequality(t *testing.T) {
	toks := lexAll(t, "a == b, b != c")
	assert.Equal(t, []TokenKind{
		TokIdent, TokEq, TokIdent, TokComma, TokIdent, TokNeq, TokIdent, TokEOF,
	}, kinds(toks))
}

func TestLexCommentsAndWhitespaceIgnored(t *testing.T) {
	toks := lexAll(t, "A # this is a comment\n & B")
	assert.Equal(t, []TokenKind{TokIdent, TokAnd, TokIdent, TokEOF}, kinds(toks))
}

func TestLexTrueFalseAndUnicodeConnectives(t *testing.T) {
	toks := lexAll(t, "* ~ ¬A ∧ B ∨ C → D ← E ↔ F")
	assert.Equal(t, []TokenKind{
		TokTrue, TokFalse, TokNot, TokIdent, TokAnd, TokIdent, TokOr, TokIdent,
		TokImplies, TokIdent, TokImpliedBy, TokIdent, TokIff, TokIdent, TokEOF,
	}, kinds(toks))
}

func TestLexSingleEqualsIsParseError(t *testing.T) {
	l := NewLexer("a = b")
	_, err := l.Next()
	require.NoError(t, err)
	_, err = l.Next()
	require.Error(t, err)
	var pe *prover.ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestLexReportsLineAndColumn(t *testing.T) {
	toks := lexAll(t, "A\n & B")
	require.Len(t, toks, 4)
	assert.Equal(t, 2, toks[1].Line)
	assert.Equal(t, 2, toks[1].Col)
}
