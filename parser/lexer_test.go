package parser_test

import (
	"testing"

	"github.com/syifan-m2sim2/dlx-sim/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTypes(ts *parser.TokenStream) []parser.TokenType {
	var types []parser.TokenType
	for !ts.ReachedEnd() {
		types = append(types, ts.Consume().Type)
	}
	return types
}

func TestTokenize_SimpleInstruction(t *testing.T) {
	ts := parser.Tokenize("ADD R1, R2, R3\n")
	types := tokenTypes(ts)
	require.Equal(t, []parser.TokenType{
		parser.TokenOpCode,
		parser.TokenRegisterInt,
		parser.TokenComma,
		parser.TokenRegisterInt,
		parser.TokenComma,
		parser.TokenRegisterInt,
		parser.TokenNewLine,
	}, types)
}

func TestTokenize_LabelDefinition(t *testing.T) {
	ts := parser.Tokenize("loop: ADDI R1, R1, #1\n")
	first := ts.Consume()
	assert.Equal(t, parser.TokenLabelIdentifier, first.Type)
	assert.Equal(t, "loop:", first.Text)
}

func TestTokenize_ImmediateHint(t *testing.T) {
	ts := parser.Tokenize("#42")
	tok := ts.Consume()
	require.Equal(t, parser.TokenImmediateInteger, tok.Type)
	require.Equal(t, parser.IntHint, tok.Hint.Kind)
	assert.EqualValues(t, 42, tok.Hint.IntValue)
}

func TestTokenize_ImmediateWithInvalidNumberHasNoHint(t *testing.T) {
	ts := parser.Tokenize("#4abcxyz")
	tok := ts.Consume()
	assert.Equal(t, parser.TokenImmediateInteger, tok.Type)
	assert.Equal(t, parser.NoHint, tok.Hint.Kind)
}

func TestTokenize_AddressDisplacement(t *testing.T) {
	ts := parser.Tokenize("-4(R2)")
	require.Equal(t, parser.TokenIntegerLiteral, ts.LookAhead(0).Type)
	assert.Equal(t, parser.TokenOpenBracket, ts.LookAhead(1).Type)
	assert.Equal(t, parser.TokenRegisterInt, ts.LookAhead(2).Type)
	assert.Equal(t, parser.TokenClosingBracket, ts.LookAhead(3).Type)
}

func TestTokenize_CommentIsNeverAnError(t *testing.T) {
	ts := parser.Tokenize("; a full line comment\nADD R1, R2, R3\n")
	first := ts.Consume()
	assert.Equal(t, parser.TokenComment, first.Type)
}

func TestTokenize_NeverFails_OnJunkPunctuation(t *testing.T) {
	ts := parser.Tokenize("@@@\n")
	for !ts.ReachedEnd() {
		tok := ts.Consume()
		if tok.Type == parser.TokenNewLine {
			continue
		}
		assert.Equal(t, parser.TokenLabelIdentifier, tok.Type)
	}
}

func TestTokenize_FPSR(t *testing.T) {
	ts := parser.Tokenize("FPSR")
	tok := ts.Consume()
	assert.Equal(t, parser.TokenRegisterStatus, tok.Type)
}
