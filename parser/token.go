// Package parser turns DLX assembly source text into a stream of tokens and
// then into a validated program: an ordered instruction list, a label table,
// and a structured diagnostic list. The lexer is total (it never fails);
// malformed input surfaces as diagnostics from the parser, never as an error
// return from tokenizing.
package parser

import (
	"fmt"

	"github.com/syifan-m2sim2/dlx-sim/instruction"
)

// Position is a 1-based line/column location in the source text.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// TokenType classifies a lexical token.
type TokenType int

const (
	TokenComment TokenType = iota
	TokenOpCode
	TokenLabelIdentifier
	TokenRegisterInt
	TokenRegisterFloat
	TokenRegisterStatus
	TokenComma
	TokenColon
	TokenOpenBracket
	TokenClosingBracket
	TokenNewLine
	TokenImmediateInteger
	TokenIntegerLiteral
	TokenEOF
)

var tokenTypeNames = map[TokenType]string{
	TokenComment:          "Comment",
	TokenOpCode:           "OpCode",
	TokenLabelIdentifier:  "LabelIdentifier",
	TokenRegisterInt:      "RegisterInt",
	TokenRegisterFloat:    "RegisterFloat",
	TokenRegisterStatus:   "RegisterStatus",
	TokenComma:            "Comma",
	TokenColon:            "Colon",
	TokenOpenBracket:      "OpenBracket",
	TokenClosingBracket:   "ClosingBracket",
	TokenNewLine:          "NewLine",
	TokenImmediateInteger: "ImmediateInteger",
	TokenIntegerLiteral:   "IntegerLiteral",
	TokenEOF:              "EOF",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// HintKind identifies which field of a Hint, if any, is populated.
type HintKind int

const (
	NoHint HintKind = iota
	OpcodeHint
	RegisterHint
	IntHint
)

// Hint carries a pre-resolved semantic value attached by the lexer so the
// parser does not need to re-classify token text: an opcode id for OpCode
// tokens, a register id for RegisterInt/RegisterFloat tokens, or a parsed
// 16-bit integer for ImmediateInteger/IntegerLiteral tokens whose text parsed
// cleanly.
type Hint struct {
	Kind       HintKind
	Opcode     instruction.Opcode
	RegisterID int
	IntValue   int16
}

// Token is one lexical unit: its type, its exact source text, its origin
// position, and an optional semantic hint.
type Token struct {
	Type TokenType
	Text string
	Pos  Position
	Hint Hint
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q) at %s", t.Type, t.Text, t.Pos)
}
