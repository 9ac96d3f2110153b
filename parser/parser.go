package parser

import (
	"fmt"

	"github.com/syifan-m2sim2/dlx-sim/instruction"
)

// pendingLabel is a label definition waiting for the instruction that
// follows it on a later line.
type pendingLabel struct {
	name string
	pos  Position
}

type parser struct {
	ts          *TokenStream
	program     *Program
	labelDefPos map[string]Position
	pending     []pendingLabel
}

// Parse tokenizes source and parses it into a Program. It never fails to
// return a program: a malformed line produces diagnostics and is skipped,
// not a Go error.
func Parse(source string) *Program {
	return ParseTokens(Tokenize(source))
}

// ParseTokens parses an already-produced token stream.
func ParseTokens(ts *TokenStream) *Program {
	p := &parser{
		ts: ts,
		program: &Program{
			Labels: map[string]int{},
		},
		labelDefPos: map[string]Position{},
	}
	p.run()
	return p.program
}

func (p *parser) addDiag(d Diagnostic) {
	p.program.Diagnostics = append(p.program.Diagnostics, d)
}

func (p *parser) run() {
	for {
		for p.ts.LookAhead(0).Type == TokenNewLine {
			p.ts.Consume()
		}
		if p.ts.ReachedEnd() {
			break
		}
		p.parseLine()
	}
	for _, pl := range p.pending {
		p.addDiag(Diagnostic{Kind: EmptyLabel, Pos: pl.pos, Name: pl.name})
	}
}

func (p *parser) parseLine() {
	// Consume every label definition at the start of the line; DLX allows
	// more than one label to target the same instruction.
	for {
		tok := p.ts.LookAhead(0)
		if tok.Type != TokenLabelIdentifier || len(tok.Text) == 0 || tok.Text[len(tok.Text)-1] != ':' {
			break
		}
		p.ts.Consume()
		p.defineLabel(tok.Text[:len(tok.Text)-1], tok.Pos)
	}

	for p.ts.LookAhead(0).Type == TokenComment {
		p.ts.Consume()
	}

	tok := p.ts.LookAhead(0)
	switch tok.Type {
	case TokenOpCode:
		p.parseInstruction()
	case TokenNewLine, TokenEOF:
		// blank or label-only line
	case TokenComment:
		// handled above
	default:
		p.addDiag(Diagnostic{
			Kind:     UnexpectedToken,
			Pos:      tok.Pos,
			Expected: "opcode, label, or comment",
			Actual:   describeToken(tok),
		})
		p.resync()
		return
	}
	p.finishLine()
}

func (p *parser) defineLabel(name string, pos Position) {
	if prior, ok := p.labelDefPos[name]; ok {
		p.addDiag(Diagnostic{
			Kind:        LabelAlreadyDefined,
			Pos:         pos,
			Name:        name,
			PriorLine:   prior.Line,
			PriorColumn: prior.Column,
		})
		return
	}
	if !IsValidLabelIdentifier(name) {
		p.addDiag(Diagnostic{Kind: InvalidLabelIdentifier, Pos: pos, Identifier: name})
		return
	}
	if IsReservedIdentifier(name) {
		p.addDiag(Diagnostic{Kind: ReservedIdentifier, Pos: pos, Identifier: name})
		return
	}
	p.labelDefPos[name] = pos
	p.pending = append(p.pending, pendingLabel{name: name, pos: pos})
}

func (p *parser) attachPendingLabels(instructionIndex int) {
	if len(p.pending) == 0 {
		return
	}
	for _, pl := range p.pending {
		p.program.Labels[pl.name] = instructionIndex
	}
	p.pending = nil
}

func (p *parser) parseInstruction() {
	opTok := p.ts.Consume()
	op := opTok.Hint.Opcode

	argTypes := instruction.ArgumentTypes(op)
	required := instruction.RequiredArgCount(op)

	var args [3]instruction.Argument
	for i := range args {
		args[i] = instruction.NoneArgument
	}

	provided := 0
	ok := true
	for i := 0; i < required && ok; i++ {
		if i > 0 {
			if p.ts.LookAhead(0).Type == TokenComma {
				p.ts.Consume()
			}
		}
		tok := p.ts.LookAhead(0)
		if tok.Type == TokenNewLine || tok.Type == TokenEOF {
			p.addDiag(Diagnostic{Kind: TooFewArguments, Pos: opTok.Pos, Required: required, Provided: provided})
			ok = false
			break
		}
		arg, argOK := p.parseArg(argTypes[i])
		if !argOK {
			ok = false
			break
		}
		args[i] = arg
		provided++
	}

	if !ok {
		p.resync()
		return
	}

	idx := len(p.program.Instructions)
	p.program.Instructions = append(p.program.Instructions, ParsedInstruction{
		Opcode: op,
		Args:   args,
		Pos:    opTok.Pos,
	})
	p.attachPendingLabels(idx)
}

func (p *parser) parseArg(t instruction.ArgumentType) (instruction.Argument, bool) {
	tok := p.ts.LookAhead(0)
	switch t {
	case instruction.IntRegister:
		if tok.Type != TokenRegisterInt {
			p.addDiag(Diagnostic{Kind: UnexpectedArgumentType, Pos: tok.Pos, Expected: "IntRegister", Actual: describeToken(tok)})
			return instruction.Argument{}, false
		}
		p.ts.Consume()
		return instruction.IntRegisterArg(tok.Hint.RegisterID), true

	case instruction.FloatRegister:
		if tok.Type != TokenRegisterFloat {
			p.addDiag(Diagnostic{Kind: UnexpectedArgumentType, Pos: tok.Pos, Expected: "FloatRegister", Actual: describeToken(tok)})
			return instruction.Argument{}, false
		}
		p.ts.Consume()
		return instruction.FloatRegisterArg(tok.Hint.RegisterID), true

	case instruction.ImmediateInteger:
		if tok.Type != TokenImmediateInteger {
			p.addDiag(Diagnostic{Kind: UnexpectedArgumentType, Pos: tok.Pos, Expected: "ImmediateInteger", Actual: describeToken(tok)})
			return instruction.Argument{}, false
		}
		p.ts.Consume()
		if tok.Hint.Kind != IntHint {
			p.addDiag(Diagnostic{Kind: InvalidNumber, Pos: tok.Pos, Text: tok.Text})
			return instruction.Argument{}, false
		}
		return instruction.ImmediateArg(tok.Hint.IntValue), true

	case instruction.AddressDisplacement:
		return p.parseAddressDisplacement()

	case instruction.Label:
		if tok.Type != TokenLabelIdentifier || (len(tok.Text) > 0 && tok.Text[len(tok.Text)-1] == ':') {
			p.addDiag(Diagnostic{Kind: UnexpectedArgumentType, Pos: tok.Pos, Expected: "Label", Actual: describeToken(tok)})
			return instruction.Argument{}, false
		}
		p.ts.Consume()
		if !IsValidLabelIdentifier(tok.Text) {
			p.addDiag(Diagnostic{Kind: InvalidLabelIdentifier, Pos: tok.Pos, Identifier: tok.Text})
			return instruction.Argument{}, false
		}
		if IsReservedIdentifier(tok.Text) {
			p.addDiag(Diagnostic{Kind: ReservedIdentifier, Pos: tok.Pos, Identifier: tok.Text})
			return instruction.Argument{}, false
		}
		return instruction.LabelArg(tok.Text), true

	default:
		return instruction.NoneArgument, true
	}
}

func (p *parser) parseAddressDisplacement() (instruction.Argument, bool) {
	tok := p.ts.LookAhead(0)
	switch tok.Type {
	case TokenImmediateInteger:
		p.ts.Consume()
		if tok.Hint.Kind != IntHint {
			p.addDiag(Diagnostic{Kind: InvalidNumber, Pos: tok.Pos, Text: tok.Text})
			return instruction.Argument{}, false
		}
		return instruction.AddressDisplacementArg(0, tok.Hint.IntValue), true

	case TokenIntegerLiteral:
		p.ts.Consume()
		if tok.Hint.Kind != IntHint {
			p.addDiag(Diagnostic{Kind: InvalidNumber, Pos: tok.Pos, Text: tok.Text})
			return instruction.Argument{}, false
		}
		disp := tok.Hint.IntValue
		if p.ts.LookAhead(0).Type != TokenOpenBracket {
			p.addDiag(Diagnostic{Kind: TooFewArgumentsAddressDisplacement, Pos: tok.Pos})
			return instruction.Argument{}, false
		}
		p.ts.Consume()
		regTok := p.ts.LookAhead(0)
		if regTok.Type != TokenRegisterInt {
			p.addDiag(Diagnostic{Kind: UnexpectedToken, Pos: regTok.Pos, Expected: "IntRegister", Actual: describeToken(regTok)})
			return instruction.Argument{}, false
		}
		p.ts.Consume()
		if p.ts.LookAhead(0).Type != TokenClosingBracket {
			closeTok := p.ts.LookAhead(0)
			p.addDiag(Diagnostic{Kind: UnexpectedToken, Pos: closeTok.Pos, Expected: ")", Actual: describeToken(closeTok)})
			return instruction.Argument{}, false
		}
		p.ts.Consume()
		return instruction.AddressDisplacementArg(regTok.Hint.RegisterID, disp), true

	default:
		p.addDiag(Diagnostic{Kind: UnexpectedArgumentType, Pos: tok.Pos, Expected: "AddressDisplacement", Actual: describeToken(tok)})
		return instruction.Argument{}, false
	}
}

// finishLine consumes whatever remains on the current line, diagnosing a
// second opcode (OneInstructionPerLine) and any other unexpected token,
// stopping at (and consuming) the newline or EOF.
func (p *parser) finishLine() {
	reportedSecondOpcode := false
	for {
		tok := p.ts.LookAhead(0)
		switch tok.Type {
		case TokenNewLine:
			p.ts.Consume()
			return
		case TokenEOF:
			return
		case TokenComment:
			p.ts.Consume()
		case TokenOpCode:
			if !reportedSecondOpcode {
				p.addDiag(Diagnostic{Kind: OneInstructionPerLine, Pos: tok.Pos})
				reportedSecondOpcode = true
			}
			p.ts.Consume()
		default:
			if !reportedSecondOpcode {
				p.addDiag(Diagnostic{Kind: UnexpectedToken, Pos: tok.Pos, Expected: "end of line", Actual: describeToken(tok)})
			}
			p.ts.Consume()
		}
	}
}

// resync discards tokens through the next newline (inclusive) so parsing
// can continue on the following line after an error.
func (p *parser) resync() {
	for {
		tok := p.ts.Consume()
		if tok.Type == TokenNewLine || tok.Type == TokenEOF {
			return
		}
	}
}

func describeToken(t Token) string {
	if t.Text == "" {
		return t.Type.String()
	}
	return fmt.Sprintf("%s %q", t.Type, t.Text)
}
