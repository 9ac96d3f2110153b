package parser

import "github.com/syifan-m2sim2/dlx-sim/instruction"

// ParsedInstruction is one fully resolved program line: an opcode plus its
// three arguments plus the source position of the mnemonic. It holds no
// pointer into the source text.
type ParsedInstruction struct {
	Opcode instruction.Opcode
	Args   [3]instruction.Argument
	Pos    Position
}

// Program is the parser's output: an ordered instruction list, a label
// table mapping names to the index of the instruction they target, and the
// diagnostics collected along the way.
type Program struct {
	Instructions []ParsedInstruction
	Labels       map[string]int
	Diagnostics  []Diagnostic
}

// IsValid reports whether the program has no diagnostics and at least one
// instruction.
func (p *Program) IsValid() bool {
	return len(p.Diagnostics) == 0 && len(p.Instructions) > 0
}
