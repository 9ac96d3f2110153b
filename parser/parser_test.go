package parser_test

import (
	"testing"

	"github.com/syifan-m2sim2/dlx-sim/instruction"
	"github.com/syifan-m2sim2/dlx-sim/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SimpleProgram(t *testing.T) {
	prog := parser.Parse("ADDI R1, R0, #5\nADDI R2, R0, #10\nADD R3, R1, R2\nHALT\n")
	require.Empty(t, prog.Diagnostics)
	require.Len(t, prog.Instructions, 4)
	assert.Equal(t, instruction.ADDI, prog.Instructions[0].Opcode)
	assert.Equal(t, instruction.HALT, prog.Instructions[3].Opcode)
	assert.True(t, prog.IsValid())
}

func TestParse_LabelResolvesToFollowingInstruction(t *testing.T) {
	prog := parser.Parse("loop: ADDI R1, R1, #1\nJ loop\n")
	require.Empty(t, prog.Diagnostics)
	idx, ok := prog.Labels["loop"]
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, "loop", prog.Instructions[1].Args[0].LabelName)
}

func TestParse_MultipleLabelsSameTarget(t *testing.T) {
	prog := parser.Parse("a:\nb:\nNOP\n")
	require.Empty(t, prog.Diagnostics)
	require.Len(t, prog.Instructions, 1)
	assert.Equal(t, 0, prog.Labels["a"])
	assert.Equal(t, 0, prog.Labels["b"])
}

func TestParse_EmptyTrailingLabelIsDiagnosed(t *testing.T) {
	prog := parser.Parse("loop:\n")
	require.Len(t, prog.Diagnostics, 1)
	assert.Equal(t, parser.EmptyLabel, prog.Diagnostics[0].Kind)
}

func TestParse_LabelAlreadyDefined(t *testing.T) {
	prog := parser.Parse("a: NOP\na: NOP\n")
	require.Len(t, prog.Diagnostics, 1)
	assert.Equal(t, parser.LabelAlreadyDefined, prog.Diagnostics[0].Kind)
}

func TestParse_ReservedIdentifierAsLabel(t *testing.T) {
	prog := parser.Parse("ADD: NOP\n")
	require.Len(t, prog.Diagnostics, 1)
	assert.Equal(t, parser.ReservedIdentifier, prog.Diagnostics[0].Kind)
}

func TestParse_TooFewArguments(t *testing.T) {
	prog := parser.Parse("ADD R1, R2\n")
	require.Len(t, prog.Diagnostics, 1)
	assert.Equal(t, parser.TooFewArguments, prog.Diagnostics[0].Kind)
}

func TestParse_UnexpectedArgumentType(t *testing.T) {
	prog := parser.Parse("ADD R1, R2, #5\n")
	require.Len(t, prog.Diagnostics, 1)
	assert.Equal(t, parser.UnexpectedArgumentType, prog.Diagnostics[0].Kind)
}

func TestParse_OneInstructionPerLine(t *testing.T) {
	prog := parser.Parse("NOP NOP\n")
	require.Len(t, prog.Diagnostics, 1)
	assert.Equal(t, parser.OneInstructionPerLine, prog.Diagnostics[0].Kind)
}

func TestParse_AddressDisplacementBareImmediate(t *testing.T) {
	prog := parser.Parse("LW R1, #100\n")
	require.Empty(t, prog.Diagnostics)
	arg := prog.Instructions[0].Args[1]
	assert.Equal(t, instruction.AddressDisplacement, arg.Kind)
	assert.Equal(t, 0, arg.Base)
	assert.EqualValues(t, 100, arg.Displacement)
}

func TestParse_AddressDisplacementWithBase(t *testing.T) {
	prog := parser.Parse("SW -4(R2), R1\n")
	require.Empty(t, prog.Diagnostics)
	arg := prog.Instructions[0].Args[0]
	assert.Equal(t, instruction.AddressDisplacement, arg.Kind)
	assert.Equal(t, 2, arg.Base)
	assert.EqualValues(t, -4, arg.Displacement)
}

func TestParse_AddressDisplacementMissingParen(t *testing.T) {
	prog := parser.Parse("SW -4, R1\n")
	require.Len(t, prog.Diagnostics, 1)
	assert.Equal(t, parser.TooFewArgumentsAddressDisplacement, prog.Diagnostics[0].Kind)
}

func TestParse_RecoversAfterErrorLine(t *testing.T) {
	prog := parser.Parse("ADD R1, R2\nADDI R3, R0, #1\n")
	require.Len(t, prog.Diagnostics, 1)
	require.Len(t, prog.Instructions, 1)
	assert.Equal(t, instruction.ADDI, prog.Instructions[0].Opcode)
}

func TestParse_BlankAndCommentOnlyLinesAreIgnored(t *testing.T) {
	prog := parser.Parse("\n; just a comment\n\nNOP\n")
	require.Empty(t, prog.Diagnostics)
	require.Len(t, prog.Instructions, 1)
}

func TestParse_EmptyProgramIsNotValid(t *testing.T) {
	prog := parser.Parse("")
	assert.False(t, prog.IsValid())
}
