package vm_test

import (
	"testing"

	"github.com/syifan-m2sim2/dlx-sim/instruction"
	"github.com/syifan-m2sim2/dlx-sim/vm"
	"github.com/stretchr/testify/assert"
)

func TestGenerateInstructionTable_CoversEveryValidOpcode(t *testing.T) {
	table := vm.GenerateInstructionTable()
	for op := instruction.None + 1; op < instruction.NumberOfOpcodes; op++ {
		info, ok := table[op]
		if !assert.True(t, ok, "opcode %s has no registered executor", op) {
			continue
		}
		assert.Equal(t, op, info.Opcode)
		assert.NotNil(t, info.Exec)
		assert.Equal(t, instruction.ArgumentTypes(op), info.ArgTypes)
		assert.Equal(t, instruction.RequiredArgCount(op), info.RequiredArgs)
	}
}

func TestGenerateInstructionTable_ExcludesNone(t *testing.T) {
	table := vm.GenerateInstructionTable()
	_, ok := table[instruction.None]
	assert.False(t, ok)
}

func TestLookupInstructionInfo(t *testing.T) {
	info, ok := vm.LookupInstructionInfo(instruction.ADD)
	assert.True(t, ok)
	assert.Equal(t, instruction.ADD, info.Opcode)

	_, ok = vm.LookupInstructionInfo(instruction.None)
	assert.False(t, ok)
}
