package instruction_test

import (
	"testing"

	"github.com/syifan-m2sim2/dlx-sim/instruction"
	"github.com/stretchr/testify/assert"
)

func TestStringToOpcode_RoundTrips(t *testing.T) {
	for op := instruction.ADD; op < instruction.NumberOfOpcodes; op++ {
		name := op.String()
		assert.Equal(t, op, instruction.StringToOpcode(name))
	}
}

func TestStringToOpcode_CaseInsensitive(t *testing.T) {
	assert.Equal(t, instruction.ADD, instruction.StringToOpcode("add"))
	assert.Equal(t, instruction.ADD, instruction.StringToOpcode("Add"))
	assert.Equal(t, instruction.ADD, instruction.StringToOpcode("ADD"))
}

func TestStringToOpcode_Unknown(t *testing.T) {
	assert.Equal(t, instruction.None, instruction.StringToOpcode(""))
	assert.Equal(t, instruction.None, instruction.StringToOpcode("NONE"))
	assert.Equal(t, instruction.None, instruction.StringToOpcode("NOTANOPCODE"))
}

func TestOpcode_IsValid(t *testing.T) {
	assert.False(t, instruction.None.IsValid())
	assert.True(t, instruction.ADD.IsValid())
	assert.False(t, instruction.NumberOfOpcodes.IsValid())
}
