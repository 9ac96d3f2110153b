package instruction_test

import (
	"testing"

	"github.com/syifan-m2sim2/dlx-sim/instruction"
	"github.com/stretchr/testify/assert"
)

func TestArgument_Equal(t *testing.T) {
	assert.True(t, instruction.IntRegisterArg(3).Equal(instruction.IntRegisterArg(3)))
	assert.False(t, instruction.IntRegisterArg(3).Equal(instruction.IntRegisterArg(4)))
	assert.False(t, instruction.IntRegisterArg(3).Equal(instruction.FloatRegisterArg(3)))
	assert.True(t, instruction.NoneArgument.Equal(instruction.NoneArgument))
}

func TestArgument_String(t *testing.T) {
	assert.Equal(t, "R5", instruction.IntRegisterArg(5).String())
	assert.Equal(t, "F2", instruction.FloatRegisterArg(2).String())
	assert.Equal(t, "#-7", instruction.ImmediateArg(-7).String())
	assert.Equal(t, "4(R1)", instruction.AddressDisplacementArg(1, 4).String())
	assert.Equal(t, "loop", instruction.LabelArg("loop").String())
}

func TestArgument_UnsignedImmediate(t *testing.T) {
	arg := instruction.ImmediateArg(-1)
	assert.Equal(t, uint16(0xFFFF), arg.UnsignedImmediate())
}

func TestShapes_RequiredArgCount(t *testing.T) {
	assert.Equal(t, 3, instruction.RequiredArgCount(instruction.ADD))
	assert.Equal(t, 2, instruction.RequiredArgCount(instruction.LW))
	assert.Equal(t, 1, instruction.RequiredArgCount(instruction.J))
	assert.Equal(t, 0, instruction.RequiredArgCount(instruction.NOP))
}

func TestShapes_ArgumentTypes_Store(t *testing.T) {
	shape := instruction.ArgumentTypes(instruction.SW)
	assert.Equal(t, instruction.AddressDisplacement, shape[0])
	assert.Equal(t, instruction.IntRegister, shape[1])
	assert.Equal(t, instruction.ArgNone, shape[2])
}
