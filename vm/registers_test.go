package vm_test

import (
	"testing"

	"github.com/syifan-m2sim2/dlx-sim/vm"
	"github.com/stretchr/testify/assert"
)

func TestRegisters_R0AlwaysReadsZero(t *testing.T) {
	r := vm.NewRegisters()
	r.IntSetUnsigned(0, 0xDEADBEEF)
	assert.EqualValues(t, 0, r.IntGetUnsigned(0))
}

func TestRegisters_SignedAndUnsignedViews(t *testing.T) {
	r := vm.NewRegisters()
	r.IntSetSigned(1, -1)
	assert.EqualValues(t, 0xFFFFFFFF, r.IntGetUnsigned(1))
	assert.EqualValues(t, -1, r.IntGetSigned(1))
}

func TestRegisters_DoubleRoundTrip(t *testing.T) {
	r := vm.NewRegisters()
	ok := r.DoubleSet(4, 3.5)
	assert.True(t, ok)
	v, ok := r.DoubleGet(4)
	assert.True(t, ok)
	assert.Equal(t, 3.5, v)
}

func TestRegisters_OddDoubleIndexRejected(t *testing.T) {
	r := vm.NewRegisters()
	_, ok := r.DoubleGet(3)
	assert.False(t, ok)
	ok = r.DoubleSet(5, 1.0)
	assert.False(t, ok)
}

func TestRegisters_Clear(t *testing.T) {
	r := vm.NewRegisters()
	r.IntSetUnsigned(1, 42)
	r.FloatSet(1, 1.5)
	r.SetFPSR(true)
	r.Clear()
	assert.EqualValues(t, 0, r.IntGetUnsigned(1))
	assert.EqualValues(t, 0, r.FloatGet(1))
	assert.False(t, r.FPSR())
}
