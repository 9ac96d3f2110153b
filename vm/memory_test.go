package vm_test

import (
	"testing"

	"github.com/syifan-m2sim2/dlx-sim/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBlock_ByteRoundTrip(t *testing.T) {
	m := vm.NewMemoryBlock(0, 16)
	require.NoError(t, m.StoreByte(4, 0xAB))
	v, err := m.LoadByte(4)
	require.NoError(t, err)
	assert.EqualValues(t, 0xAB, v)
}

func TestMemoryBlock_WordIsLittleEndian(t *testing.T) {
	m := vm.NewMemoryBlock(0, 16)
	require.NoError(t, m.StoreWord(0, 0x01020304))
	b0, _ := m.LoadByte(0)
	b1, _ := m.LoadByte(1)
	b2, _ := m.LoadByte(2)
	b3, _ := m.LoadByte(3)
	assert.EqualValues(t, 0x04, b0)
	assert.EqualValues(t, 0x03, b1)
	assert.EqualValues(t, 0x02, b2)
	assert.EqualValues(t, 0x01, b3)

	v, err := m.LoadWord(0)
	require.NoError(t, err)
	assert.EqualValues(t, 0x01020304, v)
}

func TestMemoryBlock_MisalignedAccessErrors(t *testing.T) {
	m := vm.NewMemoryBlock(0, 16)
	_, err := m.LoadWord(1)
	assert.Error(t, err)
	_, err = m.LoadHalfword(1)
	assert.Error(t, err)
}

func TestMemoryBlock_OutOfBoundsErrors(t *testing.T) {
	m := vm.NewMemoryBlock(0, 16)
	_, err := m.LoadByte(16)
	assert.Error(t, err)
	err = m.StoreWord(14, 1)
	assert.Error(t, err)
}

func TestMemoryBlock_BelowStartErrors(t *testing.T) {
	m := vm.NewMemoryBlock(100, 16)
	_, err := m.LoadByte(50)
	assert.Error(t, err)
}

func TestMemoryBlock_FloatAndDoubleRoundTrip(t *testing.T) {
	m := vm.NewMemoryBlock(0, 16)
	require.NoError(t, m.StoreFloat(0, 1.5))
	f, err := m.LoadFloat(0)
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), f)

	require.NoError(t, m.StoreDouble(8, 2.25))
	d, err := m.LoadDouble(8)
	require.NoError(t, err)
	assert.Equal(t, 2.25, d)
}

func TestMemoryBlock_Clear(t *testing.T) {
	m := vm.NewMemoryBlock(0, 4)
	require.NoError(t, m.StoreWord(0, 0xFFFFFFFF))
	m.Clear()
	v, err := m.LoadWord(0)
	require.NoError(t, err)
	assert.EqualValues(t, 0, v)
}
