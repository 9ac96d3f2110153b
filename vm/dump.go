package vm

import (
	"fmt"
	"strings"

	"github.com/syifan-m2sim2/dlx-sim/instruction"
)

// RegisterDump renders every integer register, every float register, and
// FPSR as fixed-width aligned columns, four registers per row.
func (p *Processor) RegisterDump() string {
	var b strings.Builder
	b.WriteString("Integer registers:\n")
	for i := 0; i < NumIntRegisters; i++ {
		fmt.Fprintf(&b, "R%-3d= %11d", i, p.registers.IntGetSigned(i))
		if i%4 == 3 {
			b.WriteByte('\n')
		} else {
			b.WriteString("  ")
		}
	}
	b.WriteString("\nFloat registers:\n")
	for i := 0; i < NumFloatRegisters; i++ {
		fmt.Fprintf(&b, "F%-3d= %14g", i, p.registers.FloatGet(i))
		if i%4 == 3 {
			b.WriteByte('\n')
		} else {
			b.WriteString("  ")
		}
	}
	fmt.Fprintf(&b, "\nFPSR = %v\n", p.registers.FPSR())
	return b.String()
}

// MemoryDump renders every byte of the memory block, sixteen bytes per row,
// prefixed with the row's starting address.
func (p *Processor) MemoryDump() string {
	var b strings.Builder
	size := p.memory.Size()
	start := p.memory.Start()
	for row := uint32(0); row < size; row += 16 {
		fmt.Fprintf(&b, "0x%08x: ", start+row)
		for col := uint32(0); col < 16 && row+col < size; col++ {
			v, _ := p.memory.LoadByte(start + row + col)
			fmt.Fprintf(&b, "%02x ", v)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ProcessorDump renders the processor's control state: program counter,
// halted flag, and last raised exception.
func (p *Processor) ProcessorDump() string {
	return fmt.Sprintf("pc=%d halted=%v lastException=%v stepsTaken=%d\n",
		p.pc, p.halted, p.lastException, p.stepsTaken)
}

// CurrentProgramDump renders the loaded program's instructions, one per
// line, annotated with any label that targets it. It is non-empty even for
// an unloaded or empty program, so callers can always print it.
func (p *Processor) CurrentProgramDump() string {
	var b strings.Builder
	if p.program == nil || len(p.program.Instructions) == 0 {
		b.WriteString("(empty program)\n")
		return b.String()
	}

	labelsByIndex := make(map[int][]string, len(p.program.Labels))
	for name, idx := range p.program.Labels {
		labelsByIndex[idx] = append(labelsByIndex[idx], name)
	}

	for i, inst := range p.program.Instructions {
		for _, name := range labelsByIndex[i] {
			fmt.Fprintf(&b, "%s:\n", name)
		}
		fmt.Fprintf(&b, "%4d: %s", i, inst.Opcode.String())
		for _, arg := range inst.Args {
			if arg.Kind == instruction.ArgNone || arg.Kind == instruction.Unknown {
				continue
			}
			fmt.Fprintf(&b, " %s", arg.String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
