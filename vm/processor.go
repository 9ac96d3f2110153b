package vm

import (
	"github.com/syifan-m2sim2/dlx-sim/instruction"
	"github.com/syifan-m2sim2/dlx-sim/parser"
)

// DefaultMaxSteps bounds ExecuteCurrentProgram against runaway loops in a
// program with no HALT, mirroring the step budget the config package can
// override.
const DefaultMaxSteps = 1_000_000

// Processor is the DLX execution engine: a register file, a memory block,
// and a loaded program, stepped one instruction at a time. Every public
// mutator that can raise a run-time exception records it in lastException
// and leaves the processor halted; callers inspect GetLastRaisedException
// rather than receiving a Go error, matching the "exceptions are data, not
// control flow" model (§4.4/§7).
type Processor struct {
	registers *Registers
	memory    *MemoryBlock
	program   *parser.Program
	table     InstructionTable

	pc                 int
	halted             bool
	lastException      ExceptionKind
	maxSteps           int
	stepsTaken         int
	trapOnUnknownLabel bool
}

// NewProcessor builds a processor with a fresh register file and the given
// memory block. The caller loads a program with LoadProgram before running.
// Jumping to an unresolved label raises ExceptionUnknownLabel by default;
// see SetTrapOnUnknownLabel.
func NewProcessor(memory *MemoryBlock) *Processor {
	return &Processor{
		registers:          NewRegisters(),
		memory:             memory,
		table:              GenerateInstructionTable(),
		maxSteps:           DefaultMaxSteps,
		trapOnUnknownLabel: true,
	}
}

// Registers exposes the register file for direct inspection/mutation by
// callers (and by dump.go).
func (p *Processor) Registers() *Registers { return p.registers }

// Memory exposes the memory block for direct inspection/mutation.
func (p *Processor) Memory() *MemoryBlock { return p.memory }

// Program returns the currently loaded program, or nil if none has been
// loaded yet.
func (p *Processor) Program() *parser.Program { return p.program }

// SetMaxNumberOfSteps overrides the step budget used by ExecuteCurrentProgram.
// Zero means unlimited.
func (p *Processor) SetMaxNumberOfSteps(n int) { p.maxSteps = n }

// SetTrapOnUnknownLabel controls what J/JAL/BEQZ/BNEZ/BFPT/BFPF do when their
// label argument is not in the loaded program's label table. true (the
// default) raises ExceptionUnknownLabel; false halts cleanly with
// ExceptionNone instead, as config.Config.Execution.TrapOnUnknownLabel lets a
// host choose.
func (p *Processor) SetTrapOnUnknownLabel(v bool) { p.trapOnUnknownLabel = v }

// UnknownLabelOutcome is what a branch/jump executor should return when its
// label argument did not resolve, honoring SetTrapOnUnknownLabel.
func (p *Processor) UnknownLabelOutcome() Outcome {
	if p.trapOnUnknownLabel {
		return TrappedOutcome(ExceptionUnknownLabel)
	}
	return HaltedOutcome()
}

// ClearRegisters zeros every register.
func (p *Processor) ClearRegisters() { p.registers.Clear() }

// ClearMemory zeros every byte of memory.
func (p *Processor) ClearMemory() { p.memory.Clear() }

// LoadProgram replaces the loaded program and resets execution state. A
// program with parse diagnostics is still loaded as-is; running it will
// simply execute whatever instructions were successfully parsed.
func (p *Processor) LoadProgram(prog *parser.Program) {
	p.program = prog
	p.resetExecutionState()
}

func (p *Processor) resetExecutionState() {
	p.pc = 0
	p.halted = false
	p.lastException = ExceptionNone
	p.stepsTaken = 0
}

// IsHalted reports whether the processor has stopped executing, either
// because it ran off the end of the program, hit HALT, or raised an
// exception.
func (p *Processor) IsHalted() bool { return p.halted }

// GetLastRaisedException returns the exception that halted the processor,
// or ExceptionNone if it halted cleanly or is still running.
func (p *Processor) GetLastRaisedException() ExceptionKind { return p.lastException }

// ProgramCounter returns the index, within Program().Instructions, of the
// next instruction to execute.
func (p *Processor) ProgramCounter() int { return p.pc }

// ExecuteStep runs exactly one instruction, unless the processor is already
// halted, in which case it does nothing. It returns false once the
// processor is halted, whether that happened on this call or a previous one.
func (p *Processor) ExecuteStep() bool {
	if p.halted {
		return false
	}
	if p.program == nil || p.pc < 0 || p.pc >= len(p.program.Instructions) {
		p.halted = true
		return false
	}

	inst := p.program.Instructions[p.pc]
	info, ok := p.table[inst.Opcode]
	if !ok {
		p.halt(ExceptionTrap)
		return false
	}

	outcome := info.Exec(p, inst.Args)
	p.stepsTaken++

	switch outcome.Kind {
	case Continue:
		p.pc++
	case Jumped:
		p.pc = outcome.Target
	case Halted:
		p.halted = true
	case Trapped:
		p.halt(outcome.Exception)
	}

	if !p.halted && p.maxSteps != 0 && p.stepsTaken >= p.maxSteps {
		p.halted = true
	}

	return !p.halted
}

func (p *Processor) halt(kind ExceptionKind) {
	p.halted = true
	p.lastException = kind
}

// ExecuteCurrentProgram resets pc, halted, and the last exception, then runs
// the loaded program to completion (or until the step budget is exhausted).
// Re-running after a prior run or after editing registers/memory by hand
// always starts a fresh execution from instruction 0.
func (p *Processor) ExecuteCurrentProgram() {
	p.resetExecutionState()
	for p.ExecuteStep() {
	}
}

// IsValidInstructionIndex reports whether idx names an instruction in the
// loaded program. JR/JALR consult this before jumping to a register-held
// target, since that target is never checked against the label table the
// way J/JAL's targets are.
func (p *Processor) IsValidInstructionIndex(idx int) bool {
	return p.program != nil && idx >= 0 && idx < len(p.program.Instructions)
}

// ResolveLabel looks up name in the loaded program's label table.
func (p *Processor) ResolveLabel(name string) (int, bool) {
	if p.program == nil {
		return 0, false
	}
	idx, ok := p.program.Labels[name]
	return idx, ok
}

// EffectiveAddress computes the memory address named by an
// AddressDisplacement argument: the base register's value plus the
// sign-extended displacement.
func (p *Processor) EffectiveAddress(arg instruction.Argument) uint32 {
	base := p.registers.IntGetUnsigned(arg.Base)
	return base + uint32(int32(arg.Displacement))
}
