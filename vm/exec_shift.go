package vm

import "github.com/syifan-m2sim2/dlx-sim/instruction"

func registerLogicalAndShiftExecutors() {
	logical := map[instruction.Opcode]func(a, b uint32) uint32{
		instruction.AND: func(a, b uint32) uint32 { return a & b },
		instruction.OR:  func(a, b uint32) uint32 { return a | b },
		instruction.XOR: func(a, b uint32) uint32 { return a ^ b },
	}
	for op, f := range logical {
		f := f
		register(op, logicalRegExecutor(f))
	}

	logicalImm := map[instruction.Opcode]func(a, b uint32) uint32{
		instruction.ANDI: func(a, b uint32) uint32 { return a & b },
		instruction.ORI:  func(a, b uint32) uint32 { return a | b },
		instruction.XORI: func(a, b uint32) uint32 { return a ^ b },
	}
	for op, f := range logicalImm {
		f := f
		register(op, logicalImmExecutor(f))
	}

	shifts := map[instruction.Opcode]func(v uint32, n uint) uint32{
		instruction.SLL: func(v uint32, n uint) uint32 { return v << n },
		instruction.SRL: func(v uint32, n uint) uint32 { return v >> n },
		instruction.SLA: func(v uint32, n uint) uint32 { return uint32(int32(v) << n) },
		instruction.SRA: func(v uint32, n uint) uint32 { return uint32(int32(v) >> n) },
	}
	for op, f := range shifts {
		f := f
		register(op, shiftRegExecutor(f))
	}

	shiftsImm := map[instruction.Opcode]func(v uint32, n uint) uint32{
		instruction.SLLI: func(v uint32, n uint) uint32 { return v << n },
		instruction.SRLI: func(v uint32, n uint) uint32 { return v >> n },
		instruction.SLAI: func(v uint32, n uint) uint32 { return uint32(int32(v) << n) },
		instruction.SRAI: func(v uint32, n uint) uint32 { return uint32(int32(v) >> n) },
	}
	for op, f := range shiftsImm {
		f := f
		register(op, shiftImmExecutor(f))
	}
}

func logicalRegExecutor(f func(a, b uint32) uint32) Executor {
	return func(proc *Processor, args [3]instruction.Argument) Outcome {
		a := proc.Registers().IntGetUnsigned(args[1].IntRegisterID)
		b := proc.Registers().IntGetUnsigned(args[2].IntRegisterID)
		proc.Registers().IntSetUnsigned(args[0].IntRegisterID, f(a, b))
		return ContinueOutcome()
	}
}

func logicalImmExecutor(f func(a, b uint32) uint32) Executor {
	return func(proc *Processor, args [3]instruction.Argument) Outcome {
		a := proc.Registers().IntGetUnsigned(args[1].IntRegisterID)
		b := uint32(args[2].UnsignedImmediate())
		proc.Registers().IntSetUnsigned(args[0].IntRegisterID, f(a, b))
		return ContinueOutcome()
	}
}

// shiftCount validates a DLX shift amount against the required [0, 31]
// range, raising BadShift otherwise.
func shiftCount(n int32) (uint, bool) {
	if n < 0 || n > 31 {
		return 0, false
	}
	return uint(n), true
}

func shiftRegExecutor(f func(v uint32, n uint) uint32) Executor {
	return func(proc *Processor, args [3]instruction.Argument) Outcome {
		v := proc.Registers().IntGetUnsigned(args[1].IntRegisterID)
		shiftBy := proc.Registers().IntGetSigned(args[2].IntRegisterID)
		n, ok := shiftCount(shiftBy)
		if !ok {
			return TrappedOutcome(ExceptionBadShift)
		}
		proc.Registers().IntSetUnsigned(args[0].IntRegisterID, f(v, n))
		return ContinueOutcome()
	}
}

func shiftImmExecutor(f func(v uint32, n uint) uint32) Executor {
	return func(proc *Processor, args [3]instruction.Argument) Outcome {
		v := proc.Registers().IntGetUnsigned(args[1].IntRegisterID)
		n, ok := shiftCount(int32(args[2].Immediate))
		if !ok {
			return TrappedOutcome(ExceptionBadShift)
		}
		proc.Registers().IntSetUnsigned(args[0].IntRegisterID, f(v, n))
		return ContinueOutcome()
	}
}
