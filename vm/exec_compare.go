package vm

import "github.com/syifan-m2sim2/dlx-sim/instruction"

func boolToReg(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func registerCompareExecutors() {
	signed := map[instruction.Opcode]func(a, b int32) bool{
		instruction.SEQ: func(a, b int32) bool { return a == b },
		instruction.SNE: func(a, b int32) bool { return a != b },
		instruction.SLT: func(a, b int32) bool { return a < b },
		instruction.SGT: func(a, b int32) bool { return a > b },
		instruction.SLE: func(a, b int32) bool { return a <= b },
		instruction.SGE: func(a, b int32) bool { return a >= b },
	}
	for op, f := range signed {
		f := f
		register(op, signedCompareRegExecutor(f))
	}

	signedImm := map[instruction.Opcode]func(a, b int32) bool{
		instruction.SEQI: func(a, b int32) bool { return a == b },
		instruction.SNEI: func(a, b int32) bool { return a != b },
		instruction.SLTI: func(a, b int32) bool { return a < b },
		instruction.SGTI: func(a, b int32) bool { return a > b },
		instruction.SLEI: func(a, b int32) bool { return a <= b },
		instruction.SGEI: func(a, b int32) bool { return a >= b },
	}
	for op, f := range signedImm {
		f := f
		register(op, signedCompareImmExecutor(f))
	}

	unsigned := map[instruction.Opcode]func(a, b uint32) bool{
		instruction.SEQU: func(a, b uint32) bool { return a == b },
		instruction.SNEU: func(a, b uint32) bool { return a != b },
		instruction.SLTU: func(a, b uint32) bool { return a < b },
		instruction.SGTU: func(a, b uint32) bool { return a > b },
		instruction.SLEU: func(a, b uint32) bool { return a <= b },
		instruction.SGEU: func(a, b uint32) bool { return a >= b },
	}
	for op, f := range unsigned {
		f := f
		register(op, unsignedCompareRegExecutor(f))
	}

	unsignedImm := map[instruction.Opcode]func(a, b uint32) bool{
		instruction.SEQUI: func(a, b uint32) bool { return a == b },
		instruction.SNEUI: func(a, b uint32) bool { return a != b },
		instruction.SLTUI: func(a, b uint32) bool { return a < b },
		instruction.SGTUI: func(a, b uint32) bool { return a > b },
		instruction.SLEUI: func(a, b uint32) bool { return a <= b },
		instruction.SGEUI: func(a, b uint32) bool { return a >= b },
	}
	for op, f := range unsignedImm {
		f := f
		register(op, unsignedCompareImmExecutor(f))
	}

	floatCompares := map[instruction.Opcode]func(a, b float32) bool{
		instruction.EQF: func(a, b float32) bool { return a == b },
		instruction.NEF: func(a, b float32) bool { return a != b },
		instruction.LTF: func(a, b float32) bool { return a < b },
		instruction.GTF: func(a, b float32) bool { return a > b },
		instruction.LEF: func(a, b float32) bool { return a <= b },
		instruction.GEF: func(a, b float32) bool { return a >= b },
	}
	for op, f := range floatCompares {
		f := f
		register(op, floatCompareExecutor(f))
	}

	doubleCompares := map[instruction.Opcode]func(a, b float64) bool{
		instruction.EQD: func(a, b float64) bool { return a == b },
		instruction.NED: func(a, b float64) bool { return a != b },
		instruction.LTD: func(a, b float64) bool { return a < b },
		instruction.GTD: func(a, b float64) bool { return a > b },
		instruction.LED: func(a, b float64) bool { return a <= b },
		instruction.GED: func(a, b float64) bool { return a >= b },
	}
	for op, f := range doubleCompares {
		f := f
		register(op, doubleCompareExecutor(f))
	}
}

func signedCompareRegExecutor(f func(a, b int32) bool) Executor {
	return func(proc *Processor, args [3]instruction.Argument) Outcome {
		a := proc.Registers().IntGetSigned(args[1].IntRegisterID)
		b := proc.Registers().IntGetSigned(args[2].IntRegisterID)
		proc.Registers().IntSetUnsigned(args[0].IntRegisterID, boolToReg(f(a, b)))
		return ContinueOutcome()
	}
}

func signedCompareImmExecutor(f func(a, b int32) bool) Executor {
	return func(proc *Processor, args [3]instruction.Argument) Outcome {
		a := proc.Registers().IntGetSigned(args[1].IntRegisterID)
		b := int32(args[2].Immediate)
		proc.Registers().IntSetUnsigned(args[0].IntRegisterID, boolToReg(f(a, b)))
		return ContinueOutcome()
	}
}

func unsignedCompareRegExecutor(f func(a, b uint32) bool) Executor {
	return func(proc *Processor, args [3]instruction.Argument) Outcome {
		a := proc.Registers().IntGetUnsigned(args[1].IntRegisterID)
		b := proc.Registers().IntGetUnsigned(args[2].IntRegisterID)
		proc.Registers().IntSetUnsigned(args[0].IntRegisterID, boolToReg(f(a, b)))
		return ContinueOutcome()
	}
}

func unsignedCompareImmExecutor(f func(a, b uint32) bool) Executor {
	return func(proc *Processor, args [3]instruction.Argument) Outcome {
		a := proc.Registers().IntGetUnsigned(args[1].IntRegisterID)
		b := uint32(args[2].UnsignedImmediate())
		proc.Registers().IntSetUnsigned(args[0].IntRegisterID, boolToReg(f(a, b)))
		return ContinueOutcome()
	}
}

func floatCompareExecutor(f func(a, b float32) bool) Executor {
	return func(proc *Processor, args [3]instruction.Argument) Outcome {
		a := proc.Registers().FloatGet(args[0].FloatRegisterID)
		b := proc.Registers().FloatGet(args[1].FloatRegisterID)
		proc.Registers().SetFPSR(f(a, b))
		return ContinueOutcome()
	}
}

func doubleCompareExecutor(f func(a, b float64) bool) Executor {
	return func(proc *Processor, args [3]instruction.Argument) Outcome {
		a, aok := proc.Registers().DoubleGet(args[0].FloatRegisterID)
		b, bok := proc.Registers().DoubleGet(args[1].FloatRegisterID)
		if !aok || !bok {
			return TrappedOutcome(ExceptionMisalignedRegisterAccess)
		}
		proc.Registers().SetFPSR(f(a, b))
		return ContinueOutcome()
	}
}
