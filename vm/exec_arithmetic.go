package vm

import "github.com/syifan-m2sim2/dlx-sim/instruction"

func registerArithmeticExecutors() {
	signed := map[instruction.Opcode]func(a, b int32) (int32, ExceptionKind){
		instruction.ADD:  addSigned,
		instruction.SUB:  subSigned,
		instruction.MULT: multSigned,
		instruction.DIV:  divSigned,
	}
	for op, f := range signed {
		f := f
		register(op, regRegExecutor(f))
	}

	immSigned := map[instruction.Opcode]func(a, b int32) (int32, ExceptionKind){
		instruction.ADDI:  addSigned,
		instruction.SUBI:  subSigned,
		instruction.MULTI: multSigned,
		instruction.DIVI:  divSigned,
	}
	for op, f := range immSigned {
		f := f
		register(op, regImmExecutor(f))
	}

	unsigned := map[instruction.Opcode]func(a, b uint32) (uint32, bool, ExceptionKind){
		instruction.ADDU:  addUnsigned,
		instruction.SUBU:  subUnsigned,
		instruction.MULTU: multUnsigned,
		instruction.DIVU:  divUnsigned,
	}
	for op, f := range unsigned {
		f := f
		register(op, regRegUnsignedExecutor(f))
	}

	immUnsigned := map[instruction.Opcode]func(a, b uint32) (uint32, bool, ExceptionKind){
		instruction.ADDUI:  addUnsigned,
		instruction.SUBUI:  subUnsigned,
		instruction.MULTUI: multUnsigned,
		instruction.DIVUI:  divUnsigned,
	}
	for op, f := range immUnsigned {
		f := f
		register(op, regImmUnsignedExecutor(f))
	}

	floatOps := map[instruction.Opcode]func(a, b float32) float32{
		instruction.ADDF:  func(a, b float32) float32 { return a + b },
		instruction.SUBF:  func(a, b float32) float32 { return a - b },
		instruction.MULTF: func(a, b float32) float32 { return a * b },
		instruction.DIVF:  func(a, b float32) float32 { return a / b },
	}
	for op, f := range floatOps {
		f := f
		register(op, freg3Executor(f))
	}

	doubleOps := map[instruction.Opcode]func(a, b float64) float64{
		instruction.ADDD:  func(a, b float64) float64 { return a + b },
		instruction.SUBD:  func(a, b float64) float64 { return a - b },
		instruction.MULTD: func(a, b float64) float64 { return a * b },
		instruction.DIVD:  func(a, b float64) float64 { return a / b },
	}
	for op, f := range doubleOps {
		f := f
		register(op, dreg3Executor(f))
	}
}

// addSigned, subSigned, multSigned, divSigned compute the result and any
// exception it raises: Overflow or Underflow for the two's-complement edge
// crossed (direction matters: overflow past the top, underflow past the
// bottom), DivideByZero for DIV/DIVI's zero-divisor case.
func addSigned(a, b int32) (int32, ExceptionKind) {
	return a + b, signedAddOverflowDirection(a, b)
}

func subSigned(a, b int32) (int32, ExceptionKind) {
	return a - b, signedSubOverflowDirection(a, b)
}

func multSigned(a, b int32) (int32, ExceptionKind) {
	return a * b, signedMulOverflowDirection(a, b)
}

func divSigned(a, b int32) (int32, ExceptionKind) {
	if b == 0 {
		return 0, ExceptionDivideByZero
	}
	return a / b, ExceptionNone
}

func addUnsigned(a, b uint32) (uint32, bool, ExceptionKind) {
	return a + b, addOverflowsUnsigned(a, b), ExceptionNone
}

func subUnsigned(a, b uint32) (uint32, bool, ExceptionKind) {
	if subUnderflowsUnsigned(a, b) {
		return a - b, false, ExceptionUnderflow
	}
	return a - b, false, ExceptionNone
}

func multUnsigned(a, b uint32) (uint32, bool, ExceptionKind) {
	return a * b, mulOverflowsUnsigned(a, b), ExceptionNone
}

func divUnsigned(a, b uint32) (uint32, bool, ExceptionKind) {
	if b == 0 {
		return 0, false, ExceptionDivideByZero
	}
	return a / b, false, ExceptionNone
}

// regRegExecutor builds an executor for a RD, RS1, RS2 signed-integer op.
// f already reports Overflow vs Underflow by direction, so the wrapper just
// relays whatever exception comes back. On Overflow/Underflow the wrapped
// result is still written to RD before trapping; a zero divisor leaves RD
// untouched.
func regRegExecutor(f func(a, b int32) (int32, ExceptionKind)) Executor {
	return func(proc *Processor, args [3]instruction.Argument) Outcome {
		a := proc.Registers().IntGetSigned(args[1].IntRegisterID)
		b := proc.Registers().IntGetSigned(args[2].IntRegisterID)
		result, exc := f(a, b)
		if exc == ExceptionDivideByZero {
			return TrappedOutcome(exc)
		}
		proc.Registers().IntSetSigned(args[0].IntRegisterID, result)
		if exc != ExceptionNone {
			return TrappedOutcome(exc)
		}
		return ContinueOutcome()
	}
}

func regImmExecutor(f func(a, b int32) (int32, ExceptionKind)) Executor {
	return func(proc *Processor, args [3]instruction.Argument) Outcome {
		a := proc.Registers().IntGetSigned(args[1].IntRegisterID)
		b := int32(args[2].Immediate)
		result, exc := f(a, b)
		if exc == ExceptionDivideByZero {
			return TrappedOutcome(exc)
		}
		proc.Registers().IntSetSigned(args[0].IntRegisterID, result)
		if exc != ExceptionNone {
			return TrappedOutcome(exc)
		}
		return ContinueOutcome()
	}
}

// regRegUnsignedExecutor builds an executor for a RD, RS1, RS2 unsigned op.
// Wrap-above-range is Overflow, wrap-below-zero is Underflow (subtraction
// only). As with the signed ops, the wrapped result is written to RD before
// trapping.
func regRegUnsignedExecutor(f func(a, b uint32) (uint32, bool, ExceptionKind)) Executor {
	return func(proc *Processor, args [3]instruction.Argument) Outcome {
		a := proc.Registers().IntGetUnsigned(args[1].IntRegisterID)
		b := proc.Registers().IntGetUnsigned(args[2].IntRegisterID)
		result, flagged, exc := f(a, b)
		if exc == ExceptionDivideByZero {
			return TrappedOutcome(exc)
		}
		proc.Registers().IntSetUnsigned(args[0].IntRegisterID, result)
		if exc != ExceptionNone {
			return TrappedOutcome(exc)
		}
		if flagged {
			return TrappedOutcome(ExceptionOverflow)
		}
		return ContinueOutcome()
	}
}

func regImmUnsignedExecutor(f func(a, b uint32) (uint32, bool, ExceptionKind)) Executor {
	return func(proc *Processor, args [3]instruction.Argument) Outcome {
		a := proc.Registers().IntGetUnsigned(args[1].IntRegisterID)
		b := uint32(args[2].UnsignedImmediate())
		result, flagged, exc := f(a, b)
		if exc == ExceptionDivideByZero {
			return TrappedOutcome(exc)
		}
		proc.Registers().IntSetUnsigned(args[0].IntRegisterID, result)
		if exc != ExceptionNone {
			return TrappedOutcome(exc)
		}
		if flagged {
			return TrappedOutcome(ExceptionOverflow)
		}
		return ContinueOutcome()
	}
}

func freg3Executor(f func(a, b float32) float32) Executor {
	return func(proc *Processor, args [3]instruction.Argument) Outcome {
		a := proc.Registers().FloatGet(args[1].FloatRegisterID)
		b := proc.Registers().FloatGet(args[2].FloatRegisterID)
		proc.Registers().FloatSet(args[0].FloatRegisterID, f(a, b))
		return ContinueOutcome()
	}
}

func dreg3Executor(f func(a, b float64) float64) Executor {
	return func(proc *Processor, args [3]instruction.Argument) Outcome {
		a, aok := proc.Registers().DoubleGet(args[1].FloatRegisterID)
		b, bok := proc.Registers().DoubleGet(args[2].FloatRegisterID)
		if !aok || !bok {
			return TrappedOutcome(ExceptionMisalignedRegisterAccess)
		}
		if ok := proc.Registers().DoubleSet(args[0].FloatRegisterID, f(a, b)); !ok {
			return TrappedOutcome(ExceptionMisalignedRegisterAccess)
		}
		return ContinueOutcome()
	}
}
