package vm

import (
	"math"

	"github.com/syifan-m2sim2/dlx-sim/instruction"
)

func registerConvertExecutors() {
	register(instruction.MOVF, func(proc *Processor, args [3]instruction.Argument) Outcome {
		proc.Registers().FloatSet(args[0].FloatRegisterID, proc.Registers().FloatGet(args[1].FloatRegisterID))
		return ContinueOutcome()
	})

	register(instruction.MOVD, func(proc *Processor, args [3]instruction.Argument) Outcome {
		v, ok := proc.Registers().DoubleGet(args[1].FloatRegisterID)
		if !ok {
			return TrappedOutcome(ExceptionMisalignedRegisterAccess)
		}
		if ok := proc.Registers().DoubleSet(args[0].FloatRegisterID, v); !ok {
			return TrappedOutcome(ExceptionMisalignedRegisterAccess)
		}
		return ContinueOutcome()
	})

	register(instruction.MOVFP2I, func(proc *Processor, args [3]instruction.Argument) Outcome {
		bits := math.Float32bits(proc.Registers().FloatGet(args[1].FloatRegisterID))
		proc.Registers().IntSetUnsigned(args[0].IntRegisterID, bits)
		return ContinueOutcome()
	})

	register(instruction.MOVI2FP, func(proc *Processor, args [3]instruction.Argument) Outcome {
		bits := proc.Registers().IntGetUnsigned(args[1].IntRegisterID)
		proc.Registers().FloatSet(args[0].FloatRegisterID, math.Float32frombits(bits))
		return ContinueOutcome()
	})

	// CVTF2I/CVTI2F reinterpret a float register's bit pattern as an int32
	// value for the transfer, matching MOVFP2I/MOVI2FP rather than
	// performing the conversion in memory — only the arithmetic conversion
	// itself (float value -> nearest int value, or vice versa) is new here.
	register(instruction.CVTF2I, func(proc *Processor, args [3]instruction.Argument) Outcome {
		v := proc.Registers().FloatGet(args[1].FloatRegisterID)
		bits := uint32(int32(v))
		proc.Registers().FloatSet(args[0].FloatRegisterID, math.Float32frombits(bits))
		return ContinueOutcome()
	})

	register(instruction.CVTI2F, func(proc *Processor, args [3]instruction.Argument) Outcome {
		bits := math.Float32bits(proc.Registers().FloatGet(args[1].FloatRegisterID))
		v := float32(int32(bits))
		proc.Registers().FloatSet(args[0].FloatRegisterID, v)
		return ContinueOutcome()
	})

	register(instruction.CVTF2D, func(proc *Processor, args [3]instruction.Argument) Outcome {
		v := proc.Registers().FloatGet(args[1].FloatRegisterID)
		if ok := proc.Registers().DoubleSet(args[0].FloatRegisterID, float64(v)); !ok {
			return TrappedOutcome(ExceptionMisalignedRegisterAccess)
		}
		return ContinueOutcome()
	})

	register(instruction.CVTD2F, func(proc *Processor, args [3]instruction.Argument) Outcome {
		v, ok := proc.Registers().DoubleGet(args[1].FloatRegisterID)
		if !ok {
			return TrappedOutcome(ExceptionMisalignedRegisterAccess)
		}
		proc.Registers().FloatSet(args[0].FloatRegisterID, float32(v))
		return ContinueOutcome()
	})

	register(instruction.CVTD2I, func(proc *Processor, args [3]instruction.Argument) Outcome {
		v, ok := proc.Registers().DoubleGet(args[1].FloatRegisterID)
		if !ok {
			return TrappedOutcome(ExceptionMisalignedRegisterAccess)
		}
		bits := uint32(int32(v))
		proc.Registers().FloatSet(args[0].FloatRegisterID, math.Float32frombits(bits))
		return ContinueOutcome()
	})

	register(instruction.CVTI2D, func(proc *Processor, args [3]instruction.Argument) Outcome {
		bits := math.Float32bits(proc.Registers().FloatGet(args[1].FloatRegisterID))
		v := float64(int32(bits))
		if ok := proc.Registers().DoubleSet(args[0].FloatRegisterID, v); !ok {
			return TrappedOutcome(ExceptionMisalignedRegisterAccess)
		}
		return ContinueOutcome()
	})
}
