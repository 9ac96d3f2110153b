package vm

import "github.com/syifan-m2sim2/dlx-sim/instruction"

// LinkRegister is the integer register JAL/JALR write the return address
// into, by DLX convention.
const LinkRegister = 31

func registerBranchAndJumpExecutors() {
	register(instruction.BEQZ, branchZeroExecutor(func(v int32) bool { return v == 0 }))
	register(instruction.BNEZ, branchZeroExecutor(func(v int32) bool { return v != 0 }))
	register(instruction.BFPT, branchFPExecutor(func(fpsr bool) bool { return fpsr }))
	register(instruction.BFPF, branchFPExecutor(func(fpsr bool) bool { return !fpsr }))

	register(instruction.J, func(proc *Processor, args [3]instruction.Argument) Outcome {
		target, ok := proc.ResolveLabel(args[0].LabelName)
		if !ok {
			return proc.UnknownLabelOutcome()
		}
		return JumpedOutcome(target)
	})

	register(instruction.JAL, func(proc *Processor, args [3]instruction.Argument) Outcome {
		target, ok := proc.ResolveLabel(args[0].LabelName)
		if !ok {
			return proc.UnknownLabelOutcome()
		}
		proc.Registers().IntSetUnsigned(LinkRegister, uint32(proc.ProgramCounter()+1))
		return JumpedOutcome(target)
	})

	register(instruction.JR, func(proc *Processor, args [3]instruction.Argument) Outcome {
		target := proc.Registers().IntGetSigned(args[0].IntRegisterID)
		if !proc.IsValidInstructionIndex(int(target)) {
			return TrappedOutcome(ExceptionAddressOutOfBounds)
		}
		return JumpedOutcome(int(target))
	})

	register(instruction.JALR, func(proc *Processor, args [3]instruction.Argument) Outcome {
		target := proc.Registers().IntGetSigned(args[0].IntRegisterID)
		if !proc.IsValidInstructionIndex(int(target)) {
			return TrappedOutcome(ExceptionAddressOutOfBounds)
		}
		proc.Registers().IntSetUnsigned(LinkRegister, uint32(proc.ProgramCounter()+1))
		return JumpedOutcome(int(target))
	})
}

func branchZeroExecutor(test func(v int32) bool) Executor {
	return func(proc *Processor, args [3]instruction.Argument) Outcome {
		v := proc.Registers().IntGetSigned(args[0].IntRegisterID)
		if !test(v) {
			return ContinueOutcome()
		}
		target, ok := proc.ResolveLabel(args[1].LabelName)
		if !ok {
			return proc.UnknownLabelOutcome()
		}
		return JumpedOutcome(target)
	}
}

func branchFPExecutor(test func(fpsr bool) bool) Executor {
	return func(proc *Processor, args [3]instruction.Argument) Outcome {
		if !test(proc.Registers().FPSR()) {
			return ContinueOutcome()
		}
		target, ok := proc.ResolveLabel(args[0].LabelName)
		if !ok {
			return proc.UnknownLabelOutcome()
		}
		return JumpedOutcome(target)
	}
}
