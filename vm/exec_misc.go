package vm

import "github.com/syifan-m2sim2/dlx-sim/instruction"

func registerMiscExecutors() {
	// TRAP halts unconditionally and discards its immediate argument. It
	// raises no exception, matching HALT and NOP.
	register(instruction.TRAP, func(proc *Processor, args [3]instruction.Argument) Outcome {
		return HaltedOutcome()
	})

	register(instruction.HALT, func(proc *Processor, args [3]instruction.Argument) Outcome {
		return HaltedOutcome()
	})

	// NOP halts too, same as TRAP and HALT (spec: all three stop the
	// processor; only they differ in whether the argument is read).
	register(instruction.NOP, func(proc *Processor, args [3]instruction.Argument) Outcome {
		return HaltedOutcome()
	})
}
