package vm

import "github.com/syifan-m2sim2/dlx-sim/instruction"

// Executor runs one dispatched instruction against proc using the already
// type-checked arguments args (padded with instruction.NoneArgument past
// RequiredArgCount) and reports what the processor should do next.
type Executor func(proc *Processor, args [3]instruction.Argument) Outcome

// InstructionInfo bundles everything the processor needs to run a single
// opcode: its declared argument shape (reused from the instruction package
// rather than re-declared here) and the function that carries out its
// semantics.
type InstructionInfo struct {
	Opcode       instruction.Opcode
	ArgTypes     [3]instruction.ArgumentType
	RequiredArgs int
	Exec         Executor
}

// InstructionTable maps every valid opcode to its InstructionInfo.
type InstructionTable map[instruction.Opcode]InstructionInfo

var table InstructionTable

func register(op instruction.Opcode, exec Executor) {
	table[op] = InstructionInfo{
		Opcode:       op,
		ArgTypes:     instruction.ArgumentTypes(op),
		RequiredArgs: instruction.RequiredArgCount(op),
		Exec:         exec,
	}
}

// The table is built during package initialization, so concurrent
// NewProcessor calls only ever read it.
func init() { GenerateInstructionTable() }

// GenerateInstructionTable builds (or returns the cached) table mapping
// every opcode this simulator understands to its executor. It is assembled
// once; callers never mutate the result.
func GenerateInstructionTable() InstructionTable {
	if table != nil {
		return table
	}
	table = make(InstructionTable, int(instruction.NumberOfOpcodes))
	registerArithmeticExecutors()
	registerLogicalAndShiftExecutors()
	registerMemoryExecutors()
	registerCompareExecutors()
	registerBranchAndJumpExecutors()
	registerConvertExecutors()
	registerMiscExecutors()
	return table
}

// LookupInstructionInfo returns the InstructionInfo for op and whether op is
// dispatchable at all.
func LookupInstructionInfo(op instruction.Opcode) (InstructionInfo, bool) {
	info, ok := GenerateInstructionTable()[op]
	return info, ok
}
