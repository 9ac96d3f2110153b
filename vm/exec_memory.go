package vm

import "github.com/syifan-m2sim2/dlx-sim/instruction"

func registerMemoryExecutors() {
	register(instruction.LB, loadExecutor(func(p *Processor, addr uint32) (uint32, error) {
		v, err := p.Memory().LoadByte(addr)
		return uint32(int32(int8(v))), err
	}))
	register(instruction.LBU, loadExecutor(func(p *Processor, addr uint32) (uint32, error) {
		v, err := p.Memory().LoadByte(addr)
		return uint32(v), err
	}))
	register(instruction.LH, loadExecutor(func(p *Processor, addr uint32) (uint32, error) {
		v, err := p.Memory().LoadHalfword(addr)
		return uint32(int32(int16(v))), err
	}))
	register(instruction.LHU, loadExecutor(func(p *Processor, addr uint32) (uint32, error) {
		v, err := p.Memory().LoadHalfword(addr)
		return uint32(v), err
	}))
	register(instruction.LW, loadExecutor(func(p *Processor, addr uint32) (uint32, error) {
		return p.Memory().LoadWord(addr)
	}))
	register(instruction.LWU, loadExecutor(func(p *Processor, addr uint32) (uint32, error) {
		return p.Memory().LoadWord(addr)
	}))

	register(instruction.SB, storeExecutor(func(p *Processor, addr uint32, v uint32) error {
		return p.Memory().StoreByte(addr, byte(v))
	}))
	register(instruction.SBU, storeExecutor(func(p *Processor, addr uint32, v uint32) error {
		return p.Memory().StoreByte(addr, byte(v))
	}))
	register(instruction.SH, storeExecutor(func(p *Processor, addr uint32, v uint32) error {
		return p.Memory().StoreHalfword(addr, uint16(v))
	}))
	register(instruction.SHU, storeExecutor(func(p *Processor, addr uint32, v uint32) error {
		return p.Memory().StoreHalfword(addr, uint16(v))
	}))
	register(instruction.SW, storeExecutor(func(p *Processor, addr uint32, v uint32) error {
		return p.Memory().StoreWord(addr, v)
	}))
	register(instruction.SWU, storeExecutor(func(p *Processor, addr uint32, v uint32) error {
		return p.Memory().StoreWord(addr, v)
	}))

	register(instruction.LF, func(proc *Processor, args [3]instruction.Argument) Outcome {
		addr := proc.EffectiveAddress(args[1])
		v, err := proc.Memory().LoadFloat(addr)
		if err != nil {
			return TrappedOutcome(ExceptionAddressOutOfBounds)
		}
		proc.Registers().FloatSet(args[0].FloatRegisterID, v)
		return ContinueOutcome()
	})
	register(instruction.SF, func(proc *Processor, args [3]instruction.Argument) Outcome {
		addr := proc.EffectiveAddress(args[0])
		v := proc.Registers().FloatGet(args[1].FloatRegisterID)
		if err := proc.Memory().StoreFloat(addr, v); err != nil {
			return TrappedOutcome(ExceptionAddressOutOfBounds)
		}
		return ContinueOutcome()
	})
	register(instruction.LD, func(proc *Processor, args [3]instruction.Argument) Outcome {
		addr := proc.EffectiveAddress(args[1])
		v, err := proc.Memory().LoadDouble(addr)
		if err != nil {
			return TrappedOutcome(ExceptionAddressOutOfBounds)
		}
		if ok := proc.Registers().DoubleSet(args[0].FloatRegisterID, v); !ok {
			return TrappedOutcome(ExceptionMisalignedRegisterAccess)
		}
		return ContinueOutcome()
	})
	register(instruction.SD, func(proc *Processor, args [3]instruction.Argument) Outcome {
		addr := proc.EffectiveAddress(args[0])
		v, ok := proc.Registers().DoubleGet(args[1].FloatRegisterID)
		if !ok {
			return TrappedOutcome(ExceptionMisalignedRegisterAccess)
		}
		if err := proc.Memory().StoreDouble(addr, v); err != nil {
			return TrappedOutcome(ExceptionAddressOutOfBounds)
		}
		return ContinueOutcome()
	})

	register(instruction.LHI, func(proc *Processor, args [3]instruction.Argument) Outcome {
		v := uint32(args[1].UnsignedImmediate()) << 16
		proc.Registers().IntSetUnsigned(args[0].IntRegisterID, v)
		return ContinueOutcome()
	})
}

func loadExecutor(load func(p *Processor, addr uint32) (uint32, error)) Executor {
	return func(proc *Processor, args [3]instruction.Argument) Outcome {
		addr := proc.EffectiveAddress(args[1])
		v, err := load(proc, addr)
		if err != nil {
			return TrappedOutcome(ExceptionAddressOutOfBounds)
		}
		proc.Registers().IntSetUnsigned(args[0].IntRegisterID, v)
		return ContinueOutcome()
	}
}

func storeExecutor(store func(p *Processor, addr uint32, v uint32) error) Executor {
	return func(proc *Processor, args [3]instruction.Argument) Outcome {
		addr := proc.EffectiveAddress(args[0])
		v := proc.Registers().IntGetUnsigned(args[1].IntRegisterID)
		if err := store(proc, addr, v); err != nil {
			return TrappedOutcome(ExceptionAddressOutOfBounds)
		}
		return ContinueOutcome()
	}
}
