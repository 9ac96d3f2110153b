package instruction

import "fmt"

// ArgumentType names the shape an instruction argument slot accepts.
type ArgumentType int

const (
	// Unknown marks a slot that has not been assigned a shape. A fully
	// built InstructionInfo never exposes Unknown to a caller.
	Unknown ArgumentType = iota
	IntRegister
	FloatRegister
	ImmediateInteger
	AddressDisplacement
	Label
	ArgNone
)

func (t ArgumentType) String() string {
	switch t {
	case Unknown:
		return "Unknown"
	case IntRegister:
		return "IntRegister"
	case FloatRegister:
		return "FloatRegister"
	case ImmediateInteger:
		return "ImmediateInteger"
	case AddressDisplacement:
		return "AddressDisplacement"
	case Label:
		return "Label"
	case ArgNone:
		return "None"
	default:
		return fmt.Sprintf("ArgumentType(%d)", int(t))
	}
}

// Argument is a tagged union valued as exactly one of an int-register id, a
// float-register id, a 16-bit signed immediate, an address displacement, or
// a label name. Kind identifies which field is live; callers switch on Kind
// rather than relying on zero-value field inspection.
type Argument struct {
	Kind ArgumentType

	IntRegisterID   int
	FloatRegisterID int
	Immediate       int16
	Base            int // IntRegisterID used as the base of an AddressDisplacement
	Displacement    int16
	LabelName       string
}

// NoneArgument is the canonical empty argument used to fill unused slots.
var NoneArgument = Argument{Kind: ArgNone}

// IntRegisterArg builds an IntRegister argument.
func IntRegisterArg(id int) Argument {
	return Argument{Kind: IntRegister, IntRegisterID: id}
}

// FloatRegisterArg builds a FloatRegister argument.
func FloatRegisterArg(id int) Argument {
	return Argument{Kind: FloatRegister, FloatRegisterID: id}
}

// ImmediateArg builds an ImmediateInteger argument.
func ImmediateArg(v int16) Argument {
	return Argument{Kind: ImmediateInteger, Immediate: v}
}

// AddressDisplacementArg builds an AddressDisplacement argument with base
// register base and 16-bit signed displacement disp.
func AddressDisplacementArg(base int, disp int16) Argument {
	return Argument{Kind: AddressDisplacement, Base: base, Displacement: disp}
}

// LabelArg builds a Label argument.
func LabelArg(name string) Argument {
	return Argument{Kind: Label, LabelName: name}
}

// UnsignedImmediate returns the zero-extended 16-bit unsigned view of an
// ImmediateInteger argument's bit pattern.
func (a Argument) UnsignedImmediate() uint16 {
	return uint16(a.Immediate)
}

// String renders the argument the way it would appear in source, for use in
// diagnostic messages and dumps.
func (a Argument) String() string {
	switch a.Kind {
	case IntRegister:
		return fmt.Sprintf("R%d", a.IntRegisterID)
	case FloatRegister:
		return fmt.Sprintf("F%d", a.FloatRegisterID)
	case ImmediateInteger:
		return fmt.Sprintf("#%d", a.Immediate)
	case AddressDisplacement:
		return fmt.Sprintf("%d(R%d)", a.Displacement, a.Base)
	case Label:
		return a.LabelName
	case ArgNone:
		return ""
	default:
		return "<unknown argument>"
	}
}

// Equal reports structural equality between two arguments.
func (a Argument) Equal(b Argument) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case IntRegister:
		return a.IntRegisterID == b.IntRegisterID
	case FloatRegister:
		return a.FloatRegisterID == b.FloatRegisterID
	case ImmediateInteger:
		return a.Immediate == b.Immediate
	case AddressDisplacement:
		return a.Base == b.Base && a.Displacement == b.Displacement
	case Label:
		return a.LabelName == b.LabelName
	case ArgNone:
		return true
	default:
		return false
	}
}
