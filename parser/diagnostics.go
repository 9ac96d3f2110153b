package parser

import "fmt"

// DiagnosticKind enumerates every parse-time diagnostic this parser can
// raise. Each kind carries the fields listed alongside it below.
type DiagnosticKind int

const (
	UnexpectedArgumentType DiagnosticKind = iota // Expected, Actual
	InvalidNumber                                // Text
	TooFewArgumentsAddressDisplacement
	UnexpectedToken // Expected, Actual
	ReservedIdentifier
	InvalidLabelIdentifier
	LabelAlreadyDefined // Name, PriorLine, PriorColumn
	OneInstructionPerLine
	TooFewArguments // Required, Provided
	EmptyLabel
)

var diagnosticKindNames = map[DiagnosticKind]string{
	UnexpectedArgumentType:             "UnexpectedArgumentType",
	InvalidNumber:                      "InvalidNumber",
	TooFewArgumentsAddressDisplacement: "TooFewArgumentsAddressDisplacement",
	UnexpectedToken:                    "UnexpectedToken",
	ReservedIdentifier:                 "ReservedIdentifier",
	InvalidLabelIdentifier:             "InvalidLabelIdentifier",
	LabelAlreadyDefined:                "LabelAlreadyDefined",
	OneInstructionPerLine:              "OneInstructionPerLine",
	TooFewArguments:                    "TooFewArguments",
	EmptyLabel:                         "EmptyLabel",
}

func (k DiagnosticKind) String() string {
	if name, ok := diagnosticKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("DiagnosticKind(%d)", int(k))
}

// Diagnostic is a single structured parse error. Only the fields relevant to
// Kind are populated; callers switch on Kind to know which to read.
type Diagnostic struct {
	Kind DiagnosticKind
	Pos  Position

	Expected string // UnexpectedArgumentType, UnexpectedToken
	Actual   string // UnexpectedArgumentType, UnexpectedToken
	Text     string // InvalidNumber
	Name     string // LabelAlreadyDefined, EmptyLabel
	Identifier string // ReservedIdentifier, InvalidLabelIdentifier

	PriorLine   int // LabelAlreadyDefined
	PriorColumn int // LabelAlreadyDefined

	Required int // TooFewArguments
	Provided int // TooFewArguments
}

// String renders the diagnostic as "(line:column) <kind-specific message>".
// The exact wording is not a contract callers can rely on, only the field
// values carried by Diagnostic itself are.
func (d Diagnostic) String() string {
	prefix := fmt.Sprintf("(%d:%d) ", d.Pos.Line, d.Pos.Column)
	switch d.Kind {
	case UnexpectedArgumentType:
		return prefix + fmt.Sprintf("expected argument of type %s, got %s", d.Expected, d.Actual)
	case InvalidNumber:
		return prefix + fmt.Sprintf("invalid number literal %q", d.Text)
	case TooFewArgumentsAddressDisplacement:
		return prefix + "address displacement requires a register"
	case UnexpectedToken:
		return prefix + fmt.Sprintf("expected %s, got %s", d.Expected, d.Actual)
	case ReservedIdentifier:
		return prefix + fmt.Sprintf("%q is a reserved identifier", d.Identifier)
	case InvalidLabelIdentifier:
		return prefix + fmt.Sprintf("%q is not a valid label identifier", d.Identifier)
	case LabelAlreadyDefined:
		return prefix + fmt.Sprintf("label %q already defined at %d:%d", d.Name, d.PriorLine, d.PriorColumn)
	case OneInstructionPerLine:
		return prefix + "only one instruction is allowed per line"
	case TooFewArguments:
		return prefix + fmt.Sprintf("instruction requires %d argument(s), got %d", d.Required, d.Provided)
	case EmptyLabel:
		return prefix + fmt.Sprintf("label %q has no body", d.Name)
	default:
		return prefix + "unknown diagnostic"
	}
}
