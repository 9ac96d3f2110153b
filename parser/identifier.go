package parser

import (
	"strconv"
	"strings"

	"github.com/syifan-m2sim2/dlx-sim/instruction"
)

// IsValidLabelIdentifier reports whether s satisfies the label identifier
// grammar: starts with a letter or underscore, has length >= 2 when it
// starts with an underscore (a bare "_" is rejected), and otherwise contains
// only letters, digits, and underscores.
func IsValidLabelIdentifier(s string) bool {
	if s == "" {
		return false
	}
	first := s[0]
	if !(isLetter(first) || first == '_') {
		return false
	}
	if first == '_' && len(s) < 2 {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !(isLetter(c) || isDigitASCII(c) || c == '_') {
			return false
		}
	}
	return true
}

// IsReservedIdentifier reports whether s names an opcode mnemonic, an
// integer or float register, or the FPSR, case-insensitively — these are the
// identifiers a label is forbidden to shadow.
func IsReservedIdentifier(s string) bool {
	if instruction.StringToOpcode(s) != instruction.None {
		return true
	}
	if _, ok := IntRegisterID(s); ok {
		return true
	}
	if _, ok := FloatRegisterID(s); ok {
		return true
	}
	return IsFPSR(s)
}

// IntRegisterID parses a case-insensitive "R0".."R31" register name.
func IntRegisterID(s string) (int, bool) {
	return registerID(s, 'R', 31)
}

// FloatRegisterID parses a case-insensitive "F0".."F31" register name.
func FloatRegisterID(s string) (int, bool) {
	return registerID(s, 'F', 31)
}

// IsFPSR reports whether s is "FPSR", case-insensitively.
func IsFPSR(s string) bool {
	return len(s) == 4 && strings.EqualFold(s, "FPSR")
}

func registerID(s string, prefix byte, max int) (int, bool) {
	if len(s) < 2 {
		return 0, false
	}
	if upper(s[0]) != prefix {
		return 0, false
	}
	digits := s[1:]
	for i := 0; i < len(digits); i++ {
		if !isDigitASCII(digits[i]) {
			return 0, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 || n > max {
		return 0, false
	}
	return n, true
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigitASCII(c byte) bool {
	return c >= '0' && c <= '9'
}
