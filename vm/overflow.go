package vm

import "math"

// signedAddOverflowDirection reports which edge, if any, a+b crosses in the
// signed 32-bit range: ExceptionOverflow past the top (two positive operands
// producing a negative sum), ExceptionUnderflow past the bottom (two
// negative operands producing a non-negative sum), ExceptionNone otherwise.
// Uses the classic same-sign-operands/different-sign-result test (teacher's
// CalculateAddOverflow technique, generalized: DLX has no CPSR, so this is
// consulted directly by the arithmetic executors instead of being folded
// into a flags register).
func signedAddOverflowDirection(a, b int32) ExceptionKind {
	sum := a + b
	if (a >= 0) != (b >= 0) || (sum >= 0) == (a >= 0) {
		return ExceptionNone
	}
	if a >= 0 {
		return ExceptionOverflow
	}
	return ExceptionUnderflow
}

// signedSubOverflowDirection reports which edge, if any, a-b crosses:
// ExceptionOverflow when subtracting a negative pushes a non-negative a past
// the top, ExceptionUnderflow when subtracting a non-negative pushes a
// negative a past the bottom.
func signedSubOverflowDirection(a, b int32) ExceptionKind {
	diff := a - b
	if (a >= 0) == (b >= 0) || (diff >= 0) == (a >= 0) {
		return ExceptionNone
	}
	if a >= 0 {
		return ExceptionOverflow
	}
	return ExceptionUnderflow
}

// signedMulOverflowDirection reports which edge, if any, a*b crosses,
// checked by redoing the multiplication at double width.
func signedMulOverflowDirection(a, b int32) ExceptionKind {
	product := int64(a) * int64(b)
	switch {
	case product > math.MaxInt32:
		return ExceptionOverflow
	case product < math.MinInt32:
		return ExceptionUnderflow
	default:
		return ExceptionNone
	}
}

// addOverflowsUnsigned reports whether a+b wraps above UINT32_MAX. DLX
// treats this as Overflow for unsigned addition.
func addOverflowsUnsigned(a, b uint32) bool {
	return a+b < a
}

// subUnderflowsUnsigned reports whether a-b wraps below zero. DLX treats
// this as Underflow for unsigned subtraction.
func subUnderflowsUnsigned(a, b uint32) bool {
	return b > a
}

// mulOverflowsUnsigned reports whether a*b overflows the unsigned 32-bit
// range, checked by redoing the multiplication at double width.
func mulOverflowsUnsigned(a, b uint32) bool {
	product := uint64(a) * uint64(b)
	return product > math.MaxUint32
}
