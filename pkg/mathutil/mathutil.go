// Package mathutil adds and subtracts loosely typed operands.
//
// Add and Subtract report invalid operands through their boolean result,
// which stands for a null value. AddStrict returns an error instead.
package mathutil

import "axlab.dev/lessons/pkg/core"

// Add returns a + b. The result is not ok when either operand is not a
// number.
func Add(a, b any) (float64, bool) {
	x, y, ok := operands(a, b)
	if !ok {
		return 0, false
	}
	return x + y, true
}

// Subtract returns a - b. The result is not ok when either operand is not a
// number.
func Subtract(a, b any) (float64, bool) {
	x, y, ok := operands(a, b)
	if !ok {
		return 0, false
	}
	return x - y, true
}

// AddStrict returns a + b, failing with an invalid argument error when either
// operand is not a number.
func AddStrict(a, b any) (float64, error) {
	x, ok := core.ValueOf(a).Number()
	if !ok {
		return 0, notANumber(a)
	}
	y, ok := core.ValueOf(b).Number()
	if !ok {
		return 0, notANumber(b)
	}
	return x + y, nil
}

func operands(a, b any) (x, y float64, ok bool) {
	if x, ok = core.ValueOf(a).Number(); !ok {
		return
	}
	y, ok = core.ValueOf(b).Number()
	return
}

func notANumber(arg any) error {
	return core.InvalidArgument("add", arg, "value supplied to 'add' is not a valid number")
}
