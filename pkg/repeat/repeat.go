// Package repeat invokes an action a fixed number of times.
package repeat

import (
	"fmt"
	"math"

	"axlab.dev/lessons/pkg/core"
)

// Repeat calls action n times, sequentially. n must be a positive integer and
// action a `func()` or `func() error`; otherwise an invalid argument error is
// returned before anything runs. The first error returned by action stops the
// loop and is returned wrapped.
func Repeat(n any, action any) error {
	count, ok := core.ValueOf(n).Number()
	if !ok || math.Mod(count, 1) != 0 || count < 1 {
		return core.InvalidArgument("repeat", n, "%s is not a valid positive integer", core.ValueOf(n))
	}

	fn, ok := core.ValueOf(action).Action()
	if !ok {
		return core.InvalidArgument("repeat", action, "2nd argument should be a function to repeat")
	}

	for i := 0.0; i < count; i++ {
		if err := fn(); err != nil {
			return fmt.Errorf("repeat %s of %s: %w", core.FormatNumber(i+1), core.FormatNumber(count), err)
		}
	}
	return nil
}

// Times is Repeat for typed arguments.
func Times(n int, action func()) error {
	return Repeat(n, action)
}
