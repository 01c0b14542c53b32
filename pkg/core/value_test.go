package core_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"axlab.dev/lessons/pkg/core"
	"github.com/stretchr/testify/require"
)

func TestValueKinds(t *testing.T) {
	test := require.New(t)

	test.Equal(core.KindNone, core.ValueOf(nil).Kind())
	test.Equal(core.KindNumber, core.ValueOf(42).Kind())
	test.Equal(core.KindNumber, core.ValueOf(int8(-1)).Kind())
	test.Equal(core.KindNumber, core.ValueOf(uint64(7)).Kind())
	test.Equal(core.KindNumber, core.ValueOf(float32(1.5)).Kind())
	test.Equal(core.KindNumber, core.ValueOf(math.NaN()).Kind())
	test.Equal(core.KindString, core.ValueOf("purple").Kind())
	test.Equal(core.KindFunc, core.ValueOf(func() {}).Kind())
	test.Equal(core.KindFunc, core.ValueOf(func() error { return nil }).Kind())
	test.Equal(core.KindOther, core.ValueOf(true).Kind())
	test.Equal(core.KindOther, core.ValueOf([]int{1}).Kind())
	test.Equal(core.KindNone, core.Value{}.Kind())

	v := core.ValueOf(3)
	test.Equal(v, core.ValueOf(v))
	test.True(core.Value{}.IsZero())
	test.False(v.IsZero())
}

func TestValueNumber(t *testing.T) {
	test := require.New(t)

	check := func(input any, expected float64) {
		num, ok := core.ValueOf(input).Number()
		test.True(ok, "expected %#v to be a number", input)
		test.Equal(expected, num)
	}

	check(5, 5)
	check(-3, -3)
	check(uint8(255), 255)
	check(5.24, 5.24)
	check("9", 9)
	check(" 1.5 ", 1.5)
	check("-2e3", -2000)
	check("", 0)
	check("1e400", math.Inf(+1))
	check("Infinity", math.Inf(+1))
	check("+Infinity", math.Inf(+1))
	check("-Infinity", math.Inf(-1))

	invalid := func(input any) {
		_, ok := core.ValueOf(input).Number()
		test.False(ok, "expected %#v NOT to be a number", input)
	}

	invalid(nil)
	invalid("x")
	invalid("purple")
	invalid("NaN")
	invalid("12abc")
	invalid("inf")
	invalid("-inf")
	invalid("Inf")
	invalid("infinity")
	invalid("INFINITY")
	invalid("nan")
	invalid("+NaN")
	invalid(math.NaN())
	invalid(true)
	invalid(func() {})
	invalid(struct{}{})
}

func TestValueAction(t *testing.T) {
	test := require.New(t)

	calls := 0
	action, ok := core.ValueOf(func() { calls++ }).Action()
	test.True(ok)
	test.NoError(action())
	test.Equal(1, calls)

	boom := errors.New("boom")
	action, ok = core.ValueOf(func() error { return boom }).Action()
	test.True(ok)
	test.ErrorIs(action(), boom)

	var nilFn func()
	_, ok = core.ValueOf(nilFn).Action()
	test.False(ok)

	_, ok = core.ValueOf(7).Action()
	test.False(ok)

	_, ok = core.ValueOf(func(int) {}).Action()
	test.False(ok)
}

func TestValueString(t *testing.T) {
	test := require.New(t)

	test.Equal("null", core.ValueOf(nil).String())
	test.Equal("5", core.ValueOf(5).String())
	test.Equal("5.5", core.ValueOf(5.5).String())
	test.Equal("-1", core.ValueOf(-1.0).String())
	test.Equal("purple", core.ValueOf("purple").String())
	test.Equal("function", core.ValueOf(func() {}).String())
	test.Equal("true", core.ValueOf(true).String())
	test.Equal("<number>(42)", core.ValueOf(42).Debug())
	test.Equal("<string>(abc)", core.ValueOf("abc").Debug())
}

func TestFormatNumber(t *testing.T) {
	test := require.New(t)
	test.Equal("0", core.FormatNumber(0))
	test.Equal("14", core.FormatNumber(14))
	test.Equal("14.24", core.FormatNumber(14.24))
	test.Equal("832040", core.FormatNumber(832040))
	test.Equal("NaN", core.FormatNumber(math.NaN()))
	test.Equal("Infinity", core.FormatNumber(math.Inf(+1)))
	test.Equal("-Infinity", core.FormatNumber(math.Inf(-1)))
	test.Equal("1e+21", core.FormatNumber(1e21))
	test.Equal("1e-07", core.FormatNumber(1e-7))
}

func TestArgumentError(t *testing.T) {
	test := require.New(t)

	err := core.InvalidArgument("repeat", "purple", "%s is not a valid positive integer", "purple")
	test.Equal("purple is not a valid positive integer", err.Error())
	test.Equal("repeat", err.Op)
	test.Equal(core.KindString, err.Arg.Kind())
	test.True(errors.Is(err, core.ErrInvalidArgument))

	wrapped := fmt.Errorf("running: %w", err)
	test.ErrorIs(wrapped, core.ErrInvalidArgument)

	var argErr *core.ArgumentError
	test.True(errors.As(wrapped, &argErr))
	test.Equal("repeat", argErr.Op)

	plain := core.InvalidArgument("add", nil, "value is not a number")
	test.Equal("value is not a number", plain.Error())
	test.False(errors.Is(errors.New("other"), core.ErrInvalidArgument))
}
