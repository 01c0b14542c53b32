package core

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Kind string

const (
	KindNone   Kind = "none"
	KindNumber Kind = "number"
	KindString Kind = "string"
	KindFunc   Kind = "func"
	KindOther  Kind = "other"
)

// Tagged input value for operations that accept loosely typed arguments.
type Value struct {
	kind Kind
	val  any
}

func ValueOf(v any) Value {
	switch v := v.(type) {
	case Value:
		return v
	case nil:
		return Value{KindNone, nil}
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return Value{KindNumber, v}
	case string:
		return Value{KindString, v}
	case func(), func() error:
		return Value{KindFunc, v}
	}
	return Value{KindOther, v}
}

func (v Value) Kind() Kind {
	if v.kind == "" {
		return KindNone
	}
	return v.kind
}

func (v Value) Any() any {
	return v.val
}

func (v Value) IsZero() bool {
	return v.Kind() == KindNone
}

// Number converts the value the way a numeric guard would see it. Strings
// that parse as a float count as numbers, the empty string is zero. NaN is
// never a number.
func (v Value) Number() (float64, bool) {
	var out float64
	switch v.Kind() {
	case KindNumber:
		out = asFloat64(v.val)
	case KindString:
		text := strings.TrimSpace(v.val.(string))
		if text == "" {
			return 0, true
		}
		if isSpecialSpelling(text) {
			return math.NaN(), false
		}
		num, err := strconv.ParseFloat(text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return math.NaN(), false
		}
		out = num
	default:
		return math.NaN(), false
	}

	if math.IsNaN(out) {
		return out, false
	}
	return out, true
}

// Action adapts a callable value to a uniform signature.
func (v Value) Action() (func() error, bool) {
	switch fn := v.val.(type) {
	case func():
		if fn == nil {
			return nil, false
		}
		return func() error { fn(); return nil }, true
	case func() error:
		if fn == nil {
			return nil, false
		}
		return fn, true
	}
	return nil, false
}

func (v Value) String() string {
	switch v.Kind() {
	case KindNone:
		return "null"
	case KindNumber:
		return FormatNumber(asFloat64(v.val))
	case KindFunc:
		return "function"
	}
	return fmt.Sprint(v.val)
}

func (v Value) Debug() string {
	return fmt.Sprintf("<%s>(%+v)", v.Kind(), v.val)
}

// FormatNumber prints a float with the shortest representation that round
// trips, without exponent for the common range.
func FormatNumber(num float64) string {
	switch {
	case math.IsNaN(num):
		return "NaN"
	case math.IsInf(num, +1):
		return "Infinity"
	case math.IsInf(num, -1):
		return "-Infinity"
	}
	if abs := math.Abs(num); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return strconv.FormatFloat(num, 'g', -1, 64)
	}
	return strconv.FormatFloat(num, 'f', -1, 64)
}

// isSpecialSpelling reports spellings of infinity or NaN that ParseFloat
// accepts but a numeric guard does not. Only "Infinity" with an optional sign
// passes.
func isSpecialSpelling(text string) bool {
	switch text {
	case "Infinity", "+Infinity", "-Infinity":
		return false
	}
	word := strings.ToLower(strings.TrimLeft(text, "+-"))
	return strings.HasPrefix(word, "inf") || word == "nan"
}

func asFloat64(v any) float64 {
	switch v := v.(type) {
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case float32:
		return float64(v)
	case float64:
		return v
	}
	return math.NaN()
}
