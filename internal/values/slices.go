package values

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/shopspring/decimal"

	dec "github.com/rezonia/orderx/internal/decimal"
	"github.com/rezonia/orderx/internal/model"
)

// Slice normalizes v into a sequence: nil becomes empty, a slice or array
// passes through element by element, anything else is wrapped.
func Slice(v any) []any {
	if v == nil {
		return []any{}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return []any{}
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	default:
		return []any{v}
	}
}

// StringSlice normalizes v like Slice and stringifies every element. Nil
// elements are dropped.
func StringSlice(v any) []string {
	items := Slice(v)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		out = append(out, stringify(item))
	}
	return out
}

func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return dec.FormatFloat(x)
	case float32:
		return dec.FormatFloat(float64(x))
	case bool:
		return strconv.FormatBool(x)
	case decimal.Decimal:
		return x.String()
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// At returns s[i] or model.ErrIndexOutOfRange
func At[T any](s []T, i int) (T, error) {
	var zero T
	if i < 0 || i >= len(s) {
		return zero, fmt.Errorf("index %d of %d: %w", i, len(s), model.ErrIndexOutOfRange)
	}
	return s[i], nil
}

// MustAt returns s[i] and panics with a usage error when i is out of range
func MustAt[T any](s []T, i int) T {
	v, err := At(s, i)
	if err != nil {
		panic(model.NewUsageError("MustAt", err))
	}
	return v
}
