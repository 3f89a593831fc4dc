package thumborpath

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// FormatArg renders a single operation argument the way it appears in a thumbor URL
func FormatArg(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	}
	if items, ok := formatList(v); ok {
		return strings.Join(items, ",")
	}
	return fmt.Sprint(v)
}

// FormatList renders a slice or array argument joined by sep.
// Scalar values render as a single item
func FormatList(v interface{}, sep string) string {
	if items, ok := formatList(v); ok {
		return strings.Join(items, sep)
	}
	return FormatArg(v)
}

func formatList(v interface{}) (items []string, ok bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	for i := 0; i < rv.Len(); i++ {
		items = append(items, FormatArg(rv.Index(i).Interface()))
	}
	return items, true
}

// Truthy reports whether v is set to a non zero value
func Truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0 && !math.IsNaN(t)
	case float32:
		return t != 0 && !math.IsNaN(float64(t))
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	}
	return true
}

func arg(args []interface{}, i int) interface{} {
	if i < len(args) {
		return args[i]
	}
	return nil
}

func argOr(args []interface{}, i int, def interface{}) interface{} {
	if v := arg(args, i); v != nil {
		return v
	}
	return def
}

func dashIf(flag interface{}) string {
	if Truthy(flag) {
		return "-"
	}
	return ""
}

// positive reports whether every arg is a number strictly greater than zero
func positive(args ...interface{}) bool {
	values := make([]float64, 0, len(args))
	for _, a := range args {
		f, ok := toFloat(a)
		if !ok {
			return false
		}
		values = append(values, f)
	}
	return AllGreaterThanZero(values...)
}

func toFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case string:
		f, err := strconv.ParseFloat(t, 64)
		return f, err == nil
	case float64:
		return t, true
	case float32:
		return float64(t), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	}
	return 0, false
}
