package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// integerLiteral allows single underscores between digit groups, e.g. "1_000".
var integerLiteral = regexp.MustCompile(`^[+-]?[0-9]+(_[0-9]+)*$`)

// ToInt converts a decoded JSON value to an integer. Floats are truncated
// toward zero and numeric strings may carry a sign, surrounding spaces and
// underscores between digit groups. Values outside the int64 range fail.
func ToInt(value interface{}) (int64, error) {
	switch v := value.(type) {
	case nil:
		return 0, fmt.Errorf("value is null")
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		return floatToInt(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		f, err := v.Float64()
		if err != nil {
			return 0, err
		}
		return floatToInt(f)
	case string:
		literal := strings.TrimSpace(v)
		if !integerLiteral.MatchString(literal) {
			return 0, fmt.Errorf("invalid literal %q for integer", v)
		}

		i, err := strconv.ParseInt(strings.ReplaceAll(literal, "_", ""), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid literal %q for integer", v)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("cannot convert %s to integer", jsonKind(value))
	}
}

func floatToInt(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("cannot convert %v to integer", f)
	}

	return int64(f), nil
}
