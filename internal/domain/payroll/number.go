package payroll

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Number is a loosely typed numeric input such as a salary or a deduction
// amount. Upstream records carry these as numbers or numeric strings; any
// value that does not parse is kept as invalid and reads as zero.
type Number struct {
	value float64
	valid bool
}

func NumberOf(value float64) Number {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Number{}
	}
	return Number{value: value, valid: true}
}

// ParseNumber coerces a decoded value. Strings are trimmed and the empty
// string is zero; booleans are 1 and 0; nil and other shapes are invalid.
func ParseNumber(v any) Number {
	switch x := v.(type) {
	case Number:
		return x
	case float64:
		return NumberOf(x)
	case float32:
		return NumberOf(float64(x))
	case int:
		return NumberOf(float64(x))
	case int32:
		return NumberOf(float64(x))
	case int64:
		return NumberOf(float64(x))
	case uint:
		return NumberOf(float64(x))
	case uint32:
		return NumberOf(float64(x))
	case uint64:
		return NumberOf(float64(x))
	case json.Number:
		return parseNumberString(string(x))
	case string:
		return parseNumberString(x)
	case bool:
		if x {
			return NumberOf(1)
		}
		return NumberOf(0)
	default:
		return Number{}
	}
}

func parseNumberString(raw string) Number {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return NumberOf(0)
	}
	if len(raw) > 2 && raw[0] == '0' {
		base := 0
		switch raw[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			parsed, err := strconv.ParseUint(raw[2:], base, 64)
			if err != nil {
				return Number{}
			}
			return NumberOf(float64(parsed))
		}
	}
	if strings.ContainsRune(raw, '_') {
		return Number{}
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Number{}
	}
	return NumberOf(parsed)
}

// Float64 reports the parsed value and whether it was a valid number.
func (n Number) Float64() (float64, bool) {
	return n.value, n.valid
}

func (n Number) Valid() bool {
	return n.valid
}

// OrZero is the value when valid, zero otherwise.
func (n Number) OrZero() float64 {
	if !n.valid {
		return 0
	}
	return n.value
}

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*n = Number{}
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = parseNumberString(s)
	case 't':
		*n = NumberOf(1)
	case 'f':
		*n = NumberOf(0)
	case 'n', '{', '[':
		*n = Number{}
	default:
		parsed, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			*n = Number{}
			return nil
		}
		*n = NumberOf(parsed)
	}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.OrZero())
}

func (n *Number) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		*n = Number{}
		return nil
	}
	switch node.ShortTag() {
	case "!!null":
		*n = Number{}
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			*n = Number{}
			return nil
		}
		*n = ParseNumber(b)
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			*n = Number{}
			return nil
		}
		*n = NumberOf(f)
	default:
		*n = parseNumberString(node.Value)
	}
	return nil
}

func (n Number) MarshalYAML() (any, error) {
	return n.OrZero(), nil
}
