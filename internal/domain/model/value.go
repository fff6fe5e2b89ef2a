package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

const (
	KindString ValueKind = iota
	KindNumber
)

type (
	ValueKind uint8

	// Value is the scalar a field accessor yields for one record.
	Value struct {
		kind ValueKind
		str  string
		num  float64
	}
)

func (k ValueKind) String() string {
	if k == KindNumber {
		return "number"
	}

	return "string"
}

func String(s string) Value {
	return Value{kind: KindString, str: s}
}

func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

func Int(i int) Value {
	return Number(float64(i))
}

func (v Value) Kind() ValueKind { return v.kind }
func (v Value) Float() float64  { return v.num }

// Text is the display form used for filtering and export: numbers render
// without trailing zeros or exponent, so 7 is "7" and 2.5 is "2.5".
func (v Value) Text() string {
	if v.kind == KindNumber {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}

	return v.str
}

// Compare orders numbers numerically and everything else by text.
func (v Value) Compare(other Value) int {
	if v.kind == KindNumber && other.kind == KindNumber {
		switch {
		case v.num < other.num:
			return -1
		case v.num > other.num:
			return 1
		default:
			return 0
		}
	}

	return strings.Compare(v.Text(), other.Text())
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindNumber {
		return []byte(v.Text()), nil
	}

	return json.Marshal(v.str)
}
