package adp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the JSON type carried by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindNumber
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a single cell: a string, a number, or null.
// Numbers keep their JSON literal so they render exactly as served.
type Value struct {
	kind Kind
	num  json.Number
	str  string
}

// Null returns the absent value.
func Null() Value { return Value{} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a numeric value from a JSON literal.
func Number(n json.Number) Value { return Value{kind: KindNumber, num: n} }

// Int returns a numeric value for n.
func Int(n int) Value { return Number(json.Number(strconv.Itoa(n))) }

// Float returns a numeric value for f, formatted in its shortest form.
func Float(f float64) Value {
	return Number(json.Number(strconv.FormatFloat(f, 'f', -1, 64)))
}

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// Float reports the numeric reading of v. JSON numbers always parse;
// strings parse when they hold a finite decimal number. Null and empty
// strings never parse.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindNumber:
		f, err := v.num.Float64()
		return f, err == nil
	case KindString:
		return parseNumeric(v.str)
	}
	return 0, false
}

// String renders the value for display. Null renders as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return v.num.String()
	case KindString:
		return v.str
	}
	return ""
}

// Equal reports whether two values have the same kind and text.
func (v Value) Equal(o Value) bool {
	return v.kind == o.kind && v.String() == o.String()
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		if _, err := v.num.Float64(); err != nil {
			return nil, fmt.Errorf("invalid number %q", v.num)
		}
		return []byte(v.num), nil
	case KindString:
		return json.Marshal(v.str)
	}
	return []byte("null"), nil
}

// UnmarshalJSON implements json.Unmarshaler. Booleans are kept as their
// string form; objects and arrays are rejected.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch x := raw.(type) {
	case nil:
		*v = Null()
	case json.Number:
		*v = Number(x)
	case string:
		*v = String(x)
	case bool:
		*v = String(strconv.FormatBool(x))
	default:
		return fmt.Errorf("unsupported cell type %T", raw)
	}
	return nil
}

// naTokens are the cell texts read as missing, the same set pandas'
// read_csv treats as NA by default. Matching is exact.
var naTokens = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {},
	"N/A": {}, "NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {},
	"nan": {}, "null": {},
}

// ParseCell converts a raw text cell (as read from CSV) into a Value:
// empty cells and NA markers become null, numeric cells become numbers.
func ParseCell(s string) Value {
	t := strings.TrimSpace(s)
	if t == "" {
		return Null()
	}
	if _, ok := naTokens[t]; ok {
		return Null()
	}
	if f, ok := parseNumeric(t); ok {
		return Float(f)
	}
	return String(s)
}

func parseNumeric(s string) (float64, bool) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
