package sexpr

import (
	"strconv"
	"strings"
)

type ValueType uint8

const (
	ValueTypeNumber ValueType = iota
	ValueTypeString
	ValueTypeBool
	ValueTypeList
)

var valueTypes = map[ValueType]string{
	ValueTypeNumber: "number",
	ValueTypeString: "string",
	ValueTypeBool:   "bool",
	ValueTypeList:   "list",
}

func (vt ValueType) String() string {
	return valueTypes[vt]
}

// Value is a node in a parsed expression tree. A Value is immutable once the
// Builder that produced it has been finalized.
type Value struct {
	v interface{}

	Type ValueType
}

var (
	True  = &Value{Type: ValueTypeBool, v: true}
	False = &Value{Type: ValueTypeBool, v: false}
)

func NewNumberValue(v float64) *Value {
	return &Value{v: v, Type: ValueTypeNumber}
}

func NewStringValue(v string) *Value {
	return &Value{v: v, Type: ValueTypeString}
}

func NewBoolValue(v bool) *Value {
	if v {
		return True
	}
	return False
}

func NewListValue(items []*Value) *Value {
	return &Value{v: items, Type: ValueTypeList}
}

func (v Value) Float64() float64 {
	return v.v.(float64)
}

func (v Value) Str() string {
	return v.v.(string)
}

func (v Value) Bool() bool {
	return v.v.(bool)
}

func (v Value) List() []*Value {
	return v.v.([]*Value)
}

// String renders the compact parenthesized form: scalars are space-suffixed
// and lists are wrapped in "(...)". Booleans print as the tokens the parser
// accepts (T and F), so printed output parses back to an equivalent tree.
func (v *Value) String() string {
	var sb strings.Builder
	v.appendTo(&sb)
	return sb.String()
}

func (v *Value) appendTo(sb *strings.Builder) {
	switch v.Type {
	case ValueTypeNumber:
		sb.WriteString(strconv.FormatFloat(v.Float64(), 'g', -1, 64))
		sb.WriteByte(' ')
	case ValueTypeString:
		sb.WriteString(v.Str())
		sb.WriteByte(' ')
	case ValueTypeBool:
		if v.Bool() {
			sb.WriteString("T ")
		} else {
			sb.WriteString("F ")
		}
	case ValueTypeList:
		sb.WriteByte('(')
		for _, item := range v.List() {
			item.appendTo(sb)
		}
		sb.WriteByte(')')
	}
}

// Equal reports deep equality of two trees.
func (v *Value) Equal(other *Value) bool {
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case ValueTypeNumber:
		return v.Float64() == other.Float64()
	case ValueTypeString:
		return v.Str() == other.Str()
	case ValueTypeBool:
		return v.Bool() == other.Bool()
	case ValueTypeList:
		a, b := v.List(), other.List()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Pair is a named association extracted from an operator-headed sublist.
type Pair struct {
	Name  string
	Value *Value
}

// Pairs returns a read-only view over the children of a list: every child
// that is itself a list of more than two items headed by a string contributes
// a (head, first-operand) pair. Non-conforming children are skipped. Returns
// nil when v is not a list.
func (v *Value) Pairs() []Pair {
	if v.Type != ValueTypeList {
		return nil
	}
	var pairs []Pair
	for _, item := range v.List() {
		if item.Type != ValueTypeList {
			continue
		}
		items := item.List()
		if len(items) > 2 && items[0].Type == ValueTypeString {
			pairs = append(pairs, Pair{Name: items[0].Str(), Value: items[1]})
		}
	}
	return pairs
}
