package ast

import "fmt"

// DataKind is the closed set of Steel data types (spec §3).
type DataKind int

const (
	Str DataKind = iota
	Int
	Float
	Bool
	Char
	Void
	Array
	Custom
)

func (k DataKind) String() string {
	switch k {
	case Str:
		return "str"
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case Char:
		return "char"
	case Void:
		return "void"
	case Array:
		return "array"
	case Custom:
		return "custom"
	default:
		return "unknown"
	}
}

// DataType is a DataKind plus the payload the composite kinds need:
// Elem for Array, Class for Custom.
type DataType struct {
	Kind  DataKind
	Elem  *DataType
	Class string
}

func (t DataType) String() string {
	switch t.Kind {
	case Array:
		if t.Elem == nil {
			return "[]?"
		}
		return t.Elem.String() + "[]"
	case Custom:
		return t.Class
	default:
		return t.Kind.String()
	}
}

// Equal reports whether two declared types are identical (no widening).
func (t DataType) Equal(o DataType) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case Array:
		if t.Elem == nil || o.Elem == nil {
			return t.Elem == o.Elem
		}
		return t.Elem.Equal(*o.Elem)
	case Custom:
		return t.Class == o.Class
	default:
		return true
	}
}

// AssignableFrom reports whether a value of type `from` may be stored
// into a target declared as type `t`, applying the single legal
// widening in the language: INT may widen to FLOAT.
func (t DataType) AssignableFrom(from DataType) bool {
	if t.Equal(from) {
		return true
	}
	if t.Kind == Float && from.Kind == Int {
		return true
	}
	if t.Kind == Array && from.Kind == Array && t.Elem != nil && from.Elem != nil {
		return t.Elem.AssignableFrom(*from.Elem)
	}
	return false
}

// StrT, IntT, FloatT, BoolT, CharT, VoidT are convenience constructors
// for the scalar DataTypes, used pervasively by the parser and
// evaluator instead of repeating DataType{Kind: ...} literals.
func StrT() DataType   { return DataType{Kind: Str} }
func IntT() DataType   { return DataType{Kind: Int} }
func FloatT() DataType { return DataType{Kind: Float} }
func BoolT() DataType  { return DataType{Kind: Bool} }
func CharT() DataType  { return DataType{Kind: Char} }
func VoidT() DataType  { return DataType{Kind: Void} }

func ArrayT(elem DataType) DataType {
	e := elem
	return DataType{Kind: Array, Elem: &e}
}

func CustomT(class string) DataType {
	return DataType{Kind: Custom, Class: class}
}

// DataTypeFromKeyword maps a declared-type keyword token lexeme to its
// DataType, used by the parser's id-form dispatch.
func DataTypeFromKeyword(kw string) (DataType, error) {
	switch kw {
	case "int":
		return IntT(), nil
	case "float":
		return FloatT(), nil
	case "bool":
		return BoolT(), nil
	case "str":
		return StrT(), nil
	default:
		return DataType{}, fmt.Errorf("not a type keyword: %q", kw)
	}
}
