package field

// A Type represents the data type of a field.
type Type uint8

// List of field types supported by the composer and the validation engine.
const (
	TypeInvalid Type = iota
	TypeBool
	TypeInt
	TypeFloat
	TypeString
	TypeEnum
	TypeTime
	TypeUUID
	endTypes
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeBool:    "bool",
	TypeInt:     "int",
	TypeFloat:   "float64",
	TypeString:  "string",
	TypeEnum:    "enum",
	TypeTime:    "time.Time",
	TypeUUID:    "uuid.UUID",
}

// String returns the string representation of the type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return typeNames[TypeInvalid]
}

// Valid reports whether t is a declared field type.
func (t Type) Valid() bool { return t > TypeInvalid && t < endTypes }

// Numeric reports whether the type is numeric.
func (t Type) Numeric() bool { return t == TypeInt || t == TypeFloat }

// TypeInfo holds the type information of a field.
type TypeInfo struct {
	Type Type `json:"type" msgpack:"type"`
}

// String returns the string representation of the type info.
func (t TypeInfo) String() string { return t.Type.String() }

// Valid reports whether the type info holds a declared type.
func (t TypeInfo) Valid() bool { return t.Type.Valid() }

// Numeric reports whether the underlying type is numeric.
func (t TypeInfo) Numeric() bool { return t.Type.Numeric() }

// Comparable reports whether two field types can shadow one another in a
// composition. Shadowing requires the exact same type; anything else is a
// definition-time conflict.
func (t TypeInfo) Comparable(other *TypeInfo) bool {
	return other != nil && t.Type == other.Type
}
