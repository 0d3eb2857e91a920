package dataobject

import "github.com/rhoneyager-tomorrow/ioda-converters/typeinfo"

// FromTypeInfo picks the concrete DataObject variant a field's resolved
// TypeInfo calls for: strings stay strings, integers pick signedness and
// width from info, and anything else falls back to a float of matching
// width.
func FromTypeInfo(info typeinfo.TypeInfo) (DataObject, error) {
	switch {
	case info.IsString():
		return &stringArray{}, nil
	case info.IsInteger():
		if info.IsSigned() {
			if info.Is64Bit() {
				return &dataArray[int64]{}, nil
			}
			return &dataArray[int32]{}, nil
		}
		if info.Is64Bit() {
			return &dataArray[uint64]{}, nil
		}
		return &dataArray[uint32]{}, nil
	default:
		if info.Is64Bit() {
			return &dataArray[float64]{}, nil
		}
		return &dataArray[float32]{}, nil
	}
}

// FromOverrideType picks the concrete DataObject variant named explicitly by
// a caller, independent of the field's own resolved TypeInfo. The caller
// (resultset.Get) is responsible for rejecting a type/info mismatch between
// string and numeric representations before calling this.
func FromOverrideType(overrideType string) (DataObject, error) {
	switch overrideType {
	case "int", "int32":
		return &dataArray[int32]{}, nil
	case "int64":
		return &dataArray[int64]{}, nil
	case "uint32", "uint":
		return &dataArray[uint32]{}, nil
	case "uint64":
		return &dataArray[uint64]{}, nil
	case "float", "float32":
		return &dataArray[float32]{}, nil
	case "double", "float64":
		return &dataArray[float64]{}, nil
	case "string":
		return &stringArray{}, nil
	default:
		return nil, unknownType(overrideType)
	}
}

// IsStringType reports whether overrideType names the string representation,
// used by resultset.Get to detect a number/string conversion mismatch before
// committing to an override.
func IsStringType(overrideType string) bool {
	return overrideType == "string"
}
