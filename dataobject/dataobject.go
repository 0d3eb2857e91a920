// Package dataobject implements the dense, rectangular output carrier the
// reshape engine produces: one concrete numeric or string array type per
// requested representation, all satisfying a common DataObject interface.
package dataobject

import (
	"github.com/rhoneyager-tomorrow/ioda-converters/bufrerr"
)

// DataObject is the common read surface over every concrete array variant.
type DataObject interface {
	Dims() []int
	FieldName() string
	GroupByFieldName() string
	DimPaths() []string
	Len() int
	IsMissing(i int) bool
	At(i int) any

	setMeta(dims []int, fieldName, groupByFieldName string, dimPaths []string)
	setData(raw []float64, missingValue float64)
}

// Numeric is the set of element types a dataArray may carry.
type Numeric interface {
	int32 | int64 | uint32 | uint64 | float32 | float64
}

// dataArray is the shared implementation behind every numeric concrete
// variant; it differs from the string variant only in how setData converts
// the engine's raw float64 values into T.
type dataArray[T Numeric] struct {
	values           []T
	missing          []bool
	dims             []int
	fieldName        string
	groupByFieldName string
	dimPaths         []string
}

func (obj *dataArray[T]) Dims() []int              { return obj.dims }
func (obj *dataArray[T]) FieldName() string        { return obj.fieldName }
func (obj *dataArray[T]) GroupByFieldName() string { return obj.groupByFieldName }
func (obj *dataArray[T]) DimPaths() []string       { return obj.dimPaths }
func (obj *dataArray[T]) Len() int                 { return len(obj.values) }
func (obj *dataArray[T]) IsMissing(i int) bool     { return obj.missing[i] }
func (obj *dataArray[T]) At(i int) any             { return obj.values[i] }

func (obj *dataArray[T]) setMeta(dims []int, fieldName, groupByFieldName string, dimPaths []string) {
	obj.dims = dims
	obj.fieldName = fieldName
	obj.groupByFieldName = groupByFieldName
	obj.dimPaths = dimPaths
}

func (obj *dataArray[T]) setData(raw []float64, missingValue float64) {
	obj.values = make([]T, len(raw))
	obj.missing = make([]bool, len(raw))
	for i, v := range raw {
		if v == missingValue {
			obj.missing[i] = true
			continue
		}
		obj.values[i] = T(v)
	}
}

// stringArray is the one non-numeric concrete variant: it never actually
// gets useful data out of setData (the engine never decodes a string field
// into a float64 slice), but it satisfies DataObject so the type-resolution
// tables in select.go can return a uniform interface.
type stringArray struct {
	values           []string
	missing          []bool
	dims             []int
	fieldName        string
	groupByFieldName string
	dimPaths         []string
}

func (obj *stringArray) Dims() []int             { return obj.dims }
func (obj *stringArray) FieldName() string        { return obj.fieldName }
func (obj *stringArray) GroupByFieldName() string { return obj.groupByFieldName }
func (obj *stringArray) DimPaths() []string       { return obj.dimPaths }
func (obj *stringArray) Len() int                 { return len(obj.values) }
func (obj *stringArray) IsMissing(i int) bool     { return obj.missing[i] }
func (obj *stringArray) At(i int) any             { return obj.values[i] }

func (obj *stringArray) setMeta(dims []int, fieldName, groupByFieldName string, dimPaths []string) {
	obj.dims = dims
	obj.fieldName = fieldName
	obj.groupByFieldName = groupByFieldName
	obj.dimPaths = dimPaths
}

func (obj *stringArray) setData(raw []float64, missingValue float64) {
	obj.values = make([]string, len(raw))
	obj.missing = make([]bool, len(raw))
	for i, v := range raw {
		if v == missingValue {
			obj.missing[i] = true
		}
	}
}

// SetData fills object's values from the engine's flat float64 buffer,
// marking entries equal to missingValue as missing, and records the
// surrounding metadata. It is the one write path every resultset assembly
// step uses, regardless of which concrete variant FromTypeInfo or
// FromOverrideType selected.
func SetData(
	object DataObject,
	raw []float64,
	missingValue float64,
	dims []int,
	fieldName, groupByFieldName string,
	dimPaths []string,
) {
	object.setData(raw, missingValue)
	object.setMeta(dims, fieldName, groupByFieldName, dimPaths)
}

// UnsupportedConversion reports a number/string representation mismatch
// between a field's resolved TypeInfo and a caller-requested override type.
func UnsupportedConversion(fieldName, overrideType string) error {
	return bufrerr.Newf(
		bufrerr.KindUnsupportedConversion,
		"conversions between numbers and strings are not supported: field '%s' to type '%s'",
		fieldName, overrideType,
	)
}

func unknownType(overrideType string) error {
	return bufrerr.Newf(bufrerr.KindUnknownType, "unknown or unsupported type '%s'", overrideType)
}
