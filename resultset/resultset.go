// Package resultset accumulates decoded frames and reshapes ragged,
// per-frame sequence-count trees into dense rectangular DataObjects.
package resultset

import (
	"github.com/google/uuid"
	"hermannm.dev/devlog/log"

	"github.com/rhoneyager-tomorrow/ioda-converters/bufrerr"
	"github.com/rhoneyager-tomorrow/ioda-converters/dataobject"
	"github.com/rhoneyager-tomorrow/ioda-converters/frame"
)

// ResultSet is append-only during decoding: a decoder calls NextDataFrame
// once per input message and populates the returned frame's slots, then
// Get reshapes the accumulated frames into a DataObject per named query.
type ResultSet struct {
	names    []string
	frames   []*frame.DataFrame
	frameIDs []uuid.UUID
}

// New builds an empty ResultSet whose frames will have one slot per name,
// in the given order — this must match the owning QuerySet's names.
func New(names []string) *ResultSet {
	return &ResultSet{names: append([]string(nil), names...)}
}

// NextDataFrame appends a new, empty frame and returns it for a decoder to
// populate one field slot at a time via frame.DataFrame.SetFieldAtIdx.
func (rs *ResultSet) NextDataFrame() *frame.DataFrame {
	df := frame.New(rs.names)
	rs.frames = append(rs.frames, df)
	rs.frameIDs = append(rs.frameIDs, uuid.New())
	return df
}

// Len reports how many frames have been accumulated.
func (rs *ResultSet) Len() int {
	return len(rs.frames)
}

// Unit returns the resolved unit of fieldName as seen in the first
// accumulated frame.
func (rs *ResultSet) Unit(fieldName string) (string, error) {
	if len(rs.frames) == 0 {
		return "", bufrerr.New(bufrerr.KindEmptyResultSet, "this result set is empty (contains no frames)")
	}

	idx, err := rs.frames[0].FieldIndexForNodeNamed(fieldName)
	if err != nil {
		return "", err
	}
	return rs.frames[0].FieldAtIdx(idx).Target.Unit, nil
}

// Get runs the full reshape pipeline for fieldName: dimension resolution,
// ragged-to-rectangular inflation, optional group-by reprojection, frame
// assembly, and output typing.
func (rs *ResultSet) Get(fieldName, groupByFieldName, overrideType string) (dataobject.DataObject, error) {
	if len(rs.frames) == 0 {
		return nil, bufrerr.New(bufrerr.KindEmptyResultSet, "this result set is empty (contains no frames)")
	}

	if !rs.frames[0].HasFieldNamed(fieldName) {
		return nil, bufrerr.Newf(bufrerr.KindNoSuchField, "this result set does not contain a field named '%s'", fieldName)
	}
	if groupByFieldName != "" && !rs.frames[0].HasFieldNamed(groupByFieldName) {
		return nil, bufrerr.Newf(bufrerr.KindNoSuchField, "this result set does not contain a field named '%s'", groupByFieldName)
	}

	shape, err := rs.resolveDims(fieldName, groupByFieldName)
	if err != nil {
		return nil, err
	}

	data := assembleData(rs.frames, shape)

	object, err := makeDataObject(fieldName, overrideType, shape.info)
	if err != nil {
		return nil, err
	}

	finalDims := append([]int(nil), shape.dims...)
	finalDims[0] = shape.totalRows
	finalDims = sliceByIndices(finalDims, shape.exportDims)

	dataobject.SetData(object, data, frame.MissingValue, finalDims, fieldName, groupByFieldName, shape.dimPaths)

	log.Infof("resolved field '%s' (groupBy=%q, overrideType=%q) into %d elements across %d frames",
		fieldName, groupByFieldName, overrideType, len(data), len(rs.frames))

	return object, nil
}
