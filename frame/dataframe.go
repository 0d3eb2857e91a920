package frame

import "github.com/rhoneyager-tomorrow/ioda-converters/bufrerr"

// DataFrame holds every leaf field decoded from a single message, indexed by
// the node name under which it was registered. Field slots are fixed in
// number and order once the frame is constructed; a decoder populates them
// one at a time via SetFieldAtIdx as it walks the message.
type DataFrame struct {
	fields    []DataField
	nameToIdx map[string]int
}

// New builds a DataFrame with one empty slot per name in nodeNames, in the
// given order. Names must be unique; a duplicate overwrites the earlier
// slot's index in the lookup table but both slots remain allocated.
func New(nodeNames []string) *DataFrame {
	df := &DataFrame{
		fields:    make([]DataField, len(nodeNames)),
		nameToIdx: make(map[string]int, len(nodeNames)),
	}
	for i, name := range nodeNames {
		df.nameToIdx[name] = i
	}
	return df
}

// FieldIndexForNodeNamed returns the slot index registered under name.
func (df *DataFrame) FieldIndexForNodeNamed(name string) (int, error) {
	idx, ok := df.nameToIdx[name]
	if !ok {
		return 0, bufrerr.Newf(bufrerr.KindNoSuchField, "no field registered under name '%s'", name)
	}
	return idx, nil
}

// HasFieldNamed reports whether name was registered when the frame was built.
func (df *DataFrame) HasFieldNamed(name string) bool {
	_, ok := df.nameToIdx[name]
	return ok
}

// FieldAtIdx returns a pointer to the field at the given slot, for reading
// or for a decoder to populate in place.
func (df *DataFrame) FieldAtIdx(idx int) *DataField {
	return &df.fields[idx]
}

// SetFieldAtIdx overwrites the field at the given slot. Used by a decoder
// once it has fully collected one leaf field's values and sequence counts.
func (df *DataFrame) SetFieldAtIdx(idx int, field DataField) {
	df.fields[idx] = field
}

// Len reports how many field slots this frame has.
func (df *DataFrame) Len() int {
	return len(df.fields)
}
