package resultset

import (
	"github.com/rhoneyager-tomorrow/ioda-converters/dataobject"
	"github.com/rhoneyager-tomorrow/ioda-converters/typeinfo"
)

// makeDataObject resolves which concrete DataObject variant to build: by
// the merged TypeInfo when no overrideType is given, or by overrideType
// directly, rejecting any attempt to cross the string/numeric boundary.
func makeDataObject(fieldName, overrideType string, info typeinfo.TypeInfo) (dataobject.DataObject, error) {
	if overrideType == "" {
		return dataobject.FromTypeInfo(info)
	}

	if dataobject.IsStringType(overrideType) != info.IsString() {
		return nil, dataobject.UnsupportedConversion(fieldName, overrideType)
	}

	return dataobject.FromOverrideType(overrideType)
}
