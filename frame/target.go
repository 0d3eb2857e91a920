package frame

import "github.com/rhoneyager-tomorrow/ioda-converters/typeinfo"

// Target describes where a leaf field sits in the repetition tree and how
// its values should be exported. It is shared across every frame that
// decodes the same leaf-schema node: treat it as immutable and shared, never
// copy-on-write it per frame.
type Target struct {
	// DimPaths is the ordered sequence of path components from the root to
	// this leaf, one entry per repetition level.
	DimPaths []string

	// ExportDimIdxs selects which of the full dimension list are visible in
	// the exported DataObject. Strictly increasing, values in [0, len(DimPaths)).
	ExportDimIdxs []int

	Type typeinfo.TypeInfo
	Unit string
}
