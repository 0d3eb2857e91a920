package frame

// DataField holds one leaf field's decoded contents for a single frame:
// its flat values (in document order) plus the per-repetition-level counts
// needed to re-inflate them into a dense rectangular shape.
type DataField struct {
	// Data is the flat, document-ordered sequence of decoded scalar values.
	// Missing values carry the MissingValue sentinel.
	Data []float64

	// SeqCounts[level] holds one count per parent occurrence at that
	// repetition level: how many children that parent actually had. Depth
	// of SeqCounts equals depth of Target.DimPaths.
	SeqCounts [][]int

	// Target is shared across every frame decoding the same leaf-schema
	// node; never mutate it through a DataField.
	Target *Target
}

// MissingValue is the in-band sentinel used for absent data, matching the
// wire-format convention this engine reshapes data for.
const MissingValue = 10e10
