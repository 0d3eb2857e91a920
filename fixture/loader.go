// Package fixture stands in for the out-of-scope BUFR decoder in tests and
// examples: it reads a flat CSV file, one row per message, and populates a
// frame.DataFrame per row with scalar (single-repetition-level) fields.
package fixture

import (
	"io"
	"strconv"

	"hermannm.dev/wrap"

	"github.com/rhoneyager-tomorrow/ioda-converters/csv"
	"github.com/rhoneyager-tomorrow/ioda-converters/frame"
)

// Column describes one CSV column: which node name to register it under in
// the DataFrame, and the resolved Target it should carry.
type Column struct {
	Name   string
	Target *frame.Target
}

// NewFrameFunc builds the next empty DataFrame to populate, mirroring
// resultset.ResultSet.NextDataFrame without fixture needing to import the
// resultset package.
type NewFrameFunc func() *frame.DataFrame

// Load reads every row of csvFile as one message, calling newFrame once per
// row to get a DataFrame to populate. Each column's raw text is parsed as a
// float64 and stored as a single-element, single-repetition-level DataField
// (data = [value], seqCounts = [[1]]) — there is no ragged nesting to
// reconstruct from a flat CSV row.
func Load(csvFile io.ReadSeeker, skipHeaderRow bool, columns []Column, newFrame NewFrameFunc) error {
	r, err := csv.NewReader(csvFile, skipHeaderRow)
	if err != nil {
		return wrap.Error(err, "failed to construct CSV reader")
	}

	for {
		row, rowNumber, done, err := r.ReadRow()
		if err != nil {
			return wrap.Errorf(err, "failed to read CSV row %d", rowNumber)
		}
		if done {
			return nil
		}

		df := newFrame()

		for colIdx, column := range columns {
			if colIdx >= len(row) {
				continue
			}

			value, err := strconv.ParseFloat(row[colIdx], 64)
			if err != nil {
				return wrap.Errorf(err, "failed to parse column '%s' in row %d as a number", column.Name, rowNumber)
			}

			idx, err := df.FieldIndexForNodeNamed(column.Name)
			if err != nil {
				return wrap.Errorf(err, "column '%s' has no matching field in the data frame", column.Name)
			}

			df.SetFieldAtIdx(idx, frame.DataField{
				Data:      []float64{value},
				SeqCounts: [][]int{{1}},
				Target:    column.Target,
			})
		}
	}
}
