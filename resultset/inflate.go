package resultset

import (
	"github.com/samber/lo"

	"github.com/rhoneyager-tomorrow/ioda-converters/frame"
)

// assembleData runs getRowsForField per frame and writes each frame's
// emitted rows into contiguous blocks of the final flat buffer, in append
// order, innermost axis fastest.
func assembleData(frames []*frame.DataFrame, s *shape) []float64 {
	rowLength := product(s.dims[1:])
	totalRows := s.dims[0] * len(frames)

	data := make([]float64, totalRows*rowLength)
	for i := range data {
		data[i] = frame.MissingValue
	}

	for frameIdx, fr := range frames {
		targetField := fr.FieldAtIdx(s.targetFieldIdx)
		if len(targetField.Data) == 0 {
			continue
		}

		rows := getRowsForField(targetField, s.allDims, s.groupbyIdx)

		dataRowIdx := s.dims[0] * frameIdx
		for rowIdx, row := range rows {
			for colIdx, v := range row {
				data[dataRowIdx*rowLength+rowIdx*len(row)+colIdx] = v
			}
		}
	}

	return data
}

// getRowsForField inflates one frame's ragged DataField into dense rows
// matching dims, then slices those rows by groupbyIdx.
func getRowsForField(targetField *frame.DataField, dims []int, groupbyIdx int) [][]float64 {
	maxCounts := 0
	for _, counts := range targetField.SeqCounts {
		if len(counts) > maxCounts {
			maxCounts = len(counts)
		}
	}

	idxs := make([]int, len(targetField.Data))
	for i := range idxs {
		idxs[i] = i
	}

	depth := len(dims)
	if len(targetField.SeqCounts) < depth {
		depth = len(targetField.SeqCounts)
	}

	inserts := make([][]int, len(dims))
	for level := 0; level < depth; level++ {
		counts := targetField.SeqCounts[level]
		inserts[level] = make([]int, len(counts))
		tailAll := product(dims[level:])
		tailInner := product(dims[level+1:])
		for p, count := range counts {
			inserts[level][p] = tailAll - count*tailInner
		}
	}

	for level := len(dims) - 1; level >= 0; level-- {
		for insertIdx, numInserts := range inserts[level] {
			if numInserts <= 0 {
				continue
			}
			tailAll := product(dims[level:])
			splitPoint := tailAll*insertIdx + tailAll - numInserts - 1
			for i, idx := range idxs {
				if idx > splitPoint {
					idxs[i] += numInserts
				}
			}
		}
	}

	output := make([]float64, product(dims))
	for i := range output {
		output[i] = frame.MissingValue
	}
	for i, idx := range idxs {
		output[idx] = targetField.Data[i]
	}

	if groupbyIdx <= 0 {
		return [][]float64{output}
	}

	if groupbyIdx > len(targetField.SeqCounts) {
		numRows := product(dims)
		rows := make([][]float64, numRows)
		for i := range rows {
			row := make([]float64, maxCounts)
			for j := range row {
				row[j] = frame.MissingValue
			}
			if len(output) > 0 {
				row[0] = output[0]
			}
			rows[i] = row
		}
		return rows
	}

	numRows := product(dims[:groupbyIdx])
	numsPerRow := product(dims[groupbyIdx:])
	rows := make([][]float64, numRows)
	for i := 0; i < numRows; i++ {
		row := make([]float64, numsPerRow)
		for j := 0; j < numsPerRow; j++ {
			row[j] = output[i*numsPerRow+j]
		}
		rows[i] = row
	}
	return rows
}

func product(values []int) int {
	if len(values) == 0 {
		return 1
	}
	return lo.Reduce(values, func(acc int, v int, _ int) int { return acc * v }, 1)
}
