package resultset

import (
	"github.com/samber/lo"

	"github.com/rhoneyager-tomorrow/ioda-converters/bufrerr"
	"github.com/rhoneyager-tomorrow/ioda-converters/path"
	"github.com/rhoneyager-tomorrow/ioda-converters/typeinfo"
)

// shape is the resolved geometry of one Get call: the per-frame envelope,
// the output dims before export-dim slicing, which dims stay visible on
// export, and the merged TypeInfo driving output-type selection.
type shape struct {
	allDims         []int
	dims            []int
	exportDims      []int
	groupbyIdx      int
	info            typeinfo.TypeInfo
	dimPaths        []string
	targetFieldIdx  int
	groupByFieldIdx int
	totalRows       int
}

// resolveDims walks every frame's target field, computing the tight
// rectangular envelope across frames, merging TypeInfo, and deriving the
// output dims and which of them survive export — mirroring the original
// engine's getRawValues dimension pass.
func (rs *ResultSet) resolveDims(fieldName, groupByFieldName string) (*shape, error) {
	targetFieldIdx, err := rs.frames[0].FieldIndexForNodeNamed(fieldName)
	if err != nil {
		return nil, err
	}

	groupByFieldIdx := -1
	if groupByFieldName != "" {
		idx, err := rs.frames[0].FieldIndexForNodeNamed(groupByFieldName)
		if err != nil {
			return nil, err
		}
		groupByFieldIdx = idx

		groupByPath := lastPath(rs.frames[0].FieldAtIdx(groupByFieldIdx).Target.DimPaths)
		targetPath := lastPath(rs.frames[0].FieldAtIdx(targetFieldIdx).Target.DimPaths)
		groupByComps := path.Split(groupByPath)
		targetComps := path.Split(targetPath)

		limit := min(len(groupByComps), len(targetComps))
		for i := 1; i < limit; i++ {
			if targetComps[i] != groupByComps[i] {
				return nil, bufrerr.Newf(bufrerr.KindPathMismatch,
					"the group-by and target fields do not share a common path: group-by path '%s', target path '%s'",
					groupByPath, targetPath)
			}
		}
	}

	baseline := rs.frames[0].FieldAtIdx(targetFieldIdx)
	dimPaths := baseline.Target.DimPaths
	exportDims := append([]int(nil), baseline.Target.ExportDimIdxs...)

	var dimsList []int
	var info typeinfo.TypeInfo
	groupbyIdx := 0
	totalGroupbyElements := 0
	infoInitialized := false

	for _, fr := range rs.frames {
		targetField := fr.FieldAtIdx(targetFieldIdx)

		if len(targetField.Target.DimPaths) > 0 && len(dimPaths) < len(targetField.Target.DimPaths) {
			dimPaths = targetField.Target.DimPaths
			exportDims = append([]int(nil), targetField.Target.ExportDimIdxs...)
		}

		if len(dimsList) < len(targetField.SeqCounts) {
			grown := make([]int, len(targetField.SeqCounts))
			copy(grown, dimsList)
			dimsList = grown
		}
		for level, counts := range targetField.SeqCounts {
			if len(counts) > 0 {
				dimsList[level] = max(dimsList[level], lo.Max(counts))
			}
		}

		if !infoInitialized {
			info = targetField.Target.Type
			infoInitialized = true
		} else {
			info = typeinfo.Merge(info, targetField.Target.Type)
		}

		if groupByFieldName != "" {
			groupByField := fr.FieldAtIdx(groupByFieldIdx)
			groupbyIdx = max(groupbyIdx, len(groupByField.SeqCounts))

			if groupbyIdx > len(dimsList) {
				dimPaths = []string{lastPath(groupByField.Target.DimPaths)}

				elementsForFrame := 1
				for _, counts := range groupByField.SeqCounts {
					if len(counts) > 0 {
						elementsForFrame *= lo.Max(counts)
					}
				}
				totalGroupbyElements = max(totalGroupbyElements, elementsForFrame)
			} else {
				dimPaths = nil
				start := len(groupByField.Target.ExportDimIdxs) - 1
				for idx := start; idx < len(targetField.Target.DimPaths); idx++ {
					if idx >= 0 {
						dimPaths = append(dimPaths, targetField.Target.DimPaths[idx])
					}
				}
			}
		}
	}

	allDims := append([]int(nil), dimsList...)
	for i, d := range allDims {
		if d == 0 {
			allDims[i] = 1
		}
	}

	var dims []int
	if groupbyIdx > 0 {
		if groupbyIdx > len(dimsList) {
			dims = []int{totalGroupbyElements}
			exportDims = []int{0}
			allDims = append([]int(nil), dims...)
		} else {
			dims = make([]int, len(dimsList)-groupbyIdx+1)
			dims[0] = 1
			for i := 0; i < groupbyIdx; i++ {
				dims[0] *= allDims[i]
			}
			for i := groupbyIdx; i < len(allDims); i++ {
				dims[i-groupbyIdx+1] = allDims[i]
			}

			shifted := make([]int, len(exportDims))
			for i, d := range exportDims {
				shifted[i] = d - (groupbyIdx - 1)
			}

			filtered := make([]int, 0, len(shifted))
			for _, d := range shifted {
				if d >= 0 {
					filtered = append(filtered, d)
				}
			}
			if len(filtered) == 0 || filtered[0] != 0 {
				filtered = append([]int{0}, filtered...)
			}
			exportDims = filtered
		}
	} else {
		dims = append([]int(nil), allDims...)
	}

	totalRows := dims[0] * len(rs.frames)

	return &shape{
		allDims:         allDims,
		dims:            dims,
		exportDims:      exportDims,
		groupbyIdx:      groupbyIdx,
		info:            info,
		dimPaths:        dimPaths,
		targetFieldIdx:  targetFieldIdx,
		groupByFieldIdx: groupByFieldIdx,
		totalRows:       totalRows,
	}, nil
}

func lastPath(dimPaths []string) string {
	if len(dimPaths) == 0 {
		return ""
	}
	return dimPaths[len(dimPaths)-1]
}

func sliceByIndices(values []int, idxs []int) []int {
	result := make([]int, len(idxs))
	for i, idx := range idxs {
		result[i] = values[idx]
	}
	return result
}

