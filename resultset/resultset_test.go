package resultset

import (
	"testing"

	"github.com/rhoneyager-tomorrow/ioda-converters/bufrerr"
	"github.com/rhoneyager-tomorrow/ioda-converters/frame"
	"github.com/rhoneyager-tomorrow/ioda-converters/typeinfo"
)

func TestGetOnEmptyResultSetFails(t *testing.T) {
	rs := New([]string{"T"})

	_, err := rs.Get("T", "", "")
	if !bufrerr.Is(err, bufrerr.KindEmptyResultSet) {
		t.Errorf("expected KindEmptyResultSet, got %v", err)
	}
}

func TestGetUnknownFieldFails(t *testing.T) {
	rs := New([]string{"T"})
	rs.NextDataFrame()

	_, err := rs.Get("NOPE", "", "")
	if !bufrerr.Is(err, bufrerr.KindNoSuchField) {
		t.Errorf("expected KindNoSuchField, got %v", err)
	}
}

func TestGetPaddsRaggedCountsWithMissingValue(t *testing.T) {
	target := &frame.Target{
		DimPaths:      []string{"/root/t"},
		ExportDimIdxs: []int{0},
		Type:          typeinfo.TypeInfo{Bits: 16, Scale: 1},
	}

	rs := New([]string{"T"})
	df := rs.NextDataFrame()
	idx, _ := df.FieldIndexForNodeNamed("T")

	// Envelope across frames is 3 (from frame 2), this frame only has 2
	// actual values, so one filler cell should appear.
	df.SetFieldAtIdx(idx, frame.DataField{Data: []float64{1, 2}, SeqCounts: [][]int{{2}}, Target: target})

	df2 := rs.NextDataFrame()
	df2.SetFieldAtIdx(idx, frame.DataField{Data: []float64{10, 20, 30}, SeqCounts: [][]int{{3}}, Target: target})

	object, err := rs.Get("T", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if object.Len() != 6 {
		t.Fatalf("expected 6 elements (2 frames * envelope 3), got %d", object.Len())
	}
	if !object.IsMissing(2) {
		t.Error("expected the padded cell in frame 0's row to be missing")
	}
	if object.IsMissing(3) || object.IsMissing(4) || object.IsMissing(5) {
		t.Error("expected frame 1's fully-populated row to have no missing cells")
	}
}

// TestGetWithGroupByAtShallowerDepthMatchesSpecScenarioS6 reproduces spec.md
// §8 scenario S6 literally: a group-by one level shallower than the target,
// target seqCounts [[2],[3,2]] (envelope [2,3]) and data [1,2,3,4,5] should
// reproject into dims [2,3], data [1,2,3,4,5,Missing] laid row-major.
func TestGetWithGroupByAtShallowerDepthMatchesSpecScenarioS6(t *testing.T) {
	groupByTarget := &frame.Target{
		DimPaths:      []string{"/root/g"},
		ExportDimIdxs: []int{0},
		Type:          typeinfo.TypeInfo{Bits: 8},
	}
	targetTarget := &frame.Target{
		DimPaths:      []string{"/root/g", "/root/g/t"},
		ExportDimIdxs: []int{0, 1},
		Type:          typeinfo.TypeInfo{Bits: 16, Scale: 1},
	}

	rs := New([]string{"G", "T"})
	df := rs.NextDataFrame()
	gIdx, _ := df.FieldIndexForNodeNamed("G")
	tIdx, _ := df.FieldIndexForNodeNamed("T")

	df.SetFieldAtIdx(gIdx, frame.DataField{Data: []float64{1, 2}, SeqCounts: [][]int{{2}}, Target: groupByTarget})
	df.SetFieldAtIdx(tIdx, frame.DataField{
		Data:      []float64{1, 2, 3, 4, 5},
		SeqCounts: [][]int{{2}, {3, 2}},
		Target:    targetTarget,
	})

	object, err := rs.Get("T", "G", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if dims := object.Dims(); len(dims) != 2 || dims[0] != 2 || dims[1] != 3 {
		t.Fatalf("expected dims [2,3], got %v", dims)
	}

	want := []float64{1, 2, 3, 4, 5, frame.MissingValue}
	if object.Len() != len(want) {
		t.Fatalf("expected %d elements, got %d", len(want), object.Len())
	}
	for i, w := range want {
		if w == frame.MissingValue {
			if !object.IsMissing(i) {
				t.Errorf("element %d: expected missing, got %v", i, object.At(i))
			}
			continue
		}
		if object.IsMissing(i) {
			t.Errorf("element %d: expected %v, got missing", i, w)
			continue
		}
		if got := numericValue(object.At(i)); got != w {
			t.Errorf("element %d: expected %v, got %v", i, w, got)
		}
	}
}

// TestGetWithGroupByDeeperThanTargetBroadcastsScalar exercises the Open
// Question #1 branch (spec.md §9 / DESIGN.md decision 1): when the group-by
// field has deeper repetition than the target, the target's single value is
// broadcast into column 0 of every row of the group-by lattice.
func TestGetWithGroupByDeeperThanTargetBroadcastsScalar(t *testing.T) {
	targetTarget := &frame.Target{
		DimPaths:      []string{"/root/t"},
		ExportDimIdxs: []int{0},
		Type:          typeinfo.TypeInfo{Bits: 16},
	}
	groupByTarget := &frame.Target{
		DimPaths:      []string{"/root/t", "/root/t/g"},
		ExportDimIdxs: []int{0, 1},
		Type:          typeinfo.TypeInfo{Bits: 8},
	}

	rs := New([]string{"T", "G"})
	df := rs.NextDataFrame()
	tIdx, _ := df.FieldIndexForNodeNamed("T")
	gIdx, _ := df.FieldIndexForNodeNamed("G")

	// T is a true scalar: one repetition level, one parent, one value.
	df.SetFieldAtIdx(tIdx, frame.DataField{Data: []float64{42}, SeqCounts: [][]int{{1}}, Target: targetTarget})
	// G has two repetition levels beneath T, so groupbyIdx (2) exceeds the
	// target's own envelope depth (1) and the broadcast branch fires.
	df.SetFieldAtIdx(gIdx, frame.DataField{
		Data:      []float64{1, 2, 3, 4, 5},
		SeqCounts: [][]int{{2}, {3, 2}},
		Target:    groupByTarget,
	})

	object, err := rs.Get("T", "G", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// totalGroupbyElements = max level0 (2) * max level1 (3) = 6.
	if dims := object.Dims(); len(dims) != 1 || dims[0] != 6 {
		t.Fatalf("expected dims [6], got %v", dims)
	}
	if object.Len() != 6 {
		t.Fatalf("expected 6 elements, got %d", object.Len())
	}
	for i := 0; i < object.Len(); i++ {
		if object.IsMissing(i) {
			t.Errorf("element %d: expected the broadcast scalar, got missing", i)
			continue
		}
		if got := numericValue(object.At(i)); got != 42 {
			t.Errorf("element %d: expected the broadcast value 42, got %v", i, got)
		}
	}
}

func TestGetPathMismatchBetweenGroupByAndTarget(t *testing.T) {
	groupByTarget := &frame.Target{DimPaths: []string{"/root/a/g"}, ExportDimIdxs: []int{0}}
	targetTarget := &frame.Target{DimPaths: []string{"/root/b/t"}, ExportDimIdxs: []int{0}}

	rs := New([]string{"G", "T"})
	df := rs.NextDataFrame()
	gIdx, _ := df.FieldIndexForNodeNamed("G")
	tIdx, _ := df.FieldIndexForNodeNamed("T")

	df.SetFieldAtIdx(gIdx, frame.DataField{Data: []float64{1}, SeqCounts: [][]int{{1}}, Target: groupByTarget})
	df.SetFieldAtIdx(tIdx, frame.DataField{Data: []float64{1}, SeqCounts: [][]int{{1}}, Target: targetTarget})

	_, err := rs.Get("T", "G", "")
	if !bufrerr.Is(err, bufrerr.KindPathMismatch) {
		t.Errorf("expected KindPathMismatch, got %v", err)
	}
}

func TestUnitReturnsResolvedUnit(t *testing.T) {
	target := &frame.Target{DimPaths: []string{"/root/t"}, ExportDimIdxs: []int{0}, Unit: "K"}

	rs := New([]string{"T"})
	df := rs.NextDataFrame()
	idx, _ := df.FieldIndexForNodeNamed("T")
	df.SetFieldAtIdx(idx, frame.DataField{Data: []float64{1}, SeqCounts: [][]int{{1}}, Target: target})

	unit, err := rs.Unit("T")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if unit != "K" {
		t.Errorf("expected unit 'K', got %q", unit)
	}
}

// numericValue normalizes any of the numeric DataObject element types to a
// float64 for assertion purposes.
func numericValue(v any) float64 {
	switch n := v.(type) {
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case float32:
		return float64(n)
	case float64:
		return n
	default:
		return 0
	}
}
