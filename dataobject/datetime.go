package dataobject

import "time"

// CombineDateTime composes six resolved date/time fields into Unix seconds
// (UTC) per element, plus a parallel missing-value mask. minute and second
// may be nil, in which case they contribute zero and never mark an element
// missing — this mirrors the optional minute/second accessors of the
// datetime adapter contract.
//
// It does not bind to any host array runtime; the []int64/[]bool pair is
// exactly what such an adapter would need to wrap into a masked array.
func CombineDateTime(year, month, day, hour, minute, second DataObject) ([]int64, []bool, error) {
	n := year.Len()

	seconds := make([]int64, n)
	mask := make([]bool, n)

	for i := 0; i < n; i++ {
		t := time.Date(
			asInt(year, i),
			time.Month(asInt(month, i)),
			asInt(day, i),
			asInt(hour, i),
			optionalAsInt(minute, i),
			optionalAsInt(second, i),
			0,
			time.UTC,
		)
		seconds[i] = t.Unix()

		missing := year.IsMissing(i) || month.IsMissing(i) || day.IsMissing(i) || hour.IsMissing(i)
		if minute != nil {
			missing = missing || minute.IsMissing(i)
		}
		if second != nil {
			missing = missing || second.IsMissing(i)
		}
		mask[i] = missing
	}

	return seconds, mask, nil
}

func asInt(obj DataObject, i int) int {
	switch v := obj.At(i).(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	case uint32:
		return int(v)
	case uint64:
		return int(v)
	case float32:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

func optionalAsInt(obj DataObject, i int) int {
	if obj == nil {
		return 0
	}
	return asInt(obj, i)
}
