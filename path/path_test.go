package path

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		input    string
		expected []string
	}{
		{"/a//b/c/", []string{"a", "b", "c"}},
		{"", []string{}},
		{"a/b/c", []string{"a", "b", "c"}},
		{"/root", []string{"root"}},
		{"///", []string{}},
	}

	for _, tc := range cases {
		result := Split(tc.input)
		if !reflect.DeepEqual(result, tc.expected) {
			t.Errorf("Split(%q) = %v, want %v", tc.input, result, tc.expected)
		}
	}
}
