// Package path splits the slash-delimited dim paths that identify a leaf
// field's position in the repetition tree.
package path

import "strings"

// Split breaks a slash-delimited path into its non-empty components. A
// leading, trailing, or doubled slash never produces an empty component:
//
//	Split("/a//b/c/") == []string{"a", "b", "c"}
//	Split("") == []string{}
func Split(p string) []string {
	rawParts := strings.Split(p, "/")

	components := make([]string, 0, len(rawParts))
	for _, part := range rawParts {
		if part != "" {
			components = append(components, part)
		}
	}

	return components
}
