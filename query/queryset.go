package query

import (
	"hermannm.dev/devlog/log"
	"hermannm.dev/wrap"

	"github.com/rhoneyager-tomorrow/ioda-converters/bufrerr"
)

// QuerySet is the declarative catalog of named queries the caller builds up
// before any frame decoding begins. It also tracks which message-type
// subsets the catalog as a whole cares about, so a decoder can skip subsets
// that no registered query would ever read.
//
// A QuerySet is writable until the first frame is appended to a ResultSet
// built from it; treat it as read-only after that point (see spec.md §5).
type QuerySet struct {
	includesAllSubsets bool
	addHasBeenCalled   bool
	limitSubsets       map[string]struct{}
	presentSubsets     map[string]struct{}
	queryMap           map[string][]Query
}

// New builds an empty QuerySet with no subset allowlist: it includes all
// subsets until queries are added that narrow that down.
func New() *QuerySet {
	return &QuerySet{
		includesAllSubsets: true,
		limitSubsets:       map[string]struct{}{},
		presentSubsets:     map[string]struct{}{},
		queryMap:           map[string][]Query{},
	}
}

// NewForSubsets builds a QuerySet restricted up-front to the given subset
// names. An empty slice behaves exactly like New.
func NewForSubsets(subsetNames []string) *QuerySet {
	limitSubsets := make(map[string]struct{}, len(subsetNames))
	for _, name := range subsetNames {
		limitSubsets[name] = struct{}{}
	}

	return &QuerySet{
		includesAllSubsets: len(limitSubsets) == 0,
		limitSubsets:       limitSubsets,
		presentSubsets:     map[string]struct{}{},
		queryMap:           map[string][]Query{},
	}
}

// Add parses queryString via parser and stores the resulting Queries under
// name, replacing any prior entry for that name. It also folds the parsed
// queries' subsets into the set's notion of which subsets are present, per
// spec.md §4.1:
//
//   - The first call to Add sets includesAllSubsets to false; only an
//     any-subset query (below) sets it back to true.
//   - With no subset allowlist, an any-subset query re-enables
//     includesAllSubsets; otherwise the named subset is recorded as present.
//   - With a subset allowlist, an any-subset query promotes presentSubsets to
//     exactly the allowlist; a named-subset query is recorded and then
//     presentSubsets is intersected back down to the allowlist.
func (qs *QuerySet) Add(parser Parser, name, queryString string) error {
	if !qs.addHasBeenCalled {
		qs.addHasBeenCalled = true
		qs.includesAllSubsets = false
	}

	parsed, err := parser.Parse(queryString)
	if err != nil {
		return wrap.Errorf(err, "failed to parse query '%s' for name '%s'", queryString, name)
	}

	for _, q := range parsed {
		if len(qs.limitSubsets) == 0 {
			if q.Subset.IsAny {
				qs.includesAllSubsets = true
			} else {
				qs.presentSubsets[q.Subset.Name] = struct{}{}
			}
		} else {
			if q.Subset.IsAny {
				qs.presentSubsets = cloneSet(qs.limitSubsets)
			} else {
				qs.presentSubsets[q.Subset.Name] = struct{}{}
				qs.presentSubsets = intersect(qs.limitSubsets, qs.presentSubsets)
			}
		}
	}

	qs.queryMap[name] = parsed

	log.Infof("registered query '%s' with %d subqueries (includesAllSubsets=%t)",
		name, len(parsed), qs.includesAllSubsets)

	return nil
}

// IncludesSubset reports whether this QuerySet admits the given subset:
// either because it includes all subsets, or because the subset is in the
// allowlist (when no queries have been added yet), or because the subset is
// among the subsets the added queries actually reference.
func (qs *QuerySet) IncludesSubset(subset string) bool {
	if qs.includesAllSubsets {
		return true
	}

	if len(qs.queryMap) == 0 {
		_, ok := qs.limitSubsets[subset]
		return ok
	}

	_, ok := qs.presentSubsets[subset]
	return ok
}

// Names enumerates the registered query names, in no particular order.
func (qs *QuerySet) Names() []string {
	names := make([]string, 0, len(qs.queryMap))
	for name := range qs.queryMap {
		names = append(names, name)
	}
	return names
}

// QueriesFor returns the queries registered under name.
func (qs *QuerySet) QueriesFor(name string) ([]Query, error) {
	queries, ok := qs.queryMap[name]
	if !ok {
		return nil, bufrerr.Newf(bufrerr.KindUnknownName, "no queries registered under name '%s'", name)
	}
	return queries, nil
}

func cloneSet(src map[string]struct{}) map[string]struct{} {
	dst := make(map[string]struct{}, len(src))
	for k := range src {
		dst[k] = struct{}{}
	}
	return dst
}

func intersect(a, b map[string]struct{}) map[string]struct{} {
	result := make(map[string]struct{})
	for k := range b {
		if _, ok := a[k]; ok {
			result[k] = struct{}{}
		}
	}
	return result
}
