package domain

// SortSpec describes the requested ordering for list queries.
// SortOn is validated against a per-entity whitelist before it reaches SQL.
type SortSpec struct {
	SortOn    string
	Ascending bool
}

// PageSpec describes the requested pagination window.
// A zero ItemPerPage means "no limit"; the offset only applies when both
// values are positive, matching the observed list behavior.
type PageSpec struct {
	ItemPerPage int
	CurrentPage int
}

// Limit returns the row limit to apply, or 0 when no limit was requested.
func (p PageSpec) Limit() int {
	if p.ItemPerPage > 0 {
		return p.ItemPerPage
	}
	return 0
}

// Offset returns the row offset to apply, or 0 when paging was not requested.
func (p PageSpec) Offset() int {
	if p.ItemPerPage > 0 && p.CurrentPage > 0 {
		return (p.CurrentPage - 1) * p.ItemPerPage
	}
	return 0
}
