package models

// DirectoryState is the directory as observed by the view. Entries hold the
// most recently fetched page; SearchQuery filters it on read (see Visible).
// TotalEstimated is set once a local mutation happened after the last fetch,
// meaning Total may drift from the remote.
type DirectoryState struct {
	Entries        []Entry
	Loading        bool
	Error          string
	CurrentPage    int
	PageSize       int
	Total          int
	SearchQuery    string
	TotalEstimated bool
}

// Visible returns the loaded entries matching SearchQuery, in order.
func (s DirectoryState) Visible() []Entry {
	out := make([]Entry, 0, len(s.Entries))
	for _, e := range s.Entries {
		if e.Matches(s.SearchQuery) {
			out = append(out, e)
		}
	}
	return out
}

// TotalPages derives the page count from Total and PageSize.
func (s DirectoryState) TotalPages() int {
	if s.PageSize <= 0 || s.Total <= 0 {
		return 1
	}
	return (s.Total + s.PageSize - 1) / s.PageSize
}

// IndexOf returns the position of the entry with the given id, or -1.
func (s DirectoryState) IndexOf(id string) int {
	for i, e := range s.Entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a copy whose Entries slice is not shared with s.
func (s DirectoryState) Clone() DirectoryState {
	s.Entries = append([]Entry(nil), s.Entries...)
	return s
}
