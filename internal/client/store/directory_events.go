package store

import "github.com/dmitrijs2005/usersconsole/internal/client/models"

// directoryEvent is a pure transition of the directory state. Loading is not
// part of any event; the store derives it from the requests in flight.
type directoryEvent interface {
	apply(s models.DirectoryState) models.DirectoryState
}

type pageLoaded struct {
	page     models.Page
	number   int
	pageSize int
}

func (e pageLoaded) apply(s models.DirectoryState) models.DirectoryState {
	s.Entries = append([]models.Entry(nil), e.page.Entries...)
	s.Total = e.page.Total
	s.CurrentPage = e.number
	s.PageSize = e.pageSize
	s.TotalEstimated = false
	s.Error = ""
	return s
}

type entryCreated struct {
	entry models.Entry
}

func (e entryCreated) apply(s models.DirectoryState) models.DirectoryState {
	entries := make([]models.Entry, 0, len(s.Entries)+1)
	entries = append(entries, e.entry)
	s.Entries = append(entries, s.Entries...)
	s.TotalEstimated = true
	s.Error = ""
	return s
}

// entryUpdated merges confirmed into the loaded entry with the given id.
// When that entry is not loaded the page is left as is and the total is
// marked as an estimate.
type entryUpdated struct {
	id        string
	patch     models.Patch
	confirmed models.Entry
}

func (e entryUpdated) apply(s models.DirectoryState) models.DirectoryState {
	s.Error = ""
	i := s.IndexOf(e.id)
	if i < 0 {
		return s
	}
	s.Entries = append([]models.Entry(nil), s.Entries...)
	s.Entries[i] = e.patch.Apply(s.Entries[i], e.confirmed)
	return s
}

type entryDeleted struct {
	id string
}

func (e entryDeleted) apply(s models.DirectoryState) models.DirectoryState {
	entries := make([]models.Entry, 0, len(s.Entries))
	for _, x := range s.Entries {
		if x.ID != e.id {
			entries = append(entries, x)
		}
	}
	s.Entries = entries
	s.TotalEstimated = true
	s.Error = ""
	return s
}

type directoryFailed struct {
	message string
}

func (e directoryFailed) apply(s models.DirectoryState) models.DirectoryState {
	s.Error = e.message
	return s
}

type searchChanged struct {
	query string
}

func (e searchChanged) apply(s models.DirectoryState) models.DirectoryState {
	s.SearchQuery = e.query
	s.CurrentPage = 1
	return s
}

type pageSelected struct {
	number int
}

func (e pageSelected) apply(s models.DirectoryState) models.DirectoryState {
	s.CurrentPage = max(e.number, 1)
	return s
}

type directoryErrorCleared struct{}

func (directoryErrorCleared) apply(s models.DirectoryState) models.DirectoryState {
	s.Error = ""
	return s
}

// noop only refreshes derived fields.
type noop struct{}

func (noop) apply(s models.DirectoryState) models.DirectoryState { return s }
