package store

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/usersconsole/internal/client/models"
	"github.com/dmitrijs2005/usersconsole/internal/client/services"
	"github.com/dmitrijs2005/usersconsole/internal/logging"
)

// DefaultPageSize is used until a page is loaded with an explicit size.
const DefaultPageSize = 10

// DirectoryOption customizes a DirectoryStore.
type DirectoryOption func(*DirectoryStore)

// WithPageSize sets the initial page size.
func WithPageSize(n int) DirectoryOption {
	return func(s *DirectoryStore) {
		if n > 0 {
			s.state.PageSize = n
		}
	}
}

// WithRefetchAfterMutation reloads the current page after every successful
// create, update and delete, so totals stay exact.
func WithRefetchAfterMutation(on bool) DirectoryOption {
	return func(s *DirectoryStore) { s.refetch = on }
}

// DirectoryStore owns the paginated user directory.
//
// Entries always hold the last fetched page, patched by local mutations.
// Search filters the loaded page on read (models.DirectoryState.Visible).
// Only the latest LoadPage may apply its result.
type DirectoryStore struct {
	svc     services.DirectoryService
	logger  logging.Logger
	refetch bool

	mu       sync.Mutex
	state    models.DirectoryState
	loadSeq  uint64
	inflight int
	version  uint64

	listeners listeners[models.DirectoryState]
}

func NewDirectoryStore(svc services.DirectoryService, logger logging.Logger, opts ...DirectoryOption) *DirectoryStore {
	if logger == nil {
		logger = logging.Nop()
	}
	s := &DirectoryStore{
		svc:    svc,
		logger: logger,
		state:  models.DirectoryState{CurrentPage: 1, PageSize: DefaultPageSize},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadPage fetches one page. A pageSize below 1 keeps the current size.
// On failure the loaded entries stay visible and the error is set.
func (s *DirectoryStore) LoadPage(ctx context.Context, page, pageSize int) error {
	s.mu.Lock()
	if pageSize < 1 {
		pageSize = s.state.PageSize
	}
	s.loadSeq++
	seq := s.loadSeq
	snap := s.beginLocked()
	s.mu.Unlock()
	s.listeners.notify(snap)

	res, err := s.svc.List(ctx, page, pageSize)

	s.mu.Lock()
	if seq != s.loadSeq {
		snap = s.endLocked(noop{})
		s.mu.Unlock()
		s.listeners.notify(snap)
		s.logger.Debug(ctx, "stale page discarded", "page", page)
		return ErrSuperseded
	}
	var ev directoryEvent = pageLoaded{page: res, number: page, pageSize: pageSize}
	if err != nil {
		s.logger.Warn(ctx, "failed to load page", "page", page, "error", err)
		ev = directoryFailed{message: err.Error()}
	}
	snap = s.endLocked(ev)
	s.mu.Unlock()

	s.listeners.notify(snap)
	return err
}

// Refresh reloads the current page.
func (s *DirectoryStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	page, size := s.state.CurrentPage, s.state.PageSize
	s.mu.Unlock()
	return s.LoadPage(ctx, page, size)
}

// Create adds an entry remotely and, once confirmed, puts it first.
// Loading is set while the call runs.
func (s *DirectoryStore) Create(ctx context.Context, d models.Draft) error {
	s.mu.Lock()
	snap := s.beginLocked()
	s.mu.Unlock()
	s.listeners.notify(snap)

	entry, err := s.svc.Create(ctx, d)

	var ev directoryEvent = entryCreated{entry: entry}
	if err != nil {
		s.logger.Warn(ctx, "failed to create entry", "error", err)
		ev = directoryFailed{message: err.Error()}
	} else {
		s.logger.Info(ctx, "entry created", "id", entry.ID, "provisional", entry.Provisional)
	}

	s.mu.Lock()
	snap = s.endLocked(ev)
	s.mu.Unlock()
	s.listeners.notify(snap)

	if err != nil {
		return err
	}
	s.afterMutation(ctx)
	return nil
}

// Update sends p for the entry id and merges the confirmed fields into the
// loaded entry. It does not set Loading.
func (s *DirectoryStore) Update(ctx context.Context, id string, p models.Patch) error {
	entry, err := s.svc.Update(ctx, id, p)

	s.mu.Lock()
	var ev directoryEvent = entryUpdated{id: id, patch: p, confirmed: entry}
	loaded := s.state.IndexOf(id) >= 0
	if err != nil {
		ev = directoryFailed{message: err.Error()}
	}
	snap := s.commitLocked(ev)
	s.mu.Unlock()
	s.listeners.notify(snap)

	if err != nil {
		s.logger.Warn(ctx, "failed to update entry", "id", id, "error", err)
		return err
	}
	if !loaded {
		s.logger.Warn(ctx, "updated entry is not on the loaded page", "id", id, "refetch", s.refetch)
	}
	s.afterMutation(ctx)
	return nil
}

// Delete removes the entry remotely and then locally. Total is not
// decremented; it is marked as an estimate instead.
func (s *DirectoryStore) Delete(ctx context.Context, id string) error {
	deleted, err := s.svc.Delete(ctx, id)

	var ev directoryEvent = entryDeleted{id: deleted}
	if err != nil {
		s.logger.Warn(ctx, "failed to delete entry", "id", id, "error", err)
		ev = directoryFailed{message: err.Error()}
	}

	s.mu.Lock()
	snap := s.commitLocked(ev)
	s.mu.Unlock()
	s.listeners.notify(snap)

	if err != nil {
		return err
	}
	s.afterMutation(ctx)
	return nil
}

func (s *DirectoryStore) afterMutation(ctx context.Context) {
	if !s.refetch {
		return
	}
	if err := s.Refresh(ctx); err != nil {
		s.logger.Debug(ctx, "refetch after mutation failed", "error", err)
	}
}

// SetSearchQuery stores q as given and goes back to the first page.
// It does not fetch.
func (s *DirectoryStore) SetSearchQuery(q string) {
	s.dispatch(searchChanged{query: q})
}

// SetCurrentPage stores page without fetching it; call LoadPage or Refresh.
func (s *DirectoryStore) SetCurrentPage(page int) {
	s.dispatch(pageSelected{number: page})
}

// ClearError drops the current error message.
func (s *DirectoryStore) ClearError() {
	s.dispatch(directoryErrorCleared{})
}

// State returns a snapshot of the directory.
func (s *DirectoryStore) State() models.DirectoryState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Subscribe calls fn with a snapshot after every state change. Snapshots
// arrive in commit order; one overtaken by a newer commit is skipped. fn must
// not call intents of this store. The returned function removes the
// subscription.
func (s *DirectoryStore) Subscribe(fn func(models.DirectoryState)) (unsubscribe func()) {
	return s.listeners.add(fn)
}

func (s *DirectoryStore) dispatch(ev directoryEvent) {
	s.mu.Lock()
	snap := s.commitLocked(ev)
	s.mu.Unlock()
	s.listeners.notify(snap)
}

func (s *DirectoryStore) beginLocked() snapshot[models.DirectoryState] {
	s.inflight++
	return s.commitLocked(noop{})
}

func (s *DirectoryStore) endLocked(ev directoryEvent) snapshot[models.DirectoryState] {
	s.inflight--
	return s.commitLocked(ev)
}

func (s *DirectoryStore) commitLocked(ev directoryEvent) snapshot[models.DirectoryState] {
	s.state = ev.apply(s.state)
	s.state.Loading = s.inflight > 0
	s.version++
	return snapshot[models.DirectoryState]{state: s.state.Clone(), version: s.version}
}
