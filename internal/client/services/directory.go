package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/usersconsole/internal/client/client"
	"github.com/dmitrijs2005/usersconsole/internal/client/metrics"
	"github.com/dmitrijs2005/usersconsole/internal/client/models"
)

// DirectoryService maps the remote users collection to local entries.
//
// Contract:
//   - List: one page of entries plus totals. Failures are *DirectoryError
//     with ErrFetchFailed.
//   - Create: creates an entry. If the remote returns no id, a UUID is used
//     and the entry is marked Provisional.
//   - Update: sends only the patch's non-nil fields and returns an entry
//     holding the confirmed values of those fields.
//   - Delete: returns the deleted id.
type DirectoryService interface {
	List(ctx context.Context, page, pageSize int) (models.Page, error)
	Create(ctx context.Context, d models.Draft) (models.Entry, error)
	Update(ctx context.Context, id string, p models.Patch) (models.Entry, error)
	Delete(ctx context.Context, id string) (string, error)
}

// DirectoryOption customizes the directory service.
type DirectoryOption func(*directoryService)

// WithDirectoryMetrics records remote calls on m.
func WithDirectoryMetrics(m *metrics.Metrics) DirectoryOption {
	return func(s *directoryService) { s.metrics = m }
}

type directoryService struct {
	client  client.Client
	metrics *metrics.Metrics
	newID   func() string
}

// NewDirectoryService constructs a DirectoryService bound to the given API client.
func NewDirectoryService(c client.Client, opts ...DirectoryOption) DirectoryService {
	s := &directoryService{client: c, newID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *directoryService) List(ctx context.Context, page, pageSize int) (models.Page, error) {
	if page < 1 || pageSize < 1 {
		return models.Page{}, &DirectoryError{Kind: ErrFetchFailed, Err: ErrInvalidPage}
	}

	start := time.Now()
	resp, err := s.client.ListUsers(ctx, page, pageSize)
	s.metrics.Observe("directory", "list", start, err)
	if err != nil {
		return models.Page{}, &DirectoryError{Kind: ErrFetchFailed, Err: err}
	}

	entries := make([]models.Entry, 0, len(resp.Data))
	for _, u := range resp.Data {
		entries = append(entries, toEntry(u))
	}

	return models.Page{
		Entries:    entries,
		Total:      resp.Total,
		Page:       resp.Page,
		TotalPages: resp.TotalPages,
	}, nil
}

func (s *directoryService) Create(ctx context.Context, d models.Draft) (models.Entry, error) {
	payload := client.UserPayload{
		FirstName: &d.FirstName,
		LastName:  &d.LastName,
		Email:     &d.Email,
		Avatar:    &d.AvatarURL,
	}

	start := time.Now()
	resp, err := s.client.CreateUser(ctx, payload)
	s.metrics.Observe("directory", "create", start, err)
	if err != nil {
		return models.Entry{}, &DirectoryError{Kind: ErrCreateFailed, Err: err}
	}

	e := toEntry(*resp)
	if e.ID == "" {
		e.ID = s.newID()
		e.Provisional = true
	}
	e.FirstName = firstNonEmpty(e.FirstName, d.FirstName)
	e.LastName = firstNonEmpty(e.LastName, d.LastName)
	e.Email = firstNonEmpty(e.Email, d.Email)
	e.AvatarURL = firstNonEmpty(e.AvatarURL, d.AvatarURL)
	return e, nil
}

func (s *directoryService) Update(ctx context.Context, id string, p models.Patch) (models.Entry, error) {
	payload := client.UserPayload{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Avatar:    p.AvatarURL,
	}

	start := time.Now()
	resp, err := s.client.UpdateUser(ctx, id, payload)
	s.metrics.Observe("directory", "update", start, err)
	if err != nil {
		return models.Entry{}, &DirectoryError{Kind: ErrUpdateFailed, Err: err}
	}

	return p.Apply(models.Entry{ID: id}, toEntry(*resp)), nil
}

func (s *directoryService) Delete(ctx context.Context, id string) (string, error) {
	start := time.Now()
	err := s.client.DeleteUser(ctx, id)
	s.metrics.Observe("directory", "delete", start, err)
	if err != nil {
		return "", &DirectoryError{Kind: ErrDeleteFailed, Err: err}
	}
	return id, nil
}

func toEntry(u client.User) models.Entry {
	return models.Entry{
		ID:        string(u.ID),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		AvatarURL: u.Avatar,
	}
}
