package store

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/usersconsole/internal/client/models"
	"github.com/dmitrijs2005/usersconsole/internal/client/services"
)

type fakeAuth struct {
	mu        sync.Mutex
	results   map[string]services.LoginResult
	err       error
	logoutErr error
	// gate, when set, blocks Login for that email until the channel is closed.
	gate map[string]chan struct{}
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (services.LoginResult, error) {
	f.mu.Lock()
	g := f.gate[email]
	f.mu.Unlock()
	if g != nil {
		<-g
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return services.LoginResult{}, f.err
	}
	if r, ok := f.results[email]; ok {
		return r, nil
	}
	return services.LoginResult{
		Token:   "tok-" + email,
		Profile: models.Profile{ID: "1", Email: email, DisplayName: "Name"},
	}, nil
}

func (f *fakeAuth) Logout(context.Context) error { return f.logoutErr }

// fakeDirectory serves a fixed collection of n entries with ids "1".."n".
type fakeDirectory struct {
	mu      sync.Mutex
	entries []models.Entry
	listErr error
	mutErr  error
	created models.Entry
	updated models.Entry
	lists   int
	// gate, when set, blocks List for that page until the channel is closed.
	gate map[int]chan struct{}
}

func newFakeDirectory(n int) *fakeDirectory {
	f := &fakeDirectory{}
	for i := 1; i <= n; i++ {
		f.entries = append(f.entries, models.Entry{
			ID:        strconv.Itoa(i),
			FirstName: fmt.Sprintf("First%d", i),
			LastName:  fmt.Sprintf("Last%d", i),
			Email:     fmt.Sprintf("user%d@example.com", i),
		})
	}
	return f
}

func (f *fakeDirectory) List(ctx context.Context, page, pageSize int) (models.Page, error) {
	f.mu.Lock()
	g := f.gate[page]
	f.mu.Unlock()
	if g != nil {
		<-g
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	if f.listErr != nil {
		return models.Page{}, f.listErr
	}
	lo := min((page-1)*pageSize, len(f.entries))
	hi := min(lo+pageSize, len(f.entries))
	return models.Page{
		Entries:    append([]models.Entry(nil), f.entries[lo:hi]...),
		Total:      len(f.entries),
		Page:       page,
		TotalPages: (len(f.entries) + pageSize - 1) / pageSize,
	}, nil
}

func (f *fakeDirectory) Create(ctx context.Context, d models.Draft) (models.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mutErr != nil {
		return models.Entry{}, f.mutErr
	}
	if f.created.ID != "" {
		return f.created, nil
	}
	return models.Entry{ID: "new", FirstName: d.FirstName, LastName: d.LastName, Email: d.Email, AvatarURL: d.AvatarURL}, nil
}

func (f *fakeDirectory) Update(ctx context.Context, id string, p models.Patch) (models.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mutErr != nil {
		return models.Entry{}, f.mutErr
	}
	if f.updated.ID != "" {
		return f.updated, nil
	}
	return p.Apply(models.Entry{ID: id}, models.Entry{}), nil
}

func (f *fakeDirectory) Delete(ctx context.Context, id string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mutErr != nil {
		return "", f.mutErr
	}
	return id, nil
}

func (f *fakeDirectory) listCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lists
}
