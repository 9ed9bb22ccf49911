package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/usersconsole/internal/client/store"
)

var errUsage = errors.New("usage")

// loadAndShow loads page and renders the directory. A superseded load is
// not an error for the view.
func (a *App) loadAndShow(ctx context.Context, page int) error {
	err := a.directory.LoadPage(ctx, page, 0)
	if errors.Is(err, store.ErrSuperseded) {
		return nil
	}
	a.show()
	return err
}

func (a *App) show() {
	renderDirectory(a.out, a.directory.State())
}

// List loads the current page, or the page given as the first argument.
func (a *App) List(ctx context.Context, args []string) error {
	page := a.directory.State().CurrentPage
	if len(args) > 0 {
		n, err := parsePage(args[0])
		if err != nil {
			fmt.Fprintln(a.out, "Usage: list [page]")
			return err
		}
		page = n
	}
	return a.loadAndShow(ctx, page)
}

// Next loads the following page. An estimated total may hide a page, so the
// last page check is skipped then.
func (a *App) Next(ctx context.Context) error {
	st := a.directory.State()
	if st.CurrentPage >= st.TotalPages() && !st.TotalEstimated {
		fmt.Fprintln(a.out, "Already on the last page")
		return nil
	}
	return a.loadAndShow(ctx, st.CurrentPage+1)
}

// Prev loads the preceding page.
func (a *App) Prev(ctx context.Context) error {
	st := a.directory.State()
	if st.CurrentPage <= 1 {
		fmt.Fprintln(a.out, "Already on the first page")
		return nil
	}
	return a.loadAndShow(ctx, st.CurrentPage-1)
}

// Page selects page n and loads it.
func (a *App) Page(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: page <n>")
		return errUsage
	}
	n, err := parsePage(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Usage: page <n>")
		return err
	}
	a.directory.SetCurrentPage(n)
	return a.Refresh(ctx)
}

// Search filters the loaded entries by the joined arguments. Searching goes
// back to the first page, which is loaded if another one is shown.
func (a *App) Search(ctx context.Context, args []string) error {
	before := a.directory.State().CurrentPage
	a.directory.SetSearchQuery(strings.Join(args, " "))
	if before != 1 {
		return a.loadAndShow(ctx, 1)
	}
	a.show()
	return nil
}

// Refresh reloads the current page.
func (a *App) Refresh(ctx context.Context) error {
	err := a.directory.Refresh(ctx)
	if errors.Is(err, store.ErrSuperseded) {
		return nil
	}
	a.show()
	return err
}

// Clear dismisses the errors of both stores.
func (a *App) Clear(ctx context.Context) error {
	a.session.ClearError()
	a.directory.ClearError()
	fmt.Fprintln(a.out, "OK")
	return nil
}

func parsePage(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("page must be at least 1, got %d", n)
	}
	return n, nil
}
