package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/usersconsole/internal/client/models"
	"github.com/dmitrijs2005/usersconsole/internal/client/validation"
)

// Create asks for a new user's fields and creates it. The created user is
// shown first on the page.
func (a *App) Create(ctx context.Context) error {
	var d models.Draft
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"First name", &d.FirstName},
		{"Last name", &d.LastName},
		{"Email", &d.Email},
		{"Avatar URL (optional)", &d.AvatarURL},
	}
	for _, f := range fields {
		v, err := GetSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			a.logger.Error(ctx, "error reading input", "error", err)
			return err
		}
		*f.dst = v
	}

	if err := validation.ValidateDraft(d); err != nil {
		errorColor.Fprintf(a.out, "Invalid input: %v\n", err)
		return err
	}

	if err := a.directory.Create(ctx, d); err != nil {
		a.show()
		return err
	}
	successColor.Fprintln(a.out, "User created")
	a.show()
	return nil
}

// Edit asks for new values of each field of user id. Untouched fields are
// not sent.
func (a *App) Edit(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: edit <id>")
		return errUsage
	}
	id := args[0]

	st := a.directory.State()
	var current models.Entry
	if i := st.IndexOf(id); i >= 0 {
		current = st.Entries[i]
	} else {
		fmt.Fprintf(a.out, "User %s is not on this page, current values are unknown\n", id)
	}

	var p models.Patch
	fields := []struct {
		prompt  string
		current string
		dst     **string
	}{
		{"First name", current.FirstName, &p.FirstName},
		{"Last name", current.LastName, &p.LastName},
		{"Email", current.Email, &p.Email},
		{"Avatar URL", current.AvatarURL, &p.AvatarURL},
	}
	for _, f := range fields {
		v, err := GetOptionalText(a.reader, f.prompt, f.current, a.out)
		if err != nil {
			a.logger.Error(ctx, "error reading input", "error", err)
			return err
		}
		*f.dst = v
	}

	if err := validation.ValidatePatch(p); err != nil {
		errorColor.Fprintf(a.out, "Invalid input: %v\n", err)
		return err
	}

	if err := a.directory.Update(ctx, id, p); err != nil {
		a.show()
		return err
	}
	successColor.Fprintln(a.out, "User updated")
	a.show()
	return nil
}

// Delete removes user id after confirmation.
func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: delete <id>")
		return errUsage
	}
	id := args[0]

	answer, err := GetSimpleText(a.reader, fmt.Sprintf("Delete user %s? (y/N)", id), a.out)
	if err != nil {
		a.logger.Error(ctx, "error reading input", "error", err)
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.directory.Delete(ctx, id); err != nil {
		a.show()
		return err
	}
	successColor.Fprintln(a.out, "User deleted")
	a.show()
	return nil
}
