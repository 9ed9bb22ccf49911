package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/usersconsole/internal/client/models"
	"github.com/dmitrijs2005/usersconsole/internal/client/validation"
	"github.com/dmitrijs2005/usersconsole/internal/common"
)

// Login asks for credentials, validates them and signs in. On success the
// first directory page is loaded.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Already logged in, logout first")
		return nil
	}

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.logger.Error(ctx, "error reading email", "error", err)
		return err
	}

	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		a.logger.Error(ctx, "error reading password", "error", err)
		return err
	}
	defer common.WipeByteArray(password)

	creds := models.Credentials{Email: email, Password: string(password)}
	if err := validation.ValidateCredentials(creds); err != nil {
		errorColor.Fprintf(a.out, "Invalid input: %v\n", err)
		return err
	}

	if err := a.session.SubmitLogin(ctx, creds); err != nil {
		errorColor.Fprintf(a.out, "Login unsuccessful: %s\n", a.session.State().Error)
		a.session.ClearError()
		return err
	}

	successColor.Fprintln(a.out, "Login successful")
	a.printWhoAmI()
	return a.loadAndShow(ctx, 1)
}

// Logout signs out. It cannot fail.
func (a *App) Logout(ctx context.Context) error {
	a.session.SubmitLogout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// WhoAmI prints the signed-in user.
func (a *App) WhoAmI(ctx context.Context) error {
	a.printWhoAmI()
	return nil
}

func (a *App) printWhoAmI() {
	renderProfile(a.out, a.session.State().User)
}
