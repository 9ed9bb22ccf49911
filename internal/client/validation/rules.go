package validation

import (
	"errors"

	ozzo "github.com/go-ozzo/ozzo-validation"

	"github.com/dmitrijs2005/usersconsole/internal/client/models"
)

// Rules wrapping the predicates. Empty values pass so they can be combined
// with ozzo.Required where a field is mandatory.
var (
	Email    = stringRule(IsValidEmail, "must be a valid email address")
	URL      = stringRule(IsValidURL, "must be a valid URL")
	Password = stringRule(IsValidPassword, "must be at least 6 characters")
	Name     = stringRule(IsValidName, "must be at least 2 characters")
)

func stringRule(ok func(string) bool, msg string) ozzo.Rule {
	return ozzo.By(func(value interface{}) error {
		v, _ := ozzo.Indirect(value)
		s, _ := v.(string)
		if s == "" || ok(s) {
			return nil
		}
		return errors.New(msg)
	})
}

// ValidateCredentials checks a login form.
func ValidateCredentials(c models.Credentials) error {
	return ozzo.ValidateStruct(&c,
		ozzo.Field(&c.Email, ozzo.Required, Email),
		ozzo.Field(&c.Password, ozzo.Required, Password),
	)
}

// ValidateDraft checks a create form. The avatar is optional.
func ValidateDraft(d models.Draft) error {
	return ozzo.ValidateStruct(&d,
		ozzo.Field(&d.FirstName, ozzo.Required, Name),
		ozzo.Field(&d.LastName, ozzo.Required, Name),
		ozzo.Field(&d.Email, ozzo.Required, Email),
		ozzo.Field(&d.AvatarURL, URL),
	)
}

// ValidatePatch checks the fields an edit form sets. Names and email cannot
// be cleared; the avatar can.
func ValidatePatch(p models.Patch) error {
	if p.Empty() {
		return errors.New("nothing to update")
	}
	return ozzo.ValidateStruct(&p,
		ozzo.Field(&p.FirstName, ozzo.NilOrNotEmpty, Name),
		ozzo.Field(&p.LastName, ozzo.NilOrNotEmpty, Name),
		ozzo.Field(&p.Email, ozzo.NilOrNotEmpty, Email),
		ozzo.Field(&p.AvatarURL, URL),
	)
}
