package models

import (
	"fmt"
	"strings"
)

// Entry is a single user record of the directory. ID is assigned by the
// remote; Provisional marks an ID generated locally because the remote did
// not return one. A provisional entry disappears on the next page fetch.
type Entry struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	AvatarURL   string `json:"avatarUrl"`
	Provisional bool   `json:"-"`
}

// FullName is "first last" as shown and searched by the console.
func (e Entry) FullName() string {
	return fmt.Sprintf("%s %s", e.FirstName, e.LastName)
}

// Matches reports whether the full name or email contains q, ignoring case.
// A blank q matches everything.
func (e Entry) Matches(q string) bool {
	if strings.TrimSpace(q) == "" {
		return true
	}
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(e.FullName()), q) ||
		strings.Contains(strings.ToLower(e.Email), q)
}

// Draft is an entry that has not been created yet.
type Draft struct {
	FirstName string
	LastName  string
	Email     string
	AvatarURL string
}

// Patch is a partial update. A nil field is left untouched; a pointer to ""
// clears the field.
type Patch struct {
	FirstName *string
	LastName  *string
	Email     *string
	AvatarURL *string
}

// Ptr is a helper for building patches.
func Ptr(s string) *string {
	return &s
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil && p.AvatarURL == nil
}

// Apply returns e with every non-nil patch field taken from confirmed when it
// is set there, else from the patch itself. Fields the patch omits keep e's
// value.
func (p Patch) Apply(e Entry, confirmed Entry) Entry {
	pick := func(dst *string, want *string, got string) {
		if want == nil {
			return
		}
		if got != "" {
			*dst = got
			return
		}
		*dst = *want
	}
	pick(&e.FirstName, p.FirstName, confirmed.FirstName)
	pick(&e.LastName, p.LastName, confirmed.LastName)
	pick(&e.Email, p.Email, confirmed.Email)
	pick(&e.AvatarURL, p.AvatarURL, confirmed.AvatarURL)
	return e
}

// Page is one page of the remote collection.
type Page struct {
	Entries    []Entry
	Total      int
	Page       int
	TotalPages int
}
