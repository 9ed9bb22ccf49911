package client

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is a remote identifier. The API sends numbers for listed users and
// strings for created ones; both decode to their string form.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// User is a user record as the remote sends it.
type User struct {
	ID        ID     `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
}

// UsersPage is the body of GET /users.
type UsersPage struct {
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
	Data       []User `json:"data"`
}

// UserPayload is the body of POST /users and PUT /users/{id}. Nil fields
// are not sent.
type UserPayload struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
}

// LoginResponse is the body of POST /login. The sandbox only returns the
// token; real backends may echo the profile.
type LoginResponse struct {
	Token       string `json:"token"`
	ID          ID     `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
