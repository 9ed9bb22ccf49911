package reqrestest

import (
	"fmt"
	"strings"
)

// seed mirrors the sandbox's built-in users.
func seed() []User {
	people := []struct{ first, last string }{
		{"George", "Bluth"}, {"Janet", "Weaver"}, {"Emma", "Wong"}, {"Eve", "Holt"},
		{"Charles", "Morris"}, {"Tracey", "Ramos"}, {"Michael", "Lawson"}, {"Lindsay", "Ferguson"},
		{"Tobias", "Funke"}, {"Byron", "Fields"}, {"George", "Edwards"}, {"Rachel", "Howell"},
	}

	users := make([]User, 0, len(people))
	for i, p := range people {
		users = append(users, User{
			ID:        i + 1,
			Email:     strings.ToLower(p.first + "." + p.last + "@reqres.in"),
			FirstName: p.first,
			LastName:  p.last,
			Avatar:    fmt.Sprintf("https://reqres.in/img/faces/%d-image.jpg", i+1),
		})
	}
	return users
}
