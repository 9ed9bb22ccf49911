package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/usersconsole/internal/client/models"
)

func TestPageSummary(t *testing.T) {
	st := models.DirectoryState{CurrentPage: 2, PageSize: 10, Total: 25}
	assert.Equal(t, "page 2/3, total 25", pageSummary(st))

	st.TotalEstimated = true
	st.Loading = true
	assert.Equal(t, "page 2/3, total ~25 (loading)", pageSummary(st))
}

func TestRenderDirectory(t *testing.T) {
	st := models.DirectoryState{
		Entries: []models.Entry{
			{ID: "1", FirstName: "Anna", LastName: "Smith", Email: "anna@x.io"},
			{ID: "0b6f", FirstName: "Bob", LastName: "Jones", Email: "bob@x.io", Provisional: true},
		},
		CurrentPage: 1,
		PageSize:    10,
		Total:       2,
		SearchQuery: "jones",
		Error:       "fetch failed",
	}

	var out bytes.Buffer
	renderDirectory(&out, st)

	got := out.String()
	assert.Contains(t, got, "ID")
	assert.Contains(t, got, "0b6f*")
	assert.Contains(t, got, "Bob Jones")
	assert.NotContains(t, got, "Anna")
	assert.Contains(t, got, "page 1/1, total 2")
	assert.Contains(t, got, `search "jones": 1 of 2 shown`)
	assert.Contains(t, got, "error: fetch failed")
}

func TestRenderDirectory_Empty(t *testing.T) {
	var out bytes.Buffer
	renderDirectory(&out, models.DirectoryState{CurrentPage: 1, PageSize: 10})
	assert.Contains(t, out.String(), "(no entries)")
	assert.Contains(t, out.String(), "page 1/1, total 0")
}

func TestRenderProfile(t *testing.T) {
	var out bytes.Buffer
	renderProfile(&out, &models.Profile{ID: "1", Email: "eve@reqres.in", DisplayName: "Eve Holt"})
	assert.Equal(t, "Eve Holt <eve@reqres.in> (id 1)\n", out.String())

	out.Reset()
	renderProfile(&out, nil)
	assert.Equal(t, "Not logged in\n", out.String())
}
