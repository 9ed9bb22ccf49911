package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/usersconsole/internal/client/models"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"eve.holt@reqres.in",
		"a@b.c",
		"first+tag@sub.domain.org",
		"ünï@cödé.de",
	}
	invalid := []string{
		"",
		"plainaddress",
		"missing-at.example.com",
		"no-dot@example",
		"@example.com",
		"user@.com.",
		"two@@example.com",
		"sp ace@example.com",
		"user@exa mple.com",
		"nbsp x@example.com",
		"user@example.com ",
		"us\ver@example.com",
		"user@exa\vmple.com",
		"user@example.c\vom",
		"us\u0085er@example.com",
		"user@example.com\u0085",
		"us\ter@example.com",
		"user@example.com\n",
	}

	for _, s := range valid {
		assert.True(t, IsValidEmail(s), s)
	}
	for _, s := range invalid {
		assert.False(t, IsValidEmail(s), s)
	}
}

func TestIsValidURL(t *testing.T) {
	valid := []string{
		"https://reqres.in/img/faces/1-image.jpg",
		"http://localhost:8080",
		"ftp://files.example.com/a.png",
		"https://user:pw@example.com/path?q=1#frag",
	}
	invalid := []string{
		"",
		"example.com/avatar.png",
		"/relative/path",
		"https://",
		"mailto:eve@reqres.in",
		"http://[::1",
	}

	for _, s := range valid {
		assert.True(t, IsValidURL(s), s)
	}
	for _, s := range invalid {
		assert.False(t, IsValidURL(s), s)
	}
}

func TestIsValidPassword(t *testing.T) {
	assert.False(t, IsValidPassword(""))
	assert.False(t, IsValidPassword("12345"))
	assert.True(t, IsValidPassword("123456"))
	assert.True(t, IsValidPassword("cityslicka"))
}

func TestIsValidName(t *testing.T) {
	assert.False(t, IsValidName(""))
	assert.False(t, IsValidName("   "))
	assert.False(t, IsValidName(" a "))
	assert.True(t, IsValidName("Al"))
	assert.True(t, IsValidName("  Жо  "))
}

func TestPredicatesAreDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.True(t, IsValidEmail("a@b.c"))
		assert.False(t, IsValidURL(""))
	}
}

func TestValidateCredentials(t *testing.T) {
	require.NoError(t, ValidateCredentials(models.Credentials{Email: "eve.holt@reqres.in", Password: "cityslicka"}))

	err := ValidateCredentials(models.Credentials{Email: "eve", Password: "123"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Email: must be a valid email address")
	assert.Contains(t, err.Error(), "Password: must be at least 6 characters")

	err = ValidateCredentials(models.Credentials{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be blank")
}

func TestValidateDraft(t *testing.T) {
	ok := models.Draft{FirstName: "Anna", LastName: "Smith", Email: "anna@reqres.in"}
	require.NoError(t, ValidateDraft(ok))

	ok.AvatarURL = "https://reqres.in/img/faces/7-image.jpg"
	require.NoError(t, ValidateDraft(ok))

	bad := ok
	bad.AvatarURL = "not a url"
	bad.FirstName = "A"
	err := ValidateDraft(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AvatarURL: must be a valid URL")
	assert.Contains(t, err.Error(), "FirstName: must be at least 2 characters")
}

func TestValidatePatch(t *testing.T) {
	require.Error(t, ValidatePatch(models.Patch{}))
	require.NoError(t, ValidatePatch(models.Patch{LastName: models.Ptr("Weaver")}))
	require.NoError(t, ValidatePatch(models.Patch{AvatarURL: models.Ptr("")}), "avatar can be cleared")

	err := ValidatePatch(models.Patch{Email: models.Ptr("")})
	require.Error(t, err, "email cannot be cleared")

	err = ValidatePatch(models.Patch{Email: models.Ptr("nope")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Email: must be a valid email address")
}
