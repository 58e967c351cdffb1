package Entities

import (
	"testing"

	"github.com/DF-Mephisto/Rest-Forum/src/Errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPassword(t *testing.T) {
	tests := []struct {
		password string
		valid    bool
	}{
		{"Str0ng#pw", true},
		{"p@ssW0rd", true},
		{"Sh0rt#a", false},         // under 8 characters
		{"n0special", false},       // no special character
		{"N0LOWER#CASE", false},    // no lower-case letter
		{"n0upper#case", false},    // no upper-case letter
		{"NoDigits#here", false},   // no digit
		{"Sp@ce 0k not", false},    // whitespace
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, ValidPassword(tt.password), "password %q", tt.password)
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("user@forum.example"))
	assert.False(t, ValidEmail("user@forum"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("two words@forum.example"))
}

// Registration validation reports every violated field at once.
func TestValidateNewCollectsAllViolations(t *testing.T) {
	user := &User{Username: "ab", Email: "broken"}

	err := user.ValidateNew("weak")

	var validation *Errors.ValidationFailed
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Violations, "Name must be between 4 and 20 in length")
	assert.Contains(t, validation.Violations, "Wrong email")
	assert.Len(t, validation.Violations, 3)
}

func TestValidateNewAcceptsGoodProfile(t *testing.T) {
	user := &User{Username: "kenobi", Email: "kenobi@forum.example"}
	require.NoError(t, user.ValidateNew("Str0ng#pw"))
}

func TestPasswordHashRoundTrip(t *testing.T) {
	user := &User{}
	require.NoError(t, user.HashPassword("Str0ng#pw"))

	assert.NotEqual(t, "Str0ng#pw", user.Password)
	assert.NoError(t, user.CheckPassword("Str0ng#pw"))
	assert.Error(t, user.CheckPassword("wrong"))
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, (&User{Role: &Role{Name: AdminRoleName}}).IsAdmin())
	assert.False(t, (&User{Role: &Role{Name: DefaultRoleName}}).IsAdmin())
	assert.False(t, (&User{}).IsAdmin())
}
