package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	r, err := ParseRole(" Moderator ")
	require.NoError(t, err)
	assert.Equal(t, RoleModerator, r)

	_, err = ParseRole("guest")
	assert.Error(t, err)
}

func TestRoles_AllValid(t *testing.T) {
	for _, r := range Roles() {
		assert.True(t, r.Valid(), r)
	}
	assert.False(t, Role("").Valid())
}

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", User{FullName: "Ada Lovelace", Username: "ada"}.DisplayName())
	assert.Equal(t, "ada", User{Username: "ada", Email: "ada@example.com"}.DisplayName())
	assert.Equal(t, "ada@example.com", User{Email: "ada@example.com"}.DisplayName())
}

func TestUser_HasSkill(t *testing.T) {
	u := User{Skills: []string{"Networking", "billing"}}
	assert.True(t, u.HasSkill("networking"))
	assert.False(t, u.HasSkill("hardware"))
}

func TestSession_State(t *testing.T) {
	user := &User{ID: "u1", Role: RoleUser}

	assert.Equal(t, StateUnauthenticated, Session{}.State())
	assert.Equal(t, StateUnauthenticated, Session{Identity: user}.State())
	assert.Equal(t, StateResolving, Session{Credential: "tok", Resolving: true}.State())
	assert.Equal(t, StateResolving, Session{Credential: "tok"}.State())
	assert.Equal(t, StateAuthenticated, Session{Credential: "tok", Identity: user}.State())
	assert.True(t, Session{Credential: "tok", Identity: user}.IsAuthenticated())
}
