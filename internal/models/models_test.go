package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrekoca/recipebox/internal/apperr"
)

func TestUserValidate(t *testing.T) {
	cases := []struct {
		name     string
		username string
		email    string
		wantErr  bool
	}{
		{"valid", "alice", "alice@example.com", false},
		{"empty username", "", "alice@example.com", true},
		{"email without at", "alice", "alice.example.com", true},
		{"email without dot", "alice", "alice@example", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := User{Username: tc.username, Email: tc.email}
			err := u.Validate()
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, apperr.Validation, apperr.KindOf(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRecipeValidate(t *testing.T) {
	valid := Recipe{Title: "T", Ingredients: "I", Instructions: "S"}
	assert.NoError(t, valid.Validate())

	for _, r := range []Recipe{
		{Ingredients: "I", Instructions: "S"},
		{Title: "T", Instructions: "S"},
		{Title: "T", Ingredients: "I"},
		{Title: "  ", Ingredients: "I", Instructions: "S"},
	} {
		err := r.Validate()
		require.Error(t, err)
		assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	}
}

func TestProfileNeverCarriesCredential(t *testing.T) {
	u := User{ID: 1, Username: "alice", Email: "alice@example.com", PasswordHash: "secret-hash"}

	b, err := json.Marshal(u.Profile())
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret-hash")
	assert.NotContains(t, string(b), "password")

	// the full model hides it behind json:"-" as well
	b, err = json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "secret-hash")
}
