package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrekoca/recipebox/internal/apperr"
	"github.com/emrekoca/recipebox/internal/auth"
	"github.com/emrekoca/recipebox/internal/repository/memory"
	"github.com/emrekoca/recipebox/internal/worker"
)

func newUserService(t *testing.T) (*UserService, memory.Repositories, *worker.Pool) {
	t.Helper()
	repos := memory.NewRepositories()
	wp := worker.NewPool(1)
	tm := auth.NewTokenManager("test-secret", "recipebox", time.Hour)
	return NewUserService(repos.Users, repos.AuditLogs, tm, wp), repos, wp
}

func TestRegister(t *testing.T) {
	svc, repos, wp := newUserService(t)
	defer wp.Stop()
	ctx := context.Background()

	u, err := svc.Register(ctx, "alice", "alice@example.com", "hunter2")
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.NotEqual(t, "hunter2", u.PasswordHash)
	assert.True(t, auth.VerifyPassword("hunter2", u.PasswordHash))

	stored, err := repos.Users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.PasswordHash, stored.PasswordHash)
}

func TestRegisterUniqueCredentials(t *testing.T) {
	svc, _, wp := newUserService(t)
	defer wp.Stop()
	ctx := context.Background()

	u1, err := svc.Register(ctx, "alice", "alice@example.com", "samepass")
	require.NoError(t, err)
	u2, err := svc.Register(ctx, "bob", "bob@example.com", "samepass")
	require.NoError(t, err)

	assert.NotEqual(t, u1.PasswordHash, u2.PasswordHash)
}

func TestRegisterValidation(t *testing.T) {
	svc, _, wp := newUserService(t)
	defer wp.Stop()
	ctx := context.Background()

	cases := []struct{ username, email, password string }{
		{"", "a@x.com", "pw"},
		{"alice", "", "pw"},
		{"alice", "a@x.com", ""},
		{"alice", "not-an-email", "pw"},
	}
	for _, tc := range cases {
		_, err := svc.Register(ctx, tc.username, tc.email, tc.password)
		require.Error(t, err)
		assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	}
}

func TestRegisterConflict(t *testing.T) {
	svc, repos, wp := newUserService(t)
	defer wp.Stop()
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "pw")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other@example.com", "pw")
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))

	_, err = svc.Register(ctx, "other", "alice@example.com", "pw")
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))

	// the failed attempts must not have left rows behind
	_, err = repos.Users.GetByEmail(ctx, "other@example.com")
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestLogin(t *testing.T) {
	svc, _, wp := newUserService(t)
	defer wp.Stop()
	ctx := context.Background()

	reg, err := svc.Register(ctx, "alice", "alice@example.com", "hunter2")
	require.NoError(t, err)

	u, tok, err := svc.Login(ctx, "alice@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, reg.ID, u.ID)

	tm := auth.NewTokenManager("test-secret", "recipebox", time.Hour)
	uid, err := tm.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, uid)
}

func TestLoginRejectsWithoutLeakingWhy(t *testing.T) {
	svc, _, wp := newUserService(t)
	defer wp.Stop()
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "hunter2")
	require.NoError(t, err)

	_, _, errWrongPass := svc.Login(ctx, "alice@example.com", "nope")
	_, _, errNoUser := svc.Login(ctx, "ghost@example.com", "nope")

	require.Error(t, errWrongPass)
	require.Error(t, errNoUser)
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(errWrongPass))
	assert.Equal(t, apperr.Unauthorized, apperr.KindOf(errNoUser))
	// identical message for both: no user enumeration
	assert.Equal(t, errWrongPass.Error(), errNoUser.Error())
}

func TestUpdateProfilePartial(t *testing.T) {
	svc, _, wp := newUserService(t)
	defer wp.Stop()
	ctx := context.Background()

	u, err := svc.Register(ctx, "alice", "alice@example.com", "pw")
	require.NoError(t, err)

	name := "alice2"
	updated, err := svc.UpdateProfile(ctx, u.ID, &name, nil)
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, "alice@example.com", updated.Email)
}

func TestUpdateProfileConflict(t *testing.T) {
	svc, _, wp := newUserService(t)
	defer wp.Stop()
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "pw")
	require.NoError(t, err)
	bob, err := svc.Register(ctx, "bob", "bob@example.com", "pw")
	require.NoError(t, err)

	taken := "alice@example.com"
	_, err = svc.UpdateProfile(ctx, bob.ID, nil, &taken)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
}

func TestRegisterAndLoginAreAudited(t *testing.T) {
	svc, repos, wp := newUserService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, "alice", "alice@example.com", "pw")
	require.NoError(t, err)
	_, _, err = svc.Login(ctx, "alice@example.com", "pw")
	require.NoError(t, err)

	wp.Stop()

	logs := repos.AuditLogs.Logs()
	require.Len(t, logs, 2)
	actions := []string{logs[0].Action, logs[1].Action}
	assert.Contains(t, actions, "register")
	assert.Contains(t, actions, "login")
	for _, l := range logs {
		assert.Equal(t, u.ID, l.UserID)
	}
}
