package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arthsaathi/internal/core"
	"arthsaathi/internal/kvstore"
)

func TestAccountService_SignUpValidation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	ok := SignUpRequest{Name: "Asha", Email: "asha@example.com", Password: "pw", Confirm: "pw", Code: "12345"}

	cases := []struct {
		name   string
		mutate func(*SignUpRequest)
		want   error
	}{
		{"missing name", func(r *SignUpRequest) { r.Name = " " }, ErrMissingCredentials},
		{"missing email", func(r *SignUpRequest) { r.Email = "" }, ErrMissingCredentials},
		{"missing confirm", func(r *SignUpRequest) { r.Confirm = "" }, ErrMissingCredentials},
		{"mismatch", func(r *SignUpRequest) { r.Confirm = "other" }, ErrPasswordMismatch},
		{"bad code", func(r *SignUpRequest) { r.Code = "00000" }, ErrBadVerificationCode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := ok
			tc.mutate(&req)
			_, err := h.accounts.SignUp(ctx, req)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := h.accounts.Current(ctx)
	assert.ErrorIs(t, err, ErrNotSignedIn, "failed sign-ups must not persist a user")

	u, err := h.accounts.SignUp(ctx, ok)
	require.NoError(t, err)
	got, err := h.accounts.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, u, got)
	assert.Equal(t, "Asha", got.Name)
}

func TestAccountService_SignInKeepsProfile(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.accounts.SignIn(ctx, "", "pw")
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = h.accounts.SignUp(ctx, SignUpRequest{Name: "Asha", Email: "asha@example.com", Password: "pw", Confirm: "pw", Code: "12345"})
	require.NoError(t, err)

	u, err := h.accounts.SignIn(ctx, "asha@example.com", "anything")
	require.NoError(t, err)
	assert.Equal(t, "Asha", u.Name)

	u, err = h.accounts.SignIn(ctx, "ravi@example.com", "x")
	require.NoError(t, err)
	assert.Empty(t, u.Name)
	assert.Equal(t, "ravi@example.com", h.accounts.CurrentEmail(ctx))
}

func TestAccountService_SignOutClearsBothKeys(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.accounts.SignIn(ctx, "asha@example.com", "pw")
	require.NoError(t, err)
	require.NoError(t, h.timeline.Append(ctx, core.TimelineEntry{Type: core.EntrySimulation}))

	require.NoError(t, h.accounts.SignOut(ctx))

	for _, key := range []string{kvstore.KeyUser, kvstore.KeyTimeline} {
		_, ok, err := h.store.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, "%s should be removed", key)
	}
	assert.Empty(t, h.accounts.CurrentEmail(ctx))
}
