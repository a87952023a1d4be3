package services

import (
	"context"
	"testing"

	appErr "github.com/megareality/estate/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerAdmin(t *testing.T, svc *Services, name, email string) uint {
	t.Helper()
	a, err := svc.Admins.Register(context.Background(), &AdminInput{
		Name: ptr(name), Email: ptr(email), Password: ptr("secret-" + name),
	})
	require.NoError(t, err)
	return a.ID
}

func TestAdminDeleteKeepsLastOne(t *testing.T) {
	eachBackend(t, func(t *testing.T, svc *Services) {
		ctx := context.Background()

		first := registerAdmin(t, svc, "Asha", "asha@example.com")
		err := svc.Admins.Delete(ctx, first)
		require.Error(t, err)
		assert.Equal(t, appErr.CodeInvariant, appErr.CodeOf(err))
		assert.Equal(t, "Cannot delete the last admin", appErr.MessageOf(err))

		second := registerAdmin(t, svc, "Bala", "bala@example.com")
		third := registerAdmin(t, svc, "Chetan", "chetan@example.com")
		require.NoError(t, svc.Admins.Delete(ctx, second))

		list, err := svc.Admins.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, first, list[0].ID)
		assert.Equal(t, third, list[1].ID)
	})
}

func TestAdminEmailConflict(t *testing.T) {
	eachBackend(t, func(t *testing.T, svc *Services) {
		ctx := context.Background()

		registerAdmin(t, svc, "Asha", "asha@example.com")
		b := registerAdmin(t, svc, "Bala", "bala@example.com")

		_, err := svc.Admins.Register(ctx, &AdminInput{Name: ptr("Dup"), Email: ptr("asha@example.com"), Password: ptr("x")})
		assert.True(t, appErr.IsCode(err, appErr.CodeConflict))

		_, err = svc.Admins.Update(ctx, b, &AdminInput{Email: ptr("asha@example.com")})
		assert.True(t, appErr.IsCode(err, appErr.CodeConflict))
		assert.Equal(t, "Admin with this email already exists", appErr.MessageOf(err))

		// Re-submitting one's own email is not a conflict.
		updated, err := svc.Admins.Update(ctx, b, &AdminInput{Email: ptr("bala@example.com"), Role: ptr("editor")})
		require.NoError(t, err)
		assert.Equal(t, "editor", updated.Role)
	})
}

func TestAdminUpdateBlankFields(t *testing.T) {
	eachBackend(t, func(t *testing.T, svc *Services) {
		ctx := context.Background()
		id := registerAdmin(t, svc, "Asha", "asha@example.com")

		_, err := svc.Admins.Update(ctx, id, &AdminInput{Email: ptr("")})
		assert.Equal(t, appErr.CodeInvalid, appErr.CodeOf(err))
		assert.Equal(t, "email is required", appErr.MessageOf(err))

		_, err = svc.Admins.Update(ctx, id, &AdminInput{Name: ptr(" ")})
		assert.Equal(t, appErr.CodeInvalid, appErr.CodeOf(err))

		// A blank password leaves the current one in place.
		updated, err := svc.Admins.Update(ctx, id, &AdminInput{Password: ptr(""), Role: ptr("editor")})
		require.NoError(t, err)
		assert.Equal(t, "asha@example.com", updated.Email)
		assert.Equal(t, "editor", updated.Role)
		_, err = svc.Admins.Login(ctx, "asha@example.com", "secret-Asha")
		require.NoError(t, err)
	})
}

func TestLogin(t *testing.T) {
	eachBackend(t, func(t *testing.T, svc *Services) {
		ctx := context.Background()
		id := registerAdmin(t, svc, "Asha", "asha@example.com")

		_, err := svc.Admins.Login(ctx, "asha@example.com", "wrong")
		assert.Equal(t, appErr.CodeUnauthorized, appErr.CodeOf(err))

		_, err = svc.Admins.Login(ctx, "nobody@example.com", "secret-Asha")
		assert.Equal(t, appErr.CodeUnauthorized, appErr.CodeOf(err))

		_, err = svc.Admins.Login(ctx, "", "")
		assert.Equal(t, appErr.CodeInvalid, appErr.CodeOf(err))

		res, err := svc.Admins.Login(ctx, "asha@example.com", "secret-Asha")
		require.NoError(t, err)
		assert.Equal(t, id, res.Admin.ID)
		assert.Equal(t, fixedNow.Add(defaultTokenTTL), res.ExpiresAt)
		assert.NotEmpty(t, res.AccessToken)
	})
}

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("s3cret")
	tok, err := IssueToken(secret, Actor{ID: 4, Name: "Dev"}, "admin", fixedNow.Add(10000*defaultTokenTTL))
	require.NoError(t, err)

	actor, err := ParseToken(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, Actor{ID: 4, Name: "Dev"}, actor)

	_, err = ParseToken([]byte("other"), tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
