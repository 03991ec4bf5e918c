package auth_test

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cyndie1416/RetailPOS/internal/repository/memory"
	"github.com/Cyndie1416/RetailPOS/internal/usecase/auth"
)

const testSecret = "test-secret"

func setup(t *testing.T) (*auth.LoginUsecase, *auth.UserUsecase, *memory.UserStore) {
	t.Helper()

	store := memory.NewUserStore(nil)
	users := auth.NewUserUsecase(store)
	login := auth.NewLoginUsecase(store, testSecret, 60)
	return login, users, store
}

func TestLogin(t *testing.T) {
	login, users, _ := setup(t)
	ctx := context.Background()

	u, err := users.Upsert(ctx, auth.UpsertInput{
		Username: "cashier",
		Password: "cashier123",
		Name:     "Store Cashier",
		Role:     auth.RoleCashier,
	})
	require.NoError(t, err)

	out, err := login.Execute(ctx, "cashier", "cashier123")
	require.NoError(t, err)
	assert.Equal(t, 3600, out.ExpiresIn)
	assert.Empty(t, out.User.PasswordHash)

	token, err := jwt.Parse(out.AccessToken, func(t *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, u.ID, claims["sub"])
	assert.Equal(t, auth.RoleCashier, claims["role"])
	assert.Equal(t, "user", claims["typ"])
}

func TestLogin_WrongPassword(t *testing.T) {
	login, users, _ := setup(t)
	ctx := context.Background()

	_, err := users.Upsert(ctx, auth.UpsertInput{
		Username: "cashier", Password: "cashier123", Name: "Store Cashier", Role: auth.RoleCashier,
	})
	require.NoError(t, err)

	_, err = login.Execute(ctx, "cashier", "wrong")
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = login.Execute(ctx, "nobody", "cashier123")
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	login, users, _ := setup(t)
	ctx := context.Background()

	u, err := users.Upsert(ctx, auth.UpsertInput{
		Username: "cashier", Password: "cashier123", Name: "Store Cashier", Role: auth.RoleCashier,
	})
	require.NoError(t, err)

	_, err = users.SetStatus(ctx, u.ID, "inactive")
	require.NoError(t, err)

	_, err = login.Execute(ctx, "cashier", "cashier123")
	require.ErrorIs(t, err, auth.ErrInactiveUser)
}

func TestUserUpsert(t *testing.T) {
	_, users, _ := setup(t)
	ctx := context.Background()

	t.Run("new user needs a password", func(t *testing.T) {
		_, err := users.Upsert(ctx, auth.UpsertInput{
			Username: "owner", Name: "Store Owner", Role: auth.RoleOwner,
		})
		require.ErrorIs(t, err, auth.ErrInvalidInput)
	})

	t.Run("role defaults drive permissions", func(t *testing.T) {
		u, err := users.Upsert(ctx, auth.UpsertInput{
			Username: "owner", Password: "owner123", Name: "Store Owner", Role: auth.RoleOwner,
		})
		require.NoError(t, err)
		assert.True(t, u.Permissions["users"])

		c, err := users.Upsert(ctx, auth.UpsertInput{
			Username: "cashier", Password: "cashier123", Name: "Store Cashier", Role: auth.RoleCashier,
		})
		require.NoError(t, err)
		assert.True(t, c.Permissions["pos"])
		assert.False(t, c.Permissions["users"])
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := users.Upsert(ctx, auth.UpsertInput{
			Username: "owner", Password: "x1234567", Name: "Another", Role: auth.RoleCashier,
		})
		require.ErrorIs(t, err, auth.ErrUsernameConflict)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := users.Upsert(ctx, auth.UpsertInput{
			Username: "admin", Password: "x1234567", Name: "Admin", Role: "admin",
		})
		require.ErrorIs(t, err, auth.ErrInvalidInput)
	})
}
